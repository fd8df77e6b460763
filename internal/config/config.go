package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"transferlist/internal/domain"
	"transferlist/internal/logic"
	"transferlist/internal/widget"
)

// CurrentVersion is the config file format version written by Save
const CurrentVersion = 1

// Config represents the application configuration
type Config struct {
	Version   int            `toml:"version"`
	ID        string         `toml:"id,omitempty"`         // widget instance id, generated when empty
	ItemsFile string         `toml:"items_file,omitempty"` // YAML or TOML file with left/right items
	Widget    WidgetSettings `toml:"widget"`
	Left      []domain.Item  `toml:"left"`
	Right     []domain.Item  `toml:"right"`
}

// WidgetSettings represents the transfer list options
type WidgetSettings struct {
	Limit                      int      `toml:"limit"`
	TransferAllMatchingFilters bool     `toml:"transfer_all_matching_filters"`
	ShowTransferAll            bool     `toml:"show_transfer_all"`
	NothingFound               string   `toml:"nothing_found"`
	Placeholder                string   `toml:"placeholder"`
	SearchPlaceholder          string   `toml:"search_placeholder"`
	Titles                     []string `toml:"titles"`
	ListHeight                 int      `toml:"list_height"`
	Match                      string   `toml:"match"`
}

// ItemsDocument is the layout of an items file
type ItemsDocument struct {
	Left  []domain.Item `yaml:"left" toml:"left"`
	Right []domain.Item `yaml:"right" toml:"right"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the user's config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return NewConfigServiceAt(filepath.Join(configDir, "transferlist", "config.toml"))
}

// NewConfigServiceAt creates a config service bound to a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file used by Load and Save
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to the demo configuration
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.ItemsFile != "" {
		itemsPath := cfg.ItemsFile
		if !filepath.IsAbs(itemsPath) {
			itemsPath = filepath.Join(filepath.Dir(path), itemsPath)
		}
		value, err := LoadItems(itemsPath)
		if err != nil {
			return nil, err
		}
		cfg.Left = append(cfg.Left, value.Side(domain.Left)...)
		cfg.Right = append(cfg.Right, value.Side(domain.Right)...)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if config.Version == 0 {
		config.Version = CurrentVersion
	}
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Parse decodes a TOML document on top of the default widget settings and validates it
func Parse(data []byte) (*Config, error) {
	cfg := &Config{
		Version: CurrentVersion,
		Widget:  defaultWidgetSettings(),
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadItems reads the left/right lists from a YAML or TOML file
func LoadItems(path string) (domain.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Value{}, fmt.Errorf("failed to read items file: %w", err)
	}

	var doc ItemsDocument
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	default:
		// YAML also covers JSON documents
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return domain.Value{}, fmt.Errorf("failed to parse items file %s: %w", path, err)
	}
	return domain.NewValue(doc.Left, doc.Right), nil
}

// Validate reports malformed settings before the widget is constructed
func (c *Config) Validate() error {
	if c.Version > CurrentVersion {
		return fmt.Errorf("unsupported config version %d", c.Version)
	}
	if n := len(c.Widget.Titles); n != 0 && n != 2 {
		return fmt.Errorf("titles must name both lists, got %d", n)
	}
	for _, side := range domain.Sides {
		for _, item := range c.side(side) {
			if item.Value == "" {
				return fmt.Errorf("%s item %q has no value", side, item.Label)
			}
		}
	}
	wc, err := c.WidgetConfig()
	if err != nil {
		return err
	}
	return wc.Validate()
}

// WidgetConfig converts the file settings to a widget configuration
func (c *Config) WidgetConfig() (widget.Config, error) {
	w := c.Widget
	wc := widget.Config{
		Limit:                      w.Limit,
		TransferAllMatchingFilters: w.TransferAllMatchingFilters,
		ShowTransferAll:            w.ShowTransferAll,
		NothingFound:               w.NothingFound,
		Placeholder:                w.Placeholder,
		SearchPlaceholder:          w.SearchPlaceholder,
		ListHeight:                 w.ListHeight,
		Match:                      w.Match,
	}
	switch len(w.Titles) {
	case 0:
	case 2:
		wc.Titles = [2]string{w.Titles[0], w.Titles[1]}
	default:
		return widget.Config{}, fmt.Errorf("titles must name both lists, got %d", len(w.Titles))
	}
	return wc, nil
}

// Value returns the initial two-list value
func (c *Config) Value() domain.Value {
	return domain.NewValue(c.Left, c.Right).Clone()
}

func (c *Config) side(s domain.Side) []domain.Item {
	if s == domain.Left {
		return c.Left
	}
	return c.Right
}

func defaultWidgetSettings() WidgetSettings {
	d := widget.DefaultConfig()
	return WidgetSettings{
		Limit:                      d.Limit,
		TransferAllMatchingFilters: d.TransferAllMatchingFilters,
		ShowTransferAll:            d.ShowTransferAll,
		ListHeight:                 d.ListHeight,
		Match:                      logic.MatchSubstring,
	}
}

// DefaultConfig returns the demo configuration: the frameworks sample with
// source/destination titles.
func DefaultConfig() *Config {
	w := defaultWidgetSettings()
	w.ListHeight = 10
	w.NothingFound = "Nothing matches your search"
	w.Placeholder = "No items"
	w.SearchPlaceholder = "Search..."
	w.Titles = []string{"Source", "Destination"}

	return &Config{
		Version: CurrentVersion,
		ID:      "transferlist",
		Widget:  w,
		Left: []domain.Item{
			{Value: "react", Label: "React"},
			{Value: "ng", Label: "Angular"},
			{Value: "next", Label: "Next.js"},
			{Value: "blitz", Label: "Blitz.js"},
			{Value: "gatsby", Label: "Gatsby.js"},
			{Value: "vue", Label: "Vue"},
			{Value: "jq", Label: "jQuery"},
		},
		Right: []domain.Item{
			{Value: "sv", Label: "Svelte"},
			{Value: "rw", Label: "Redwood"},
			{Value: "np", Label: "NumPy"},
			{Value: "dj", Label: "Django"},
			{Value: "fl", Label: "Flask"},
		},
	}
}
