package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"transferlist/internal/config"
	"transferlist/internal/domain"
	"transferlist/internal/eventbus"
	"transferlist/internal/registry"
	"transferlist/internal/ui"
	"transferlist/internal/ui/views"
	"transferlist/internal/widget"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "transferlist",
	Short: "Move items between two searchable checklists",
	Long: `transferlist shows two checklists side by side. Check items and transfer
them to the other list, or transfer everything that matches the search.

Without a config file the built-in frameworks sample is shown.

Examples:
  transferlist                          # Start with the default config
  transferlist --items lists.yaml       # Load both lists from a YAML file
  transferlist --match fuzzy --limit 5  # Fuzzy search, render at most 5 items
  transferlist init                     # Write a sample config file
  transferlist print --json             # Print the configured value
  transferlist print --side right       # Print the right list only`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd)
	},
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the configured lists without starting the TUI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPrint(cmd)
	},
}

// Flags for root command
var (
	flagConfig string
	flagItems  string
	flagLimit  int
	flagMatch  string
	flagLog    string
)

// Flags for subcommands
var (
	flagForce bool
	flagJSON  bool
	flagSide  string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default: user config dir)")
	rootCmd.PersistentFlags().StringVarP(&flagItems, "items", "i", "", "YAML, JSON or TOML file with left/right items")
	rootCmd.PersistentFlags().IntVarP(&flagLimit, "limit", "n", 0, "Render at most this many items per list (0 = unlimited)")
	rootCmd.PersistentFlags().StringVarP(&flagMatch, "match", "m", "", "Search mode: substring or fuzzy")
	rootCmd.Flags().StringVar(&flagLog, "log", "transferlist.log", "Log file (empty disables logging)")

	initCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Overwrite an existing config file")
	printCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the value as JSON")
	printCmd.Flags().StringVar(&flagSide, "side", "", "Print only one list: left or right")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(printCmd)
}

func configService() config.ConfigService {
	if flagConfig != "" {
		return config.NewConfigServiceAt(flagConfig)
	}
	return config.NewConfigService()
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := configService().Load()
	if err != nil {
		return nil, err
	}

	if flagItems != "" {
		value, err := config.LoadItems(flagItems)
		if err != nil {
			return nil, err
		}
		cfg.Left = value.Side(domain.Left)
		cfg.Right = value.Side(domain.Right)
	}
	if cmd.Flags().Changed("limit") {
		cfg.Widget.Limit = flagLimit
	}
	if cmd.Flags().Changed("match") {
		cfg.Widget.Match = flagMatch
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger returns a file-backed logger so the TUI screen stays clean
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewDevelopmentConfig()
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	return zc.Build()
}

func runTUI(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(flagLog)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	widget.SetLogger(logger.Named("widget"))
	registry.SetLogger(logger.Named("registry"))

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New(logger.Named("eventbus"))
	defer bus.Close()
	// Stays subscribed until Close so the removal on exit is logged too
	eventbus.LogEvents(bus, logger.Named("events"))

	wc, err := cfg.WidgetConfig()
	if err != nil {
		return err
	}
	reg := registry.New(bus)
	ctrl, err := reg.Create(cfg.ID, cfg.Value(), wc)
	if err != nil {
		var dup domain.DuplicateValueError
		if errors.As(err, &dup) {
			return fmt.Errorf("item %q is in both lists", dup.Value)
		}
		return err
	}
	id := ctrl.ID()
	defer reg.Remove(id)

	model, err := ui.NewModel(reg, id, ui.Options{
		Title:          "transferlist",
		SearchDebounce: ui.DefaultSearchDebounce,
		Logger:         logger.Named("ui"),
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward value changes to the UI
	unsubscribe := bus.Subscribe(eventbus.EventValueChanged, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	defer unsubscribe()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}

	final, _ := reg.CurrentValue(id)
	logger.Info("final value",
		zap.Int("left", len(final.Side(domain.Left))),
		zap.Int("right", len(final.Side(domain.Right))))
	fmt.Fprint(cmd.OutOrStdout(), views.Summary(final, wc.Titles))
	return nil
}

func runInit(cmd *cobra.Command) error {
	svc := configService()
	if _, err := os.Stat(svc.Path()); err == nil && !flagForce {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", svc.Path())
	}
	if err := svc.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", svc.Path())
	return nil
}

func runPrint(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	wc, err := cfg.WidgetConfig()
	if err != nil {
		return err
	}

	// Going through a controller rejects values shared by both lists
	ctrl, err := widget.New(cfg.ID, cfg.Value(), wc)
	if err != nil {
		return err
	}
	value := ctrl.CurrentValue()

	if flagSide != "" {
		side, err := domain.ParseSide(flagSide)
		if err != nil {
			return err
		}
		items := value.Side(side)
		if flagJSON {
			return writeJSON(cmd, items)
		}
		for _, item := range items {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", item.Value, item.Label)
		}
		return nil
	}

	if flagJSON {
		return writeJSON(cmd, value)
	}
	fmt.Fprint(cmd.OutOrStdout(), views.Summary(value, wc.Titles))
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
