package widget

import (
	"fmt"

	"transferlist/internal/logic"
)

// Config is the immutable per-instance configuration of a transfer list
type Config struct {
	// Limit caps how many items each side renders. It never affects filtering,
	// selection or which values a transfer-all moves. 0 disables the cap.
	Limit                      int
	TransferAllMatchingFilters bool
	ShowTransferAll            bool
	NothingFound               string // shown when a search matches nothing
	Placeholder                string // shown when a list is empty
	SearchPlaceholder          string
	Titles                     [2]string
	ListHeight                 int    // rows per checklist
	Match                      string // "substring" (default) or "fuzzy"
}

// DefaultConfig returns the configuration a widget gets when nothing is set
func DefaultConfig() Config {
	return Config{
		TransferAllMatchingFilters: true,
		ShowTransferAll:            true,
		ListHeight:                 8,
		Match:                      logic.MatchSubstring,
	}
}

// Validate rejects configuration primitives the controller can't work with
func (c Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", c.Limit)
	}
	if c.ListHeight < 0 {
		return fmt.Errorf("list height must not be negative, got %d", c.ListHeight)
	}
	if _, err := logic.MatcherFor(c.Match); err != nil {
		return err
	}
	return nil
}

// cap applies Limit to a list of visible items
func (c Config) cap(n int) int {
	if c.Limit > 0 && n > c.Limit {
		return c.Limit
	}
	return n
}
