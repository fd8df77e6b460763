package widget

import "transferlist/internal/domain"

// Command is a stimulus consumed by Controller.Dispatch
type Command interface {
	Type() string
	Target() domain.Side
}

// SearchChanged is sent when a side's search text changes
type SearchChanged struct {
	Side domain.Side
	Text string
}

func (c SearchChanged) Type() string        { return "search_changed" }
func (c SearchChanged) Target() domain.Side { return c.Side }

// SelectionChanged is sent when the checked values of a side change
type SelectionChanged struct {
	Side   domain.Side
	Values []string
}

func (c SelectionChanged) Type() string        { return "selection_changed" }
func (c SelectionChanged) Target() domain.Side { return c.Side }

// Transfer is sent when a side's transfer button is clicked
type Transfer struct {
	Side domain.Side
}

func (c Transfer) Type() string        { return "transfer" }
func (c Transfer) Target() domain.Side { return c.Side }

// TransferAll is sent when a side's transfer-all button is clicked
type TransferAll struct {
	Side domain.Side
}

func (c TransferAll) Type() string        { return "transfer_all" }
func (c TransferAll) Target() domain.Side { return c.Side }
