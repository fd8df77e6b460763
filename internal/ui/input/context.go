package input

import (
	"transferlist/internal/domain"
	"transferlist/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State           *state.AppState
	ShowTransferAll bool
}

// ActiveSide returns the list that has focus
func (c *ModelContext) ActiveSide() domain.Side {
	return c.State.Active
}

// CursorItem returns the item under the cursor of the active list
func (c *ModelContext) CursorItem() (domain.Item, bool) {
	return c.State.CursorItem()
}

// HasSelection returns true if the active list has checked items
func (c *ModelContext) HasSelection() bool {
	return c.State.TransferEnabled(c.State.Active)
}

// TransferAllShown returns true if the transfer-all button is part of the widget
func (c *ModelContext) TransferAllShown() bool {
	return c.ShowTransferAll
}
