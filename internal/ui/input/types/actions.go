package types

import "transferlist/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type SwitchSideAction struct {
	Side *domain.Side // nil toggles
}

func (a SwitchSideAction) Type() string { return "switch_side" }

// Selection actions
type ToggleSelectAction struct{}

func (a ToggleSelectAction) Type() string { return "toggle_select" }

type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

// Transfer actions
type TransferAction struct{}

func (a TransferAction) Type() string { return "transfer" }

type TransferAllAction struct{}

func (a TransferAllAction) Type() string { return "transfer_all" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateSearchAction struct {
	Side domain.Side
	Text string
}

func (a UpdateSearchAction) Type() string { return "update_search" }

// Other actions
type ShowSummaryAction struct{}

func (a ShowSummaryAction) Type() string { return "show_summary" }

type CopyValueAction struct{}

func (a CopyValueAction) Type() string { return "copy_value" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
