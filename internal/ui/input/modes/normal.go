package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"transferlist/internal/domain"
	"transferlist/internal/ui/input/types"
)

// NormalMode handles navigation, checking and transfers
type NormalMode struct {
	keys types.KeyMap
}

// NewNormalMode creates a new normal mode handler
func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case msg.String() == "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.Top):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, k.Bottom):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case msg.String() == "pgup":
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case msg.String() == "pgdown":
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case key.Matches(msg, k.SwitchSide):
		return []types.Action{types.SwitchSideAction{}}, true
	case key.Matches(msg, k.Left):
		side := domain.Left
		return []types.Action{types.SwitchSideAction{Side: &side}}, true
	case key.Matches(msg, k.Right):
		side := domain.Right
		return []types.Action{types.SwitchSideAction{Side: &side}}, true

	case key.Matches(msg, k.Toggle):
		if _, ok := ctx.CursorItem(); !ok {
			return nil, true
		}
		return []types.Action{types.ToggleSelectAction{}}, true
	case key.Matches(msg, k.SelectAll):
		return []types.Action{types.SelectAllAction{}}, true
	case key.Matches(msg, k.Deselect):
		return []types.Action{types.DeselectAllAction{}}, true

	case key.Matches(msg, k.Transfer):
		// Disabled button: nothing checked on the active side
		if !ctx.HasSelection() {
			return nil, true
		}
		return []types.Action{types.TransferAction{}}, true
	case key.Matches(msg, k.TransferAll):
		// An empty list is only grayed; the controller ignores it
		if !ctx.TransferAllShown() {
			return nil, true
		}
		return []types.Action{types.TransferAllAction{}}, true

	case key.Matches(msg, k.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	case key.Matches(msg, k.Summary):
		return []types.Action{types.ShowSummaryAction{}}, true
	case key.Matches(msg, k.Copy):
		return []types.Action{types.CopyValueAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
