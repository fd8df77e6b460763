package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"transferlist/internal/ui/input/types"
)

// SearchMode edits the search box of the active list. Keys it does not
// consume go to the text input.
type SearchMode struct{}

func NewSearchMode() *SearchMode {
	return &SearchMode{}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "enter", "tab", "up", "down":
		// Leave the search box; the query stays applied
		actions := []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}
		switch msg.String() {
		case "tab":
			actions = append(actions, types.SwitchSideAction{})
		case "up", "down":
			actions = append(actions, types.NavigateAction{Direction: msg.String()})
		}
		return actions, true
	}
	return nil, false
}
