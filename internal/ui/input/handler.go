package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"transferlist/internal/domain"
	"transferlist/internal/ui/input/modes"
	"transferlist/internal/ui/input/types"
)

// Handler routes key presses to the current mode and owns one search box per list
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        types.KeyMap
	searches    [2]textinput.Model
	side        domain.Side // list whose search box is being edited
}

// New creates an input handler. placeholder is shown in empty search boxes.
func New(keys types.KeyMap, placeholder string) *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}
	for _, side := range domain.Sides {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholder
		h.searches[side.Index()] = ti
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(keys)
	h.modes[types.ModeSearch] = modes.NewSearchMode()

	return h
}

// HandleKey processes a key press and returns the resulting actions
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed {
		if h.currentMode != types.ModeSearch {
			return nil, nil
		}
		ti := &h.searches[h.side.Index()]
		before := ti.Value()
		var cmd tea.Cmd
		*ti, cmd = ti.Update(msg)
		if ti.Value() == before {
			return nil, cmd
		}
		return []types.Action{types.UpdateSearchAction{Side: h.side, Text: ti.Value()}}, cmd
	}

	var cmd tea.Cmd
	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		allActions = append(allActions, handler.Exit(ctx)...)
		cmd = h.setMode(changeMode.Mode, ctx.ActiveSide())
		if next := h.modes[h.currentMode]; next != nil {
			allActions = append(allActions, next.Enter(ctx)...)
		}
	}
	return allActions, cmd
}

func (h *Handler) setMode(mode types.Mode, side domain.Side) tea.Cmd {
	h.searches[h.side.Index()].Blur()
	h.currentMode = mode
	if mode != types.ModeSearch {
		return nil
	}
	h.side = side
	h.searches[side.Index()].CursorEnd()
	return h.searches[side.Index()].Focus()
}

// Update handles non-keyboard messages for the focused search box
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeSearch {
		return nil
	}
	var cmd tea.Cmd
	h.searches[h.side.Index()], cmd = h.searches[h.side.Index()].Update(msg)
	return cmd
}

// CurrentMode returns the active input mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// Keys returns the key bindings
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

// SearchView renders the search box of a list
func (h *Handler) SearchView(side domain.Side) string {
	return h.searches[side.Index()].View()
}

// SearchValue returns the text in the search box of a list
func (h *Handler) SearchValue(side domain.Side) string {
	return h.searches[side.Index()].Value()
}

// SetSearch overwrites the search box of a list, e.g. after transfer-all cleared it
func (h *Handler) SetSearch(side domain.Side, text string) {
	h.searches[side.Index()].SetValue(text)
}
