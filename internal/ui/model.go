package ui

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"transferlist/internal/domain"
	"transferlist/internal/registry"
	"transferlist/internal/ui/handlers"
	"transferlist/internal/ui/input"
	inputtypes "transferlist/internal/ui/input/types"
	"transferlist/internal/ui/logic"
	"transferlist/internal/ui/state"
	"transferlist/internal/ui/viewmodels"
	"transferlist/internal/ui/views"
	"transferlist/internal/widget"
)

// DefaultSearchDebounce is how long typing must pause before a search is applied
const DefaultSearchDebounce = 250 * time.Millisecond

// Rows taken by the title, search boxes, buttons, scroll markers, borders and footer
const chromeRows = 13

// Options tunes the UI model
type Options struct {
	Title          string
	SearchDebounce time.Duration // zero applies every keystroke immediately
	Logger         *zap.Logger
}

// Model is the Bubble Tea front end of one transfer list instance
type Model struct {
	reg    *registry.Registry
	id     string
	cfg    widget.Config
	logger *zap.Logger
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	inPagerMode bool

	// Search debounce bookkeeping per side
	debounce      time.Duration
	searchSeq     [2]int
	searchPending [2]bool

	// Handlers
	navigator    *logic.Navigator
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	pager        *PagerOps
	copyText     func(string) error

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a UI model bound to a registered instance
func NewModel(reg *registry.Registry, id string, opts Options) (*Model, error) {
	cfg, ok := reg.Config(id)
	if !ok {
		return nil, fmt.Errorf("unknown instance %q", id)
	}
	value, _ := reg.CurrentValue(id)

	var initial [2]widget.View
	for _, side := range domain.Sides {
		initial[side.Index()], _ = reg.View(id, side)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Model{
		reg:          reg,
		id:           id,
		cfg:          cfg,
		logger:       logger,
		help:         help.New(),
		debounce:     opts.SearchDebounce,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(inputtypes.DefaultKeyMap(), cfg.SearchPlaceholder),
		pager:        NewPagerOps(nil),
		copyText:     clipboard.WriteAll,
	}
	m.state = state.NewAppState(value, initial, m.viewportRows())
	m.state.TransferAllMatchingFilters = cfg.TransferAllMatchingFilters
	m.navigator = logic.NewNavigator(m.state.ViewportRows)
	m.eventHandler = handlers.NewEventHandler(m.state, id, cfg.Titles)
	m.viewModel = viewmodels.NewViewModel(m.state, cfg, m.inputHandler)
	m.viewModel.SetTitle(opts.Title)

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// State exposes the UI state for inspection
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{
			State:           m.state,
			ShowTransferAll: m.cfg.ShowTransferAll,
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case searchDebounceMsg:
		// A newer keystroke or a transfer superseded this one
		if msg.seq != m.searchSeq[msg.side.Index()] {
			return m, nil
		}
		m.flushSearch(msg.side)
		return m, nil

	case EventMsg:
		if m.eventHandler.HandleEvent(msg.Event) {
			return m, clearStatusAfter()
		}
		return m, nil

	case copyValueMsg:
		if msg.err != nil {
			m.logger.Warn("copy to clipboard failed", zap.Error(msg.err))
			return m, m.setStatus(fmt.Sprintf("Copy failed: %v", msg.err))
		}
		return m, m.setStatus(fmt.Sprintf("Copied %d items to clipboard", msg.count))

	case summaryPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			m.logger.Warn("summary pager failed", zap.Error(msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		// Handle non-keyboard messages such as cursor blink
		return m, m.inputHandler.Update(msg)
	}
}

// processAction executes one action produced by the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	active := m.state.Active

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		pane := m.state.ActivePane()
		pane.Cursor, pane.Offset = m.navigator.Move(a.Direction, pane.Cursor, pane.Offset, len(pane.View.Rendered))

	case inputtypes.SwitchSideAction:
		if a.Side != nil {
			m.state.Active = *a.Side
		} else {
			m.state.Active = active.Other()
		}

	case inputtypes.ToggleSelectAction:
		m.flushSearch(active)
		m.dispatch(widget.SelectionChanged{Side: active, Values: m.state.ToggledSelection()})

	case inputtypes.SelectAllAction:
		m.flushSearch(active)
		m.dispatch(widget.SelectionChanged{Side: active, Values: m.state.RenderedValues()})

	case inputtypes.DeselectAllAction:
		m.dispatch(widget.SelectionChanged{Side: active})

	case inputtypes.TransferAction:
		// A transfer re-filters both lists, so both queries must be current
		m.flushSearches()
		m.dispatch(widget.Transfer{Side: active})

	case inputtypes.TransferAllAction:
		m.flushSearches()
		m.dispatch(widget.TransferAll{Side: active})

	case inputtypes.UpdateSearchAction:
		return m.updateSearch(a.Side, a.Text)

	case inputtypes.ShowSummaryAction:
		content := views.Summary(m.state.Value, m.cfg.Titles)
		if m.program == nil {
			return m.setStatus("Summary pager unavailable")
		}
		return m.fetchSummaryPager(content)

	case inputtypes.CopyValueAction:
		return m.copyValue()

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit

	default:
		m.logger.Debug("unhandled action", zap.String("action", action.Type()))
	}
	return nil
}

// updateSearch echoes the query locally and schedules the filter step
func (m *Model) updateSearch(side domain.Side, text string) tea.Cmd {
	i := side.Index()
	m.state.Pane(side).Search = text
	m.searchSeq[i]++
	m.searchPending[i] = true

	if m.debounce <= 0 {
		m.flushSearch(side)
		return nil
	}
	seq := m.searchSeq[i]
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{side: side, seq: seq}
	})
}

// flushSearch applies a pending query right away
func (m *Model) flushSearch(side domain.Side) {
	i := side.Index()
	if !m.searchPending[i] {
		return
	}
	m.searchPending[i] = false
	m.dispatch(widget.SearchChanged{Side: side, Text: m.state.Pane(side).Search})
}

func (m *Model) flushSearches() {
	for _, side := range domain.Sides {
		m.flushSearch(side)
	}
}

// dispatch sends a stimulus to the instance and applies the resulting patch
func (m *Model) dispatch(cmd widget.Command) {
	patch := m.reg.Dispatch(m.id, cmd)
	if patch.Empty() {
		return
	}

	for _, side := range m.state.Apply(patch) {
		// The controller cleared this search box; drop any pending keystrokes
		i := side.Index()
		m.searchSeq[i]++
		m.searchPending[i] = false
		m.inputHandler.SetSearch(side, m.state.Pane(side).Search)
	}

	for _, side := range domain.Sides {
		pane := m.state.Pane(side)
		pane.Cursor, pane.Offset = m.navigator.Clamp(pane.Cursor, pane.Offset, len(pane.View.Rendered))
	}
}

// copyValue writes the current value to the clipboard as JSON
func (m *Model) copyValue() tea.Cmd {
	value := m.state.Value.Clone()
	copyText := m.copyText
	return func() tea.Msg {
		data, err := json.Marshal(value)
		if err != nil {
			return copyValueMsg{err: err}
		}
		return copyValueMsg{count: value.Len(), err: copyText(string(data))}
	}
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.state.StatusMessage = text
	return clearStatusAfter()
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) viewportRows() int {
	rows := m.cfg.ListHeight
	if rows <= 0 {
		rows = 10
	}
	if m.height > 0 {
		if avail := m.height - chromeRows; avail < rows {
			rows = avail
		}
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) updateViewportHeight() {
	m.state.ViewportRows = m.viewportRows()
	m.navigator = logic.NewNavigator(m.state.ViewportRows)
	for _, side := range domain.Sides {
		pane := m.state.Pane(side)
		pane.Cursor, pane.Offset = m.navigator.Clamp(pane.Cursor, pane.Offset, len(pane.View.Rendered))
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetSearching(m.inputHandler.CurrentMode() == inputtypes.ModeSearch)
	m.viewModel.SetHelp(m.help, m.inputHandler.Keys())
	return m.renderer.Render(m.viewModel.BuildViewState())
}
