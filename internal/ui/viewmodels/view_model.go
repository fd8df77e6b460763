package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"transferlist/internal/domain"
	"transferlist/internal/ui/state"
	"transferlist/internal/ui/views"
	"transferlist/internal/widget"
)

// SearchBoxes renders the search box of each list
type SearchBoxes interface {
	SearchView(side domain.Side) string
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	config    widget.Config
	title     string
	width     int
	height    int
	searching bool
	help      help.Model
	keys      help.KeyMap
	searches  SearchBoxes
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg widget.Config, searches SearchBoxes) *ViewModel {
	return &ViewModel{
		state:    appState,
		config:   cfg,
		searches: searches,
	}
}

// SetTitle sets the heading shown above the lists
func (vm *ViewModel) SetTitle(title string) {
	vm.title = title
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings it renders
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetSearching marks the active list's search box as focused
func (vm *ViewModel) SetSearching(searching bool) {
	vm.searching = searching
}

// BuildViewState creates the view state for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	var panes [2]views.PaneView
	for _, side := range domain.Sides {
		panes[side.Index()] = vm.buildPane(side)
	}

	return views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Title:         vm.title,
		Panes:         panes,
		ViewportRows:  vm.state.ViewportRows,
		StatusMessage: vm.state.StatusMessage,
		ShowHelp:      vm.state.ShowHelp,
		HelpModel:     vm.help,
		Keys:          vm.keys,
	}
}

func (vm *ViewModel) buildPane(side domain.Side) views.PaneView {
	pane := vm.state.Pane(side)
	active := side == vm.state.Active

	var search string
	if vm.searches != nil {
		search = vm.searches.SearchView(side)
	}

	return views.PaneView{
		Side:               side,
		Title:              vm.config.Titles[side.Index()],
		SearchInput:        search,
		Searching:          vm.searching && active,
		View:               pane.View,
		Selection:          pane.Selection,
		Cursor:             pane.Cursor,
		Offset:             pane.Offset,
		Active:             active,
		TransferEnabled:    vm.state.TransferEnabled(side),
		TransferAllEnabled: vm.state.TransferAllEnabled(side),
		ShowTransferAll:    vm.config.ShowTransferAll,
	}
}
