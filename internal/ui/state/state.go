package state

import (
	"transferlist/internal/domain"
	"transferlist/internal/logic"
	"transferlist/internal/widget"
)

// PaneState is what the UI shows for one list
type PaneState struct {
	Search    string
	View      widget.View
	Selection logic.Selection
	Cursor    int // index into View.Rendered
	Offset    int // first rendered row in the viewport
}

// AppState contains all the application state
type AppState struct {
	Active domain.Side
	Panes  [2]PaneState
	Value  domain.Value

	// Mirrors the instance config; decides what transfer-all moves
	TransferAllMatchingFilters bool

	// UI state
	ShowHelp      bool
	StatusMessage string
	ViewportRows  int
}

// NewAppState creates the state of a freshly constructed instance
func NewAppState(value domain.Value, views [2]widget.View, viewportRows int) *AppState {
	s := &AppState{
		Active:       domain.Left,
		Value:        value,
		ViewportRows: viewportRows,
	}
	for _, side := range domain.Sides {
		s.Panes[side.Index()] = PaneState{
			View:      views[side.Index()],
			Selection: logic.NewSelection(),
		}
	}
	return s
}

// Pane returns the state of one list
func (s *AppState) Pane(side domain.Side) *PaneState {
	return &s.Panes[side.Index()]
}

// ActivePane returns the list that has focus
func (s *AppState) ActivePane() *PaneState {
	return s.Pane(s.Active)
}

// Apply copies every field present in a patch into the state. It returns the
// sides whose search text was overwritten.
func (s *AppState) Apply(patch widget.RenderPatch) []domain.Side {
	var searchReset []domain.Side
	if patch.Value != nil {
		s.Value = patch.Value.Clone()
	}
	for _, side := range domain.Sides {
		sp := patch.Side(side)
		pane := s.Pane(side)
		if sp.Search != nil {
			pane.Search = *sp.Search
			searchReset = append(searchReset, side)
		}
		if sp.View != nil {
			pane.View = *sp.View
		}
		if sp.Selection != nil {
			pane.Selection = sp.Selection.Clone()
		}
	}
	return searchReset
}

// CursorItem returns the item under the cursor of the active list
func (s *AppState) CursorItem() (domain.Item, bool) {
	pane := s.ActivePane()
	if pane.Cursor < 0 || pane.Cursor >= len(pane.View.Rendered) {
		return domain.Item{}, false
	}
	return pane.View.Rendered[pane.Cursor], true
}

// TransferEnabled reports whether a list has checked items to move
func (s *AppState) TransferEnabled(side domain.Side) bool {
	return s.Pane(side).Selection.Len() > 0
}

// TransferAllEnabled reports whether transfer-all would move anything: every
// matching item when it follows the search, otherwise the whole list.
func (s *AppState) TransferAllEnabled(side domain.Side) bool {
	if s.TransferAllMatchingFilters {
		return len(s.Pane(side).View.Items) > 0
	}
	return len(s.Value.Side(side)) > 0
}

// ToggledSelection returns the active selection with the cursor item flipped
func (s *AppState) ToggledSelection() []string {
	pane := s.ActivePane()
	sel := pane.Selection.Clone()
	if item, ok := s.CursorItem(); ok {
		sel.Toggle(item.Value)
	}
	return sel.Sorted()
}

// RenderedValues returns the values of every rendered item of the active list
func (s *AppState) RenderedValues() []string {
	rendered := s.ActivePane().View.Rendered
	values := make([]string, len(rendered))
	for i, item := range rendered {
		values[i] = item.Value
	}
	return values
}
