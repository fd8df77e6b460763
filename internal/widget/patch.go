package widget

import (
	"transferlist/internal/domain"
	"transferlist/internal/logic"
)

// View is what a side's checklist shows after a reconciliation step
type View struct {
	Items    []domain.Item // every item matching the side's search
	Rendered []domain.Item // Items after the render limit
	Empty    string        // empty-state text, set only when nothing is rendered
}

// SidePatch holds the fields of one side that must be pushed to the presentation
// layer. A nil field means "no update".
type SidePatch struct {
	View      *View
	Selection logic.Selection
	Search    *string
}

// Empty reports whether nothing changed on this side
func (p SidePatch) Empty() bool {
	return p.View == nil && p.Selection == nil && p.Search == nil
}

// RenderPatch is the result of one stimulus. The zero value means "no update".
type RenderPatch struct {
	Value *domain.Value
	Sides [2]SidePatch
}

// Side returns the patch for the given side
func (p RenderPatch) Side(s domain.Side) SidePatch {
	return p.Sides[s.Index()]
}

// Empty reports whether the stimulus was a no-op
func (p RenderPatch) Empty() bool {
	return p.Value == nil && p.Sides[0].Empty() && p.Sides[1].Empty()
}
