package widget

import (
	"fmt"

	"go.uber.org/zap"

	"transferlist/internal/domain"
	"transferlist/internal/logic"
)

// sideState holds the per-side fields the controller owns
type sideState struct {
	search    string
	visible   []domain.Item
	selection logic.Selection
}

// Controller owns the two-list value of one widget instance and reconciles
// search, selection and the partition on every stimulus. It is not safe for
// concurrent use; callers serialize stimuli per instance.
type Controller struct {
	id      string
	cfg     Config
	matcher logic.Matcher
	value   domain.Value
	sides   [2]sideState
}

// Outcome describes what a stimulus did, for observers of the controller
type Outcome struct {
	Command Command
	Moved   []string // values moved by a transfer, in source order
	Matches int      // visible items on the target side after the step
}

// New creates a controller from an initial value. It fails with
// domain.DuplicateValueError when a value appears in both lists.
func New(id string, initial domain.Value, cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid widget config: %w", err)
	}
	if err := logic.ValidatePartition(initial); err != nil {
		return nil, err
	}
	matcher, err := logic.MatcherFor(cfg.Match)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		id:      id,
		cfg:     cfg,
		matcher: matcher,
		value:   initial.Clone(),
	}
	for _, side := range domain.Sides {
		c.sides[side.Index()] = sideState{
			visible:   c.value.Side(side),
			selection: logic.NewSelection(),
		}
	}
	return c, nil
}

// ID returns the instance identifier
func (c *Controller) ID() string {
	return c.id
}

// Config returns the instance configuration
func (c *Controller) Config() Config {
	return c.cfg
}

// CurrentValue returns a snapshot of both lists
func (c *Controller) CurrentValue() domain.Value {
	return c.value.Clone()
}

// Search returns the current search text of a side
func (c *Controller) Search(side domain.Side) string {
	return c.sides[side.Index()].search
}

// Selection returns a copy of the checked values of a side
func (c *Controller) Selection(side domain.Side) logic.Selection {
	return c.sides[side.Index()].selection.Clone()
}

// View returns what a side currently shows
func (c *Controller) View(side domain.Side) View {
	return c.view(side)
}

// Dispatch applies one stimulus and returns the fields that changed
func (c *Controller) Dispatch(cmd Command) RenderPatch {
	patch, _ := c.Apply(cmd)
	return patch
}

// Apply is Dispatch that also reports the outcome of the step
func (c *Controller) Apply(cmd Command) (RenderPatch, Outcome) {
	switch cmd := cmd.(type) {
	case SearchChanged:
		return c.OnSearchChanged(cmd.Side, cmd.Text)
	case SelectionChanged:
		return c.OnSelectionChanged(cmd.Side, cmd.Values)
	case Transfer:
		return c.OnTransfer(cmd.Side)
	case TransferAll:
		return c.OnTransferAll(cmd.Side)
	default:
		Logger().Warn("ignoring unknown command",
			zap.String("instance", c.id),
			zap.String("command", fmt.Sprintf("%T", cmd)))
		return RenderPatch{}, Outcome{Command: cmd}
	}
}

// OnSearchChanged re-filters one side and drops selections that are no longer visible.
// The other side is untouched.
func (c *Controller) OnSearchChanged(side domain.Side, text string) (RenderPatch, Outcome) {
	st := &c.sides[side.Index()]
	st.search = text
	st.visible = c.matcher.Match(c.value.Side(side), text)

	var patch RenderPatch
	view := c.view(side)
	patch.Sides[side.Index()].View = &view

	reconciled := logic.Reconcile(st.selection, st.visible)
	if !reconciled.Equal(st.selection) {
		st.selection = reconciled
		patch.Sides[side.Index()].Selection = reconciled.Clone()
	}

	Logger().Debug("search changed",
		zap.String("instance", c.id),
		zap.Stringer("side", side),
		zap.String("text", text),
		zap.Int("matches", len(st.visible)))

	return patch, Outcome{
		Command: SearchChanged{Side: side, Text: text},
		Matches: len(st.visible),
	}
}

// OnSelectionChanged replaces the checked values of a side. Values that are not
// visible are dropped.
func (c *Controller) OnSelectionChanged(side domain.Side, values []string) (RenderPatch, Outcome) {
	st := &c.sides[side.Index()]
	outcome := Outcome{
		Command: SelectionChanged{Side: side, Values: values},
		Matches: len(st.visible),
	}

	reconciled := logic.Reconcile(logic.NewSelection(values...), st.visible)
	if reconciled.Equal(st.selection) {
		return RenderPatch{}, outcome
	}
	st.selection = reconciled

	var patch RenderPatch
	patch.Sides[side.Index()].Selection = reconciled.Clone()
	return patch, outcome
}

// OnTransfer moves the checked items of a side to the other side. Search text on
// both sides is kept, unlike OnTransferAll which clears it.
// TODO: confirm with product whether transfer should clear search like transfer-all does.
func (c *Controller) OnTransfer(side domain.Side) (RenderPatch, Outcome) {
	outcome := Outcome{Command: Transfer{Side: side}}
	st := c.sides[side.Index()]
	values := logic.Reconcile(st.selection, st.visible)
	if values.Len() == 0 {
		return RenderPatch{}, outcome
	}
	return c.transfer(side, values, false, outcome)
}

// OnTransferAll moves every item of a side, or only the ones matching the live
// search when TransferAllMatchingFilters is set. The render limit is ignored.
func (c *Controller) OnTransferAll(side domain.Side) (RenderPatch, Outcome) {
	outcome := Outcome{Command: TransferAll{Side: side}}
	items := c.value.Side(side)
	if c.cfg.TransferAllMatchingFilters {
		items = c.matcher.Match(items, c.sides[side.Index()].search)
	}
	values := logic.Values(items)
	if values.Len() == 0 {
		return RenderPatch{}, outcome
	}
	return c.transfer(side, values, true, outcome)
}

func (c *Controller) transfer(from domain.Side, values logic.Selection, all bool, outcome Outcome) (RenderPatch, Outcome) {
	next, moved := logic.TransferValue(c.value, from, values)
	if len(moved) == 0 {
		return RenderPatch{}, outcome
	}
	c.value = next

	var patch RenderPatch
	for _, side := range domain.Sides {
		st := &c.sides[side.Index()]
		sp := &patch.Sides[side.Index()]
		if all {
			st.search = ""
			empty := ""
			sp.Search = &empty
		}
		st.visible = c.matcher.Match(c.value.Side(side), st.search)
		st.selection = logic.NewSelection()

		view := c.view(side)
		sp.View = &view
		sp.Selection = logic.NewSelection()
	}
	snapshot := c.value.Clone()
	patch.Value = &snapshot

	Logger().Debug("transferred items",
		zap.String("instance", c.id),
		zap.Stringer("from", from),
		zap.Bool("all", all),
		zap.Strings("moved", moved))

	outcome.Moved = moved
	outcome.Matches = len(c.sides[from.Index()].visible)
	return patch, outcome
}

// view builds the render model of a side from its current state
func (c *Controller) view(side domain.Side) View {
	st := c.sides[side.Index()]
	items := make([]domain.Item, len(st.visible))
	copy(items, st.visible)

	v := View{
		Items:    items,
		Rendered: items[:c.cfg.cap(len(items))],
	}
	if len(v.Rendered) == 0 {
		v.Empty = c.emptyText(side)
	}
	return v
}

// emptyText picks the message for a side that renders nothing
func (c *Controller) emptyText(side domain.Side) string {
	st := c.sides[side.Index()]
	switch {
	case st.search != "":
		return c.cfg.NothingFound
	case len(c.value.Side(side)) == 0:
		return c.cfg.Placeholder
	default:
		return ""
	}
}
