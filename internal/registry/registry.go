package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"transferlist/internal/domain"
	"transferlist/internal/eventbus"
	"transferlist/internal/widget"
)

// ErrInstanceExists is returned by Create when the ID is already registered
var ErrInstanceExists = errors.New("instance already exists")

// Registry maps instance IDs to widget controllers. Instances are inserted by
// Create and live until Remove; there is no other shared state. Stimuli for one
// instance are serialized, different instances never contend.
type Registry struct {
	store InstanceStore
	bus   eventbus.EventBus
}

// New creates a registry. bus may be nil when nobody observes instances.
func New(bus eventbus.EventBus) *Registry {
	return NewWithStore(NewMemoryInstanceStore(), bus)
}

// NewWithStore creates a registry over an existing store
func NewWithStore(store InstanceStore, bus eventbus.EventBus) *Registry {
	return &Registry{store: store, bus: bus}
}

// Create constructs and registers a controller. An empty id gets a generated one.
func (r *Registry) Create(id string, initial domain.Value, cfg widget.Config) (*widget.Controller, error) {
	if id == "" {
		id = uuid.NewString()
	}

	ctrl, err := widget.New(id, initial, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create instance %s: %w", id, err)
	}

	if !r.store.AddInstance(&Instance{controller: ctrl}) {
		return nil, fmt.Errorf("%w: %s", ErrInstanceExists, id)
	}

	Logger().Info("instance created",
		zap.String("instance", id),
		zap.Int("left", len(initial.Side(domain.Left))),
		zap.Int("right", len(initial.Side(domain.Right))))
	r.publish(domain.InstanceCreatedEvent{ID: id, Value: ctrl.CurrentValue()})

	return ctrl, nil
}

// Remove tears an instance down. Removing an unknown ID does nothing.
func (r *Registry) Remove(id string) {
	if !r.store.RemoveInstance(id) {
		return
	}
	Logger().Info("instance removed", zap.String("instance", id))
	r.publish(domain.InstanceRemovedEvent{ID: id})
}

// Dispatch routes a stimulus to an instance. An unknown instance is a soft
// no-op and yields an empty patch.
func (r *Registry) Dispatch(id string, cmd widget.Command) widget.RenderPatch {
	inst := r.store.GetInstance(id)
	if inst == nil {
		Logger().Warn("dispatch to unknown instance", zap.String("instance", id))
		return widget.RenderPatch{}
	}

	// Publishing under the lock keeps event order equal to apply order
	inst.mu.Lock()
	defer inst.mu.Unlock()
	patch, outcome := inst.controller.Apply(cmd)

	switch c := outcome.Command.(type) {
	case widget.SearchChanged:
		r.publish(domain.SearchChangedEvent{ID: id, Side: c.Side, Text: c.Text, Matches: outcome.Matches})
	case widget.Transfer, widget.TransferAll:
		if patch.Value != nil {
			_, all := c.(widget.TransferAll)
			r.publish(domain.ValueChangedEvent{
				ID:    id,
				From:  c.Target(),
				Moved: outcome.Moved,
				All:   all,
				Value: patch.Value.Clone(),
			})
		}
	}
	return patch
}

// CurrentValue returns a snapshot of an instance's lists
func (r *Registry) CurrentValue(id string) (domain.Value, bool) {
	inst := r.store.GetInstance(id)
	if inst == nil {
		return domain.Value{}, false
	}
	inst.mu.Lock()
	defer inst.mu.Unlock()
	return inst.controller.CurrentValue(), true
}

// View returns what one side of an instance currently shows
func (r *Registry) View(id string, side domain.Side) (widget.View, bool) {
	inst := r.store.GetInstance(id)
	if inst == nil {
		return widget.View{}, false
	}
	inst.mu.Lock()
	defer inst.mu.Unlock()
	return inst.controller.View(side), true
}

// Config returns the configuration an instance was created with
func (r *Registry) Config(id string) (widget.Config, bool) {
	inst := r.store.GetInstance(id)
	if inst == nil {
		return widget.Config{}, false
	}
	return inst.controller.Config(), true
}

// IDs returns the registered instance IDs in sorted order
func (r *Registry) IDs() []string {
	all := r.store.GetAllInstances()
	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *Registry) publish(event domain.DomainEvent) {
	if r.bus != nil {
		r.bus.Publish(event)
	}
}
