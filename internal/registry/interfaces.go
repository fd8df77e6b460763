package registry

import (
	"sync"

	"transferlist/internal/widget"
)

// Instance is a registered widget controller together with the lock that
// serializes its stimuli
type Instance struct {
	mu         sync.Mutex
	controller *widget.Controller
}

// ID returns the instance identifier
func (i *Instance) ID() string {
	return i.controller.ID()
}

// InstanceStore provides access to registered instances
type InstanceStore interface {
	GetInstance(id string) *Instance
	GetAllInstances() map[string]*Instance
	AddInstance(inst *Instance) bool
	RemoveInstance(id string) bool
}
