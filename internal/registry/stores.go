package registry

import (
	"sync"
)

// MemoryInstanceStore is an in-memory implementation of InstanceStore
type MemoryInstanceStore struct {
	mu        sync.RWMutex
	instances map[string]*Instance
}

// NewMemoryInstanceStore creates a new memory-based instance store
func NewMemoryInstanceStore() *MemoryInstanceStore {
	return &MemoryInstanceStore{
		instances: make(map[string]*Instance),
	}
}

func (s *MemoryInstanceStore) GetInstance(id string) *Instance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.instances[id]
}

func (s *MemoryInstanceStore) GetAllInstances() map[string]*Instance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]*Instance, len(s.instances))
	for k, v := range s.instances {
		result[k] = v
	}
	return result
}

// AddInstance stores inst unless its ID is taken
func (s *MemoryInstanceStore) AddInstance(inst *Instance) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.instances[inst.ID()]; exists {
		return false
	}
	s.instances[inst.ID()] = inst
	return true
}

// RemoveInstance deletes an instance, reporting whether it existed
func (s *MemoryInstanceStore) RemoveInstance(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.instances[id]; !exists {
		return false
	}
	delete(s.instances, id)
	return true
}
