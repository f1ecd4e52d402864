package surface

import (
	"fmt"
	"sort"
	"sync"
)

// Registry resolves surface identities to surfaces. The hosting
// environment owns surface creation; the engine only needs lookup.
type Registry struct {
	mu       sync.RWMutex
	surfaces map[string]Surface
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[string]Surface)}
}

// Add registers a surface under its ID.
func (r *Registry) Add(s Surface) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := s.ID()
	if id == "" {
		return fmt.Errorf("surface has empty id")
	}
	if _, exists := r.surfaces[id]; exists {
		return fmt.Errorf("surface %q already registered", id)
	}
	r.surfaces[id] = s
	return nil
}

// Remove unregisters the surface with the given ID.
// Removing an unknown ID is a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.surfaces, id)
}

// Get returns the surface registered under id.
func (r *Registry) Get(id string) (Surface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.surfaces[id]
	return s, ok
}

// IDs returns the registered surface identities in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.surfaces))
	for id := range r.surfaces {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
