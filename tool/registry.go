package tool

import (
	"fmt"
	"iter"
	"sync"
)

// Registry stores tools by unique name and arbitrates collisions between
// manually registered entries and derived ones: a manually-authored tool
// always wins against a derived tool of the same name.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*Tool
	order []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]*Tool),
	}
}

// Register adds a manually-authored tool. Registering a name twice is an
// error; manual entries are authoritative and never displaced.
func (r *Registry) Register(t *Tool) error {
	if t == nil || t.Name == "" {
		return fmt.Errorf("tool must have a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tools[t.Name]; ok {
		return fmt.Errorf("tool already registered: %s", t.Name)
	}

	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)

	return nil
}

// AddDerived merges derived tools into the registry, skipping any whose
// name collides with an existing (manually registered) entry.
func (r *Registry) AddDerived(tools ...*Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range tools {
		if _, ok := r.tools[t.Name]; ok {
			continue
		}

		r.tools[t.Name] = t
		r.order = append(r.order, t.Name)
	}
}

// Get resolves a tool by name.
func (r *Registry) Get(name string) (*Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tools[name]

	return t, ok
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tools)
}

// All returns an iterator over registered tools in registration order.
func (r *Registry) All() iter.Seq[*Tool] {
	return func(yield func(*Tool) bool) {
		r.mu.RLock()
		names := append([]string{}, r.order...)
		r.mu.RUnlock()

		for _, name := range names {
			t, ok := r.Get(name)
			if ok && !yield(t) {
				return
			}
		}
	}
}
