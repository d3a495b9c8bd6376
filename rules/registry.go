package rules

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/domino14/downstack/tiles"
)

// A Registry holds rotation-system prototypes by name. Get hands out
// clones, so callers can never mutate a shared prototype. Lookups are
// case-insensitive.
type Registry struct {
	sync.RWMutex
	prototypes map[string]tiles.RotationSystem
}

// NewRegistry creates a registry preloaded with the built-in rule sets.
func NewRegistry() *Registry {
	r := &Registry{prototypes: map[string]tiles.RotationSystem{}}
	r.Register(NewSRS())
	return r
}

// Register adds a prototype under its own name, replacing any previous
// entry with that name.
func (r *Registry) Register(rs tiles.RotationSystem) {
	r.Lock()
	defer r.Unlock()
	r.prototypes[strings.ToLower(rs.Name())] = rs
}

// Get returns a fresh clone of the named rotation system.
func (r *Registry) Get(name string) (tiles.RotationSystem, error) {
	r.RLock()
	defer r.RUnlock()
	rs, ok := r.prototypes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown rotation system %q (have: %s)",
			name, strings.Join(r.namesLocked(), ", "))
	}
	return rs.Clone(), nil
}

// Names lists the registered rule sets, sorted.
func (r *Registry) Names() []string {
	r.RLock()
	defer r.RUnlock()
	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.prototypes))
	for name := range r.prototypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
