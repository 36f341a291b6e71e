package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry resolves type names to definitions.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*TypeDef
}

// NewRegistry returns a registry holding the given definitions.
// It panics on duplicate names.
func NewRegistry(defs ...*TypeDef) *Registry {
	r := &Registry{types: map[string]*TypeDef{}}
	if err := r.Register(defs...); err != nil {
		panic(err)
	}
	return r
}

// Register adds definitions. No definition is added if any name is already taken.
func (r *Registry) Register(defs ...*TypeDef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := map[string]bool{}
	for _, d := range defs {
		if _, ok := r.types[d.Name]; ok || seen[d.Name] {
			return fmt.Errorf("type %s is already registered", d.Name)
		}
		seen[d.Name] = true
	}
	for _, d := range defs {
		r.types[d.Name] = d
	}
	return nil
}

// Lookup returns the definition with the given name.
func (r *Registry) Lookup(name string) (*TypeDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.types[name]
	return d, ok
}

// Types returns all definitions sorted by name.
func (r *Registry) Types() []*TypeDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]*TypeDef, 0, len(r.types))
	for _, d := range r.types {
		types = append(types, d)
	}
	slices.SortFunc(types, func(a, b *TypeDef) int { return strings.Compare(a.Name, b.Name) })
	return types
}

// ResourceTypes returns the concrete resource definitions sorted by name.
func (r *Registry) ResourceTypes() []*TypeDef {
	var resources []*TypeDef
	for _, d := range r.Types() {
		if d.IsResource() && !d.Abstract {
			resources = append(resources, d)
		}
	}
	return resources
}

// Verify checks that every type named by a field and every base type is registered.
func (r *Registry) Verify() error {
	var errs []error
	for _, d := range r.Types() {
		if d.Base != nil {
			if _, ok := r.Lookup(d.Base.Name); !ok {
				errs = append(errs, fmt.Errorf("%s: unknown base type %s", d.Name, d.Base.Name))
			}
		}
		for _, f := range d.Fields {
			for _, t := range f.Types {
				if _, ok := r.Lookup(t); !ok {
					errs = append(errs, fmt.Errorf("%s.%s: unknown type %s", d.Name, f.Name, t))
				}
			}
		}
	}
	return errors.Join(errs...)
}
