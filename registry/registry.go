// Package registry provides an in-memory management registry.
//
// The real platform registry is whatever runtime facility components register
// themselves with; this package supplies the in-process implementation used
// by composition roots and tests. It satisfies inspect.RegistryReader with a
// snapshot "query all" read.
package registry

import (
	"errors"
	"fmt"

	"github.com/kvisser/beanscope/inspect"
	"github.com/kvisser/beanscope/managed"
)

// ErrQueryPanic is returned if the registry panics internally during QueryAll.
var ErrQueryPanic = errors.New("registry: panic during QueryAll")

// MemoryRegistry holds registered instances in registration order.
//
// A class may back any number of registered names, including several names
// for the same instance. Registration is build-time wiring; it is not safe
// for concurrent mutation.
type MemoryRegistry struct {
	instances []inspect.Instance
}

// NewMemory creates an empty registry.
func NewMemory() *MemoryRegistry {
	return &MemoryRegistry{}
}

// Add registers a canonical name under a class name and returns the registry
// for chaining.
func (r *MemoryRegistry) Add(className, name string) *MemoryRegistry {
	r.instances = append(r.instances, inspect.Instance{ClassName: className, Name: name})
	return r
}

// AddInstance registers a canonical name for a live component, deriving the
// class name from the component's type. Returns the registry for chaining.
func (r *MemoryRegistry) AddInstance(v any, name string) *MemoryRegistry {
	return r.Add(managed.TypeNameOf(v), name)
}

// Len returns the number of registered instances.
func (r *MemoryRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.instances)
}

// QueryAll implements inspect.RegistryReader. It returns a snapshot copy of
// all registered instances and defensively converts panics into errors.
func (r *MemoryRegistry) QueryAll() (out []inspect.Instance, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = fmt.Errorf("%w: %v", ErrQueryPanic, rec)
		}
	}()

	out = make([]inspect.Instance, len(r.instances))
	copy(out, r.instances)
	return out, nil
}
