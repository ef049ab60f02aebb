// Package graph provides the object-graph collaborator for inspection: a
// small container that records bound component instances and exposes the
// distinct classes reachable from those bindings.
//
// The graph does no dependency resolution. Wiring stays explicit in the
// composition root; the graph only remembers what was bound so the inspector
// can enumerate candidate classes and their managed members.
package graph

import (
	"errors"
	"reflect"
	"strconv"

	"github.com/kvisser/beanscope/inspect"
	"github.com/kvisser/beanscope/managed"
)

var (
	// ErrNilComponent is returned when Bind is given nil or a typed nil pointer.
	ErrNilComponent = errors.New("graph: nil component")
)

// DuplicateBindingError is returned when a second instance of an already
// bound class is bound. One exemplar per class is enough for inspection;
// multiple live instances of a class are the registry's concern, not the
// graph's.
type DuplicateBindingError struct {
	Type string
}

// Error implements the error interface.
func (e DuplicateBindingError) Error() string {
	// Example: graph: class "pkg.Counter" already bound
	return "graph: class " + strconv.Quote(e.Type) + " already bound"
}

// Graph records bound component instances, deduplicated by class, in bind
// order. It implements inspect.GraphReader.
//
// Graph is build-time wiring state; it is not safe for concurrent mutation.
type Graph struct {
	table *managed.Table

	order     []reflect.Type
	exemplars map[reflect.Type]any
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{exemplars: map[reflect.Type]any{}}
}

// UseTable attaches an explicit declaration table consulted for every bound
// class, in addition to each instance's own Describer capability. Returns the
// graph for chaining.
func (g *Graph) UseTable(t *managed.Table) *Graph {
	g.table = t
	return g
}

// Bind records a component instance in the graph.
//
// It fails with ErrNilComponent for nil (including typed nil pointers) and
// with DuplicateBindingError when the instance's class is already bound.
func (g *Graph) Bind(v any) error {
	if v == nil {
		return ErrNilComponent
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return ErrNilComponent
	}

	t := indirect(rv.Type())
	if _, exists := g.exemplars[t]; exists {
		return DuplicateBindingError{Type: managed.TypeName(t)}
	}
	g.order = append(g.order, t)
	g.exemplars[t] = v
	return nil
}

// BindAll binds multiple instances in order, stopping at the first error.
func (g *Graph) BindAll(vs ...any) error {
	for _, v := range vs {
		if err := g.Bind(v); err != nil {
			return err
		}
	}
	return nil
}

// Types returns the distinct bound classes in bind order. The slice is a
// copy; mutating it does not affect the graph.
func (g *Graph) Types() []reflect.Type {
	if g == nil || len(g.order) == 0 {
		return nil
	}
	out := make([]reflect.Type, len(g.order))
	copy(out, g.order)
	return out
}

// Classes implements inspect.GraphReader.
//
// For each bound class it gathers declarations from the instance's Describer
// capability and from the attached table, then resolves them against the
// class's method set. Classes with no declarations are still listed (with no
// members). A declaration naming an inaccessible member fails the whole call.
func (g *Graph) Classes() ([]inspect.Class, error) {
	classes := make([]inspect.Class, 0, len(g.order))
	for _, t := range g.order {
		className := managed.TypeName(t)

		var decls []managed.Decl
		if d, ok := g.exemplars[t].(managed.Describer); ok {
			decls = append(decls, d.DescribeManaged()...)
		}
		decls = append(decls, g.table.DeclsFor(className)...)

		members, err := managed.Resolve(t, decls)
		if err != nil {
			return nil, err
		}
		if len(members) == 0 {
			members = nil
		}
		classes = append(classes, inspect.Class{Name: className, Members: members})
	}
	return classes, nil
}

// indirect strips pointer indirection so *T and T bind as the same class.
func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
