package managed

import "sort"

// Table is an explicit, reflection-free registry of managed-member
// declarations keyed by canonical class name.
//
// It exists for components that cannot (or should not) implement Describer:
// their declarations are registered once, typically in the composition root,
// and the inspection graph consults the table per class.
//
// Table is build-time wiring state; it is not safe for concurrent mutation.
type Table struct {
	decls map[string][]Decl
}

// NewTable creates an empty declaration table.
func NewTable() *Table {
	return &Table{decls: map[string][]Decl{}}
}

// Register records declarations for the component's class.
//
// It fails with:
//   - ErrNilComponent if v is nil
//   - ErrEmptyDeclName if a declaration has no member name
//   - DuplicateDeclError if a member is already declared for the class
func (t *Table) Register(v any, decls ...Decl) error {
	if v == nil {
		return ErrNilComponent
	}
	className := TypeNameOf(v)

	existing := t.decls[className]
	for _, d := range decls {
		if d.Name == "" {
			return ErrEmptyDeclName
		}
		for _, e := range existing {
			if e.Name == d.Name {
				return DuplicateDeclError{Type: className, Member: d.Name}
			}
		}
		existing = append(existing, d)
	}
	t.decls[className] = existing
	return nil
}

// MustRegister is Register that panics on wiring mistakes and returns the
// table for chaining. Useful in examples/tests where registration errors
// should fail fast.
func (t *Table) MustRegister(v any, decls ...Decl) *Table {
	if err := t.Register(v, decls...); err != nil {
		panic(err)
	}
	return t
}

// DeclsFor returns a copy of the declarations registered for a class name.
// Unknown classes yield nil, not an error.
func (t *Table) DeclsFor(className string) []Decl {
	if t == nil {
		return nil
	}
	src := t.decls[className]
	if len(src) == 0 {
		return nil
	}
	out := make([]Decl, len(src))
	copy(out, src)
	return out
}

// Classes returns the sorted class names with registered declarations.
// It is a diagnostics snapshot; mutating the result does not affect the table.
func (t *Table) Classes() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.decls))
	for name := range t.decls {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
