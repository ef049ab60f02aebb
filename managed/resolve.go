package managed

import "reflect"

var errType = reflect.TypeOf((*error)(nil)).Elem()

// TypeName returns the canonical class name of a type: the fully qualified
// "pkgpath.Type" form with any pointer indirection stripped.
//
// Both sides of the inspection join (registry instances and graph classes)
// must use this name so that exact-match lookup works.
func TypeName(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// TypeNameOf returns the canonical class name of a value's type.
func TypeNameOf(v any) string {
	if v == nil {
		return ""
	}
	return TypeName(reflect.TypeOf(v))
}

// ShapeOf extracts the raw shape facts of a method obtained from a concrete
// type's method set: the parameter count excluding the receiver, and whether
// the method returns a value.
//
// A method is void-like when it has no results or when every result is error;
// void-like methods report ReturnsValue=false.
func ShapeOf(m reflect.Method) (numParams int, returnsValue bool) {
	t := m.Type

	// Methods looked up on concrete types carry the receiver as In(0).
	numParams = t.NumIn() - 1

	for i := 0; i < t.NumOut(); i++ {
		if t.Out(i) != errType {
			return numParams, true
		}
	}
	return numParams, false
}

// Resolve joins declarations against a type's method set, producing resolved
// members with their shape facts.
//
// Lookup uses the pointer method set so value-receiver and pointer-receiver
// methods are both visible. A declaration naming a method that does not exist
// (or is unexported, which reflect never surfaces) fails with MemberAccessError
// and aborts the whole resolution.
func Resolve(t reflect.Type, decls []Decl) ([]Member, error) {
	if t == nil {
		return nil, ErrNilComponent
	}

	lookup := t
	if lookup.Kind() != reflect.Pointer {
		lookup = reflect.PointerTo(lookup)
	}

	members := make([]Member, 0, len(decls))
	for _, d := range decls {
		if d.Name == "" {
			return nil, ErrEmptyDeclName
		}
		m, ok := lookup.MethodByName(d.Name)
		if !ok {
			return nil, MemberAccessError{Type: TypeName(t), Member: d.Name}
		}
		numParams, returnsValue := ShapeOf(m)
		members = append(members, Member{
			Name:         d.Name,
			Description:  d.Description,
			NumParams:    numParams,
			ReturnsValue: returnsValue,
		})
	}
	return members, nil
}
