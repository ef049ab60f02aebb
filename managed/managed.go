// Package managed defines how components declare the members they expose for
// external inspection.
//
// A "managed member" is an exported method a component wants visible in an
// inspection report, together with a human-readable description. Components
// declare managed members in one of two ways:
//
//   - By implementing the Describer capability interface and returning their
//     declarations from DescribeManaged.
//   - By having their declarations registered in an explicit Table, which
//     keeps component types free of any dependency on this package.
//
// Declarations only carry names and descriptions. The shape of a member (its
// parameter count and whether it returns a value) is read from the component
// type's method set via Resolve; classification of members into attributes
// and actions happens downstream in the inspect package.
package managed

import (
	"errors"
	"strconv"
)

var (
	// ErrNilComponent is returned when a declaration source is asked about a
	// nil component or a nil type.
	ErrNilComponent = errors.New("managed: nil component")

	// ErrEmptyDeclName is returned when a declaration carries an empty member name.
	ErrEmptyDeclName = errors.New("managed: empty managed member name")
)

// Decl declares a single managed member: the exported method name plus the
// description shown in reports.
type Decl struct {
	Name        string
	Description string
}

// Describer is the capability interface components implement to declare their
// managed members themselves.
//
// It is intentionally tiny and import-free on the component side: a component
// returns declarations, nothing else. Shape extraction and classification stay
// out of component code.
type Describer interface {
	DescribeManaged() []Decl
}

// Member is a resolved managed member: the declaration joined with the raw
// shape facts read from the component's method set.
//
// NumParams counts the method's parameters excluding the receiver.
// ReturnsValue is false when the method is void-like (no results, or results
// consisting solely of error).
type Member struct {
	Name         string
	Description  string
	NumParams    int
	ReturnsValue bool
}

// DuplicateDeclError is returned when a member is declared twice for the same type.
type DuplicateDeclError struct {
	Type   string
	Member string
}

// Error implements the error interface.
func (e DuplicateDeclError) Error() string {
	// Example: managed: duplicate managed member "Count" on "pkg.Counter"
	return "managed: duplicate managed member " + strconv.Quote(e.Member) +
		" on " + strconv.Quote(e.Type)
}

// MemberAccessError is returned when a declared member cannot be found as an
// exported method on the declaring type. It aborts report construction; there
// is no skip-and-continue for broken declarations.
type MemberAccessError struct {
	Type   string
	Member string
}

// Error implements the error interface.
func (e MemberAccessError) Error() string {
	// Example: managed: member "count" is not an exported method of "pkg.Counter"
	return "managed: member " + strconv.Quote(e.Member) +
		" is not an exported method of " + strconv.Quote(e.Type)
}
