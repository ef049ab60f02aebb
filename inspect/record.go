// Package inspect builds inspection reports over managed components.
//
// A report is a point-in-time join between two collaborators: a management
// registry listing live component instances under canonical names, and an
// object graph listing the classes it can produce together with their managed
// members. Every (registered name, managed member) pairing becomes one
// immutable record; the collection is sorted, deduplicated, and rendered as
// an aligned four-column text table.
//
// Construction is a one-shot, synchronous snapshot read. The resulting Report
// is immutable and safe for concurrent readers; there is no refresh.
package inspect

import "strings"

// Kind classifies a managed member by its shape.
type Kind uint8

const (
	// Attribute is a readable property: zero parameters, returns a value.
	Attribute Kind = iota

	// Action is an invocable operation: takes parameters or is void-like.
	Action
)

// String returns the lower-cased kind name used in the report's TYPE column.
func (k Kind) String() string {
	switch k {
	case Attribute:
		return "attribute"
	case Action:
		return "action"
	}
	return "unknown"
}

// Record is one reportable pairing of a live instance with a managed member.
//
// EntityName is the canonical registered name of the instance; a class backing
// several registered instances yields one record per instance.
type Record struct {
	EntityName  string
	MemberName  string
	Description string
	Kind        Kind
}

// compareRecords is the total order on records.
//
// The sort key is (MemberName, EntityName) ascending. Description and Kind are
// tie-breakers only: they never reorder distinct (member, entity) pairs, but
// they keep iteration order total so rendering is byte-stable and full-tuple
// duplicates end up adjacent for deduplication.
func compareRecords(a, b Record) int {
	if c := strings.Compare(a.MemberName, b.MemberName); c != 0 {
		return c
	}
	if c := strings.Compare(a.EntityName, b.EntityName); c != 0 {
		return c
	}
	if c := strings.Compare(a.Description, b.Description); c != 0 {
		return c
	}
	return int(a.Kind) - int(b.Kind)
}
