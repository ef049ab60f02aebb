package inspect

import (
	"errors"
	"io"
	"slices"

	"github.com/kvisser/beanscope/columnfmt"
	"github.com/kvisser/beanscope/managed"
)

// Report column names, in output order.
const (
	colName        = "NAME"
	colMember      = "METHOD/ATTRIBUTE"
	colType        = "TYPE"
	colDescription = "DESCRIPTION"
)

var (
	// ErrNilRegistry is returned when Build is given a nil registry reader.
	ErrNilRegistry = errors.New("inspect: nil registry reader")

	// ErrNilGraph is returned when Build is given a nil graph reader.
	ErrNilGraph = errors.New("inspect: nil graph reader")
)

// Instance is one live component instance as reported by the management
// registry: the canonical class name it is backed by and the name it was
// registered under.
type Instance struct {
	ClassName string
	Name      string
}

// RegistryReader is the management-registry collaborator: it returns all
// currently registered instances, unfiltered. A failure here is fatal to
// report construction.
type RegistryReader interface {
	QueryAll() ([]Instance, error)
}

// Class is one candidate class produced by the object graph: its canonical
// name plus its resolved managed members. A class with no managed members is
// a valid candidate that simply yields no records.
type Class struct {
	Name    string
	Members []managed.Member
}

// GraphReader is the object-graph collaborator: it returns the distinct
// classes reachable from the graph's bindings.
type GraphReader interface {
	Classes() ([]Class, error)
}

// RegistryQueryError wraps a registry failure during construction.
type RegistryQueryError struct {
	Err error
}

// Error implements the error interface.
func (e RegistryQueryError) Error() string {
	return "inspect: registry query failed: " + e.Err.Error()
}

// Unwrap exposes the underlying registry failure.
func (e RegistryQueryError) Unwrap() error { return e.Err }

// Report is the immutable, ordered result of an inspection build.
//
// Records are sorted ascending by (MemberName, EntityName). Deduplication
// uses full-tuple equality: records identical in all four fields collapse to
// one, while records sharing a sort key but differing in description or kind
// are both kept.
type Report struct {
	records []Record
}

// Build constructs a report from a snapshot of the registry and the graph.
//
// Classes without live instances are skipped. Registry failures are wrapped
// in RegistryQueryError; graph failures (including member-access failures)
// propagate as-is. In both cases no partial report is produced.
func Build(reg RegistryReader, graph GraphReader) (*Report, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if graph == nil {
		return nil, ErrNilGraph
	}

	instances, err := reg.QueryAll()
	if err != nil {
		return nil, RegistryQueryError{Err: err}
	}
	names := make(map[string][]string, len(instances))
	for _, in := range instances {
		names[in.ClassName] = append(names[in.ClassName], in.Name)
	}

	classes, err := graph.Classes()
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, c := range classes {
		bound := names[c.Name]
		if len(bound) == 0 {
			continue
		}
		for _, m := range c.Members {
			kind := classify(m)
			for _, entityName := range bound {
				records = append(records, Record{
					EntityName:  entityName,
					MemberName:  m.Name,
					Description: m.Description,
					Kind:        kind,
				})
			}
		}
	}

	slices.SortFunc(records, compareRecords)
	records = slices.Compact(records)

	return &Report{records: records}, nil
}

// classify maps a member's shape to its kind: void-like or parameterized
// members are actions, zero-parameter value-returning members are attributes.
func classify(m managed.Member) Kind {
	if !m.ReturnsValue {
		return Action
	}
	if m.NumParams > 0 {
		return Action
	}
	return Attribute
}

// Len returns the number of records in the report.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.records)
}

// Records returns the records in iteration order. The slice is a copy;
// mutating it does not affect the report.
func (r *Report) Records() []Record {
	if r == nil || len(r.records) == 0 {
		return nil
	}
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Print renders the report as an aligned four-column table and flushes it to
// w. Rendering reads only immutable state, so repeated calls produce
// byte-identical output.
func (r *Report) Print(w io.Writer) error {
	p := columnfmt.New(colName, colMember, colType, colDescription)
	for _, rec := range r.records {
		if err := p.AddRow(rec.EntityName, rec.MemberName, rec.Kind.String(), rec.Description); err != nil {
			return err
		}
	}
	return p.Print(w)
}
