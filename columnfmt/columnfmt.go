// Package columnfmt prints rows of values under named columns, padded so the
// columns line up.
package columnfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// RowArityError is returned when a row has a different number of values than
// the printer has columns.
type RowArityError struct {
	Columns int
	Values  int
}

// Error implements the error interface.
func (e RowArityError) Error() string {
	// Example: columnfmt: row has 3 values, want 4
	return "columnfmt: row has " + strconv.Itoa(e.Values) +
		" values, want " + strconv.Itoa(e.Columns)
}

// Printer accumulates rows and renders them as an aligned table with a header
// row. The zero column set is valid and prints nothing.
type Printer struct {
	columns []string
	rows    [][]string
}

// New creates a printer with the given columns, in output order.
func New(columns ...string) *Printer {
	return &Printer{columns: columns}
}

// AddRow appends one row of values, one per column, in column order.
func (p *Printer) AddRow(values ...string) error {
	if len(values) != len(p.columns) {
		return RowArityError{Columns: len(p.columns), Values: len(values)}
	}
	row := make([]string, len(values))
	copy(row, values)
	p.rows = append(p.rows, row)
	return nil
}

// Print writes the header and all rows to w, padded with spaces so columns
// align, and flushes before returning. Print does not mutate the printer, so
// it can be called repeatedly with identical output.
func (p *Printer) Print(w io.Writer) error {
	if len(p.columns) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(p.columns, "\t")); err != nil {
		return err
	}
	for _, row := range p.rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}
