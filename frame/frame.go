package frame

import (
	"github.com/hostbridge/host-bridge/errors"
	"github.com/hostbridge/host-bridge/hostval"
)

// ClassDataframe is the class mark the host attaches to tabular lists.
const ClassDataframe = "data.frame"

// Dataframe is a tabular view over a named list of equal-length columns.
type Dataframe struct {
	val   *hostval.Value
	cols  []*hostval.Value
	names []string
}

// FromValue wraps an existing list value carrying the data-frame class
// mark. Only the class is validated; column shapes are whatever the host
// built.
func FromValue(v *hostval.Value) (*Dataframe, error) {
	cols, ok := v.AsList()
	if !ok || !v.HasClass(ClassDataframe) {
		return nil, &errors.Error{Phase: errors.PhaseFrame, Kind: errors.KindExpectedDataframe, Value: v}
	}
	return &Dataframe{val: v, cols: cols, names: columnNames(v, len(cols))}, nil
}

// FromColumns builds a data frame from named columns. Every column must
// have the same length and every column must be named.
func FromColumns(names []string, cols []*hostval.Value) (*Dataframe, error) {
	if len(names) != len(cols) {
		return nil, errors.New(errors.PhaseFrame, errors.KindExpectedDataframe).
			Detail("%d names for %d columns", len(names), len(cols)).Build()
	}
	nrows := 0
	for i, c := range cols {
		if i == 0 {
			nrows = c.Len()
			continue
		}
		if c.Len() != nrows {
			return nil, errors.New(errors.PhaseFrame, errors.KindExpectedDataframe).
				Value(c).
				Detail("column %q has length %d, want %d", names[i], c.Len(), nrows).Build()
		}
	}

	v := hostval.NewList(cols, hostval.Strs(names...))
	rowNames := make([]hostval.Rint, nrows)
	for i := range rowNames {
		rowNames[i] = hostval.Rint(i + 1)
	}
	v.SetAttr(hostval.AttrRowNames, hostval.NewIntegers(rowNames))
	v.SetClass(ClassDataframe)

	return &Dataframe{val: v, cols: cols, names: append([]string(nil), names...)}, nil
}

// Value returns the underlying list value.
func (d *Dataframe) Value() *hostval.Value { return d.val }

// Ncols returns the number of columns.
func (d *Dataframe) Ncols() int { return len(d.cols) }

// Nrows returns the number of rows, zero for a frame with no columns.
func (d *Dataframe) Nrows() int {
	if len(d.cols) == 0 {
		return 0
	}
	return d.cols[0].Len()
}

// Names returns the column names in declaration order.
func (d *Dataframe) Names() []string {
	return append([]string(nil), d.names...)
}

// Column returns the column with the given name.
func (d *Dataframe) Column(name string) (*hostval.Value, bool) {
	for i, n := range d.names {
		if n == name {
			return d.cols[i], true
		}
	}
	return nil, false
}

// ColumnAt returns the column at position i. Out-of-range indices panic.
func (d *Dataframe) ColumnAt(i int) *hostval.Value {
	return d.cols[i]
}

func columnNames(v *hostval.Value, n int) []string {
	out := make([]string, n)
	names, ok := v.Names()
	if !ok {
		return out
	}
	for i := 0; i < n && i < len(names); i++ {
		if !names[i].IsNA() {
			out[i] = names[i].String()
		}
	}
	return out
}
