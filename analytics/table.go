// Package analytics normalizes heterogeneous tabular sales data into a
// canonical shape and derives dashboard metrics, templated insights and a
// next-period forecast from it. Every function in the package is pure: no
// I/O, no shared state, no errors for partial data. Unparseable values
// degrade to documented defaults instead of failing the computation.
package analytics

import "strings"

// Table is an ordered columnar view of one decoded sheet. Column names are
// lowercased on construction; cell values stay strings until a role-aware
// stage coerces them. Pipeline stages never mutate a Table, they return a
// new one.
type Table struct {
	Columns []string
	Cells   map[string][]string
}

// NewTable builds a Table from ordered column names and their cell slices.
// Names are trimmed and lowercased, ragged columns are padded with empty
// cells so every column has the same length.
func NewTable(columns []string, cells map[string][]string) Table {
	rows := 0
	for _, vals := range cells {
		if len(vals) > rows {
			rows = len(vals)
		}
	}
	t := Table{
		Columns: make([]string, 0, len(columns)),
		Cells:   make(map[string][]string, len(columns)),
	}
	for _, raw := range columns {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		if _, dup := t.Cells[name]; dup {
			continue
		}
		vals := cells[raw]
		col := make([]string, rows)
		copy(col, vals)
		t.Columns = append(t.Columns, name)
		t.Cells[name] = col
	}
	return t
}

func (t Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Cells[t.Columns[0]])
}

func (t Table) HasColumn(name string) bool {
	_, ok := t.Cells[name]
	return ok
}

// Column returns the cells of a column, or nil when it does not exist.
func (t Table) Column(name string) []string {
	return t.Cells[name]
}
