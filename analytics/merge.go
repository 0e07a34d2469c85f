package analytics

import "strconv"

// Merge unions resolved tables into one, aligning by the canonical columns.
// Rows keep their per-table order and tables keep their argument order.
// Quantity and date columns present in some inputs but not others are
// padded with 0 and "" respectively. The merged table is low-confidence
// only when every input was.
func Merge(tables ...NormalizedTable) NormalizedTable {
	if len(tables) == 1 {
		return tables[0]
	}

	rows := 0
	anyQuantity, anyDates, anyData := false, false, false
	for _, t := range tables {
		rows += t.NumRows()
		anyQuantity = anyQuantity || t.Quantity != nil
		anyDates = anyDates || t.Dates != nil
		anyData = anyData || t.Source != SourceNone
	}

	out := NormalizedTable{
		Product: make([]string, 0, rows),
		Amount:  make([]float64, 0, rows),
		Source:  SourceNone,
	}
	if anyData {
		out.Source = SourceMerged
	}
	if anyQuantity {
		out.Quantity = make([]float64, 0, rows)
	}
	if anyDates {
		out.Dates = make([]string, 0, rows)
	}

	for _, t := range tables {
		out.Product = append(out.Product, t.Product...)
		out.Amount = append(out.Amount, t.Amount...)
		if anyQuantity {
			if t.Quantity != nil {
				out.Quantity = append(out.Quantity, t.Quantity...)
			} else {
				out.Quantity = append(out.Quantity, make([]float64, t.NumRows())...)
			}
		}
		if anyDates {
			if t.Dates != nil {
				out.Dates = append(out.Dates, t.Dates...)
			} else {
				out.Dates = append(out.Dates, make([]string, t.NumRows())...)
			}
		}
	}

	out.Table = canonicalTable(out)
	return out
}

// canonicalTable rebuilds a plain Table view of the merged canonical
// columns so callers that want a table, not metrics, get one.
func canonicalTable(nt NormalizedTable) Table {
	cols := []string{string(RoleProduct), string(RoleAmount)}
	cells := map[string][]string{
		string(RoleProduct): append([]string(nil), nt.Product...),
		string(RoleAmount):  formatColumn(nt.Amount),
	}
	if nt.Quantity != nil {
		cols = append(cols, string(RoleQuantity))
		cells[string(RoleQuantity)] = formatColumn(nt.Quantity)
	}
	if nt.Dates != nil {
		cols = append(cols, string(RoleDate))
		cells[string(RoleDate)] = append([]string(nil), nt.Dates...)
	}
	return NewTable(cols, cells)
}

func formatColumn(vals []float64) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return out
}
