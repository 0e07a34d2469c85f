package analytics

import (
	"strconv"
	"strings"
)

// UnknownProduct labels rows of tables that carry no product-like column.
const UnknownProduct = "Unknown Item"

// AmountSource names the strategy that produced the canonical amount
// column. SourceNone marks a table where no strategy found numeric data;
// downstream consumers treat it as a low-confidence analysis.
type AmountSource string

const (
	SourceAmountColumn  AmountSource = "amount_column"
	SourceQuantityRate  AmountSource = "quantity_rate"
	SourceLargestColumn AmountSource = "largest_column"
	SourceMerged        AmountSource = "merged"
	SourceNone          AmountSource = "none"
)

// NormalizedTable is the canonical transaction shape: a non-null product
// label and numeric amount per row, plus quantity and raw date cells when
// those roles were detected (nil otherwise). Instances are created fresh by
// Resolve or Merge and never mutated afterwards.
type NormalizedTable struct {
	Table    Table
	Roles    RoleMap
	Product  []string
	Amount   []float64
	Quantity []float64
	Dates    []string
	Source   AmountSource
}

func (nt NormalizedTable) NumRows() int { return len(nt.Amount) }

// LowConfidence reports whether every amount-resolution strategy came up
// empty and the amounts are all-zero placeholders.
func (nt NormalizedTable) LowConfidence() bool { return nt.Source == SourceNone }

// amountStrategy is one rung of the resolution fallback chain. resolve
// returns false when the strategy is not viable for this table.
type amountStrategy struct {
	source  AmountSource
	resolve func(t Table, roles RoleMap) ([]float64, bool)
}

var amountStrategies = []amountStrategy{
	{SourceAmountColumn, amountFromRoleColumn},
	{SourceQuantityRate, amountFromQuantityRate},
	{SourceLargestColumn, amountFromLargestColumn},
}

// Resolve produces the canonical table for one input: amount via the
// prioritized strategy chain, product via the detected column or the
// UnknownProduct sentinel. It never fails; a table with no numeric data at
// all resolves to all-zero amounts with SourceNone.
func Resolve(t Table, roles RoleMap) NormalizedTable {
	rows := t.NumRows()
	nt := NormalizedTable{Table: t, Roles: roles, Source: SourceNone}

	for _, s := range amountStrategies {
		if amounts, ok := s.resolve(t, roles); ok {
			nt.Amount = amounts
			nt.Source = s.source
			break
		}
	}
	if nt.Amount == nil {
		nt.Amount = make([]float64, rows)
	}

	if col, ok := roles[RoleProduct]; ok {
		nt.Product = make([]string, rows)
		copy(nt.Product, t.Column(col))
	} else {
		nt.Product = make([]string, rows)
		for i := range nt.Product {
			nt.Product[i] = UnknownProduct
		}
	}

	if col, ok := roles[RoleQuantity]; ok {
		nt.Quantity = coerceColumn(t.Column(col))
	}
	if col, ok := roles[RoleDate]; ok {
		nt.Dates = append([]string(nil), t.Column(col)...)
	}
	return nt
}

func amountFromRoleColumn(t Table, roles RoleMap) ([]float64, bool) {
	col, ok := roles[RoleAmount]
	if !ok {
		return nil, false
	}
	return coerceColumn(t.Column(col)), true
}

func amountFromQuantityRate(t Table, roles RoleMap) ([]float64, bool) {
	qcol, qok := roles[RoleQuantity]
	rcol, rok := roles[RoleRate]
	if !qok || !rok {
		return nil, false
	}
	qty := coerceColumn(t.Column(qcol))
	rate := coerceColumn(t.Column(rcol))
	amounts := make([]float64, len(qty))
	for i := range amounts {
		amounts[i] = qty[i] * rate[i]
	}
	return amounts, true
}

// amountFromLargestColumn coerces every column not claimed as product or
// date and picks the one with the largest sum. Columns without a single
// parseable cell do not count as numeric; ties keep the earlier column.
func amountFromLargestColumn(t Table, roles RoleMap) ([]float64, bool) {
	var best []float64
	bestSum := 0.0
	found := false
	for _, col := range t.Columns {
		if col == roles[RoleProduct] || col == roles[RoleDate] {
			continue
		}
		vals, numeric := coerceColumnChecked(t.Column(col))
		if !numeric {
			continue
		}
		sum := 0.0
		for _, v := range vals {
			sum += v
		}
		if !found || sum > bestSum {
			best, bestSum, found = vals, sum, true
		}
	}
	return best, found
}

// coerceColumn parses each cell as a float, substituting 0 for anything
// unparseable. It never signals failure; 0 is the documented fallback.
func coerceColumn(cells []string) []float64 {
	out := make([]float64, len(cells))
	for i, v := range cells {
		out[i], _ = toNumber(v)
	}
	return out
}

// coerceColumnChecked additionally reports whether at least one cell parsed.
func coerceColumnChecked(cells []string) ([]float64, bool) {
	out := make([]float64, len(cells))
	any := false
	for i, v := range cells {
		f, ok := toNumber(v)
		out[i] = f
		any = any || ok
	}
	return out, any
}

func toNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
