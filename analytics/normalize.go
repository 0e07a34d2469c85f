package analytics

import "strings"

// DefaultGlyph is the currency symbol stripped when no other glyph is
// configured, and the one used when formatting insight sentences.
const DefaultGlyph = "₹"

// Normalizer strips currency and formatting noise from cell values. It is a
// lexical pass with no knowledge of column semantics; role-aware numeric
// coercion runs after it.
type Normalizer struct {
	Glyph string
}

func NewNormalizer(glyph string) Normalizer {
	if glyph == "" {
		glyph = DefaultGlyph
	}
	return Normalizer{Glyph: glyph}
}

// CleanValue removes thousands-separator commas, the configured currency
// glyph and the "/-" marker, then trims whitespace. Cleaning an already
// clean value is a no-op.
func (n Normalizer) CleanValue(s string) string {
	v := strings.ReplaceAll(s, ",", "")
	v = strings.ReplaceAll(v, n.Glyph, "")
	v = strings.ReplaceAll(v, "/-", "")
	return strings.TrimSpace(v)
}

// Clean returns a copy of the table with every cell run through CleanValue.
// The input table is left untouched.
func (n Normalizer) Clean(t Table) Table {
	out := Table{
		Columns: append([]string(nil), t.Columns...),
		Cells:   make(map[string][]string, len(t.Columns)),
	}
	for _, col := range t.Columns {
		src := t.Cells[col]
		dst := make([]string, len(src))
		for i, v := range src {
			dst[i] = n.CleanValue(v)
		}
		out.Cells[col] = dst
	}
	return out
}
