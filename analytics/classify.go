package analytics

import "strings"

// Role is a canonical semantic column category, independent of how the
// source file happens to name its columns.
type Role string

const (
	RoleProduct  Role = "product"
	RoleQuantity Role = "quantity"
	RoleRate     Role = "rate"
	RoleAmount   Role = "amount"
	RoleDate     Role = "date"
)

// classifyOrder fixes the scan order so a RoleMap is deterministic.
var classifyOrder = []Role{RoleProduct, RoleQuantity, RoleRate, RoleAmount, RoleDate}

// Keywords maps each role to the substrings that identify a source column
// for it. It is a parameter rather than a constant because real-world
// spreadsheets keep inventing new headings; callers can extend the defaults.
type Keywords map[Role][]string

// DefaultKeywords returns the built-in detection vocabulary.
func DefaultKeywords() Keywords {
	return Keywords{
		RoleProduct:  {"product", "item", "description", "particular", "material"},
		RoleQuantity: {"qty", "quantity", "units", "nos"},
		RoleRate:     {"rate", "price"},
		RoleAmount:   {"amount", "total", "value", "net", "bill amount", "invoice amount", "gross", "sales value"},
		RoleDate:     {"date", "time", "day"},
	}
}

// RoleMap records which source column, if any, fills each role. A missing
// key means the role went undetected.
type RoleMap map[Role]string

// ClassifyColumns scans the ordered column names once per role and maps the
// role to the first column whose lowercased name contains any of that
// role's keywords. Roles are matched independently: a single column may in
// principle satisfy two roles, and no global exclusivity is enforced.
func ClassifyColumns(columns []string, kw Keywords) RoleMap {
	if kw == nil {
		kw = DefaultKeywords()
	}
	roles := RoleMap{}
	for _, role := range classifyOrder {
		for _, col := range columns {
			if containsAny(strings.ToLower(col), kw[role]) {
				roles[role] = col
				break
			}
		}
	}
	return roles
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
