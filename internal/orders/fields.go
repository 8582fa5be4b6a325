// Package orders implements the order-sheet validation core: header
// normalization, per-row field checks, and CREATE/SKIP/ERROR classification.
package orders

import "strings"

// Field is a canonical column the validator operates on, independent of the
// sheet's actual header text.
type Field string

const (
	FieldStatus   Field = "status"
	FieldCustomer Field = "customer_name"
	FieldEmail    Field = "email"
	FieldTotal    Field = "total"

	// Optional columns, consulted for the mock payload only.
	FieldOrderID Field = "order_id"
	FieldProduct Field = "product"
)

// fieldAliases maps each canonical field to the header spellings it accepts.
// Comparison happens on a normalized search form, so variants like
// "Customer Name" or "Total ($)" resolve without dedicated entries.
var fieldAliases = map[Field][]string{
	FieldStatus:   {"status"},
	FieldCustomer: {"customer_name"},
	FieldEmail:    {"email", "correo", "mail"},
	FieldTotal:    {"total", "importe", "amount", "monto"},
	FieldOrderID:  {"order_id"},
	FieldProduct:  {"product"},
}

// Fields returns the validated fields in the order their failures are
// reported.
func Fields() []Field {
	return []Field{FieldStatus, FieldCustomer, FieldEmail, FieldTotal}
}

// AliasesFor returns the accepted header spellings for a canonical field.
func AliasesFor(f Field) []string {
	return fieldAliases[f]
}

// HeaderMap maps canonical fields to zero-based column indexes in the raw
// header row. Fields with no matching column are absent; absence is not an
// error here, it surfaces as missing-field errors during row validation.
type HeaderMap map[Field]int

// NewHeaderMap resolves the raw header row to canonical column positions.
// Per field, the first column (left to right) whose search form matches any
// alias exactly wins the slot; when no column matches exactly, a second
// left-to-right pass accepts prefix matches, so decorated headers like
// "Total ($)" still resolve.
func NewHeaderMap(header []string) HeaderMap {
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = searchForm(normKey(h))
	}

	hm := make(HeaderMap, len(fieldAliases))
	for field, aliases := range fieldAliases {
		if idx, ok := matchAliases(keys, aliases); ok {
			hm[field] = idx
		}
	}
	return hm
}

func matchAliases(keys []string, aliases []string) (int, bool) {
	wants := make([]string, len(aliases))
	for i, alias := range aliases {
		wants[i] = searchForm(normKey(alias))
	}

	for i, k := range keys {
		for _, want := range wants {
			if k == want {
				return i, true
			}
		}
	}
	for i, k := range keys {
		if k == "" {
			continue
		}
		for _, want := range wants {
			if strings.HasPrefix(k, want) {
				return i, true
			}
		}
	}
	return 0, false
}

// normKey reduces a header cell to a snake-ish key: trimmed, lowercased,
// spaces and hyphens as underscores, doubled underscores collapsed.
func normKey(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return strings.ToLower(s)
}

// searchForm strips everything outside [a-z0-9_] for tolerant matching.
func searchForm(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// getField returns the trimmed cell for a canonical field, or "" when the
// field has no mapped column, the column falls past the end of this row, or
// the cell trims to empty.
func getField(hm HeaderMap, row []string, f Field) string {
	idx, ok := hm[f]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
