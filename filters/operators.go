package filters

import "strings"

// Operator identifiers as the upstream query language spells them.
const (
	OpEqual              = "equal"
	OpNotEqual           = "not_equal"
	OpLessThan           = "less_than"
	OpLessThanOrEqual    = "less_than_or_equal"
	OpGreaterThan        = "greater_than"
	OpGreaterThanOrEqual = "greater_than_or_equal"
	OpBetween            = "between"
	OpIn                 = "in"
	OpNotIn              = "not_in"
)

// columnClass is the filtering type class of a column, distinct from its
// display semantic type.
type columnClass int

const (
	classString columnClass = iota
	classNumericDate
	classBoolean
)

// numericDateColumns is the fixed allow-list of columns that filter as
// numbers/dates regardless of name heuristics. Matched case-insensitively.
var numericDateColumns = map[string]bool{
	"sale_price":    true,
	"sale_discount": true,
	"current_stock": true,
	"__launch_date": true,
	"__offer_date":  true,
	"__relist_date": true,
	"item_id":       true,
}

func classifyColumn(column string) columnClass {
	lower := strings.ToLower(column)
	switch {
	case lower == "is_public":
		return classBoolean
	case numericDateColumns[lower] || strings.Contains(lower, "date"):
		return classNumericDate
	default:
		return classString
	}
}

// IsNumericDateColumn reports whether a column filters as a number/date
// (allow-list membership or a "date" name). Callers that translate clauses
// to SQL use this to decide on a numeric cast.
func IsNumericDateColumn(column string) bool {
	return classifyColumn(column) == classNumericDate
}

func isItemID(column string) bool {
	return strings.EqualFold(column, "item_id")
}

func isDateColumn(column string) bool {
	return strings.Contains(strings.ToLower(column), "date")
}

// OperatorsFor returns the closed operator set a column accepts, in the
// order the host should present them. item_id overrides the generic numeric
// set: set membership replaces plain equality there.
func OperatorsFor(column string) []string {
	if isItemID(column) {
		return []string{OpIn, OpNotIn, OpLessThanOrEqual, OpGreaterThanOrEqual, OpBetween, OpGreaterThan, OpLessThan}
	}
	switch classifyColumn(column) {
	case classNumericDate:
		return []string{OpLessThanOrEqual, OpGreaterThanOrEqual, OpBetween, OpEqual, OpNotEqual, OpGreaterThan, OpLessThan}
	case classBoolean:
		return []string{OpEqual, OpNotEqual}
	default:
		return []string{OpIn, OpNotIn, OpEqual, OpNotEqual}
	}
}

func operatorAllowed(column, operator string) bool {
	for _, op := range OperatorsFor(column) {
		if op == operator {
			return true
		}
	}
	return false
}
