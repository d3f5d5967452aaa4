package models

// FilterRow is one user-entered filter condition: a column, an operator from
// that column's closed operator set, and a value whose shape depends on the
// operator (scalar, [from, to] pair, or list).
type FilterRow struct {
	Column   string `json:"column"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// FilterClause is the serialized form of one condition as sent upstream.
type FilterClause struct {
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// FilterQuery maps each filtered column to its serialized clauses. At most
// one active condition per column, so the slice normally holds one entry;
// the array shape is what the upstream data source expects.
type FilterQuery map[string][]FilterClause

// FieldValuesPage is one page of distinct values for a string column's
// filter value picker.
type FieldValuesPage struct {
	Values  []string `json:"values"`
	HasMore bool     `json:"has_more"`
}
