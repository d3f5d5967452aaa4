package models

// SemanticType classifies what a column's values mean, independent of how
// the raw JSON happened to encode them. Inferred once per dataset from the
// first row and never mutated afterwards.
type SemanticType string

const (
	TypeNumber        SemanticType = "number"
	TypeDate          SemanticType = "date"
	TypeBoolean       SemanticType = "boolean"
	TypeSizeBreakdown SemanticType = "size-breakdown"
	TypeText          SemanticType = "text"
)

// NumberFormat selects the display treatment for numeric columns.
type NumberFormat string

const (
	FormatPlain   NumberFormat = "plain"
	FormatPercent NumberFormat = "percent"
	FormatPrice   NumberFormat = "price"
	FormatGrouped NumberFormat = "grouped"
)

// ColumnDefinition describes one column of a dataset snapshot.
type ColumnDefinition struct {
	Field        string       `json:"field"`
	DisplayName  string       `json:"displayName"`
	SemanticType SemanticType `json:"semanticType"`
	NumberFormat NumberFormat `json:"numberFormat,omitempty"`
	Sortable     bool         `json:"sortable"`
	Filterable   bool         `json:"filterable"`
	// Activatable columns (exact "date" and breakdown columns) expose a
	// drill-through hook to the host; see Activation.
	Activatable bool `json:"activatable"`
	// HighlightOnNegativeStock marks the column for emphasis whenever the
	// row's Current_Stock is negative, independent of the cell value.
	HighlightOnNegativeStock bool `json:"highlightOnNegativeStock,omitempty"`
	// Derived columns are synthesized by the metric calculator rather than
	// present in the raw batch.
	Derived bool `json:"derived,omitempty"`
}

// Activation is the payload handed to the host when an activatable column's
// cell is clicked: which column fired and the cell value to pivot on.
type Activation struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}
