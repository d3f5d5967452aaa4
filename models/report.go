package models

// Label is a row's risk bucket.
type Label string

const (
	LabelRed   Label = "red"   // slow-moving / at-risk
	LabelGreen Label = "green" // healthy velocity
	LabelGray  Label = "gray"  // out-of-stock / anomalous
)

// ClassificationResult is the per-row coloring decision. Never persisted;
// recomputed whenever thresholds or source fields change.
type ClassificationResult struct {
	Label                 Label `json:"label"`
	RequiredFieldsPresent bool  `json:"requiredFieldsPresent"`
}

// BucketTotals accumulates the sums for one risk bucket.
type BucketTotals struct {
	Count                int     `json:"count"`
	CurrentStock         float64 `json:"currentStock"`
	ProjectedQuantity    float64 `json:"projectedQuantity"`
	ExpectedWithinStock  float64 `json:"expectedWithinStock"`
	ItemsViewed          float64 `json:"itemsViewed"`
	ItemsAddedToCart     float64 `json:"itemsAddedToCart"`
	TotalStock           float64 `json:"totalStock"`
	AlltimeTotalQuantity float64 `json:"alltimeTotalQuantity"`
	Percent              string  `json:"percent"`
}

// AggregationSummary is the bucketed reduction over the visible row set.
// Only rows passing the aggregator's eligibility check are counted.
type AggregationSummary struct {
	Red          BucketTotals `json:"red"`
	Green        BucketTotals `json:"green"`
	EligibleRows int          `json:"eligibleRows"`
	TotalRows    int          `json:"totalRows"`
}

// ReportRow pairs a computed row with its rendering classification.
type ReportRow struct {
	Cells          Row                  `json:"cells"`
	Classification ClassificationResult `json:"classification"`
}

// InventoryReport is the full payload for the reporting table: inferred
// schema, computed+classified rows, and the bucketed summary.
type InventoryReport struct {
	Columns []ColumnDefinition `json:"columns"`
	Rows    []ReportRow        `json:"rows"`
	Summary AggregationSummary `json:"summary"`
}
