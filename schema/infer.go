package schema

import (
	"strings"

	"reporting/models"
)

// breakdownFields are the nested-object columns that expand into per-key
// rows (stock/sales split by size or age band). Matched case-insensitively.
var breakdownFields = map[string]bool{
	"stock_by_size": true,
	"sales_by_size": true,
	"sales_by_age":  true,
	"stock_by_age":  true,
}

// numberKeywords mark a column numeric by name even when the sample value
// is not a number (e.g. a null in the first row).
var numberKeywords = []string{
	"total", "quantity", "qty", "stock", "count", "days", "id",
	"price", "rate", "percent", "percentage", "deviation", "amount",
	"score", "value", "number",
}

// BuildColumnDefinitions infers one ColumnDefinition per field of the sample
// row, in field order. Rules are evaluated first-match-wins; the semantic
// types are fixed for the lifetime of the dataset snapshot.
func BuildColumnDefinitions(sample models.Row) []models.ColumnDefinition {
	cols := make([]models.ColumnDefinition, 0, sample.Len()+4)
	for _, field := range sample.Fields() {
		value, _ := sample.Get(field)
		cols = append(cols, inferColumn(field, value))
	}

	// Synthetic sellout metrics only make sense when both of their source
	// fields exist in the dataset.
	if sample.Has(models.FieldDaysSinceLaunch) && sample.Has(models.FieldProjectedDaysSellout) {
		cols = append(cols,
			derivedColumn(models.FieldDaysToSellout, models.TypeNumber),
			derivedColumn(models.FieldDaysSinceLastSale, models.TypeNumber),
		)
		if sample.Has(models.FieldAlltimePerdayQuantity) {
			cols = append(cols,
				derivedColumn(models.FieldProjectedQuantitySold, models.TypeNumber),
				derivedColumn(models.FieldExpectedSalesWithinStock, models.TypeNumber),
			)
		}
	}
	return cols
}

func inferColumn(field string, value any) models.ColumnDefinition {
	lower := strings.ToLower(field)
	col := models.ColumnDefinition{
		Field:       field,
		DisplayName: displayName(field),
	}

	switch {
	// launch_date is deliberately not treated as a date: the feed sends it
	// as an opaque label and it must pass through unparsed.
	case field == models.FieldLaunchDate:
		col.SemanticType = models.TypeText
		col.Sortable = true
		col.Filterable = true

	case isBreakdown(lower, value):
		col.SemanticType = models.TypeSizeBreakdown
		col.Activatable = true

	case field == models.FieldDaysSoldOutPast:
		col.SemanticType = models.TypeNumber
		col.NumberFormat = models.FormatPlain
		col.Sortable = true
		col.Filterable = true
		col.HighlightOnNegativeStock = true

	case lower == "date":
		col.SemanticType = models.TypeDate
		col.Sortable = true
		col.Filterable = true
		col.Activatable = true

	case strings.Contains(lower, "date") && isString(value):
		col.SemanticType = models.TypeDate
		col.Sortable = true
		col.Filterable = true

	case isNumeric(value) || containsAny(lower, numberKeywords):
		col.SemanticType = models.TypeNumber
		col.NumberFormat = numberFormat(lower)
		col.Sortable = true
		col.Filterable = true

	case isBool(value) || strings.HasPrefix(lower, "is"):
		col.SemanticType = models.TypeBoolean
		col.Sortable = true
		col.Filterable = true

	default:
		col.SemanticType = models.TypeText
		col.Sortable = true
		col.Filterable = true
	}
	return col
}

// numberFormat sub-classifies numeric columns by name, for display only.
func numberFormat(lower string) models.NumberFormat {
	switch {
	case strings.Contains(lower, "percent"):
		return models.FormatPercent
	case strings.Contains(lower, "price"):
		return models.FormatPrice
	case strings.Contains(lower, "total") || strings.Contains(lower, "amount"):
		return models.FormatGrouped
	default:
		return models.FormatPlain
	}
}

func derivedColumn(field string, t models.SemanticType) models.ColumnDefinition {
	return models.ColumnDefinition{
		Field:        field,
		DisplayName:  displayName(field),
		SemanticType: t,
		NumberFormat: models.FormatPlain,
		Sortable:     true,
		Filterable:   true,
		Derived:      true,
	}
}

// Activate implements the drill-through contract for activatable columns:
// the host receives the column that fired and the cell value to pivot on.
func Activate(col models.ColumnDefinition, value any, _ models.Row) models.Activation {
	return models.Activation{Type: col.Field, Value: value}
}

func isBreakdown(lower string, value any) bool {
	if !breakdownFields[lower] {
		return false
	}
	_, ok := value.(map[string]any)
	return ok
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

func isNumeric(v any) bool {
	switch v.(type) {
	case float64, float32, int, int64:
		return true
	default:
		return false
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// displayName turns Foo_bar_baz / foo_bar into "Foo Bar Baz".
func displayName(field string) string {
	parts := strings.FieldsFunc(field, func(r rune) bool { return r == '_' })
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
