package analytics

import (
	"math"

	"reporting/models"
	"reporting/utils"
)

// classifierFields must all be present (non-null) before a row is eligible
// for color classification. Note this is a looser check than the
// aggregator's; the two sets intentionally differ.
var classifierFields = []string{
	models.FieldCurrentStock,
	models.FieldAlltimePerdayQuantity,
	models.FieldAlltimeTotalQuantity,
	models.FieldDaysSoldOutPast,
}

// HasClassifierFields reports whether the row carries every field the
// classifier needs. Rows failing this render neutral and are excluded from
// aggregation.
func HasClassifierFields(row models.Row) bool {
	for _, f := range classifierFields {
		if !row.Has(f) {
			return false
		}
	}
	return true
}

// Classify labels a row red, green, or gray. Rule order is load-bearing:
// the gray (out-of-stock/anomalous) test runs before any threshold
// comparison and wins even when the sellout metric computes fine.
func Classify(row models.Row, selloutThreshold float64) models.ClassificationResult {
	if !HasClassifierFields(row) {
		// Ineligible rows keep the neutral zero label and render default.
		return models.ClassificationResult{RequiredFieldsPresent: false}
	}

	stock := utils.Num(get(row, models.FieldCurrentStock))
	totalQty := utils.Num(get(row, models.FieldAlltimeTotalQuantity))

	if (row.Has(models.FieldDaysSoldOutPast) && stock < 0) || (stock <= 0 && totalQty > 0) {
		return models.ClassificationResult{Label: models.LabelGray, RequiredFieldsPresent: true}
	}

	days := DaysToSellout(row)
	if math.IsNaN(days) || math.IsInf(days, 0) {
		// Optimistic when the metric cannot be computed.
		return models.ClassificationResult{Label: models.LabelGreen, RequiredFieldsPresent: true}
	}
	if days > selloutThreshold {
		return models.ClassificationResult{Label: models.LabelRed, RequiredFieldsPresent: true}
	}
	return models.ClassificationResult{Label: models.LabelGreen, RequiredFieldsPresent: true}
}
