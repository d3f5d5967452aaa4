package analytics

import (
	"math"

	"reporting/models"
	"reporting/utils"
)

// aggregatorFields must all be present and numeric-coercible for a row to
// count toward the summary. Stricter than the classifier's 4-field check;
// the divergence is intentional (cell coloring vs bucketed totals).
var aggregatorFields = []string{
	models.FieldDaysSinceLaunch,
	models.FieldProjectedDaysSellout,
	models.FieldAlltimePerdayQuantity,
	models.FieldCurrentStock,
	models.FieldAlltimeItemsViewed,
	models.FieldAlltimeItemsATC,
	models.FieldAlltimeTotalQuantity,
}

func hasAggregatorFields(row models.Row) bool {
	for _, f := range aggregatorFields {
		v, ok := row.Get(f)
		if !ok || v == nil {
			return false
		}
		if _, ok := utils.Coerce(v); !ok {
			return false
		}
	}
	return true
}

// Aggregate reduces a visible row set into bucketed totals. Ineligible rows
// are silently skipped. The bucket split is a strict two-way red/green test
// on the sellout metric — deliberately NOT the per-cell Classify, which has
// a gray branch; unifying the two would change displayed totals.
func Aggregate(rows []models.Row, selloutThreshold, projectedQtyThreshold float64) models.AggregationSummary {
	summary := models.AggregationSummary{TotalRows: len(rows)}

	for _, row := range rows {
		if !hasAggregatorFields(row) {
			continue
		}
		summary.EligibleRows++

		perDay := utils.Num(get(row, models.FieldAlltimePerdayQuantity))
		stock := utils.Num(get(row, models.FieldCurrentStock))
		projected := perDay * projectedQtyThreshold

		bucket := &summary.Green
		if DaysToSellout(row) > selloutThreshold {
			bucket = &summary.Red
		}
		bucket.Count++
		bucket.CurrentStock += stock
		bucket.ProjectedQuantity += projected
		bucket.ExpectedWithinStock += math.Min(projected, stock)
		bucket.ItemsViewed += utils.Num(get(row, models.FieldAlltimeItemsViewed))
		bucket.ItemsAddedToCart += utils.Num(get(row, models.FieldAlltimeItemsATC))
		bucket.TotalStock += utils.Num(get(row, models.FieldTotalStock))
		bucket.AlltimeTotalQuantity += utils.Num(get(row, models.FieldAlltimeTotalQuantity))
	}

	denom := float64(summary.Red.Count + summary.Green.Count)
	if denom == 0 {
		summary.Red.Percent = "0.00"
		summary.Green.Percent = "0.00"
	} else {
		summary.Red.Percent = utils.FormatPercent(float64(summary.Red.Count) / denom * 100)
		summary.Green.Percent = utils.FormatPercent(float64(summary.Green.Count) / denom * 100)
	}
	return summary
}
