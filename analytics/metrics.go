package analytics

import (
	"math"
	"time"

	"reporting/models"
	"reporting/utils"
)

// DaysToSellout estimates how many days until the item sells out. Base
// estimate is days on sale plus the projected remaining days. When the item
// is already out of stock and has a recorded past sellout duration, that
// historical figure wins.
func DaysToSellout(row models.Row) float64 {
	launch := utils.Num(get(row, models.FieldDaysSinceLaunch))
	projected := utils.Num(get(row, models.FieldProjectedDaysSellout))
	stock := utils.Num(get(row, models.FieldCurrentStock))
	pastSoldOut := utils.Num(get(row, models.FieldDaysSoldOutPast))

	if stock <= 0 && pastSoldOut > 0 {
		return utils.Round2(pastSoldOut)
	}
	return utils.Round2(launch + projected)
}

// DaysSinceLastSale returns the whole calendar days between now and the
// row's Last_Sold_Date, or nil when the date is missing or unparsable.
func DaysSinceLastSale(row models.Row, now time.Time) *int {
	raw, _ := row.Get(models.FieldLastSoldDate)
	sold, ok := utils.ParseDate(raw)
	if !ok {
		return nil
	}
	days := int(utils.Midnight(now).Sub(utils.Midnight(sold)).Hours() / 24)
	return &days
}

// ProjectedQuantitySold projects unit sales over the threshold window from
// the item's all-time per-day velocity.
func ProjectedQuantitySold(row models.Row, projectedQtyThreshold float64) float64 {
	perDay := utils.Num(get(row, models.FieldAlltimePerdayQuantity))
	return utils.Round2(perDay * projectedQtyThreshold)
}

// ExpectedSalesWithinStock caps the projection at what is actually on hand.
func ExpectedSalesWithinStock(row models.Row, projectedQtyThreshold float64) float64 {
	perDay := utils.Num(get(row, models.FieldAlltimePerdayQuantity))
	stock := utils.Num(get(row, models.FieldCurrentStock))
	return utils.Round2(math.Min(perDay*projectedQtyThreshold, stock))
}

// ComputeRow returns a copy of the row augmented with the derived metric
// fields, gated the same way the schema inferencer gates the synthetic
// columns. All other fields pass through unchanged. The sellout threshold is
// accepted for contract symmetry with Classify; no derived metric needs it.
func ComputeRow(row models.Row, selloutThreshold, projectedQtyThreshold float64) models.Row {
	out := row.Clone()
	if !row.Has(models.FieldDaysSinceLaunch) || !row.Has(models.FieldProjectedDaysSellout) {
		return out
	}

	out.Set(models.FieldDaysToSellout, DaysToSellout(row))
	if days := DaysSinceLastSale(row, time.Now()); days != nil {
		out.Set(models.FieldDaysSinceLastSale, *days)
	} else {
		out.Set(models.FieldDaysSinceLastSale, "-")
	}

	if row.Has(models.FieldAlltimePerdayQuantity) {
		out.Set(models.FieldProjectedQuantitySold, ProjectedQuantitySold(row, projectedQtyThreshold))
		out.Set(models.FieldExpectedSalesWithinStock, ExpectedSalesWithinStock(row, projectedQtyThreshold))
	}
	return out
}

func get(row models.Row, field string) any {
	v, _ := row.Get(field)
	return v
}
