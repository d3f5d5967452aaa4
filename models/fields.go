package models

// Well-known dataset field names. The upstream feed mixes naming styles;
// these are the exact spellings it sends.
const (
	FieldCurrentStock          = "Current_Stock"
	FieldDaysSoldOutPast       = "Days_Sold_Out_Past"
	FieldDaysSinceLaunch       = "days_since_launch"
	FieldProjectedDaysSellout  = "Projected_Days_to_Sellout"
	FieldAlltimePerdayQuantity = "Alltime_Perday_Quantity"
	FieldAlltimeTotalQuantity  = "Alltime_Total_Quantity"
	FieldAlltimeItemsViewed    = "Alltime_Items_Viewed"
	FieldAlltimeItemsATC       = "Alltime_Items_ATC"
	FieldTotalStock            = "Total_Stock"
	FieldLastSoldDate          = "Last_Sold_Date"
	FieldLaunchDate            = "launch_date"

	// Derived fields appended by the metric calculator.
	FieldDaysToSellout            = "Days_to_Sellout"
	FieldDaysSinceLastSale        = "Days_Since_Last_Sale"
	FieldProjectedQuantitySold    = "Projected_Quantity_Sold"
	FieldExpectedSalesWithinStock = "Expected Sales (Within Stock)"
)
