package handlers

import (
	"encoding/json"
	"testing"

	"reporting/models"
)

func rowFromJSON(t *testing.T, src string) models.Row {
	t.Helper()
	var row models.Row
	if err := json.Unmarshal([]byte(src), &row); err != nil {
		t.Fatalf("unmarshal row: %v", err)
	}
	return row
}

func TestBuildReport(t *testing.T) {
	rows := []models.Row{
		rowFromJSON(t, `{
			"Item_Id":1, "days_since_launch":10, "Projected_Days_to_Sellout":5,
			"Alltime_Perday_Quantity":2, "Current_Stock":40,
			"Alltime_Items_Viewed":100, "Alltime_Items_ATC":4,
			"Alltime_Total_Quantity":10, "Days_Sold_Out_Past":0
		}`),
		rowFromJSON(t, `{
			"Item_Id":2, "days_since_launch":100, "Projected_Days_to_Sellout":50,
			"Alltime_Perday_Quantity":1, "Current_Stock":10,
			"Alltime_Items_Viewed":20, "Alltime_Items_ATC":2,
			"Alltime_Total_Quantity":5, "Days_Sold_Out_Past":0
		}`),
	}

	report := BuildReport(rows, 120, 30)

	if len(report.Rows) != 2 {
		t.Fatalf("rows = %d; want 2", len(report.Rows))
	}
	if report.Rows[0].Classification.Label != models.LabelGreen {
		t.Fatalf("row 0 label = %s; want green", report.Rows[0].Classification.Label)
	}
	if report.Rows[1].Classification.Label != models.LabelRed {
		t.Fatalf("row 1 label = %s; want red", report.Rows[1].Classification.Label)
	}
	if !report.Rows[0].Cells.Has(models.FieldDaysToSellout) {
		t.Fatalf("computed rows must carry the derived metrics")
	}
	if report.Summary.Green.Count != 1 || report.Summary.Red.Count != 1 {
		t.Fatalf("summary buckets = %+v", report.Summary)
	}

	// Schema comes from the first row, including the synthetic columns.
	var hasDerived bool
	for _, col := range report.Columns {
		if col.Field == models.FieldDaysToSellout {
			hasDerived = true
		}
	}
	if !hasDerived {
		t.Fatalf("columns missing the derived sellout metric")
	}
}

func TestBuildReportEmptyBatch(t *testing.T) {
	report := BuildReport(nil, 120, 30)
	if len(report.Columns) != 0 || len(report.Rows) != 0 {
		t.Fatalf("empty batch must yield an empty report")
	}
	if report.Summary.Green.Percent != "0.00" {
		t.Fatalf("empty summary percent = %s; want 0.00", report.Summary.Green.Percent)
	}
}

func TestFilterQueryToSQL(t *testing.T) {
	query := models.FilterQuery{
		"Sale_Price": {{Operator: "greater_than_or_equal", Value: float64(10)}},
		"Item_Name":  {{Operator: "in", Value: []any{"shoes", "hats"}}},
	}

	sql, args := filterQueryToSQL(query, 1)
	want := " AND payload->>$2 = ANY($3) AND (payload->>$4)::numeric >= $5"
	if sql != want {
		t.Fatalf("sql = %q; want %q", sql, want)
	}
	if len(args) != 4 {
		t.Fatalf("args = %v; want 4 entries", args)
	}
	if args[0] != "Item_Name" || args[2] != "Sale_Price" {
		t.Fatalf("columns bound out of order: %v", args)
	}
	if list, ok := args[1].([]string); !ok || len(list) != 2 {
		t.Fatalf("in-list arg = %v; want a text array", args[1])
	}
	if args[3] != float64(10) {
		t.Fatalf("numeric arg = %v; want 10", args[3])
	}
}

func TestFilterQueryToSQLBetween(t *testing.T) {
	query := models.FilterQuery{
		"__Launch_Date": {{Operator: "between", Value: []any{"2024-01-01", "2024-02-01"}}},
	}

	sql, args := filterQueryToSQL(query, 0)
	want := " AND payload->>$1 >= $2 AND payload->>$3 <= $4"
	if sql != want {
		t.Fatalf("sql = %q; want %q", sql, want)
	}
	if args[1] != "2024-01-01" || args[3] != "2024-02-01" {
		t.Fatalf("bounds bound wrong: %v", args)
	}
}

func TestFilterQueryToSQLEmpty(t *testing.T) {
	sql, args := filterQueryToSQL(nil, 3)
	if sql != "" || args != nil {
		t.Fatalf("empty query must add nothing, got %q %v", sql, args)
	}
}
