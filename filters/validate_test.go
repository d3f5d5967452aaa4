package filters

import (
	"testing"

	"reporting/models"
)

func TestValidateRowIncomplete(t *testing.T) {
	cases := []models.FilterRow{
		{},
		{Column: "Item_Name"},
		{Operator: OpEqual},
	}
	for _, row := range cases {
		err := ValidateRow(row)
		if err == nil || err.Error() != "select column and operator." {
			t.Fatalf("ValidateRow(%+v) = %v; want the incomplete message", row, err)
		}
	}
}

func TestOperatorsFor(t *testing.T) {
	cases := []struct {
		column string
		want   []string
	}{
		{"Sale_Price", []string{OpLessThanOrEqual, OpGreaterThanOrEqual, OpBetween, OpEqual, OpNotEqual, OpGreaterThan, OpLessThan}},
		{"Item_Id", []string{OpIn, OpNotIn, OpLessThanOrEqual, OpGreaterThanOrEqual, OpBetween, OpGreaterThan, OpLessThan}},
		{"is_public", []string{OpEqual, OpNotEqual}},
		{"Item_Name", []string{OpIn, OpNotIn, OpEqual, OpNotEqual}},
		{"__Relist_Date", []string{OpLessThanOrEqual, OpGreaterThanOrEqual, OpBetween, OpEqual, OpNotEqual, OpGreaterThan, OpLessThan}},
	}
	for _, c := range cases {
		got := OperatorsFor(c.column)
		if len(got) != len(c.want) {
			t.Fatalf("OperatorsFor(%s) = %v; want %v", c.column, got, c.want)
		}
		for i := range c.want {
			if got[i] != c.want[i] {
				t.Fatalf("OperatorsFor(%s) = %v; want %v", c.column, got, c.want)
			}
		}
	}
}

func TestItemIDHasNoPlainEquality(t *testing.T) {
	row := models.FilterRow{Column: "item_id", Operator: OpEqual, Value: "5"}
	if ValidateRow(row) == nil {
		t.Fatalf("plain equal must be rejected for item_id")
	}
}

func TestValidateBetweenDates(t *testing.T) {
	reversed := models.FilterRow{
		Column:   "__Launch_Date",
		Operator: OpBetween,
		Value:    []any{"2024-05-10", "2024-05-01"},
	}
	if ValidateRow(reversed) == nil {
		t.Fatalf("reversed date range must be rejected")
	}

	ordered := models.FilterRow{
		Column:   "__Launch_Date",
		Operator: OpBetween,
		Value:    []any{"2024-05-01", "2024-05-10"},
	}
	if err := ValidateRow(ordered); err != nil {
		t.Fatalf("ordered date range rejected: %v", err)
	}
}

func TestValidateBetweenNumbers(t *testing.T) {
	row := models.FilterRow{Column: "Sale_Price", Operator: OpBetween, Value: []any{"10", "5"}}
	if ValidateRow(row) == nil {
		t.Fatalf("reversed numeric range must be rejected")
	}

	row.Value = []any{"5", "10"}
	if err := ValidateRow(row); err != nil {
		t.Fatalf("ordered numeric range rejected: %v", err)
	}

	// Missing ends are rejected before any ordering check.
	row.Value = []any{"", "10"}
	if ValidateRow(row) == nil {
		t.Fatalf("empty from must be rejected")
	}
	row.Value = []any{"5"}
	if ValidateRow(row) == nil {
		t.Fatalf("a single value is not a range")
	}
}

func TestValidateItemIDList(t *testing.T) {
	row := models.FilterRow{Column: "item_id", Operator: OpIn, Value: "1, 2 3"}
	if err := ValidateRow(row); err != nil {
		t.Fatalf("delimited numeric list rejected: %v", err)
	}

	row.Value = "1, x 3"
	if ValidateRow(row) == nil {
		t.Fatalf("non-numeric item id must be rejected")
	}

	row.Value = " , "
	if ValidateRow(row) == nil {
		t.Fatalf("empty set must be rejected")
	}

	row.Value = []any{float64(1), float64(2)}
	if err := ValidateRow(row); err != nil {
		t.Fatalf("numeric array rejected: %v", err)
	}
}

func TestValidateStringList(t *testing.T) {
	row := models.FilterRow{Column: "Item_Name", Operator: OpIn, Value: []any{}}
	if ValidateRow(row) == nil {
		t.Fatalf("empty array must be rejected")
	}

	row.Value = "shoes"
	if err := ValidateRow(row); err != nil {
		t.Fatalf("non-empty string rejected: %v", err)
	}

	row.Value = []any{"shoes", "hats"}
	if err := ValidateRow(row); err != nil {
		t.Fatalf("non-empty array rejected: %v", err)
	}
}

func TestValidateScalarOperators(t *testing.T) {
	row := models.FilterRow{Column: "is_public", Operator: OpEqual, Value: ""}
	if ValidateRow(row) == nil {
		t.Fatalf("empty value must be rejected")
	}
	row.Value = "true"
	if err := ValidateRow(row); err != nil {
		t.Fatalf("non-empty value rejected: %v", err)
	}
}

func TestReadyToSubmit(t *testing.T) {
	valid := models.FilterRow{Column: "Item_Name", Operator: OpEqual, Value: "x"}
	invalid := models.FilterRow{Column: "Item_Name", Operator: OpEqual, Value: ""}

	if !ReadyToSubmit([]models.FilterRow{valid}) {
		t.Fatalf("all-valid set must be ready")
	}
	if ReadyToSubmit([]models.FilterRow{valid, invalid}) {
		t.Fatalf("one invalid row blocks the whole set")
	}
	if !ReadyToSubmit(nil) {
		t.Fatalf("an empty set is trivially ready")
	}
}
