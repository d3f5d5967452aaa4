package filters

import (
	"fmt"

	"reporting/models"
)

// SerializeFilters turns a set of valid filter rows into the query shape the
// upstream data source expects: column → [{operator, value}]. item_id
// in/not_in values are always sent as a numeric array, never as the raw
// string the user typed. Returns an error naming the first invalid row; no
// partial query is ever produced.
func SerializeFilters(rows []models.FilterRow) (models.FilterQuery, error) {
	query := models.FilterQuery{}
	for i, row := range rows {
		if err := ValidateRow(row); err != nil {
			return nil, fmt.Errorf("filter row %d: %w", i, err)
		}

		value := row.Value
		if isItemID(row.Column) && (row.Operator == OpIn || row.Operator == OpNotIn) {
			items, err := listItems(row.Value)
			if err != nil {
				return nil, fmt.Errorf("filter row %d: %w", i, err)
			}
			nums := make([]float64, 0, len(items))
			for _, item := range items {
				n, err := parseNumber(item)
				if err != nil {
					return nil, fmt.Errorf("filter row %d: %w", i, err)
				}
				nums = append(nums, n)
			}
			value = nums
		}

		query[row.Column] = []models.FilterClause{{Operator: row.Operator, Value: value}}
	}
	return query, nil
}
