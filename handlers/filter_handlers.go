package handlers

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"

	"reporting/config"
	"reporting/database"
	"reporting/filters"
	"reporting/models"
	"reporting/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// filterRowError is one per-row inline validation message.
type filterRowError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// HandleSubmitFilters validates a filter row set and, when every row is
// valid, serializes it into the upstream query shape. With ?apply=1 the
// query is also run against the snapshot store and the matching rows come
// back through the full pipeline. Invalid sets return 422 with per-row
// messages; no partial filter set is ever applied.
func HandleSubmitFilters(c *fiber.Ctx) error {
	var rows []models.FilterRow
	if err := c.BodyParser(&rows); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	var rowErrors []filterRowError
	for i, row := range rows {
		if err := filters.ValidateRow(row); err != nil {
			rowErrors = append(rowErrors, filterRowError{Index: i, Message: err.Error()})
		}
	}
	if len(rowErrors) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"status": "error", "errors": rowErrors})
	}

	query, err := filters.SerializeFilters(rows)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	if c.Query("apply") != "1" {
		return c.JSON(fiber.Map{"status": "success", "data": query})
	}

	business := c.Query("business")
	if business == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "business query parameter is required"})
	}
	sellout := queryFloat(c, "sellout_threshold", config.AppConfig.SelloutThreshold)
	projected := queryFloat(c, "projected_qty_threshold", config.AppConfig.ProjectedQtyThreshold)

	batch, err := fetchRows(context.Background(), database.GetDB(), business, c.Query("from"), c.Query("to"), c.Query("item"), query)
	if err != nil {
		log.Printf("Error fetching filtered rows: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch filtered rows"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"query":  query,
		"report": BuildReport(batch, sellout, projected),
	}})
}

// HandleGetFieldValues returns distinct values of a payload field for the
// filter value picker. Default is one page with has_more; ?all=1 pages
// through the store until exhausted, de-duplicated.
func HandleGetFieldValues(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	field := c.Params("field")
	business := c.Query("business")
	if business == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "business query parameter is required"})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	if limit <= 0 {
		limit = 100
	}

	fetch := func(ctx context.Context, field, business string, offset, limit int) ([]string, bool, error) {
		return queryFieldValuesPage(ctx, db, field, business, offset, limit)
	}

	if c.Query("all") == "1" {
		values, err := filters.CollectDistinctValues(ctx, fetch, field, business, limit)
		if err != nil {
			log.Printf("Error collecting field values: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch field values"})
		}
		return c.JSON(fiber.Map{"status": "success", "data": models.FieldValuesPage{Values: values, HasMore: false}})
	}

	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	values, hasMore, err := fetch(ctx, field, business, offset, limit)
	if err != nil {
		log.Printf("Error fetching field values: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch field values"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": models.FieldValuesPage{Values: values, HasMore: hasMore}})
}

// queryFieldValuesPage fetches limit+1 rows to learn whether another page
// exists without a second count query.
func queryFieldValuesPage(ctx context.Context, db *pgxpool.Pool, field, business string, offset, limit int) ([]string, bool, error) {
	query := `
		SELECT DISTINCT payload->>$1 AS value
		FROM inventory_snapshots
		WHERE business = $2 AND payload->>$1 IS NOT NULL
		ORDER BY value
		LIMIT $3 OFFSET $4
	`
	rows, err := db.Query(ctx, query, field, business, limit+1, offset)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	values := make([]string, 0, limit)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, false, err
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}

	hasMore := len(values) > limit
	if hasMore {
		values = values[:limit]
	}
	return values, hasMore, nil
}

// filterQueryToSQL translates a serialized filter query into AND-ed WHERE
// fragments over the jsonb payload. Numeric/date columns compare with a
// numeric cast when the operand is numeric; everything else compares as
// text, which also orders ISO dates correctly.
func filterQueryToSQL(filter models.FilterQuery, argOffset int) (string, []interface{}) {
	if len(filter) == 0 {
		return "", nil
	}

	columns := make([]string, 0, len(filter))
	for col := range filter {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	var sql string
	var args []interface{}
	next := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(argOffset+len(args))
	}

	for _, col := range columns {
		for _, clause := range filter[col] {
			switch clause.Operator {
			case filters.OpBetween:
				from, to := betweenPair(clause.Value)
				lhs, fromArg := operand(col, from, next)
				sql += " AND " + lhs + " >= " + fromArg
				lhs, toArg := operand(col, to, next)
				sql += " AND " + lhs + " <= " + toArg
			case filters.OpIn:
				sql += " AND payload->>" + next(col) + " = ANY(" + next(stringList(clause.Value)) + ")"
			case filters.OpNotIn:
				sql += " AND payload->>" + next(col) + " <> ALL(" + next(stringList(clause.Value)) + ")"
			default:
				op, ok := comparisonSQL[clause.Operator]
				if !ok {
					continue
				}
				lhs, arg := operand(col, clause.Value, next)
				sql += " AND " + lhs + " " + op + " " + arg
			}
		}
	}
	return sql, args
}

var comparisonSQL = map[string]string{
	filters.OpEqual:              "=",
	filters.OpNotEqual:           "<>",
	filters.OpGreaterThan:        ">",
	filters.OpLessThan:           "<",
	filters.OpGreaterThanOrEqual: ">=",
	filters.OpLessThanOrEqual:    "<=",
}

// operand renders the payload extraction for one comparison, choosing the
// numeric cast when both the column class and the value allow it.
func operand(col string, value any, next func(interface{}) string) (lhs, arg string) {
	if f, ok := utils.Coerce(value); ok && filters.IsNumericDateColumn(col) {
		return "(payload->>" + next(col) + ")::numeric", next(f)
	}
	return "payload->>" + next(col), next(fmt.Sprint(value))
}

func betweenPair(value any) (any, any) {
	switch v := value.(type) {
	case []any:
		if len(v) == 2 {
			return v[0], v[1]
		}
	case []string:
		if len(v) == 2 {
			return v[0], v[1]
		}
	}
	return nil, nil
}

// stringList renders any serialized list value as a text array for ANY/ALL.
func stringList(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []float64:
		out := make([]string, len(v))
		for i, f := range v {
			out[i] = strconv.FormatFloat(f, 'f', -1, 64)
		}
		return out
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = fmt.Sprint(item)
		}
		return out
	case string:
		return []string{v}
	default:
		return []string{fmt.Sprint(value)}
	}
}
