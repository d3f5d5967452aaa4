package handlers

import (
	"context"
	"log"
	"strconv"

	"reporting/analytics"
	"reporting/config"
	"reporting/database"
	"reporting/models"
	"reporting/schema"
	"reporting/view"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HandleGetInventoryReport fetches the snapshot batch for a business, runs
// the full pipeline (schema inference, derived metrics, classification,
// aggregation) and returns columns, rows and summary in one payload.
func HandleGetInventoryReport(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	business := c.Query("business")
	if business == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "business query parameter is required"})
	}

	sellout := queryFloat(c, "sellout_threshold", config.AppConfig.SelloutThreshold)
	projected := queryFloat(c, "projected_qty_threshold", config.AppConfig.ProjectedQtyThreshold)

	rows, err := fetchRows(ctx, db, business, c.Query("from"), c.Query("to"), c.Query("item"), nil)
	if err != nil {
		log.Printf("Error fetching snapshot rows: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch report rows"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": BuildReport(rows, sellout, projected)})
}

// BuildReport runs the pure pipeline over an already-fetched batch. Empty
// batches yield an empty report rather than an error.
func BuildReport(rows []models.Row, selloutThreshold, projectedQtyThreshold float64) models.InventoryReport {
	report := models.InventoryReport{
		Columns: []models.ColumnDefinition{},
		Rows:    []models.ReportRow{},
	}
	if len(rows) == 0 {
		report.Summary = analytics.Aggregate(nil, selloutThreshold, projectedQtyThreshold)
		return report
	}

	report.Columns = schema.BuildColumnDefinitions(rows[0])
	for _, row := range rows {
		report.Rows = append(report.Rows, models.ReportRow{
			Cells:          analytics.ComputeRow(row, selloutThreshold, projectedQtyThreshold),
			Classification: analytics.Classify(row, selloutThreshold),
		})
	}

	// The summary always runs through the synchronizer so the visible-set
	// contract is the same one the interactive grid exercises.
	sync := view.NewSynchronizer(selloutThreshold, projectedQtyThreshold, 0, nil)
	sync.SetRows(rows)
	report.Summary = sync.Summary()
	return report
}

// fetchRows loads the jsonb snapshot payloads for one business, optionally
// narrowed by date range, item id, and a serialized filter query.
func fetchRows(ctx context.Context, db *pgxpool.Pool, business, from, to, item string, filter models.FilterQuery) ([]models.Row, error) {
	query := `
		SELECT payload
		FROM inventory_snapshots
		WHERE business = $1
	`
	args := []interface{}{business}

	if from != "" {
		args = append(args, from)
		query += " AND snapshot_date >= $" + strconv.Itoa(len(args))
	}
	if to != "" {
		args = append(args, to)
		query += " AND snapshot_date <= $" + strconv.Itoa(len(args))
	}
	if item != "" {
		args = append(args, item)
		query += " AND payload->>'Item_Id' = $" + strconv.Itoa(len(args))
	}

	filterSQL, filterArgs := filterQueryToSQL(filter, len(args))
	query += filterSQL
	args = append(args, filterArgs...)

	query += " ORDER BY id"

	dbRows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer dbRows.Close()

	rows := make([]models.Row, 0)
	for dbRows.Next() {
		var payload []byte
		if err := dbRows.Scan(&payload); err != nil {
			return nil, err
		}
		var row models.Row
		if err := row.UnmarshalJSON(payload); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, dbRows.Err()
}

func queryFloat(c *fiber.Ctx, key string, fallback float64) float64 {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return f
}
