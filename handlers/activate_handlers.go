package handlers

import (
	"reporting/models"
	"reporting/schema"

	"github.com/gofiber/fiber/v2"
)

// activateRequest is a cell click on a drill-through column: the column
// definition (as served in the report), the cell value, and the row.
type activateRequest struct {
	Column models.ColumnDefinition `json:"column"`
	Value  any                     `json:"value"`
	Row    models.Row              `json:"row"`
}

// HandleActivateColumn resolves a cell activation into the {type, value}
// descriptor the host uses to open a detail view or pivot to another tab.
// Only date and size-breakdown columns are activatable.
func HandleActivateColumn(c *fiber.Ctx) error {
	var req activateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if !req.Column.Activatable {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"status": "error", "message": "Column is not activatable"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": schema.Activate(req.Column, req.Value, req.Row)})
}
