package routes

import (
	"reporting/handlers"
	"reporting/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Reporting Routes ---
	reports := api.Group("/reports", middleware.Authenticate)

	reports.Get("/inventory", handlers.HandleGetInventoryReport)
	reports.Post("/inventory/filters", handlers.HandleSubmitFilters)
	reports.Post("/inventory/activate", handlers.HandleActivateColumn)
	reports.Get("/fields/:field/values", handlers.HandleGetFieldValues)
}
