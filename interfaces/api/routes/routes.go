package routes

import (
	"github.com/gofiber/fiber/v2"

	"menu-catalog/interfaces/api/handlers"
)

// SetupRoutes registers the full page and AJAX surface. Paths match the
// original multi-page layout, so they sit at the root rather than under an
// /api prefix.
func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app)
	SetupSearchRoutes(app, h)
	SetupDishRoutes(app, h)
	SetupIngredientRoutes(app, h)
}
