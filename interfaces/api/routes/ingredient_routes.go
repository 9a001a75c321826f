package routes

import (
	"github.com/gofiber/fiber/v2"

	"menu-catalog/interfaces/api/handlers"
)

func SetupIngredientRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/ingredients", h.IngredientHandler.Manage)

	ingredient := app.Group("/ingredient")

	// /ingredient/new and /ingredient/search before /ingredient/:id
	ingredient.Get("/new", h.IngredientHandler.NewForm)
	ingredient.Post("/new", h.IngredientHandler.Create)
	ingredient.Get("/search", h.IngredientHandler.Autocomplete)
	ingredient.Get("/:id/check-usage", h.IngredientHandler.CheckUsage)
	ingredient.Post("/:id/delete", h.IngredientHandler.Delete)
}
