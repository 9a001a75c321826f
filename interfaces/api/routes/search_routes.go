package routes

import (
	"github.com/gofiber/fiber/v2"

	"menu-catalog/interfaces/api/handlers"
)

func SetupSearchRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/", h.SearchHandler.SearchPage)   // search page, empty filter
	app.Get("/edit", h.SearchHandler.EditPage) // dish management page
	app.Get("/search", h.SearchHandler.Search) // filtered dish search
}
