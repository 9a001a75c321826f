package routes

import (
	"github.com/gofiber/fiber/v2"

	"menu-catalog/interfaces/api/handlers"
)

func SetupDishRoutes(app *fiber.App, h *handlers.Handlers) {
	dish := app.Group("/dish")

	// /dish/new must register before /dish/:id
	dish.Get("/new", h.DishHandler.NewForm)
	dish.Post("/new", h.DishHandler.Create)
	dish.Get("/:id", h.DishHandler.Detail)
	dish.Get("/:id/edit", h.DishHandler.EditForm)
	dish.Post("/:id/edit", h.DishHandler.Update)
	dish.Post("/:id/delete", h.DishHandler.Delete)
}
