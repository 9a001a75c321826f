package handlers

import (
	"menu-catalog/domain/services"
	"menu-catalog/pkg/config"
)

// Services contains all the services needed for handlers.
type Services struct {
	DishService       services.DishService
	IngredientService services.IngredientService
	MasterDataService services.MasterDataService
	Catalog           config.CatalogConfig
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	SearchHandler     *SearchHandler
	DishHandler       *DishHandler
	IngredientHandler *IngredientHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		SearchHandler:     NewSearchHandler(services.DishService, services.IngredientService, services.MasterDataService, services.Catalog),
		DishHandler:       NewDishHandler(services.DishService, services.IngredientService, services.MasterDataService),
		IngredientHandler: NewIngredientHandler(services.IngredientService),
	}
}
