package repositories

import (
	"context"

	"menu-catalog/domain/models"
)

type CategoryRepository interface {
	// List returns all categories ordered by display_order, ingredients
	// preloaded in their per-category order.
	List(ctx context.Context) ([]*models.IngredientCategory, error)
	GetByID(ctx context.Context, id uint) (*models.IngredientCategory, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}
