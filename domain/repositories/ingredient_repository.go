package repositories

import (
	"context"

	"menu-catalog/domain/models"
)

// IngredientUsage is the delete-confirmation summary: how many dishes
// reference the ingredient and the first few of their names.
type IngredientUsage struct {
	Count     int64
	DishNames []string
}

type IngredientRepository interface {
	// Create inserts the ingredient, assigning display_order = max+1 within
	// its category. The read and the insert run in one transaction.
	Create(ctx context.Context, ingredient *models.Ingredient) error
	GetByID(ctx context.Context, id uint) (*models.Ingredient, error)
	GetByName(ctx context.Context, name string) (*models.Ingredient, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error)
	// Delete removes the ingredient and its dish membership rows in one
	// transaction. Dishes themselves survive.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Ingredient, error)
	// Usage reports dish references, with at most nameLimit dish names.
	Usage(ctx context.Context, id uint, nameLimit int) (*IngredientUsage, error)
	// SearchByName returns up to limit ingredients whose name contains q,
	// ordered by name ascending. Matching uses SQL LIKE, so case sensitivity
	// follows the database collation.
	SearchByName(ctx context.Context, q string, limit int) ([]*models.Ingredient, error)
}
