package repositories

import (
	"context"

	"menu-catalog/domain/models"
)

// Ingredient match modes for dish search.
const (
	MatchModeExact = "exact" // dish must contain every selected ingredient
	MatchModeFuzzy = "fuzzy" // dish must contain at least one
)

// DishFilter selects dishes by ingredient/genre membership. Empty id lists
// apply no filter on that dimension.
type DishFilter struct {
	IngredientIDs []uint
	GenreIDs      []uint
	Mode          string
	Offset        int
	Limit         int
}

type DishRepository interface {
	Create(ctx context.Context, dish *models.Dish) error
	// GetByID loads the dish with its genre and ingredient sets.
	GetByID(ctx context.Context, id uint) (*models.Dish, error)
	// Update persists the dish fields and fully replaces both membership
	// sets in one transaction.
	Update(ctx context.Context, dish *models.Dish, genres []models.DishGenre, ingredients []models.Ingredient) error
	// Delete removes the dish and its membership rows; genres and
	// ingredients are unaffected.
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	// Search returns one page ordered by updated_at desc, id desc, plus the
	// total matched count.
	Search(ctx context.Context, filter DishFilter) ([]*models.Dish, int64, error)
}
