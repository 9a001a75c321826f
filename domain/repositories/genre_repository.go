package repositories

import (
	"context"

	"menu-catalog/domain/models"
)

type GenreRepository interface {
	List(ctx context.Context) ([]*models.DishGenre, error)
	// GetByIDs returns the genres whose ids exist; unknown ids are skipped.
	GetByIDs(ctx context.Context, ids []uint) ([]models.DishGenre, error)
	Count(ctx context.Context) (int64, error)
}
