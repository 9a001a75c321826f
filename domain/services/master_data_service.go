package services

import (
	"context"

	"menu-catalog/domain/models"
)

type MasterDataService interface {
	// Seed applies the fixed category and genre lists once, guarded by a
	// seed-version marker written in the same transaction. Safe to call on
	// every startup.
	Seed(ctx context.Context) error

	Genres(ctx context.Context) ([]*models.DishGenre, error)
}
