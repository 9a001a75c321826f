package services

import (
	"context"

	"menu-catalog/domain/dto"
	"menu-catalog/domain/models"
)

// SearchResult is one page of dishes plus total-count metadata.
type SearchResult struct {
	Dishes  []*models.Dish
	Total   int64
	Page    int
	PerPage int
}

type DishService interface {
	// Create validates the input and inserts the dish with its membership
	// sets. Unknown genre/ingredient ids are skipped.
	Create(ctx context.Context, input *dto.DishInput) (*models.Dish, error)

	GetByID(ctx context.Context, id uint) (*models.Dish, error)

	// Update fully replaces name, difficulty, memo and both membership sets.
	Update(ctx context.Context, id uint, input *dto.DishInput) (*models.Dish, error)

	Delete(ctx context.Context, id uint) error

	// Search filters by ingredient/genre membership per the match mode and
	// paginates newest-first.
	Search(ctx context.Context, ingredientIDs, genreIDs []uint, mode string, page, perPage int) (*SearchResult, error)

	// List returns all dishes paginated, newest-first (management page).
	List(ctx context.Context, page, perPage int) (*SearchResult, error)
}
