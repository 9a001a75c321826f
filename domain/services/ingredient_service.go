package services

import (
	"context"

	"menu-catalog/domain/dto"
	"menu-catalog/domain/models"
	"menu-catalog/domain/repositories"
)

type IngredientService interface {
	// Create validates the form, rejects duplicate names with a distinct
	// field error, and assigns the per-category display order.
	Create(ctx context.Context, form *dto.IngredientForm) (*models.Ingredient, error)

	// Delete removes the ingredient from every dish that references it and
	// then deletes it, all in one transaction.
	Delete(ctx context.Context, id uint) (*models.Ingredient, error)

	// Usage reports how many dishes use the ingredient plus up to five of
	// their names.
	Usage(ctx context.Context, id uint) (*repositories.IngredientUsage, error)

	// Autocomplete returns up to ten name matches; an empty query returns an
	// empty result, not all ingredients.
	Autocomplete(ctx context.Context, q string) ([]*models.Ingredient, error)

	// Categories returns all categories in display order with their
	// ingredients.
	Categories(ctx context.Context) ([]*models.IngredientCategory, error)
}
