package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"menu-catalog/domain/dto"
	"menu-catalog/domain/models"
	"menu-catalog/domain/repositories"
	"menu-catalog/domain/services"
	"menu-catalog/pkg/logger"
)

const (
	usageNameLimit    = 5
	autocompleteLimit = 10
)

type IngredientServiceImpl struct {
	ingredientRepo repositories.IngredientRepository
	categoryRepo   repositories.CategoryRepository
}

func NewIngredientService(
	ingredientRepo repositories.IngredientRepository,
	categoryRepo repositories.CategoryRepository,
) services.IngredientService {
	return &IngredientServiceImpl{
		ingredientRepo: ingredientRepo,
		categoryRepo:   categoryRepo,
	}
}

func (s *IngredientServiceImpl) Create(ctx context.Context, form *dto.IngredientForm) (*models.Ingredient, error) {
	fieldErrors, err := s.validate(ctx, form)
	if err != nil {
		logger.ErrorContext(ctx, "Ingredient validation lookup failed", "error", err)
		return nil, err
	}
	if len(fieldErrors) > 0 {
		logger.WarnContext(ctx, "Ingredient submission rejected", "errors", fieldErrors)
		return nil, &services.ValidationError{Fields: fieldErrors}
	}

	ingredient := &models.Ingredient{
		Name:       form.Name,
		CategoryID: form.CategoryID,
	}

	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		// The unique index on name backstops the pre-insert check under
		// concurrent submissions.
		if isUniqueViolation(err) {
			logger.WarnContext(ctx, "Ingredient name already exists", "name", form.Name)
			return nil, s.duplicateNameError()
		}
		logger.ErrorContext(ctx, "Failed to create ingredient", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Ingredient created",
		"ingredient_id", ingredient.ID,
		"name", ingredient.Name,
		"category_id", ingredient.CategoryID,
		"display_order", ingredient.DisplayOrder,
	)
	return ingredient, nil
}

func (s *IngredientServiceImpl) Delete(ctx context.Context, id uint) (*models.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrIngredientNotFound
		}
		return nil, err
	}

	if err := s.ingredientRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete ingredient", "ingredient_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Ingredient deleted", "ingredient_id", id, "name", ingredient.Name)
	return ingredient, nil
}

func (s *IngredientServiceImpl) Usage(ctx context.Context, id uint) (*repositories.IngredientUsage, error) {
	if _, err := s.ingredientRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrIngredientNotFound
		}
		return nil, err
	}
	return s.ingredientRepo.Usage(ctx, id, usageNameLimit)
}

func (s *IngredientServiceImpl) Autocomplete(ctx context.Context, q string) ([]*models.Ingredient, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		// Empty query means empty result, never the full list.
		return []*models.Ingredient{}, nil
	}
	return s.ingredientRepo.SearchByName(ctx, q, autocompleteLimit)
}

func (s *IngredientServiceImpl) Categories(ctx context.Context) ([]*models.IngredientCategory, error) {
	return s.categoryRepo.List(ctx)
}

func (s *IngredientServiceImpl) validate(ctx context.Context, form *dto.IngredientForm) ([]dto.FieldError, error) {
	var fieldErrors []dto.FieldError

	nameLen := utf8.RuneCountInString(form.Name)
	if nameLen == 0 {
		fieldErrors = append(fieldErrors, dto.FieldError{Field: "name", Message: "name is required"})
	} else if nameLen > 100 {
		fieldErrors = append(fieldErrors, dto.FieldError{Field: "name", Message: "name must be 1-100 characters"})
	}

	if form.CategoryID == 0 {
		fieldErrors = append(fieldErrors, dto.FieldError{Field: "category_id", Message: "category is required"})
	} else {
		exists, err := s.categoryRepo.Exists(ctx, form.CategoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			fieldErrors = append(fieldErrors, dto.FieldError{Field: "category_id", Message: "category does not exist"})
		}
	}

	// Duplicate name gets its own distinct error, case-sensitive exact match.
	if nameLen > 0 {
		existing, err := s.ingredientRepo.GetByName(ctx, form.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			fieldErrors = append(fieldErrors, s.duplicateNameError().Fields[0])
		}
	}

	return fieldErrors, nil
}

func (s *IngredientServiceImpl) duplicateNameError() *services.ValidationError {
	return &services.ValidationError{Fields: []dto.FieldError{{
		Field: "name", Message: "an ingredient with this name already exists",
	}}}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
