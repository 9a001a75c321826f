package serviceimpl

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"menu-catalog/domain/dto"
	"menu-catalog/domain/models"
	"menu-catalog/domain/repositories"
	"menu-catalog/domain/services"
	"menu-catalog/pkg/logger"
)

type DishServiceImpl struct {
	dishRepo       repositories.DishRepository
	genreRepo      repositories.GenreRepository
	ingredientRepo repositories.IngredientRepository
	limits         DishLimits
}

func NewDishService(
	dishRepo repositories.DishRepository,
	genreRepo repositories.GenreRepository,
	ingredientRepo repositories.IngredientRepository,
	limits DishLimits,
) services.DishService {
	return &DishServiceImpl{
		dishRepo:       dishRepo,
		genreRepo:      genreRepo,
		ingredientRepo: ingredientRepo,
		limits:         limits,
	}
}

func (s *DishServiceImpl) Create(ctx context.Context, input *dto.DishInput) (*models.Dish, error) {
	input.GenreIDs = dedupeIDs(input.GenreIDs)
	input.IngredientIDs = dedupeIDs(input.IngredientIDs)

	if fieldErrors := validateDishInput(input, s.limits); len(fieldErrors) > 0 {
		logger.WarnContext(ctx, "Dish submission rejected", "errors", fieldErrors)
		return nil, &services.ValidationError{Fields: fieldErrors}
	}

	genres, ingredients, err := s.resolveMemberships(ctx, input)
	if err != nil {
		return nil, err
	}

	dish := &models.Dish{
		Name:        input.Name,
		Difficulty:  input.Difficulty,
		Memo:        input.Memo,
		Genres:      genres,
		Ingredients: ingredients,
	}

	if err := s.dishRepo.Create(ctx, dish); err != nil {
		logger.ErrorContext(ctx, "Failed to create dish", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Dish created", "dish_id", dish.ID, "name", dish.Name)
	return dish, nil
}

func (s *DishServiceImpl) GetByID(ctx context.Context, id uint) (*models.Dish, error) {
	dish, err := s.dishRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrDishNotFound
		}
		return nil, err
	}
	return dish, nil
}

func (s *DishServiceImpl) Update(ctx context.Context, id uint, input *dto.DishInput) (*models.Dish, error) {
	dish, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input.GenreIDs = dedupeIDs(input.GenreIDs)
	input.IngredientIDs = dedupeIDs(input.IngredientIDs)

	if fieldErrors := validateDishInput(input, s.limits); len(fieldErrors) > 0 {
		logger.WarnContext(ctx, "Dish update rejected", "dish_id", id, "errors", fieldErrors)
		return nil, &services.ValidationError{Fields: fieldErrors}
	}

	genres, ingredients, err := s.resolveMemberships(ctx, input)
	if err != nil {
		return nil, err
	}

	dish.Name = input.Name
	dish.Difficulty = input.Difficulty
	dish.Memo = input.Memo

	if err := s.dishRepo.Update(ctx, dish, genres, ingredients); err != nil {
		logger.ErrorContext(ctx, "Failed to update dish", "dish_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Dish updated", "dish_id", id)
	return s.GetByID(ctx, id)
}

func (s *DishServiceImpl) Delete(ctx context.Context, id uint) error {
	exists, err := s.dishRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return services.ErrDishNotFound
	}

	if err := s.dishRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete dish", "dish_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Dish deleted", "dish_id", id)
	return nil
}

func (s *DishServiceImpl) Search(ctx context.Context, ingredientIDs, genreIDs []uint, mode string, page, perPage int) (*services.SearchResult, error) {
	if mode != repositories.MatchModeExact {
		mode = repositories.MatchModeFuzzy
	}

	filter := repositories.DishFilter{
		IngredientIDs: dedupeIDs(ingredientIDs),
		GenreIDs:      dedupeIDs(genreIDs),
		Mode:          mode,
		Offset:        (page - 1) * perPage,
		Limit:         perPage,
	}

	dishes, total, err := s.dishRepo.Search(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Dish search failed", "error", err)
		return nil, err
	}

	return &services.SearchResult{Dishes: dishes, Total: total, Page: page, PerPage: perPage}, nil
}

func (s *DishServiceImpl) List(ctx context.Context, page, perPage int) (*services.SearchResult, error) {
	return s.Search(ctx, nil, nil, repositories.MatchModeFuzzy, page, perPage)
}

// resolveMemberships looks up the submitted ids. Unknown ids are skipped
// rather than rejected, matching the form's lenient handling of stale
// selections.
func (s *DishServiceImpl) resolveMemberships(ctx context.Context, input *dto.DishInput) ([]models.DishGenre, []models.Ingredient, error) {
	genres, err := s.genreRepo.GetByIDs(ctx, input.GenreIDs)
	if err != nil {
		return nil, nil, err
	}
	ingredients, err := s.ingredientRepo.GetByIDs(ctx, input.IngredientIDs)
	if err != nil {
		return nil, nil, err
	}
	return genres, ingredients, nil
}
