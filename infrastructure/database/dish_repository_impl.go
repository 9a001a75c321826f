package database

import (
	"context"

	"gorm.io/gorm"

	"menu-catalog/domain/models"
	"menu-catalog/domain/repositories"
)

type DishRepositoryImpl struct {
	db *gorm.DB
}

func NewDishRepository(db *gorm.DB) repositories.DishRepository {
	return &DishRepositoryImpl{db: db}
}

func (r *DishRepositoryImpl) Create(ctx context.Context, dish *models.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

func (r *DishRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Dish, error) {
	var dish models.Dish
	err := r.db.WithContext(ctx).
		Preload("Genres").
		Preload("Ingredients").
		Where("id = ?", id).
		First(&dish).Error
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

// Update replaces the dish fields and both membership sets in one
// transaction, so an edit leaves no leftover edges.
func (r *DishRepositoryImpl) Update(ctx context.Context, dish *models.Dish, genres []models.DishGenre, ingredients []models.Ingredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(dish).Select("name", "difficulty", "memo", "updated_at").Updates(map[string]any{
			"name":       dish.Name,
			"difficulty": dish.Difficulty,
			"memo":       dish.Memo,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(dish).Association("Genres").Replace(genres); err != nil {
			return err
		}
		return tx.Model(dish).Association("Ingredients").Replace(ingredients)
	})
}

func (r *DishRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dish_id = ?", id).Delete(&models.DishGenreRelation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("dish_id = ?", id).Delete(&models.DishIngredientRelation{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Dish{}).Error
	})
}

func (r *DishRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Dish{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Search applies the genre OR-filter and the ingredient match mode, counts
// the surviving set, and returns one page ordered by updated_at desc with id
// desc breaking ties.
func (r *DishRepositoryImpl) Search(ctx context.Context, filter repositories.DishFilter) ([]*models.Dish, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Dish{})

	if len(filter.GenreIDs) > 0 {
		genreSub := r.db.Model(&models.DishGenreRelation{}).
			Select("dish_id").
			Where("genre_id IN ?", filter.GenreIDs)
		query = query.Where("dishes.id IN (?)", genreSub)
	}

	if len(filter.IngredientIDs) > 0 {
		switch filter.Mode {
		case repositories.MatchModeExact:
			// Superset match: the dish carries every selected ingredient.
			ingSub := r.db.Model(&models.DishIngredientRelation{}).
				Select("dish_id").
				Where("ingredient_id IN ?", filter.IngredientIDs).
				Group("dish_id").
				Having("COUNT(DISTINCT ingredient_id) = ?", len(filter.IngredientIDs))
			query = query.Where("dishes.id IN (?)", ingSub)
		default:
			// Intersection match: at least one selected ingredient.
			ingSub := r.db.Model(&models.DishIngredientRelation{}).
				Select("dish_id").
				Where("ingredient_id IN ?", filter.IngredientIDs)
			query = query.Where("dishes.id IN (?)", ingSub)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dishes []*models.Dish
	err := query.
		Preload("Genres").
		Preload("Ingredients").
		Order("updated_at DESC, id DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&dishes).Error
	if err != nil {
		return nil, 0, err
	}

	return dishes, total, nil
}
