package database

import (
	"context"

	"gorm.io/gorm"

	"menu-catalog/domain/models"
	"menu-catalog/domain/repositories"
)

type IngredientRepositoryImpl struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) repositories.IngredientRepository {
	return &IngredientRepositoryImpl{db: db}
}

// Create assigns display_order = max+1 within the category and inserts, both
// inside one transaction so concurrent creates in the same category cannot
// interleave the read and the write.
func (r *IngredientRepositoryImpl) Create(ctx context.Context, ingredient *models.Ingredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		err := tx.Model(&models.Ingredient{}).
			Where("category_id = ?", ingredient.CategoryID).
			Select("COALESCE(MAX(display_order), 0)").
			Scan(&maxOrder).Error
		if err != nil {
			return err
		}
		ingredient.DisplayOrder = maxOrder + 1
		return tx.Create(ingredient).Error
	})
}

func (r *IngredientRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *IngredientRepositoryImpl) GetByName(ctx context.Context, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&ingredient).Error
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *IngredientRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var ingredients []models.Ingredient
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}

// Delete removes dish membership rows and the ingredient itself in one
// transaction; dish rows survive with their remaining ingredients.
func (r *IngredientRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ingredient_id = ?", id).Delete(&models.DishIngredientRelation{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Ingredient{}).Error
	})
}

func (r *IngredientRepositoryImpl) List(ctx context.Context) ([]*models.Ingredient, error) {
	var ingredients []*models.Ingredient
	err := r.db.WithContext(ctx).
		Order("category_id ASC, display_order ASC").
		Find(&ingredients).Error
	return ingredients, err
}

func (r *IngredientRepositoryImpl) Usage(ctx context.Context, id uint, nameLimit int) (*repositories.IngredientUsage, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.DishIngredientRelation{}).
		Where("ingredient_id = ?", id).
		Count(&count).Error
	if err != nil {
		return nil, err
	}

	var names []string
	err = r.db.WithContext(ctx).
		Model(&models.Dish{}).
		Joins("JOIN dish_ingredient_relations ON dish_ingredient_relations.dish_id = dishes.id").
		Where("dish_ingredient_relations.ingredient_id = ?", id).
		Order("dishes.id ASC").
		Limit(nameLimit).
		Pluck("dishes.name", &names).Error
	if err != nil {
		return nil, err
	}

	return &repositories.IngredientUsage{Count: count, DishNames: names}, nil
}

// SearchByName matches with SQL LIKE; case sensitivity follows the database
// collation. An empty query is handled by the caller.
func (r *IngredientRepositoryImpl) SearchByName(ctx context.Context, q string, limit int) ([]*models.Ingredient, error) {
	var ingredients []*models.Ingredient
	err := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+q+"%").
		Order("name ASC").
		Limit(limit).
		Find(&ingredients).Error
	return ingredients, err
}
