package database

import (
	"context"

	"gorm.io/gorm"

	"menu-catalog/domain/models"
	"menu-catalog/domain/repositories"
)

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*models.IngredientCategory, error) {
	var categories []*models.IngredientCategory
	err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.IngredientCategory, error) {
	var category models.IngredientCategory
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.IngredientCategory{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.IngredientCategory{}).Count(&count).Error
	return count, err
}
