package database

import (
	"context"

	"gorm.io/gorm"

	"menu-catalog/domain/models"
	"menu-catalog/domain/repositories"
)

type GenreRepositoryImpl struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) repositories.GenreRepository {
	return &GenreRepositoryImpl{db: db}
}

func (r *GenreRepositoryImpl) List(ctx context.Context) ([]*models.DishGenre, error) {
	var genres []*models.DishGenre
	err := r.db.WithContext(ctx).Order("id ASC").Find(&genres).Error
	return genres, err
}

func (r *GenreRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]models.DishGenre, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var genres []models.DishGenre
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&genres).Error
	return genres, err
}

func (r *GenreRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.DishGenre{}).Count(&count).Error
	return count, err
}
