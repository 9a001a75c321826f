package serviceimpl

import (
	"context"
	"time"

	"gorm.io/gorm"

	"menu-catalog/domain/models"
	"menu-catalog/domain/repositories"
	"menu-catalog/domain/services"
	"menu-catalog/pkg/logger"
)

// masterDataVersion guards the one-time seed. The marker row commits in the
// same transaction as the seed rows, so a partial seed rolls back whole and
// a restart retries it from scratch.
const masterDataVersion = 1

var seedCategories = []models.IngredientCategory{
	{ID: 1, Name: "肉", DisplayOrder: 1},
	{ID: 2, Name: "魚介", DisplayOrder: 2},
	{ID: 3, Name: "野菜", DisplayOrder: 3},
	{ID: 4, Name: "加工食品", DisplayOrder: 4},
	{ID: 5, Name: "既製品", DisplayOrder: 5},
}

var seedGenres = []models.DishGenre{
	{ID: 1, Name: "和風"},
	{ID: 2, Name: "洋風"},
	{ID: 3, Name: "中華"},
	{ID: 4, Name: "パスタ"},
	{ID: 5, Name: "麺"},
	{ID: 6, Name: "海鮮"},
	{ID: 7, Name: "汁物"},
	{ID: 8, Name: "副菜"},
}

type MasterDataServiceImpl struct {
	db        *gorm.DB
	genreRepo repositories.GenreRepository
}

func NewMasterDataService(db *gorm.DB, genreRepo repositories.GenreRepository) services.MasterDataService {
	return &MasterDataServiceImpl{db: db, genreRepo: genreRepo}
}

func (s *MasterDataServiceImpl) Seed(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var applied int64
		if err := tx.Model(&models.SeedState{}).
			Where("version = ?", masterDataVersion).
			Count(&applied).Error; err != nil {
			return err
		}
		if applied > 0 {
			logger.DebugContext(ctx, "Master data already seeded", "version", masterDataVersion)
			return nil
		}

		for _, category := range seedCategories {
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
		}
		for _, genre := range seedGenres {
			if err := tx.Create(&genre).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&models.SeedState{
			Version:  masterDataVersion,
			SeededAt: time.Now().UTC(),
		}).Error; err != nil {
			return err
		}

		logger.InfoContext(ctx, "Master data seeded",
			"version", masterDataVersion,
			"categories", len(seedCategories),
			"genres", len(seedGenres),
		)
		return nil
	})
}

func (s *MasterDataServiceImpl) Genres(ctx context.Context) ([]*models.DishGenre, error) {
	return s.genreRepo.List(ctx)
}
