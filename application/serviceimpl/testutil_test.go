package serviceimpl

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"menu-catalog/domain/services"
	"menu-catalog/infrastructure/database"
)

// testLimits mirror the default catalog configuration.
var testLimits = DishLimits{
	MaxGenres:      2,
	MaxIngredients: 10,
	MaxMemoLength:  500,
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// newServices wires the real repositories over a fresh database and seeds
// the master data, the same stack the container builds.
func newServices(t *testing.T) (*gorm.DB, services.DishService, services.IngredientService, services.MasterDataService) {
	t.Helper()

	db := setupTestDB(t)

	categoryRepo := database.NewCategoryRepository(db)
	genreRepo := database.NewGenreRepository(db)
	ingredientRepo := database.NewIngredientRepository(db)
	dishRepo := database.NewDishRepository(db)

	dishService := NewDishService(dishRepo, genreRepo, ingredientRepo, testLimits)
	ingredientService := NewIngredientService(ingredientRepo, categoryRepo)
	masterDataService := NewMasterDataService(db, genreRepo)

	return db, dishService, ingredientService, masterDataService
}
