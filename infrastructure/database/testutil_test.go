package database

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"menu-catalog/domain/models"
)

// setupTestDB opens a per-test in-memory sqlite database and migrates the
// full schema. The DSN is namespaced by test name so parallel tests never
// share state.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func createCategory(t *testing.T, db *gorm.DB, name string, order int) *models.IngredientCategory {
	t.Helper()
	category := &models.IngredientCategory{Name: name, DisplayOrder: order}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createGenre(t *testing.T, db *gorm.DB, name string) *models.DishGenre {
	t.Helper()
	genre := &models.DishGenre{Name: name}
	require.NoError(t, db.Create(genre).Error)
	return genre
}

func createIngredient(t *testing.T, db *gorm.DB, name string, categoryID uint) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{Name: name, CategoryID: categoryID}
	require.NoError(t, NewIngredientRepository(db).Create(context.Background(), ingredient))
	return ingredient
}

func createDish(t *testing.T, db *gorm.DB, name string, genres []models.DishGenre, ingredients []models.Ingredient) *models.Dish {
	t.Helper()
	dish := &models.Dish{
		Name:        name,
		Difficulty:  1,
		Genres:      genres,
		Ingredients: ingredients,
	}
	require.NoError(t, NewDishRepository(db).Create(context.Background(), dish))
	return dish
}
