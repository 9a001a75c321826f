package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"menu-catalog/domain/models"
)

func TestIngredientRepositoryCreateAssignsDisplayOrder(t *testing.T) {
	db := setupTestDB(t)
	meat := createCategory(t, db, "meat", 1)
	seafood := createCategory(t, db, "seafood", 2)

	pork := createIngredient(t, db, "pork", meat.ID)
	chicken := createIngredient(t, db, "chicken", meat.ID)
	// Order is scoped per category, so the first seafood row starts at 1.
	salmon := createIngredient(t, db, "salmon", seafood.ID)

	assert.Equal(t, 1, pork.DisplayOrder)
	assert.Equal(t, 2, chicken.DisplayOrder)
	assert.Equal(t, 1, salmon.DisplayOrder)
}

func TestIngredientRepositoryCreateDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	meat := createCategory(t, db, "meat", 1)
	createIngredient(t, db, "pork", meat.ID)

	err := NewIngredientRepository(db).Create(context.Background(),
		&models.Ingredient{Name: "pork", CategoryID: meat.ID})
	assert.Error(t, err)
}

func TestIngredientRepositoryDeleteDetachesFromDishes(t *testing.T) {
	db := setupTestDB(t)
	meat := createCategory(t, db, "meat", 1)
	pork := createIngredient(t, db, "pork", meat.ID)
	onion := createIngredient(t, db, "onion", meat.ID)
	dish := createDish(t, db, "stew", nil, []models.Ingredient{*pork, *onion})

	repo := NewIngredientRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, pork.ID))

	_, err := repo.GetByID(ctx, pork.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The dish survives with its remaining ingredient.
	got, err := NewDishRepository(db).GetByID(ctx, dish.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{onion.ID}, got.IngredientIDs())
}

func TestIngredientRepositoryUsage(t *testing.T) {
	db := setupTestDB(t)
	meat := createCategory(t, db, "meat", 1)
	pork := createIngredient(t, db, "pork", meat.ID)

	for i := 0; i < 7; i++ {
		createDish(t, db, fmt.Sprintf("dish-%d", i), nil, []models.Ingredient{*pork})
	}

	usage, err := NewIngredientRepository(db).Usage(context.Background(), pork.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(7), usage.Count)
	// Names cap at the limit, earliest dishes first.
	assert.Equal(t, []string{"dish-0", "dish-1", "dish-2", "dish-3", "dish-4"}, usage.DishNames)
}

func TestIngredientRepositoryUsageUnused(t *testing.T) {
	db := setupTestDB(t)
	meat := createCategory(t, db, "meat", 1)
	pork := createIngredient(t, db, "pork", meat.ID)

	usage, err := NewIngredientRepository(db).Usage(context.Background(), pork.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), usage.Count)
	assert.Empty(t, usage.DishNames)
}

func TestIngredientRepositorySearchByName(t *testing.T) {
	db := setupTestDB(t)
	meat := createCategory(t, db, "meat", 1)
	createIngredient(t, db, "pork belly", meat.ID)
	createIngredient(t, db, "pork loin", meat.ID)
	createIngredient(t, db, "ground pork", meat.ID)
	createIngredient(t, db, "chicken", meat.ID)

	repo := NewIngredientRepository(db)
	ctx := context.Background()

	results, err := repo.SearchByName(ctx, "pork", 10)
	require.NoError(t, err)
	names := make([]string, len(results))
	for i, ing := range results {
		names[i] = ing.Name
	}
	// Substring match anywhere in the name, ordered by name.
	assert.Equal(t, []string{"ground pork", "pork belly", "pork loin"}, names)

	limited, err := repo.SearchByName(ctx, "pork", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	none, err := repo.SearchByName(ctx, "beef", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCategoryRepositoryListOrdersIngredients(t *testing.T) {
	db := setupTestDB(t)
	// Inserted out of display order on purpose.
	seafood := createCategory(t, db, "seafood", 2)
	meat := createCategory(t, db, "meat", 1)
	createIngredient(t, db, "salmon", seafood.ID)
	createIngredient(t, db, "pork", meat.ID)
	createIngredient(t, db, "chicken", meat.ID)

	categories, err := NewCategoryRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "meat", categories[0].Name)
	assert.Equal(t, "seafood", categories[1].Name)

	require.Len(t, categories[0].Ingredients, 2)
	assert.Equal(t, "pork", categories[0].Ingredients[0].Name)
	assert.Equal(t, "chicken", categories[0].Ingredients[1].Name)
}

func TestGenreRepositoryGetByIDsSkipsUnknown(t *testing.T) {
	db := setupTestDB(t)
	washoku := createGenre(t, db, "washoku")

	genres, err := NewGenreRepository(db).GetByIDs(context.Background(), []uint{washoku.ID, 999})
	require.NoError(t, err)
	require.Len(t, genres, 1)
	assert.Equal(t, washoku.ID, genres[0].ID)
}
