package serviceimpl

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menu-catalog/domain/dto"
	"menu-catalog/domain/models"
	"menu-catalog/domain/services"
)

func TestIngredientServiceCreate(t *testing.T) {
	_, _, ingredientService, masterData := newServices(t)
	ctx := context.Background()
	require.NoError(t, masterData.Seed(ctx))

	pork, err := ingredientService.Create(ctx, &dto.IngredientForm{Name: "豚肉", CategoryID: 1})
	require.NoError(t, err)
	assert.NotZero(t, pork.ID)
	assert.Equal(t, 1, pork.DisplayOrder)

	chicken, err := ingredientService.Create(ctx, &dto.IngredientForm{Name: "鶏肉", CategoryID: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, chicken.DisplayOrder)
}

func TestIngredientServiceCreateValidation(t *testing.T) {
	_, _, ingredientService, masterData := newServices(t)
	ctx := context.Background()
	require.NoError(t, masterData.Seed(ctx))

	_, err := ingredientService.Create(ctx, &dto.IngredientForm{Name: "豚肉", CategoryID: 1})
	require.NoError(t, err)

	tests := []struct {
		name       string
		form       dto.IngredientForm
		wantFields []string
	}{
		{
			name:       "empty name",
			form:       dto.IngredientForm{Name: "", CategoryID: 1},
			wantFields: []string{"name"},
		},
		{
			name:       "name over 100 runes",
			form:       dto.IngredientForm{Name: strings.Repeat("あ", 101), CategoryID: 1},
			wantFields: []string{"name"},
		},
		{
			name:       "missing category",
			form:       dto.IngredientForm{Name: "玉ねぎ", CategoryID: 0},
			wantFields: []string{"category_id"},
		},
		{
			name:       "unknown category",
			form:       dto.IngredientForm{Name: "玉ねぎ", CategoryID: 99},
			wantFields: []string{"category_id"},
		},
		{
			name:       "duplicate name",
			form:       dto.IngredientForm{Name: "豚肉", CategoryID: 2},
			wantFields: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ingredientService.Create(ctx, &tt.form)
			require.Error(t, err)
			ve, ok := services.AsValidationError(err)
			require.True(t, ok, "expected a validation error, got %v", err)
			assert.ElementsMatch(t, tt.wantFields, fieldNames(ve))
		})
	}
}

func TestIngredientServiceCreatePropagatesLookupFailure(t *testing.T) {
	db, _, ingredientService, masterData := newServices(t)
	ctx := context.Background()
	require.NoError(t, masterData.Seed(ctx))

	// With the categories table gone, the existence check fails. That must
	// abort the create, not pass for valid.
	require.NoError(t, db.Migrator().DropTable(&models.IngredientCategory{}))

	_, err := ingredientService.Create(ctx, &dto.IngredientForm{Name: "豚肉", CategoryID: 1})
	require.Error(t, err)
	_, isValidation := services.AsValidationError(err)
	assert.False(t, isValidation)

	var count int64
	require.NoError(t, db.Model(&models.Ingredient{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestIngredientServiceDelete(t *testing.T) {
	_, dishService, ingredientService, masterData := newServices(t)
	ctx := context.Background()
	require.NoError(t, masterData.Seed(ctx))

	pork, err := ingredientService.Create(ctx, &dto.IngredientForm{Name: "豚肉", CategoryID: 1})
	require.NoError(t, err)

	dish, err := dishService.Create(ctx, &dto.DishInput{
		Name: "生姜焼き", Difficulty: 1, IngredientIDs: []uint{pork.ID},
	})
	require.NoError(t, err)

	deleted, err := ingredientService.Delete(ctx, pork.ID)
	require.NoError(t, err)
	assert.Equal(t, "豚肉", deleted.Name)

	// The referencing dish stays, now without the ingredient.
	got, err := dishService.GetByID(ctx, dish.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Ingredients)

	_, err = ingredientService.Delete(ctx, pork.ID)
	assert.ErrorIs(t, err, services.ErrIngredientNotFound)
}

func TestIngredientServiceUsage(t *testing.T) {
	_, dishService, ingredientService, masterData := newServices(t)
	ctx := context.Background()
	require.NoError(t, masterData.Seed(ctx))

	pork, err := ingredientService.Create(ctx, &dto.IngredientForm{Name: "豚肉", CategoryID: 1})
	require.NoError(t, err)

	names := []string{"生姜焼き", "豚汁", "角煮", "回鍋肉", "トンテキ", "肉じゃが", "カレー"}
	for _, name := range names {
		_, err := dishService.Create(ctx, &dto.DishInput{
			Name: name, Difficulty: 1, IngredientIDs: []uint{pork.ID},
		})
		require.NoError(t, err)
	}

	usage, err := ingredientService.Usage(ctx, pork.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), usage.Count)
	assert.Len(t, usage.DishNames, 5)

	_, err = ingredientService.Usage(ctx, 999)
	assert.ErrorIs(t, err, services.ErrIngredientNotFound)
}

func TestIngredientServiceAutocomplete(t *testing.T) {
	_, _, ingredientService, masterData := newServices(t)
	ctx := context.Background()
	require.NoError(t, masterData.Seed(ctx))

	for _, name := range []string{"豚肉", "豚バラ", "鶏肉"} {
		_, err := ingredientService.Create(ctx, &dto.IngredientForm{Name: name, CategoryID: 1})
		require.NoError(t, err)
	}

	results, err := ingredientService.Autocomplete(ctx, "豚")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Blank and whitespace queries return nothing, never the full list.
	for _, q := range []string{"", "   "} {
		results, err := ingredientService.Autocomplete(ctx, q)
		require.NoError(t, err)
		assert.Empty(t, results)
	}
}

func TestIngredientServiceCategories(t *testing.T) {
	_, _, ingredientService, masterData := newServices(t)
	ctx := context.Background()
	require.NoError(t, masterData.Seed(ctx))

	_, err := ingredientService.Create(ctx, &dto.IngredientForm{Name: "鮭", CategoryID: 2})
	require.NoError(t, err)

	categories, err := ingredientService.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 5)
	assert.Equal(t, "肉", categories[0].Name)
	require.Len(t, categories[1].Ingredients, 1)
	assert.Equal(t, "鮭", categories[1].Ingredients[0].Name)
}
