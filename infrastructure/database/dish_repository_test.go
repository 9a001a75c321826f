package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"menu-catalog/domain/models"
	"menu-catalog/domain/repositories"
)

// buildCatalog inserts two genres, four ingredients and four dishes with
// known memberships:
//
//	curry: genre washoku, ingredients pork+onion+carrot
//	stew:  genre yoshoku, ingredients pork+onion
//	salad: genre yoshoku, ingredients onion
//	plain: no genres, no ingredients
func buildCatalog(t *testing.T, db *gorm.DB) (genres map[string]*models.DishGenre, ingredients map[string]*models.Ingredient, dishes map[string]*models.Dish) {
	t.Helper()

	category := createCategory(t, db, "vegetables", 1)

	genres = map[string]*models.DishGenre{
		"washoku": createGenre(t, db, "washoku"),
		"yoshoku": createGenre(t, db, "yoshoku"),
	}
	ingredients = map[string]*models.Ingredient{
		"pork":   createIngredient(t, db, "pork", category.ID),
		"onion":  createIngredient(t, db, "onion", category.ID),
		"carrot": createIngredient(t, db, "carrot", category.ID),
		"tofu":   createIngredient(t, db, "tofu", category.ID),
	}

	dishes = map[string]*models.Dish{
		"curry": createDish(t, db, "curry",
			[]models.DishGenre{*genres["washoku"]},
			[]models.Ingredient{*ingredients["pork"], *ingredients["onion"], *ingredients["carrot"]}),
		"stew": createDish(t, db, "stew",
			[]models.DishGenre{*genres["yoshoku"]},
			[]models.Ingredient{*ingredients["pork"], *ingredients["onion"]}),
		"salad": createDish(t, db, "salad",
			[]models.DishGenre{*genres["yoshoku"]},
			[]models.Ingredient{*ingredients["onion"]}),
		"plain": createDish(t, db, "plain", nil, nil),
	}
	return genres, ingredients, dishes
}

func dishNames(dishes []*models.Dish) []string {
	names := make([]string, len(dishes))
	for i, d := range dishes {
		names[i] = d.Name
	}
	return names
}

func TestDishRepositoryCreateWritesGenreEdges(t *testing.T) {
	db := setupTestDB(t)
	washoku := createGenre(t, db, "washoku")
	repo := NewDishRepository(db)
	ctx := context.Background()

	dish := createDish(t, db, "soup", []models.DishGenre{*washoku}, nil)

	// The edge must land in dish_genre_relations under its own columns.
	var edges []models.DishGenreRelation
	require.NoError(t, db.Find(&edges).Error)
	require.Len(t, edges, 1)
	assert.Equal(t, dish.ID, edges[0].DishID)
	assert.Equal(t, washoku.ID, edges[0].GenreID)

	// And the genre filter must find the dish through it.
	dishes, total, err := repo.Search(ctx, repositories.DishFilter{
		GenreIDs: []uint{washoku.ID},
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, dishes, 1)
	assert.Equal(t, dish.ID, dishes[0].ID)
}

func TestDishRepositorySearchModes(t *testing.T) {
	db := setupTestDB(t)
	genres, ingredients, _ := buildCatalog(t, db)
	repo := NewDishRepository(db)
	ctx := context.Background()

	pork := ingredients["pork"].ID
	onion := ingredients["onion"].ID
	carrot := ingredients["carrot"].ID
	tofu := ingredients["tofu"].ID

	tests := []struct {
		name   string
		filter repositories.DishFilter
		want   []string // unordered
	}{
		{
			name:   "no filter returns everything",
			filter: repositories.DishFilter{Limit: 10},
			want:   []string{"curry", "stew", "salad", "plain"},
		},
		{
			name: "fuzzy matches any selected ingredient",
			filter: repositories.DishFilter{
				IngredientIDs: []uint{pork, carrot},
				Mode:          repositories.MatchModeFuzzy,
				Limit:         10,
			},
			want: []string{"curry", "stew"},
		},
		{
			name: "exact requires every selected ingredient",
			filter: repositories.DishFilter{
				IngredientIDs: []uint{pork, onion},
				Mode:          repositories.MatchModeExact,
				Limit:         10,
			},
			// curry is a superset of the selection and still matches
			want: []string{"curry", "stew"},
		},
		{
			name: "exact with full selection",
			filter: repositories.DishFilter{
				IngredientIDs: []uint{pork, onion, carrot},
				Mode:          repositories.MatchModeExact,
				Limit:         10,
			},
			want: []string{"curry"},
		},
		{
			name: "unused ingredient matches nothing in exact mode",
			filter: repositories.DishFilter{
				IngredientIDs: []uint{pork, tofu},
				Mode:          repositories.MatchModeExact,
				Limit:         10,
			},
			want: []string{},
		},
		{
			name: "genre filter is OR across genres",
			filter: repositories.DishFilter{
				GenreIDs: []uint{genres["washoku"].ID, genres["yoshoku"].ID},
				Limit:    10,
			},
			want: []string{"curry", "stew", "salad"},
		},
		{
			name: "genre narrows an ingredient match",
			filter: repositories.DishFilter{
				IngredientIDs: []uint{onion},
				GenreIDs:      []uint{genres["yoshoku"].ID},
				Mode:          repositories.MatchModeFuzzy,
				Limit:         10,
			},
			want: []string{"stew", "salad"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dishes, total, err := repo.Search(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), total)
			assert.ElementsMatch(t, tt.want, dishNames(dishes))
		})
	}
}

func TestDishRepositorySearchOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDishRepository(db)
	ctx := context.Background()

	// Equal timestamps make id the tiebreaker.
	now := time.Now().UTC().Truncate(time.Second)
	for _, name := range []string{"first", "second", "third"} {
		dish := &models.Dish{Name: name, Difficulty: 1}
		require.NoError(t, db.Create(dish).Error)
		require.NoError(t, db.Model(dish).UpdateColumn("updated_at", now).Error)
	}

	// Touching "first" moves it to the front.
	require.NoError(t, db.Model(&models.Dish{}).
		Where("name = ?", "first").
		UpdateColumn("updated_at", now.Add(time.Minute)).Error)

	dishes, total, err := repo.Search(ctx, repositories.DishFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []string{"first", "third", "second"}, dishNames(dishes))
}

func TestDishRepositorySearchPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDishRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		dish := &models.Dish{Name: string(rune('a' + i)), Difficulty: 1}
		require.NoError(t, db.Create(dish).Error)
		require.NoError(t, db.Model(dish).UpdateColumn("updated_at", now.Add(time.Duration(i)*time.Second)).Error)
	}

	// Pages concatenate to the full ordered set with no overlap.
	var seen []string
	for offset := 0; offset < 5; offset += 2 {
		page, total, err := repo.Search(ctx, repositories.DishFilter{Offset: offset, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		seen = append(seen, dishNames(page)...)
	}
	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, seen)

	// A page past the end is empty, not an error.
	page, total, err := repo.Search(ctx, repositories.DishFilter{Offset: 100, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, page)
}

func TestDishRepositoryUpdateReplacesMemberships(t *testing.T) {
	db := setupTestDB(t)
	genres, ingredients, dishes := buildCatalog(t, db)
	repo := NewDishRepository(db)
	ctx := context.Background()

	curry := dishes["curry"]
	curry.Name = "beef curry"
	curry.Difficulty = 3
	curry.Memo = "weeknight staple"

	err := repo.Update(ctx, curry,
		[]models.DishGenre{*genres["yoshoku"]},
		[]models.Ingredient{*ingredients["tofu"]})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, curry.ID)
	require.NoError(t, err)
	assert.Equal(t, "beef curry", got.Name)
	assert.Equal(t, 3, got.Difficulty)
	assert.Equal(t, "weeknight staple", got.Memo)
	assert.Equal(t, []uint{genres["yoshoku"].ID}, got.GenreIDs())
	assert.Equal(t, []uint{ingredients["tofu"].ID}, got.IngredientIDs())

	// No leftover edges from the old memberships.
	var edges int64
	require.NoError(t, db.Model(&models.DishIngredientRelation{}).
		Where("dish_id = ?", curry.ID).Count(&edges).Error)
	assert.Equal(t, int64(1), edges)
}

func TestDishRepositoryUpdateToEmptyMemberships(t *testing.T) {
	db := setupTestDB(t)
	_, _, dishes := buildCatalog(t, db)
	repo := NewDishRepository(db)
	ctx := context.Background()

	stew := dishes["stew"]
	require.NoError(t, repo.Update(ctx, stew, nil, nil))

	got, err := repo.GetByID(ctx, stew.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Genres)
	assert.Empty(t, got.Ingredients)
}

func TestDishRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	_, ingredients, dishes := buildCatalog(t, db)
	repo := NewDishRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, dishes["curry"].ID))

	exists, err := repo.Exists(ctx, dishes["curry"].ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Membership rows are gone; the ingredients themselves survive.
	var edges int64
	require.NoError(t, db.Model(&models.DishIngredientRelation{}).
		Where("dish_id = ?", dishes["curry"].ID).Count(&edges).Error)
	assert.Equal(t, int64(0), edges)

	var remaining int64
	require.NoError(t, db.Model(&models.Ingredient{}).Count(&remaining).Error)
	assert.Equal(t, int64(len(ingredients)), remaining)
}
