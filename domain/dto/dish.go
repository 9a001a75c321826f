package dto

import (
	"time"

	"menu-catalog/domain/models"
)

// === Requests ===

// DishForm carries a dish submission. IngredientIDs arrives as a
// comma-separated id list from the client-side picker; the handler parses it
// before validation.
type DishForm struct {
	Name          string `json:"name" form:"name" validate:"required,min=1,max=100"`
	GenreIDs      []uint `json:"genre_ids" form:"genre_ids"`
	IngredientIDs string `json:"ingredient_ids" form:"ingredient_ids"`
	Difficulty    int    `json:"difficulty" form:"difficulty" validate:"required,min=1,max=5"`
	Memo          string `json:"memo" form:"memo"`
	Referrer      string `json:"referrer" form:"referrer"`
}

// DishInput is the validated value object the service layer works with.
type DishInput struct {
	Name          string
	GenreIDs      []uint
	IngredientIDs []uint
	Difficulty    int
	Memo          string
}

// === Responses ===

type GenreResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type DishResponse struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Difficulty  int                  `json:"difficulty"`
	Memo        string               `json:"memo,omitempty"`
	Genres      []GenreResponse      `json:"genres"`
	Ingredients []IngredientResponse `json:"ingredients"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

type DishDetailResponse struct {
	Dish     DishResponse `json:"dish"`
	Referrer string       `json:"referrer"`
}

// DishFormPageResponse is the payload backing the create/edit form pages.
type DishFormPageResponse struct {
	Dish       *DishResponse      `json:"dish,omitempty"`
	Categories []CategoryResponse `json:"categories"`
	Genres     []GenreResponse    `json:"genres"`
	IsNew      bool               `json:"isNew"`
}

// FormErrorResponse re-renders a form: field errors plus the prior input.
type FormErrorResponse struct {
	FieldErrors []FieldError `json:"fieldErrors"`
	Form        any          `json:"form"`
}

// === Mappers ===

func DishToDishResponse(dish *models.Dish) *DishResponse {
	if dish == nil {
		return nil
	}
	resp := &DishResponse{
		ID:          dish.ID,
		Name:        dish.Name,
		Difficulty:  dish.Difficulty,
		Memo:        dish.Memo,
		Genres:      make([]GenreResponse, len(dish.Genres)),
		Ingredients: make([]IngredientResponse, len(dish.Ingredients)),
		CreatedAt:   dish.CreatedAt,
		UpdatedAt:   dish.UpdatedAt,
	}
	for i, g := range dish.Genres {
		resp.Genres[i] = GenreResponse{ID: g.ID, Name: g.Name}
	}
	for i, ing := range dish.Ingredients {
		resp.Ingredients[i] = IngredientResponse{ID: ing.ID, Name: ing.Name, CategoryID: ing.CategoryID}
	}
	return resp
}

func DishesToDishResponses(dishes []*models.Dish) []DishResponse {
	responses := make([]DishResponse, len(dishes))
	for i, dish := range dishes {
		responses[i] = *DishToDishResponse(dish)
	}
	return responses
}

func GenresToGenreResponses(genres []*models.DishGenre) []GenreResponse {
	responses := make([]GenreResponse, len(genres))
	for i, g := range genres {
		responses[i] = GenreResponse{ID: g.ID, Name: g.Name}
	}
	return responses
}
