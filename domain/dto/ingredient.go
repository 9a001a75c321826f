package dto

import "menu-catalog/domain/models"

// === Requests ===

type IngredientForm struct {
	Name       string `json:"name" form:"name" validate:"required,min=1,max=100"`
	CategoryID uint   `json:"category_id" form:"category_id" validate:"required"`
	Referrer   string `json:"referrer" form:"referrer"`
}

// === Responses ===

// IngredientResponse keys match the autocomplete wire format consumed by the
// ingredient picker.
type IngredientResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	CategoryID uint   `json:"category_id"`
}

type CategoryResponse struct {
	ID           uint                 `json:"id"`
	Name         string               `json:"name"`
	DisplayOrder int                  `json:"displayOrder"`
	Ingredients  []IngredientResponse `json:"ingredients"`
}

// IngredientUsageResponse answers the delete-confirmation check. Dishes holds
// at most the first five names; HasMore flags a truncated list.
type IngredientUsageResponse struct {
	Count   int64    `json:"count"`
	Dishes  []string `json:"dishes"`
	HasMore bool     `json:"has_more"`
}

// IngredientsPageResponse backs the management page. Filtered mirrors
// Categories unless a category_id filter narrows it.
type IngredientsPageResponse struct {
	Categories         []CategoryResponse `json:"categories"`
	Filtered           []CategoryResponse `json:"filtered"`
	SelectedCategoryID uint               `json:"selectedCategoryId,omitempty"`
}

// === Mappers ===

func IngredientToIngredientResponse(ing *models.Ingredient) *IngredientResponse {
	if ing == nil {
		return nil
	}
	return &IngredientResponse{ID: ing.ID, Name: ing.Name, CategoryID: ing.CategoryID}
}

func IngredientsToIngredientResponses(ingredients []*models.Ingredient) []IngredientResponse {
	responses := make([]IngredientResponse, len(ingredients))
	for i, ing := range ingredients {
		responses[i] = *IngredientToIngredientResponse(ing)
	}
	return responses
}

func CategoryToCategoryResponse(category *models.IngredientCategory) *CategoryResponse {
	if category == nil {
		return nil
	}
	resp := &CategoryResponse{
		ID:           category.ID,
		Name:         category.Name,
		DisplayOrder: category.DisplayOrder,
		Ingredients:  make([]IngredientResponse, len(category.Ingredients)),
	}
	for i, ing := range category.Ingredients {
		resp.Ingredients[i] = IngredientResponse{ID: ing.ID, Name: ing.Name, CategoryID: ing.CategoryID}
	}
	return resp
}

func CategoriesToCategoryResponses(categories []*models.IngredientCategory) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *CategoryToCategoryResponse(category)
	}
	return responses
}
