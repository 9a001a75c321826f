package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"menu-catalog/domain/dto"
	"menu-catalog/domain/services"
	"menu-catalog/pkg/logger"
	"menu-catalog/pkg/utils"
)

type IngredientHandler struct {
	ingredientService services.IngredientService
}

func NewIngredientHandler(ingredientService services.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// NewForm handles GET /ingredient/new.
func (h *IngredientHandler) NewForm(c *fiber.Ctx) error {
	categories, err := h.ingredientService.Categories(c.UserContext())
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}
	return utils.SuccessResponse(c, fiber.Map{
		"categories": dto.CategoriesToCategoryResponses(categories),
	})
}

// Create handles POST /ingredient/new.
func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var form dto.IngredientForm
	if err := c.BodyParser(&form); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&form); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		return utils.FormValidationResponse(c, dto.FormErrorResponse{FieldErrors: fieldErrors, Form: form})
	}

	if _, err := h.ingredientService.Create(ctx, &form); err != nil {
		if ve, ok := services.AsValidationError(err); ok {
			return utils.FormValidationResponse(c, dto.FormErrorResponse{FieldErrors: ve.Fields, Form: form})
		}
		return utils.InternalServerErrorResponse(c)
	}

	if form.Referrer != "" {
		return utils.RedirectResponse(c, form.Referrer)
	}
	return utils.RedirectResponse(c, "/ingredients")
}

// Manage handles GET /ingredients with an optional category_id filter.
func (h *IngredientHandler) Manage(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categories, err := h.ingredientService.Categories(ctx)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	responses := dto.CategoriesToCategoryResponses(categories)
	filtered := responses
	categoryID := uint(c.QueryInt("category_id", 0))
	if categoryID > 0 {
		filtered = []dto.CategoryResponse{}
		for _, cat := range responses {
			if cat.ID == categoryID {
				filtered = append(filtered, cat)
			}
		}
	}

	return utils.SuccessResponse(c, dto.IngredientsPageResponse{
		Categories:         responses,
		Filtered:           filtered,
		SelectedCategoryID: categoryID,
	})
}

// CheckUsage handles GET /ingredient/:id/check-usage. The response shape is
// what the delete-confirmation dialog consumes.
func (h *IngredientHandler) CheckUsage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequestResponse(c, "Invalid ingredient ID")
	}

	usage, err := h.ingredientService.Usage(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrIngredientNotFound) {
			return utils.NotFoundResponse(c, "Ingredient not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	dishes := usage.DishNames
	if dishes == nil {
		dishes = []string{}
	}
	return c.JSON(dto.IngredientUsageResponse{
		Count:   usage.Count,
		Dishes:  dishes,
		HasMore: usage.Count > int64(len(dishes)),
	})
}

// Delete handles POST /ingredient/:id/delete. Membership rows cascade; dish
// rows survive.
func (h *IngredientHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequestResponse(c, "Invalid ingredient ID")
	}

	if _, err := h.ingredientService.Delete(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrIngredientNotFound) {
			return utils.NotFoundResponse(c, "Ingredient not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.RedirectResponse(c, "/ingredients")
}

// Autocomplete handles GET /ingredient/search. Returns a bare JSON array;
// an empty query yields [].
func (h *IngredientHandler) Autocomplete(c *fiber.Ctx) error {
	q := c.Query("q")

	ingredients, err := h.ingredientService.Autocomplete(c.UserContext(), q)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return c.JSON(dto.IngredientsToIngredientResponses(ingredients))
}
