package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"menu-catalog/domain/dto"
	"menu-catalog/domain/services"
	"menu-catalog/pkg/logger"
	"menu-catalog/pkg/utils"
)

type DishHandler struct {
	dishService       services.DishService
	ingredientService services.IngredientService
	masterDataService services.MasterDataService
}

func NewDishHandler(
	dishService services.DishService,
	ingredientService services.IngredientService,
	masterDataService services.MasterDataService,
) *DishHandler {
	return &DishHandler{
		dishService:       dishService,
		ingredientService: ingredientService,
		masterDataService: masterDataService,
	}
}

// Detail handles GET /dish/:id.
func (h *DishHandler) Detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequestResponse(c, "Invalid dish ID")
	}

	dish, err := h.dishService.GetByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrDishNotFound) {
			return utils.NotFoundResponse(c, "Dish not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	referrer := c.Query("referrer")
	if referrer == "" {
		referrer = c.Get(fiber.HeaderReferer, "/")
	}

	return utils.SuccessResponse(c, dto.DishDetailResponse{
		Dish:     *dto.DishToDishResponse(dish),
		Referrer: referrer,
	})
}

// NewForm handles GET /dish/new.
func (h *DishHandler) NewForm(c *fiber.Ctx) error {
	return h.formPage(c, nil)
}

// Create handles POST /dish/new.
func (h *DishHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var form dto.DishForm
	if err := c.BodyParser(&form); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&form); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		return utils.FormValidationResponse(c, dto.FormErrorResponse{FieldErrors: fieldErrors, Form: form})
	}

	input := dishFormToInput(&form)
	if _, err := h.dishService.Create(ctx, input); err != nil {
		if ve, ok := services.AsValidationError(err); ok {
			return utils.FormValidationResponse(c, dto.FormErrorResponse{FieldErrors: ve.Fields, Form: form})
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.RedirectResponse(c, "/edit")
}

// EditForm handles GET /dish/:id/edit.
func (h *DishHandler) EditForm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequestResponse(c, "Invalid dish ID")
	}

	dish, err := h.dishService.GetByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrDishNotFound) {
			return utils.NotFoundResponse(c, "Dish not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return h.formPage(c, dto.DishToDishResponse(dish))
}

// Update handles POST /dish/:id/edit. The referrer hidden field decides the
// post-save redirect target.
func (h *DishHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequestResponse(c, "Invalid dish ID")
	}

	var form dto.DishForm
	if err := c.BodyParser(&form); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&form); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		return utils.FormValidationResponse(c, dto.FormErrorResponse{FieldErrors: fieldErrors, Form: form})
	}

	input := dishFormToInput(&form)
	dish, err := h.dishService.Update(ctx, uint(id), input)
	if err != nil {
		if errors.Is(err, services.ErrDishNotFound) {
			return utils.NotFoundResponse(c, "Dish not found")
		}
		if ve, ok := services.AsValidationError(err); ok {
			return utils.FormValidationResponse(c, dto.FormErrorResponse{FieldErrors: ve.Fields, Form: form})
		}
		return utils.InternalServerErrorResponse(c)
	}

	// Coming from the detail page, go back to it; otherwise honor the
	// referrer, falling back to the management page.
	if strings.Contains(form.Referrer, "dish/") {
		return utils.RedirectResponse(c, fmt.Sprintf("/dish/%d", dish.ID))
	}
	if form.Referrer != "" {
		return utils.RedirectResponse(c, form.Referrer)
	}
	return utils.RedirectResponse(c, "/edit")
}

// Delete handles POST /dish/:id/delete.
func (h *DishHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequestResponse(c, "Invalid dish ID")
	}

	if err := h.dishService.Delete(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrDishNotFound) {
			return utils.NotFoundResponse(c, "Dish not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.RedirectResponse(c, "/edit")
}

func (h *DishHandler) formPage(c *fiber.Ctx, dish *dto.DishResponse) error {
	ctx := c.UserContext()

	categories, err := h.ingredientService.Categories(ctx)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}
	genres, err := h.masterDataService.Genres(ctx)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.DishFormPageResponse{
		Dish:       dish,
		Categories: dto.CategoriesToCategoryResponses(categories),
		Genres:     dto.GenresToGenreResponses(genres),
		IsNew:      dish == nil,
	})
}

func dishFormToInput(form *dto.DishForm) *dto.DishInput {
	return &dto.DishInput{
		Name:          form.Name,
		GenreIDs:      form.GenreIDs,
		IngredientIDs: utils.ParseIDList(form.IngredientIDs),
		Difficulty:    form.Difficulty,
		Memo:          form.Memo,
	}
}
