package handlers

import (
	"github.com/gofiber/fiber/v2"

	"menu-catalog/domain/dto"
	"menu-catalog/domain/repositories"
	"menu-catalog/domain/services"
	"menu-catalog/pkg/config"
	"menu-catalog/pkg/logger"
	"menu-catalog/pkg/utils"
)

// SearchHandler serves the search page, the management (edit) page, and the
// filtered dish search behind both.
type SearchHandler struct {
	dishService       services.DishService
	ingredientService services.IngredientService
	masterDataService services.MasterDataService
	catalog           config.CatalogConfig
}

func NewSearchHandler(
	dishService services.DishService,
	ingredientService services.IngredientService,
	masterDataService services.MasterDataService,
	catalog config.CatalogConfig,
) *SearchHandler {
	return &SearchHandler{
		dishService:       dishService,
		ingredientService: ingredientService,
		masterDataService: masterDataService,
		catalog:           catalog,
	}
}

// SearchPage handles GET /, the initial, empty-filter render.
func (h *SearchHandler) SearchPage(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categories, genres, err := h.referenceData(c)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load reference data", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.SearchPageResponse{
		Dishes:     []dto.DishResponse{},
		Categories: categories,
		Genres:     genres,
		ViewMode:   "search",
	})
}

// EditPage handles GET /edit, the paginated dish management page.
func (h *SearchHandler) EditPage(c *fiber.Ctx) error {
	ctx := c.UserContext()

	page, perPage := utils.ClampPage(
		c.QueryInt("page", 1),
		c.QueryInt("per_page", h.catalog.ItemsPerPage),
		h.catalog.ItemsPerPage,
	)

	result, err := h.dishService.List(ctx, page, perPage)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	categories, genres, err := h.referenceData(c)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load reference data", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	payload := dto.SearchPageResponse{
		Dishes:     dto.DishesToDishResponses(result.Dishes),
		Categories: categories,
		Genres:     genres,
		ViewMode:   "edit",
	}
	return utils.PaginatedSuccessResponse(c, payload, result.Total, result.Page, result.PerPage)
}

// Search handles GET /search, the filtered dish search with match modes.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var query dto.SearchQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	ingredientIDs := utils.ParseIDList(query.IngredientIDs)
	genreIDs := utils.ParseIDList(query.GenreIDs)

	mode := query.Mode
	if mode != repositories.MatchModeExact {
		mode = repositories.MatchModeFuzzy
	}
	viewMode := query.ViewMode
	if viewMode != "edit" {
		viewMode = "search"
	}

	page, perPage := utils.ClampPage(query.Page, query.PerPage, h.catalog.ItemsPerPage)

	result, err := h.dishService.Search(ctx, ingredientIDs, genreIDs, mode, page, perPage)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	categories, genres, err := h.referenceData(c)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load reference data", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	payload := dto.SearchPageResponse{
		Dishes:                dto.DishesToDishResponses(result.Dishes),
		Categories:            categories,
		Genres:                genres,
		SelectedIngredientIDs: ingredientIDs,
		SelectedGenreIDs:      genreIDs,
		SearchMode:            mode,
		ViewMode:              viewMode,
	}
	return utils.PaginatedSuccessResponse(c, payload, result.Total, result.Page, result.PerPage)
}

func (h *SearchHandler) referenceData(c *fiber.Ctx) ([]dto.CategoryResponse, []dto.GenreResponse, error) {
	ctx := c.UserContext()

	categories, err := h.ingredientService.Categories(ctx)
	if err != nil {
		return nil, nil, err
	}
	genres, err := h.masterDataService.Genres(ctx)
	if err != nil {
		return nil, nil, err
	}
	return dto.CategoriesToCategoryResponses(categories), dto.GenresToGenreResponses(genres), nil
}
