package dto

// SearchQuery mirrors the /search query string. Id lists are comma-separated;
// the handler parses them with utils.ParseIDList.
type SearchQuery struct {
	IngredientIDs string `query:"ingredient_ids"`
	GenreIDs      string `query:"genre_ids"`
	Mode          string `query:"mode"`
	Page          int    `query:"page"`
	PerPage       int    `query:"per_page"`
	ViewMode      string `query:"view_mode"`
}

// SearchPageResponse is the payload behind both the search page and the edit
// (management) page, matching what their templates consume.
type SearchPageResponse struct {
	Dishes                []DishResponse     `json:"dishes"`
	Categories            []CategoryResponse `json:"categories"`
	Genres                []GenreResponse    `json:"genres"`
	SelectedIngredientIDs []uint             `json:"selectedIngredientIds,omitempty"`
	SelectedGenreIDs      []uint             `json:"selectedGenreIds,omitempty"`
	SearchMode            string             `json:"searchMode,omitempty"`
	ViewMode              string             `json:"viewMode"`
}
