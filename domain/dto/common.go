package dto

// FieldError names the offending field and a human-readable reason. Forms
// are re-rendered with these inline.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type PageQuery struct {
	Page    int `query:"page"`
	PerPage int `query:"per_page"`
}
