package services

import (
	"errors"
	"strings"

	"menu-catalog/domain/dto"
)

var (
	ErrDishNotFound       = errors.New("dish not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrCategoryNotFound   = errors.New("category not found")
)

// ValidationError carries field-level errors from a rejected submission.
// It never reaches storage; callers re-render the form with prior input.
type ValidationError struct {
	Fields []dto.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
