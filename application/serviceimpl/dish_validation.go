package serviceimpl

import (
	"fmt"
	"unicode/utf8"

	"menu-catalog/domain/dto"
)

// DishLimits are the configurable caps a dish submission is checked against.
type DishLimits struct {
	MaxGenres      int
	MaxIngredients int
	MaxMemoLength  int
}

// validateDishInput checks a parsed dish submission against the limits and
// returns every field error at once. It takes all raw inputs as parameters
// and keeps no state between calls.
func validateDishInput(input *dto.DishInput, limits DishLimits) []dto.FieldError {
	var fieldErrors []dto.FieldError

	nameLen := utf8.RuneCountInString(input.Name)
	if nameLen == 0 {
		fieldErrors = append(fieldErrors, dto.FieldError{
			Field: "name", Message: "name is required",
		})
	} else if nameLen > 100 {
		fieldErrors = append(fieldErrors, dto.FieldError{
			Field: "name", Message: "name must be 1-100 characters",
		})
	}

	if input.Difficulty < 1 || input.Difficulty > 5 {
		fieldErrors = append(fieldErrors, dto.FieldError{
			Field: "difficulty", Message: "difficulty must be between 1 and 5",
		})
	}

	if utf8.RuneCountInString(input.Memo) > limits.MaxMemoLength {
		fieldErrors = append(fieldErrors, dto.FieldError{
			Field: "memo", Message: fmt.Sprintf("memo must be at most %d characters", limits.MaxMemoLength),
		})
	}

	if len(input.GenreIDs) > limits.MaxGenres {
		fieldErrors = append(fieldErrors, dto.FieldError{
			Field: "genre_ids", Message: fmt.Sprintf("at most %d genres can be selected", limits.MaxGenres),
		})
	}

	if len(input.IngredientIDs) > limits.MaxIngredients {
		fieldErrors = append(fieldErrors, dto.FieldError{
			Field: "ingredient_ids", Message: fmt.Sprintf("at most %d ingredients can be selected", limits.MaxIngredients),
		})
	}

	return fieldErrors
}

// dedupeIDs collapses duplicate ids, preserving first-seen order. Membership
// is a set; duplicate edges must not be created or counted.
func dedupeIDs(ids []uint) []uint {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
