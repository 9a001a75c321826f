package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"menu-catalog/domain/dto"
)

var validate = validator.New()

// ValidateStruct runs the validator over struct tags.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens a validator error into field errors keyed by
// the lowercased field name.
func GetValidationErrors(err error) []dto.FieldError {
	var fieldErrors []dto.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []dto.FieldError{{Field: "", Message: err.Error()}}
	}

	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, dto.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageForTag(fe),
		})
	}
	return fieldErrors
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
