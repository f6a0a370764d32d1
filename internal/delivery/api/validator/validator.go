// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"bumpr/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates request DTOs through their `validate` tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return errors.WithStack(err)
		}

		messages := make([]string, 0, len(fieldErrs))
		for _, fieldErr := range fieldErrs {
			messages = append(messages, describe(fieldErr))
		}

		return errors.New(strings.Join(messages, "; "))
	}

	return nil
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "oneof":
		return fieldErr.Field() + " must be one of [" + fieldErr.Param() + "]"
	case "uuid":
		return fieldErr.Field() + " must be a valid UUID"
	case "min", "gte":
		return fieldErr.Field() + " must be at least " + fieldErr.Param()
	case "max", "lte":
		return fieldErr.Field() + " must be at most " + fieldErr.Param()
	default:
		return fieldErr.Field() + " failed on " + fieldErr.Tag()
	}
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "query", "param"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return field.Name
}
