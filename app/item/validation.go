package item

import (
	"catalog/pkg/httperror"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateRequest(op string, req any) error {
	if err := validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return httperror.UnprocessableEntity(
				"item."+op+".validation_failed",
				"Validation failed for the request",
				validationDetails(ve),
			)
		}

		return httperror.InternalServerError(
			"item."+op+".validation_error",
			"An unexpected validation error occurred",
			nil,
		)
	}
	return nil
}

// validationDetails maps each failing JSON field to the rule it broke.
func validationDetails(ve validator.ValidationErrors) map[string]string {
	details := make(map[string]string, len(ve))
	for _, fe := range ve {
		details[fe.Field()] = fe.Tag()
	}
	return details
}

// storeError translates store sentinels into HTTP errors for the given operation.
func storeError(op string, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return httperror.NotFound(
			"item."+op+".not_found",
			"Item not found",
			nil,
		)
	case errors.Is(err, ErrValidation):
		return httperror.UnprocessableEntity(
			"item."+op+".validation_failed",
			"Validation failed for the request",
			err.Error(),
		)
	default:
		return httperror.InternalServerError(
			"item."+op+".failed",
			"An error occurred while processing the item",
			nil,
		)
	}
}
