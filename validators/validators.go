package validators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance used by the per-feature
// validator middlewares. Field names in error maps come from the json
// tags, matching what the client sent.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// FieldErrors converts validator.ValidationErrors into the field=>message
// map returned by middleware.ValidationErrorResponse.
func FieldErrors(err error) map[string]string {
	errors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}

	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()
		switch fieldErr.Tag() {
		case "required":
			errors[field] = "This field is required!"
		case "email":
			errors[field] = "Invalid email!"
		case "min":
			errors[field] = "Must be at least " + fieldErr.Param() + " characters long!"
		case "oneof":
			errors[field] = "Must be one of: " + fieldErr.Param()
		case "gt":
			errors[field] = "Must be greater than " + fieldErr.Param() + "!"
		case "gte":
			errors[field] = "Must be at least " + fieldErr.Param() + "!"
		default:
			errors[field] = "Invalid value!"
		}
	}

	return errors
}
