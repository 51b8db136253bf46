package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired   = "is required"
	ErrMin        = "must be at least %s"
	ErrMax        = "must be at most %s"
	ErrInvalid    = "is invalid"
	ErrNotInteger = "must be an integer"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(fieldName)

	return validator
}

// fieldName reports fields by their wire name (form or json tag) so errors
// point at the query parameter the client actually sent.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
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

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min", "gte":
		return fmt.Sprintf(ErrMin, err.Param())
	case "max", "lte":
		return fmt.Sprintf(ErrMax, err.Param())
	default:
		return ErrInvalid
	}
}
