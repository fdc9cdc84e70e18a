package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(FieldName)
	})
	return validate
}

// FieldName returns the configuration key of a struct field: the mapstructure
// tag name, or the Go field name when the tag carries none. "-" marks a field
// the decoder never fills; Struct reports no issues under it.
func FieldName(fld reflect.StructField) string {
	if name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]; name != "" {
		return name
	}
	return fld.Name
}

// Struct validates a struct using `validate` tags.
// It returns nil or an *Error with one issue per failing field, each at the
// field's configuration path.
func Struct(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &Error{Issues: []Issue{{Code: CodeInvalidType, Message: err.Error()}}}
	}

	root := reflect.TypeOf(s)
	issues := make([]Issue, 0, len(validationErrors))
	for _, e := range validationErrors {
		path, ok := fieldPath(root, e.StructNamespace())
		if !ok {
			continue
		}
		issues = append(issues, Issue{
			Path:    path,
			Code:    e.Tag(),
			Message: formatValidationError(e),
		})
	}
	if len(issues) == 0 {
		return nil
	}
	return &Error{Issues: issues}
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	unit := ""
	switch e.Kind() {
	case reflect.String:
		unit = " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		unit = " items"
	}

	switch e.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + e.Param() + unit
	case "max", "lte":
		return "must be at most " + e.Param() + unit
	case "gt":
		return "must be greater than " + e.Param() + unit
	case "lt":
		return "must be less than " + e.Param() + unit
	case "oneof":
		return "must be one of: " + e.Param()
	case "url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email address"
	case "hostname_port":
		return "must be a host:port address"
	default:
		return "failed the '" + e.Tag() + "' check"
	}
}
