// Package form holds the models behind every modal and page form, and
// the local validation each one runs before a submit is acknowledged.
package form

import (
	"errors"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError is shown to the visitor as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid builds a ValidationError that is not tied to a single field.
func Invalid(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// Message returns the user-facing text of err when it is a
// ValidationError, and fallback otherwise.
func Message(err error, fallback string) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return fallback
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// check runs the struct tags and maps the first failure through messages,
// keyed by "field" or "field.tag". Unmapped failures use fallback.
func check(s any, messages map[string]string, fallback string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return err
	}
	fe := fields[0]
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return &ValidationError{Field: fe.Field(), Message: msg}
	}
	if msg, ok := messages[fe.Field()]; ok {
		return &ValidationError{Field: fe.Field(), Message: msg}
	}
	return &ValidationError{Field: fe.Field(), Message: fallback}
}

func value(v url.Values, key string) string {
	return strings.TrimSpace(v.Get(key))
}
