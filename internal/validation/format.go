// Package validation holds helpers for checking values against a fixed set
// of names, such as sort modes and log levels.
package validation

import (
	"fmt"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

// FormatValidValues joins string-like values for error messages.
func FormatValidValues[T ~string](values []T) string {
	formatted := make([]string, 0, len(values))
	for _, value := range values {
		formatted = append(formatted, string(value))
	}
	return strings.Join(formatted, ", ")
}

// OneOf returns a rule accepting only the listed values.
func OneOf[T ~string](values []T) ozzo.Rule {
	allowed := make([]any, 0, len(values))
	for _, value := range values {
		allowed = append(allowed, value)
	}
	return ozzo.In(allowed...).Error("must be one of " + FormatValidValues(values))
}

// CheckOneOf returns base wrapped with the offending value and the valid
// choices when value is not one of values.
func CheckOneOf[T ~string](base error, value T, values []T) error {
	if err := ozzo.Validate(value, OneOf(values)); err != nil {
		return fmt.Errorf("%w %q: %s", base, string(value), err.Error())
	}
	return nil
}
