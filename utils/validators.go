package utils

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validQuadrants = map[string]bool{
	"urgent-important":         true,
	"not-urgent-important":     true,
	"urgent-not-important":     true,
	"not-urgent-not-important": true,
}

// InitValidator registers custom rules on gin's binding validator. Must be
// called once before the router starts serving.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("quadrant", ValidateQuadrantRule)
	}
}

// ValidateQuadrantRule accepts only the four Eisenhower quadrant values.
func ValidateQuadrantRule(fl validator.FieldLevel) bool {
	return validQuadrants[fl.Field().String()]
}

// ValidationDetails flattens a binding error into field-level reasons.
// Returns nil when the error is not a validation error (e.g. malformed JSON).
func ValidationDetails(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: validationMessage(fe),
		})
	}
	return details
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof", "quadrant":
		return fmt.Sprintf("%s must be one of the permitted values", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
