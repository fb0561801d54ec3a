package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"JobOfferID":   "Job offer",
	"TargetUserID": "Candidate",
	"SwipeType":    "Swipe type",
	"Content":      "Message",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required", "trimmed_required":
		return fmt.Sprintf("%s: is required", label)
	case "required_without":
		return fmt.Sprintf("%s: is required when %s is missing", label, getFieldLabel(param))
	case "excluded_with":
		return fmt.Sprintf("%s: cannot be combined with %s", label, getFieldLabel(param))
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", label, param)
	case "uuid", "uuid4":
		return fmt.Sprintf("%s: must be a valid id", label)
	case "swipe_type", "oneof":
		return fmt.Sprintf("%s: must be LIKE or PASS", label)
	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
