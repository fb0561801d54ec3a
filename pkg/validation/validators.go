package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("trimmed_required", TrimmedRequired)
	_ = v.RegisterValidation("swipe_type", SwipeType)
}

// TrimmedRequired rejects strings that are empty once surrounding whitespace is removed.
func TrimmedRequired(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// SwipeType accepts LIKE or PASS, case-insensitively.
func SwipeType(fl validator.FieldLevel) bool {
	switch strings.ToUpper(strings.TrimSpace(fl.Field().String())) {
	case "LIKE", "PASS":
		return true
	}
	return false
}
