package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	slotPattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)
	labelPattern = regexp.MustCompile(`^[\p{L}\p{N} '_-]*$`)
)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("notblank", validateNotBlank)
	_ = v.RegisterValidation("slot", validateSlot)
	_ = v.RegisterValidation("label", validateLabel)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lowercase field name
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required", "notblank":
			errs[field] = "This field is required"
		case "slot":
			errs[field] = "Use letters, digits, dashes or underscores"
		case "label":
			errs[field] = "Contains invalid characters"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "unique":
			errs[field] = "Entries must not repeat"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateSlot(fl validator.FieldLevel) bool {
	return slotPattern.MatchString(fl.Field().String())
}

func validateLabel(fl validator.FieldLevel) bool {
	return labelPattern.MatchString(fl.Field().String())
}
