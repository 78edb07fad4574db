package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Phone numbers: digits, spaces and the usual separators
	PhonePattern = `^\+?[0-9()\-. ]{3,45}$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Phone *regexp.Regexp
}{
	Phone: regexp.MustCompile(PhonePattern),
}

// Violation is a single field that failed validation.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// New returns a validator that reports JSON field names and knows the
// custom rules of this package ("phone").
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Phone.MatchString(fl.Field().String())
	})

	return v
}

// Violations converts a validator error into field violations.
// Errors that are not validation errors produce a nil slice.
func Violations(err error) []Violation {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: FormatFieldError(fe),
		})
	}
	return violations
}

// FormatFieldError creates a human-readable validation error message
func FormatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min", "gte":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "lte":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "phone":
		return e.Field() + " must be a valid phone number"
	case "fqdn|url":
		return e.Field() + " must be a domain name or URL"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
