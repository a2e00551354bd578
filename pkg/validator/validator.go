package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var digitsRegex = regexp.MustCompile(`^[0-9]+$`)

type CustomValidator struct {
	validator   *validator.Validate
	specialties map[string]struct{}
}

// NewValidator builds a validator that understands the clinic-specific tags:
// "digits" (the whole value is 0-9, empty fails) and "specialty" (the value
// is one of the configured specialties).
func NewValidator(specialties []string) *CustomValidator {
	cv := &CustomValidator{
		validator:   validator.New(),
		specialties: make(map[string]struct{}, len(specialties)),
	}
	for _, s := range specialties {
		cv.specialties[s] = struct{}{}
	}

	cv.validator.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	_ = cv.validator.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsRegex.MatchString(fl.Field().String())
	})
	_ = cv.validator.RegisterValidation("specialty", func(fl validator.FieldLevel) bool {
		_, ok := cv.specialties[fl.Field().String()]
		return ok
	})

	return cv
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "digits":
				errors[field] = field + " must contain only digits"
			case "specialty":
				errors[field] = field + " is not a recognized specialty"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
