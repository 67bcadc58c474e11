package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	validatorPlatform "demoready/internal/platform/validator"
)

type playgroundValidator struct {
	validate *validator.Validate
}

// NewPlaygroundAdapter reports fields by their json name, falling back to the
// envconfig name so config errors point at the variable suffix.
func NewPlaygroundAdapter() validatorPlatform.Validator {
	validate := validator.New()
	validate.RegisterTagNameFunc(fieldName)

	return &playgroundValidator{validate: validate}
}

func (v *playgroundValidator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			outErrors := make([]validatorPlatform.FieldError, len(validationErrors))
			for i, fe := range validationErrors {
				outErrors[i] = validatorPlatform.FieldError{
					Field:   strings.ToLower(fe.Field()),
					Message: getValidationErrorMessage(fe),
				}
			}
			return validatorPlatform.ValidationError{Errors: outErrors}
		}
		return err
	}
	return nil
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "envconfig"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}

func getValidationErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "This field must be a valid email address"
	case "url":
		return "This field must be a valid URL"
	case "oneof":
		return fmt.Sprintf("This field must be one of: %s", e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("This field must be at most %s characters long", e.Param())
		}
		return fmt.Sprintf("This field must be at most %s", e.Param())
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("This field must contain at least %s item(s)", e.Param())
		}
		return fmt.Sprintf("This field must be at least %s", e.Param())
	case "gt":
		return fmt.Sprintf("This field must be greater than %s", e.Param())
	case "gtfield":
		return fmt.Sprintf("This field must be greater than %s", e.Param())
	default:
		return fmt.Sprintf("This field failed on the '%s' tag", e.Tag())
	}
}
