package domain

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/topaz-jewels/backoffice_app/internal/apperrors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Teach the validator about decimal.Decimal so numeric tags (gt=0) apply.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// runValidation checks a record's structural invariants and converts the first
// failure into a validation error with a human-readable field description.
func runValidation(record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return apperrors.NewValidationError(err.Error())
	}
	return apperrors.NewValidationError(describeFieldError(verrs[0]))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.StructField()
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Field %s must not be empty", field)
		}
		return fmt.Sprintf("Field %s is empty", field)
	case "uuid":
		return fmt.Sprintf("The value in the field %s is not a unique identifier", field)
	case "gt":
		return fmt.Sprintf("Field %s is less than or equal to %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("Field %s must contain at least %s element(s)", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("The value in the field %s is not allowed", field)
	case "e164":
		return fmt.Sprintf("Field %s is not a valid phone number", field)
	default:
		return fmt.Sprintf("Field %s failed the %s check", field, fe.Tag())
	}
}
