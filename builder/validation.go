package builder

import (
	"database/sql"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/carlosnayan/hrmanager/internal/errors"
)

var validate = newValidator()

// newValidator registers value extraction for the SQL and decimal wrapper
// types so numeric rules such as gte apply to them
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		switch value := field.Interface().(type) {
		case decimal.Decimal:
			f, _ := value.Float64()
			return f
		case decimal.NullDecimal:
			if !value.Valid {
				return nil
			}
			f, _ := value.Decimal.Float64()
			return f
		case sql.NullInt64:
			if !value.Valid {
				return nil
			}
			return value.Int64
		}
		return nil
	}, decimal.Decimal{}, decimal.NullDecimal{}, sql.NullInt64{})
	return v
}

// ValidationErrors collects every failed rule of a struct
type ValidationErrors struct {
	Errors []ValidationError
}

func (ve *ValidationErrors) Error() string {
	var messages []string
	for _, err := range ve.Errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// Is makes a ValidationErrors match errors.ErrValidation
func (ve *ValidationErrors) Is(target error) bool {
	return stderrors.Is(errors.ErrValidation, target)
}

// ValidationError is a single failed rule
type ValidationError struct {
	Field   string
	Message string
}

func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// ValidateStruct checks the validate tags of s
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) {
		return errors.Wrap(errors.ErrValidation, err)
	}

	out := &ValidationErrors{}
	for _, fe := range fieldErrors {
		out.Errors = append(out.Errors, ValidationError{
			Field:   fe.Field(),
			Message: ruleMessage(fe),
		})
	}
	return out
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte", "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
