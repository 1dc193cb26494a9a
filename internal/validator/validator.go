package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries every violated rule as a field -> message map.
// All rules run independently; the caller always gets the full list so the
// form can be re-rendered with every problem surfaced at once.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	var errMsgs []string
	for field, msg := range e.Errors {
		errMsgs = append(errMsgs, fmt.Sprintf("field '%s': %s", field, msg))
	}
	return "Validation failed: " + strings.Join(errMsgs, "; ")
}

// Messages returns the user-facing messages without field names.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(e.Errors))
	for _, msg := range e.Errors {
		msgs = append(msgs, msg)
	}
	return msgs
}

// Validator wraps go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report field names from form tags so error messages match the field
	// names the client actually submitted.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomRules(v)

	return &Validator{
		validate: v,
	}
}

// Validate runs all rules on the struct and returns a *ValidationError
// listing every violation, or nil.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// reflection-level failure, not a rule violation
		return err
	}

	customErrors := make(map[string]string)
	for _, fe := range validationErrors {
		customErrors[fe.Field()] = v.getErrorMessage(fe)
	}

	return &ValidationError{Errors: customErrors}
}

// getErrorMessage builds the user-facing message for a single violation.
func (v *Validator) getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo '%s' es obligatorio", fe.Field())
	case "email":
		return "Agrega un email válido"
	case "eqfield":
		return "Los passwords no son iguales"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("El campo '%s' debe tener al menos %s caracteres", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("El campo '%s' debe ser al menos %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("El campo '%s' debe tener máximo %s caracteres", fe.Field(), fe.Param())
	case "is-contract-type":
		return "Selecciona el tipo de contrato"
	default:
		return fmt.Sprintf("El campo '%s' no es válido", fe.Field())
	}
}
