package validator

import (
	"log"

	"github.com/go-playground/validator/v10"
)

// contractTypes mirrors the options the posting form offers.
var contractTypes = map[string]bool{
	"tiempo-completo": true,
	"medio-tiempo":    true,
	"por-proyecto":    true,
	"freelance":       true,
}

// registerCustomRules installs the domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Registration failing is a startup bug, not a runtime condition.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-contract-type", validateContractType)
}

func validateContractType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empty values
	}
	return contractTypes[value]
}
