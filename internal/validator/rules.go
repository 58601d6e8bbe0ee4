package validator

import (
	"log"

	"castlink_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs domain-specific validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup-time defect.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-plan': talent subscription plan (free|premium)
	mustRegister("is-plan", validatePlan)
}

func validatePlan(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // emptiness is the 'required' tag's concern
	}
	switch models.Plan(value) {
	case models.PlanFree, models.PlanPremium:
		return true
	default:
		return false
	}
}
