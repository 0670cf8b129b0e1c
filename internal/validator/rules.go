package validator

import (
	"log"

	"artbook_backend/internal/algorithms"
	"artbook_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules registers the closed-set rules of the catalog and the
// onboarding form. Empty values pass; pair with 'required' where needed.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-category", stringRule(models.IsCategory))
	mustRegister("is-language", stringRule(models.IsLanguage))
	mustRegister("is-experience", stringRule(models.IsExperienceLevel))
	mustRegister("is-region", stringRule(models.IsRegion))
	mustRegister("is-lead-status", validateLeadStatusFilter)
	mustRegister("is-price-bucket", stringRule(func(s string) bool {
		return algorithms.PriceBucket(s).IsValid()
	}))
}

func stringRule(allowed func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return allowed(value)
	}
}

// validateLeadStatusFilter accepts a lead status or "all".
func validateLeadStatusFilter(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" || value == "all" {
		return true
	}
	return models.LeadStatus(value).IsValid()
}
