package wizard

import "artbook_backend/internal/models"

// Checker validates one value against a go-playground/validator tag.
// *validator.Validator satisfies it.
type Checker interface {
	Check(value interface{}, tag string) bool
}

type fieldRule struct {
	field   string
	tag     string
	message string
	value   func(f *models.OnboardingForm) interface{}
}

// stepRules lists the fields each step owns. Advancing past a step checks
// only that step's rules.
var stepRules = map[Step][]fieldRule{
	StepPersonal: {
		{"name", "min=2", "Name must be at least 2 characters", func(f *models.OnboardingForm) interface{} { return f.Name }},
		{"email", "required,email", "Please enter a valid email", func(f *models.OnboardingForm) interface{} { return f.Email }},
		{"phone", "min=10", "Please enter a valid phone number", func(f *models.OnboardingForm) interface{} { return f.Phone }},
		{"bio", "min=50", "Bio must be at least 50 characters", func(f *models.OnboardingForm) interface{} { return f.Bio }},
	},
	StepProfessional: {
		{"category", "required,is-category", "Please select a category", func(f *models.OnboardingForm) interface{} { return f.Category }},
		{"languages", "min=1,dive,is-language", "Please select at least one language", func(f *models.OnboardingForm) interface{} { return f.Languages }},
		{"experience", "required,is-experience", "Please select your experience level", func(f *models.OnboardingForm) interface{} { return f.Experience }},
		{"specialties", "min=5", "Please describe your specialties", func(f *models.OnboardingForm) interface{} { return f.Specialties }},
	},
	StepPricingLocation: {
		{"fee_min", "required,numeric", "Minimum fee is required", func(f *models.OnboardingForm) interface{} { return f.FeeMin }},
		{"fee_max", "required,numeric", "Maximum fee is required", func(f *models.OnboardingForm) interface{} { return f.FeeMax }},
		{"city", "min=2", "City is required", func(f *models.OnboardingForm) interface{} { return f.City }},
		{"state", "required,is-region", "State is required", func(f *models.OnboardingForm) interface{} { return f.State }},
		{"portfolio", "omitempty,url", "Please enter a valid URL", func(f *models.OnboardingForm) interface{} { return f.Portfolio }},
		{"terms", "eq=true", "You must accept the terms and conditions", func(f *models.OnboardingForm) interface{} { return f.Terms }},
	},
}

// StepFields returns the names of the fields owned by step.
func StepFields(step Step) []string {
	rules := stepRules[step]
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.field)
	}
	return out
}

// ValidateStep checks the fields owned by step and returns one FieldError
// per failing field, in rule order. Steps without fields never fail.
func ValidateStep(c Checker, step Step, form *models.OnboardingForm) []FieldError {
	var errs []FieldError
	for _, r := range stepRules[step] {
		if !c.Check(r.value(form), r.tag) {
			errs = append(errs, FieldError{Field: r.field, Message: r.message})
		}
	}
	return errs
}
