package wizard

import (
	"slices"
	"time"

	"artbook_backend/internal/models"
)

// Step is a wizard state. Steps advance one at a time; StepSuccess is terminal.
type Step int

const (
	StepPersonal Step = iota + 1
	StepProfessional
	StepPricingLocation
	StepSuccess
)

func (s Step) String() string {
	switch s {
	case StepPersonal:
		return "personal"
	case StepProfessional:
		return "professional"
	case StepPricingLocation:
		return "pricing_location"
	case StepSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// FormSteps is the number of steps that collect input.
const FormSteps = 3

// Delay returns a channel that fires once d has elapsed.
type Delay func(d time.Duration) <-chan time.Time

// DefaultDelay is the real clock.
var DefaultDelay Delay = time.After

// Patch carries field edits. Nil fields are left untouched.
type Patch struct {
	Name        *string   `json:"name"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Bio         *string   `json:"bio"`
	Category    *string   `json:"category"`
	Languages   *[]string `json:"languages"`
	FeeMin      *string   `json:"fee_min"`
	FeeMax      *string   `json:"fee_max"`
	City        *string   `json:"city"`
	State       *string   `json:"state"`
	Experience  *string   `json:"experience"`
	Specialties *string   `json:"specialties"`
	Portfolio   *string   `json:"portfolio"`
	Terms       *bool     `json:"terms"`
}

// Wizard is one onboarding session. It is not safe for concurrent use;
// callers serialize access.
type Wizard struct {
	checker    Checker
	step       Step
	submitting bool
	form       models.OnboardingForm
	// selection order of the chosen languages, mirrored into form.Languages
	selected []string
}

func New(c Checker) *Wizard {
	return &Wizard{
		checker:  c,
		step:     StepPersonal,
		selected: []string{},
	}
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) Submitting() bool {
	return w.submitting
}

// Form returns a copy of the current draft.
func (w *Wizard) Form() models.OnboardingForm {
	f := w.form
	f.Languages = slices.Clone(w.selected)
	return f
}

func (w *Wizard) editable() error {
	if w.submitting {
		return ErrSubmissionInFlight
	}
	if w.step == StepSuccess {
		return ErrInvalidTransition
	}
	return nil
}

// Update merges the non-nil fields of p into the draft.
func (w *Wizard) Update(p Patch) error {
	if err := w.editable(); err != nil {
		return err
	}

	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&w.form.Name, p.Name)
	set(&w.form.Email, p.Email)
	set(&w.form.Phone, p.Phone)
	set(&w.form.Bio, p.Bio)
	set(&w.form.Category, p.Category)
	set(&w.form.FeeMin, p.FeeMin)
	set(&w.form.FeeMax, p.FeeMax)
	set(&w.form.City, p.City)
	set(&w.form.State, p.State)
	set(&w.form.Experience, p.Experience)
	set(&w.form.Specialties, p.Specialties)
	set(&w.form.Portfolio, p.Portfolio)
	if p.Terms != nil {
		w.form.Terms = *p.Terms
	}
	if p.Languages != nil {
		w.selected = w.selected[:0]
		for _, l := range *p.Languages {
			if !slices.Contains(w.selected, l) {
				w.selected = append(w.selected, l)
			}
		}
	}
	w.syncLanguages()
	return nil
}

// ToggleLanguage adds or removes label from the selected set. Adding a
// selected label or removing an absent one is a no-op.
func (w *Wizard) ToggleLanguage(label string, checked bool) error {
	if err := w.editable(); err != nil {
		return err
	}

	idx := slices.Index(w.selected, label)
	switch {
	case checked && idx < 0:
		w.selected = append(w.selected, label)
	case !checked && idx >= 0:
		w.selected = slices.Delete(w.selected, idx, idx+1)
	}
	w.syncLanguages()
	return nil
}

func (w *Wizard) syncLanguages() {
	w.form.Languages = slices.Clone(w.selected)
}

// Validate runs the current step's rules without moving.
func (w *Wizard) Validate() []FieldError {
	form := w.form
	return ValidateStep(w.checker, w.step, &form)
}

// Next advances from step 1 or 2 once the current step validates.
func (w *Wizard) Next() error {
	if err := w.editable(); err != nil {
		return err
	}
	if w.step != StepPersonal && w.step != StepProfessional {
		return ErrInvalidTransition
	}
	if errs := w.Validate(); len(errs) > 0 {
		return &ValidationError{Step: w.step, Errors: errs}
	}
	w.step++
	return nil
}

// Previous steps back from step 2 or 3. Field values are kept.
func (w *Wizard) Previous() error {
	if err := w.editable(); err != nil {
		return err
	}
	if w.step != StepProfessional && w.step != StepPricingLocation {
		return ErrInvalidTransition
	}
	w.step--
	return nil
}

// Submit validates step 3 and marks the session as submitting. The caller
// finishes it with Complete once the submission delay has passed.
func (w *Wizard) Submit() error {
	if err := w.editable(); err != nil {
		return err
	}
	if w.step != StepPricingLocation {
		return ErrInvalidTransition
	}
	if errs := w.Validate(); len(errs) > 0 {
		return &ValidationError{Step: w.step, Errors: errs}
	}
	w.submitting = true
	return nil
}

// Complete moves a submitting session to StepSuccess, clears the draft and
// returns the submitted form.
func (w *Wizard) Complete() (models.OnboardingForm, error) {
	if !w.submitting {
		return models.OnboardingForm{}, ErrInvalidTransition
	}
	submitted := w.Form()

	w.submitting = false
	w.step = StepSuccess
	w.form = models.OnboardingForm{}
	w.selected = []string{}
	return submitted, nil
}
