package wizard

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artbook_backend/internal/validator"
)

func ptr[T any](v T) *T { return &v }

var bio50 = strings.Repeat("b", 50)

func personalPatch() Patch {
	return Patch{
		Name:  ptr("Jane Doe"),
		Email: ptr("jane@x.com"),
		Phone: ptr("1234567890"),
		Bio:   ptr(bio50),
	}
}

func professionalPatch() Patch {
	return Patch{
		Category:    ptr("musicians"),
		Languages:   ptr([]string{"English"}),
		Experience:  ptr("3-5 years"),
		Specialties: ptr("Jazz, Blues"),
	}
}

func pricingPatch() Patch {
	return Patch{
		FeeMin:    ptr("1000"),
		FeeMax:    ptr("2500"),
		City:      ptr("Austin"),
		State:     ptr("TX"),
		Portfolio: ptr("https://jane.example.com"),
		Terms:     ptr(true),
	}
}

// atPricing returns a wizard that has passed steps 1 and 2.
func atPricing(t *testing.T) *Wizard {
	t.Helper()
	w := New(validator.New())
	require.NoError(t, w.Update(personalPatch()))
	require.NoError(t, w.Next())
	require.NoError(t, w.Update(professionalPatch()))
	require.NoError(t, w.Next())
	require.Equal(t, StepPricingLocation, w.Step())
	return w
}

func fieldNames(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestWizard_StartsAtPersonal(t *testing.T) {
	w := New(validator.New())
	assert.Equal(t, StepPersonal, w.Step())
	assert.False(t, w.Submitting())
	assert.Empty(t, w.Form().Languages)
}

func TestWizard_NextBlockedByShortName(t *testing.T) {
	w := New(validator.New())
	p := personalPatch()
	p.Name = ptr("A")
	require.NoError(t, w.Update(p))

	err := w.Next()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StepPersonal, w.Step())
	assert.Equal(t, StepPersonal, verr.Step)
	assert.Equal(t, []string{"name"}, fieldNames(verr.Errors))
	assert.Equal(t, "Name must be at least 2 characters", verr.Fields()["name"])
}

func TestWizard_ValidPersonalAdvances(t *testing.T) {
	w := New(validator.New())
	require.NoError(t, w.Update(personalPatch()))

	require.NoError(t, w.Next())
	assert.Equal(t, StepProfessional, w.Step())
}

func TestWizard_EmptyStepReportsEveryField(t *testing.T) {
	w := New(validator.New())

	var verr *ValidationError
	require.ErrorAs(t, w.Next(), &verr)
	assert.Equal(t, []string{"name", "email", "phone", "bio"}, fieldNames(verr.Errors))
}

func TestWizard_ValidationIsScopedToStep(t *testing.T) {
	// Step 2 and 3 fields are empty, yet step 1 still advances.
	w := New(validator.New())
	require.NoError(t, w.Update(personalPatch()))
	require.NoError(t, w.Next())

	var verr *ValidationError
	require.ErrorAs(t, w.Next(), &verr)
	assert.Equal(t, []string{"category", "languages", "experience", "specialties"}, fieldNames(verr.Errors))
	assert.Equal(t, StepProfessional, w.Step())
}

func TestWizard_PreviousKeepsValues(t *testing.T) {
	w := atPricing(t)

	require.NoError(t, w.Previous())
	assert.Equal(t, StepProfessional, w.Step())
	require.NoError(t, w.Previous())
	assert.Equal(t, StepPersonal, w.Step())

	f := w.Form()
	assert.Equal(t, "Jane Doe", f.Name)
	assert.Equal(t, "musicians", f.Category)
	assert.Equal(t, []string{"English"}, f.Languages)
}

func TestWizard_InvalidTransitions(t *testing.T) {
	w := New(validator.New())
	assert.ErrorIs(t, w.Previous(), ErrInvalidTransition)
	assert.ErrorIs(t, w.Submit(), ErrInvalidTransition)

	w = atPricing(t)
	assert.ErrorIs(t, w.Next(), ErrInvalidTransition)

	_, err := w.Complete()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestWizard_SubmitThenComplete(t *testing.T) {
	w := atPricing(t)
	require.NoError(t, w.Update(pricingPatch()))

	require.NoError(t, w.Submit())
	assert.True(t, w.Submitting())
	assert.Equal(t, StepPricingLocation, w.Step())

	submitted, err := w.Complete()
	require.NoError(t, err)
	assert.Equal(t, StepSuccess, w.Step())
	assert.False(t, w.Submitting())
	assert.Equal(t, "Jane Doe", submitted.Name)
	assert.Equal(t, "TX", submitted.State)
	assert.Empty(t, w.Form().Name)
}

func TestWizard_SubmitWithDelay(t *testing.T) {
	w := atPricing(t)
	require.NoError(t, w.Update(pricingPatch()))

	fire := make(chan time.Time)
	var delay Delay = func(time.Duration) <-chan time.Time { return fire }

	require.NoError(t, w.Submit())
	done := make(chan struct{})
	go func() {
		<-delay(2 * time.Second)
		close(done)
	}()

	assert.True(t, w.Submitting())
	select {
	case <-done:
		t.Fatal("submission completed before the delay fired")
	default:
	}

	fire <- time.Now()
	<-done
	_, err := w.Complete()
	require.NoError(t, err)
	assert.Equal(t, StepSuccess, w.Step())
	assert.False(t, w.Submitting())
}

func TestWizard_MutationsRejectedWhileSubmitting(t *testing.T) {
	w := atPricing(t)
	require.NoError(t, w.Update(pricingPatch()))
	require.NoError(t, w.Submit())

	assert.ErrorIs(t, w.Update(Patch{Name: ptr("x")}), ErrSubmissionInFlight)
	assert.ErrorIs(t, w.ToggleLanguage("French", true), ErrSubmissionInFlight)
	assert.ErrorIs(t, w.Previous(), ErrSubmissionInFlight)
	assert.ErrorIs(t, w.Submit(), ErrSubmissionInFlight)
}

func TestWizard_TerminalStepIsFrozen(t *testing.T) {
	w := atPricing(t)
	require.NoError(t, w.Update(pricingPatch()))
	require.NoError(t, w.Submit())
	_, err := w.Complete()
	require.NoError(t, err)

	assert.ErrorIs(t, w.Next(), ErrInvalidTransition)
	assert.ErrorIs(t, w.Previous(), ErrInvalidTransition)
	assert.ErrorIs(t, w.Update(Patch{Name: ptr("x")}), ErrInvalidTransition)
}

func TestWizard_SubmitBlockedByStep3Errors(t *testing.T) {
	w := atPricing(t)
	p := pricingPatch()
	p.Terms = ptr(false)
	p.Portfolio = ptr("not a url")
	p.State = ptr("ZZ")
	require.NoError(t, w.Update(p))

	var verr *ValidationError
	require.ErrorAs(t, w.Submit(), &verr)
	assert.Equal(t, []string{"state", "portfolio", "terms"}, fieldNames(verr.Errors))
	assert.False(t, w.Submitting())
}

func TestWizard_ToggleLanguage(t *testing.T) {
	w := New(validator.New())

	require.NoError(t, w.ToggleLanguage("Spanish", true))
	require.NoError(t, w.ToggleLanguage("English", true))
	require.NoError(t, w.ToggleLanguage("Spanish", true))
	assert.Equal(t, []string{"Spanish", "English"}, w.Form().Languages)

	require.NoError(t, w.ToggleLanguage("Spanish", false))
	require.NoError(t, w.ToggleLanguage("French", false))
	assert.Equal(t, []string{"English"}, w.Form().Languages)
}

func TestWizard_FormIsACopy(t *testing.T) {
	w := New(validator.New())
	require.NoError(t, w.ToggleLanguage("English", true))

	f := w.Form()
	f.Languages[0] = "Klingon"
	assert.Equal(t, []string{"English"}, w.Form().Languages)
}

func TestValidateStep_Rules(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name   string
		step   Step
		mutate func(f *Patch)
		want   []string
	}{
		{"valid personal", StepPersonal, func(*Patch) {}, nil},
		{"bad email", StepPersonal, func(p *Patch) { p.Email = ptr("jane@") }, []string{"email"}},
		{"short phone", StepPersonal, func(p *Patch) { p.Phone = ptr("123") }, []string{"phone"}},
		{"short bio", StepPersonal, func(p *Patch) { p.Bio = ptr(bio50[:49]) }, []string{"bio"}},
		{"valid professional", StepProfessional, func(*Patch) {}, nil},
		{"unknown category", StepProfessional, func(p *Patch) { p.Category = ptr("jugglers") }, []string{"category"}},
		{"no languages", StepProfessional, func(p *Patch) { p.Languages = ptr([]string{}) }, []string{"languages"}},
		{"unknown language", StepProfessional, func(p *Patch) { p.Languages = ptr([]string{"Latin"}) }, []string{"languages"}},
		{"unknown experience", StepProfessional, func(p *Patch) { p.Experience = ptr("forever") }, []string{"experience"}},
		{"short specialties", StepProfessional, func(p *Patch) { p.Specialties = ptr("Jazz") }, []string{"specialties"}},
		{"valid pricing", StepPricingLocation, func(*Patch) {}, nil},
		{"empty portfolio ok", StepPricingLocation, func(p *Patch) { p.Portfolio = ptr("") }, nil},
		{"missing fees", StepPricingLocation, func(p *Patch) { p.FeeMin = ptr(""); p.FeeMax = ptr("") }, []string{"fee_min", "fee_max"}},
		{"non numeric fee", StepPricingLocation, func(p *Patch) { p.FeeMax = ptr("lots") }, []string{"fee_max"}},
		{"short city", StepPricingLocation, func(p *Patch) { p.City = ptr("A") }, []string{"city"}},
		{"success has no rules", StepSuccess, func(*Patch) {}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(v)
			require.NoError(t, w.Update(personalPatch()))
			require.NoError(t, w.Update(professionalPatch()))
			require.NoError(t, w.Update(pricingPatch()))
			var p Patch
			tt.mutate(&p)
			require.NoError(t, w.Update(p))

			form := w.Form()
			got := ValidateStep(v, tt.step, &form)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, fieldNames(got))
		})
	}
}

func TestStepFields(t *testing.T) {
	assert.Equal(t, []string{"name", "email", "phone", "bio"}, StepFields(StepPersonal))
	assert.Empty(t, StepFields(StepSuccess))
}
