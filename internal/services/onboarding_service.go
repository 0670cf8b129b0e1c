package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"artbook_backend/internal/logger"
	"artbook_backend/internal/metrics"
	"artbook_backend/internal/models"
	"artbook_backend/internal/notify"
	"artbook_backend/internal/repositories"
	"artbook_backend/internal/services/dto"
	"artbook_backend/internal/wizard"
	"artbook_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// Events published to live subscribers of an application.
const (
	EventApplicationUpdated    = "application.updated"
	EventApplicationSubmitting = "application.submitting"
	EventApplicationSubmitted  = "application.submitted"
	EventApplicationDiscarded  = "application.discarded"
)

// EventPublisher pushes application events to live subscribers.
type EventPublisher interface {
	Publish(applicationID, eventType string, payload any)
}

type OnboardingService interface {
	Start(ctx context.Context) (*dto.ApplicationResponse, error)
	Get(ctx context.Context, id string) (*dto.ApplicationResponse, error)
	UpdateDraft(ctx context.Context, id string, req *dto.UpdateDraftRequest) (*dto.ApplicationResponse, error)
	ToggleLanguage(ctx context.Context, id string, req *dto.ToggleLanguageRequest) (*dto.ApplicationResponse, error)
	Next(ctx context.Context, id string) (*dto.ApplicationResponse, error)
	Previous(ctx context.Context, id string) (*dto.ApplicationResponse, error)
	Submit(ctx context.Context, id string) (*dto.ApplicationResponse, error)
	Discard(ctx context.Context, id string) error

	// SweepIdle discards sessions idle for longer than ttl.
	SweepIdle(ctx context.Context, ttl time.Duration) int
	// Wait blocks until in-flight submissions finish or ctx is done.
	Wait(ctx context.Context) error
}

// OnboardingOption customizes the onboarding service.
type OnboardingOption func(*onboardingService)

// WithDelay replaces the clock that times the simulated submission.
func WithDelay(d wizard.Delay) OnboardingOption {
	return func(s *onboardingService) {
		if d != nil {
			s.delay = d
		}
	}
}

func WithIDGenerator(gen func() string) OnboardingOption {
	return func(s *onboardingService) {
		if gen != nil {
			s.newID = gen
		}
	}
}

type onboardingService struct {
	apps        repositories.ApplicationRepository
	checker     wizard.Checker
	notifier    notify.Notifier
	publisher   EventPublisher
	metrics     *metrics.Manager
	submitDelay time.Duration
	delay       wizard.Delay
	newID       func() string
	now         func() time.Time
	inflight    sync.WaitGroup
}

func NewOnboardingService(
	apps repositories.ApplicationRepository,
	checker wizard.Checker,
	notifier notify.Notifier,
	publisher EventPublisher,
	m *metrics.Manager,
	submitDelay time.Duration,
	opts ...OnboardingOption,
) OnboardingService {
	s := &onboardingService{
		apps:        apps,
		checker:     checker,
		notifier:    notifier,
		publisher:   publisher,
		metrics:     m,
		submitDelay: submitDelay,
		delay:       wizard.DefaultDelay,
		newID:       uuid.NewString,
		now:         time.Now,
	}
	if s.notifier == nil {
		s.notifier = notify.NewLogNotifier()
	}
	if s.publisher == nil {
		s.publisher = noopPublisher{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, string, any) {}

func (s *onboardingService) Start(ctx context.Context) (*dto.ApplicationResponse, error) {
	app := &repositories.Application{
		ID:     s.newID(),
		Wizard: wizard.New(s.checker),
	}
	if err := s.apps.Create(app); err != nil {
		return nil, apperrors.InternalError(err)
	}
	s.metrics.SetActiveSessions(s.apps.Count())

	logger.CtxInfo(logger.WithApplicationID(ctx, app.ID), "Onboarding application started")
	return toApplicationResponse(app), nil
}

func (s *onboardingService) Get(ctx context.Context, id string) (*dto.ApplicationResponse, error) {
	var resp *dto.ApplicationResponse
	err := s.apps.View(id, func(app *repositories.Application) {
		resp = toApplicationResponse(app)
	})
	if err != nil {
		return nil, mapOnboardingError(err)
	}
	return resp, nil
}

func (s *onboardingService) UpdateDraft(ctx context.Context, id string, req *dto.UpdateDraftRequest) (*dto.ApplicationResponse, error) {
	return s.apply(ctx, id, "update", func(w *wizard.Wizard) error {
		return w.Update(*req)
	})
}

func (s *onboardingService) ToggleLanguage(ctx context.Context, id string, req *dto.ToggleLanguageRequest) (*dto.ApplicationResponse, error) {
	checked := req.Checked != nil && *req.Checked
	return s.apply(ctx, id, "toggle_language", func(w *wizard.Wizard) error {
		return w.ToggleLanguage(req.Language, checked)
	})
}

func (s *onboardingService) Next(ctx context.Context, id string) (*dto.ApplicationResponse, error) {
	return s.apply(ctx, id, "next", (*wizard.Wizard).Next)
}

func (s *onboardingService) Previous(ctx context.Context, id string) (*dto.ApplicationResponse, error) {
	return s.apply(ctx, id, "previous", (*wizard.Wizard).Previous)
}

// Submit validates the last step and returns at once with submitting set.
// The session completes after the submit delay.
func (s *onboardingService) Submit(ctx context.Context, id string) (*dto.ApplicationResponse, error) {
	var snapshot models.OnboardingForm
	resp, err := s.apply(ctx, id, "submit", func(w *wizard.Wizard) error {
		if err := w.Submit(); err != nil {
			return err
		}
		snapshot = w.Form()
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The completion outlives the request, so it keeps only its IDs.
	bg := logger.WithApplicationID(logger.WithRequestID(context.Background(), logger.GetRequestID(ctx)), id)
	s.inflight.Add(1)
	go s.completeSubmission(bg, id, snapshot)

	return resp, nil
}

func (s *onboardingService) completeSubmission(ctx context.Context, id string, submitted models.OnboardingForm) {
	defer s.inflight.Done()
	<-s.delay(s.submitDelay)

	logger.CtxInfo(ctx, "Artist onboarding data", "form", submitted)

	var resp *dto.ApplicationResponse
	err := s.apps.Update(id, func(app *repositories.Application) error {
		if _, err := app.Wizard.Complete(); err != nil {
			return err
		}
		n := models.ApplicationSubmitted
		app.Notification = &n
		resp = toApplicationResponse(app)
		return nil
	})
	if err != nil {
		// Discarded while in flight; there is nobody left to notify.
		logger.CtxWarn(ctx, "Submission finished for a closed application", "error", err)
		return
	}
	s.metrics.SubmissionCompleted()

	msg := notify.Message{
		ApplicationID: id,
		Name:          submitted.Name,
		Email:         submitted.Email,
		Notification:  models.ApplicationSubmitted,
	}
	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.metrics.NotificationFailed()
		logger.CtxWithError(ctx, "Failed to send submission notification", err)
	}

	s.publisher.Publish(id, EventApplicationSubmitted, resp)
}

// Discard drops the session whatever its state.
func (s *onboardingService) Discard(ctx context.Context, id string) error {
	if err := s.apps.Delete(id); err != nil {
		return mapOnboardingError(err)
	}
	s.metrics.SetActiveSessions(s.apps.Count())
	s.publisher.Publish(id, EventApplicationDiscarded, nil)

	logger.CtxInfo(logger.WithApplicationID(ctx, id), "Onboarding application discarded")
	return nil
}

func (s *onboardingService) SweepIdle(ctx context.Context, ttl time.Duration) int {
	removed := s.apps.DeleteIdleSince(s.now().Add(-ttl))
	for _, id := range removed {
		s.publisher.Publish(id, EventApplicationDiscarded, nil)
	}
	s.metrics.SessionsEvicted(len(removed))
	s.metrics.SetActiveSessions(s.apps.Count())
	return len(removed)
}

func (s *onboardingService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// apply runs one wizard action under the store lock, records its outcome
// and publishes the new state.
func (s *onboardingService) apply(ctx context.Context, id, action string, fn func(w *wizard.Wizard) error) (*dto.ApplicationResponse, error) {
	var resp *dto.ApplicationResponse
	err := s.apps.Update(id, func(app *repositories.Application) error {
		if err := fn(app.Wizard); err != nil {
			return err
		}
		resp = toApplicationResponse(app)
		return nil
	})
	if err != nil {
		s.metrics.ObserveTransition(action, transitionOutcome(err))
		logger.CtxDebug(logger.WithApplicationID(ctx, id), "Wizard action refused", "action", action, "error", err)
		return nil, mapOnboardingError(err)
	}
	s.metrics.ObserveTransition(action, "ok")

	event := EventApplicationUpdated
	if resp.Submitting {
		event = EventApplicationSubmitting
	}
	s.publisher.Publish(id, event, resp)
	return resp, nil
}

func transitionOutcome(err error) string {
	var verr *wizard.ValidationError
	switch {
	case errors.As(err, &verr):
		return "invalid"
	case errors.Is(err, repositories.ErrApplicationNotFound):
		return "not_found"
	default:
		return "rejected"
	}
}

func mapOnboardingError(err error) error {
	var verr *wizard.ValidationError
	switch {
	case errors.As(err, &verr):
		return apperrors.ValidationError(verr.Fields())
	case errors.Is(err, wizard.ErrInvalidTransition):
		return apperrors.ErrInvalidTransition
	case errors.Is(err, wizard.ErrSubmissionInFlight):
		return apperrors.ErrSubmissionInFlight
	case errors.Is(err, repositories.ErrApplicationNotFound):
		return apperrors.ErrApplicationNotFound
	default:
		return apperrors.InternalError(err)
	}
}

func toApplicationResponse(app *repositories.Application) *dto.ApplicationResponse {
	step := app.Wizard.Step()
	return &dto.ApplicationResponse{
		ID:           app.ID,
		Step:         int(step),
		StepName:     step.String(),
		TotalSteps:   wizard.FormSteps,
		Submitting:   app.Wizard.Submitting(),
		StepFields:   wizard.StepFields(step),
		Form:         app.Wizard.Form(),
		Notification: app.Notification,
		CreatedAt:    app.CreatedAt,
		UpdatedAt:    app.UpdatedAt,
	}
}
