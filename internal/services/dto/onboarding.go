package dto

import (
	"time"

	"artbook_backend/internal/models"
	"artbook_backend/internal/wizard"
)

// UpdateDraftRequest - PATCH body. Only the fields present are changed.
type UpdateDraftRequest = wizard.Patch

type ToggleLanguageRequest struct {
	Language string `json:"language" validate:"required,is-language"`
	Checked  *bool  `json:"checked" validate:"required"`
}

type ApplicationResponse struct {
	ID           string                `json:"id"`
	Step         int                   `json:"step"`
	StepName     string                `json:"step_name"`
	TotalSteps   int                   `json:"total_steps"`
	Submitting   bool                  `json:"submitting"`
	StepFields   []string              `json:"step_fields"`
	Form         models.OnboardingForm `json:"form"`
	Notification *models.Notification  `json:"notification,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}
