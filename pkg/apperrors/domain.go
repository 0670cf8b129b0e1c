package apperrors

import "net/http"

// --- Catalog ---

var ErrArtistNotFound = New(
	CodeArtistNotFound,
	"catalog",
	"Artist not found",
	http.StatusNotFound,
)

// --- Onboarding ---

// ErrApplicationNotFound - the wizard session does not exist or was discarded.
var ErrApplicationNotFound = New(
	CodeApplicationNotFound,
	"onboarding",
	"Onboarding application not found",
	http.StatusNotFound,
)

// ErrInvalidTransition - the requested wizard action is not allowed from the current step.
var ErrInvalidTransition = New(
	CodeInvalidTransition,
	"onboarding",
	"Action is not allowed at the current step",
	http.StatusConflict,
)

// ErrSubmissionInFlight - the application is being submitted and accepts no input.
var ErrSubmissionInFlight = New(
	CodeSubmissionInFlight,
	"onboarding",
	"Application is being submitted",
	http.StatusConflict,
)
