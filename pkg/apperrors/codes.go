package apperrors

// ErrorCode is the machine-readable error code returned to clients.
type ErrorCode string

const (
	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"

	// Generic business errors
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"
	CodeConflict         ErrorCode = "CONFLICT"

	// Domain
	CodeArtistNotFound      ErrorCode = "ARTIST_NOT_FOUND"
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"
	CodeInvalidTransition   ErrorCode = "INVALID_TRANSITION"
	CodeSubmissionInFlight  ErrorCode = "SUBMISSION_IN_FLIGHT"
)
