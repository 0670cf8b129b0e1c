package models

// Notification is the user-facing message shown once an onboarding
// application has been submitted.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ApplicationSubmitted is raised when an onboarding submission completes.
var ApplicationSubmitted = Notification{
	Title:       "Application Submitted!",
	Description: "We'll review your application and get back to you within 2-3 business days.",
}
