package handlers

// AppHandlers holds every HTTP handler.
type AppHandlers struct {
	ArtistHandler     *ArtistHandler
	CategoryHandler   *CategoryHandler
	DashboardHandler  *DashboardHandler
	OnboardingHandler *OnboardingHandler
	HealthHandler     *HealthHandler
}
