package services

// ServiceContainer holds every application service.
type ServiceContainer struct {
	ArtistService     ArtistService
	CategoryService   CategoryService
	DashboardService  DashboardService
	OnboardingService OnboardingService
}
