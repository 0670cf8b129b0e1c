package models

import "log/slog"

// OnboardingForm is the draft collected by the artist onboarding wizard.
// Fees are kept as the free text the applicant typed.
type OnboardingForm struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Bio         string   `json:"bio"`
	Category    string   `json:"category"`
	Languages   []string `json:"languages"`
	FeeMin      string   `json:"fee_min"`
	FeeMax      string   `json:"fee_max"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Experience  string   `json:"experience"`
	Specialties string   `json:"specialties"`
	Portfolio   string   `json:"portfolio"`
	Terms       bool     `json:"terms"`
}

// LogValue renders the draft as a structured group for the diagnostic log.
func (f OnboardingForm) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", f.Name),
		slog.String("email", f.Email),
		slog.String("phone", f.Phone),
		slog.String("bio", f.Bio),
		slog.String("category", f.Category),
		slog.Any("languages", f.Languages),
		slog.String("fee_min", f.FeeMin),
		slog.String("fee_max", f.FeeMax),
		slog.String("city", f.City),
		slog.String("state", f.State),
		slog.String("experience", f.Experience),
		slog.String("specialties", f.Specialties),
		slog.String("portfolio", f.Portfolio),
		slog.Bool("terms", f.Terms),
	)
}
