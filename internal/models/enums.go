package models

import "slices"

type LeadStatus string

const (
	LeadStatusPending   LeadStatus = "pending"
	LeadStatusConfirmed LeadStatus = "confirmed"
	LeadStatusDeclined  LeadStatus = "declined"
)

// IsValid reports whether s is one of the closed set of lead statuses.
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusPending, LeadStatusConfirmed, LeadStatusDeclined:
		return true
	default:
		return false
	}
}

const (
	CategoryMusicians = "musicians"
	CategoryComedians = "comedians"
	CategoryDancers   = "dancers"
	CategorySpeakers  = "speakers"
	CategoryMagicians = "magicians"
	CategoryDJs       = "djs"
)

// CategoryIDs lists the enumerated category identifiers in display order.
var CategoryIDs = []string{
	CategoryMusicians,
	CategoryComedians,
	CategoryDancers,
	CategorySpeakers,
	CategoryMagicians,
	CategoryDJs,
}

// Languages is the fixed list offered by the onboarding form.
var Languages = []string{
	"English", "Spanish", "French", "German", "Italian", "Portuguese", "Mandarin", "Japanese",
}

var ExperienceLevels = []string{
	"1-2 years", "3-5 years", "6-10 years", "10+ years", "15+ years", "20+ years",
}

// Regions - two-letter US state codes.
var Regions = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

func IsCategory(v string) bool        { return slices.Contains(CategoryIDs, v) }
func IsLanguage(v string) bool        { return slices.Contains(Languages, v) }
func IsExperienceLevel(v string) bool { return slices.Contains(ExperienceLevels, v) }
func IsRegion(v string) bool          { return slices.Contains(Regions, v) }
