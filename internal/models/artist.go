package models

import "github.com/lib/pq"

// FeeRange - the (min, max) fee an artist charges for one engagement.
type FeeRange struct {
	Min int `json:"min" gorm:"column:min"`
	Max int `json:"max" gorm:"column:max"`
}

type Location struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Label returns the "city, state" string used by the location filter.
func (l Location) Label() string {
	return l.City + ", " + l.State
}

// Artist is immutable seed data: created once, never updated or deleted at runtime.
type Artist struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Name         string         `json:"name"`
	Bio          string         `json:"bio"`
	Category     string         `gorm:"index" json:"category"`
	Languages    pq.StringArray `gorm:"type:text[]" json:"languages" swaggertype:"array,string"`
	FeeRange     FeeRange       `gorm:"embedded;embeddedPrefix:fee_" json:"fee_range"`
	Location     Location       `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Image        string         `json:"image"`
	Rating       float64        `json:"rating"`
	ReviewCount  int            `json:"review_count"`
	Specialties  pq.StringArray `gorm:"type:text[]" json:"specialties" swaggertype:"array,string"`
	Availability bool           `json:"availability"`
	Experience   string         `json:"experience"`
	Position     int            `gorm:"index" json:"-"`
}

// Clone returns a copy that shares no slices with the receiver.
func (a Artist) Clone() Artist {
	out := a
	out.Languages = append(pq.StringArray(nil), a.Languages...)
	out.Specialties = append(pq.StringArray(nil), a.Specialties...)
	return out
}
