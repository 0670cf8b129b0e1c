package models

import (
	"time"

	"gorm.io/datatypes"
)

// BookingLead - a booking inquiry from a client to an artist. Read-only.
type BookingLead struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	ArtistID    string         `gorm:"index" json:"artist_id"`
	ArtistName  string         `json:"artist_name"`
	EventDate   datatypes.Date `json:"event_date" swaggertype:"string"`
	EventType   string         `json:"event_type"`
	Location    string         `json:"location"`
	Budget      int            `json:"budget"`
	Status      LeadStatus     `gorm:"type:varchar(16);index" json:"status"`
	ClientName  string         `json:"client_name"`
	ClientEmail string         `json:"client_email"`
	Message     string         `json:"message"`
	CreatedAt   time.Time      `json:"created_at"`
}
