package database

import (
	"time"

	"artbook_backend/internal/models"

	"gorm.io/datatypes"
)

// SeedCategories returns a fresh copy of the category seed.
func SeedCategories() []models.Category {
	return []models.Category{
		{ID: models.CategoryMusicians, Name: "Musicians", Icon: "🎵", Description: "Live bands, solo artists, and musical performers", ArtistCount: 234},
		{ID: models.CategoryComedians, Name: "Comedians", Icon: "😄", Description: "Stand-up comedians and comedy acts", ArtistCount: 89},
		{ID: models.CategoryDancers, Name: "Dancers", Icon: "💃", Description: "Professional dancers and dance troupes", ArtistCount: 156},
		{ID: models.CategorySpeakers, Name: "Speakers", Icon: "🎤", Description: "Motivational and keynote speakers", ArtistCount: 78},
		{ID: models.CategoryMagicians, Name: "Magicians", Icon: "🎩", Description: "Magic shows and illusion performances", ArtistCount: 45},
		{ID: models.CategoryDJs, Name: "DJs", Icon: "🎧", Description: "DJs for parties and events", ArtistCount: 187},
	}
}

// SeedArtists returns a fresh copy of the artist seed in catalog order.
func SeedArtists() []models.Artist {
	return []models.Artist{
		{
			ID:           "1",
			Name:         "Sarah Johnson",
			Bio:          "Award-winning jazz vocalist with over 15 years of experience performing at corporate events, weddings, and festivals.",
			Category:     models.CategoryMusicians,
			Languages:    []string{"English", "French"},
			FeeRange:     models.FeeRange{Min: 2000, Max: 5000},
			Location:     models.Location{City: "New York", State: "NY", Country: "USA"},
			Image:        "https://images.unsplash.com/photo-1494790108755-2616c24085ce?w=400",
			Rating:       4.9,
			ReviewCount:  127,
			Specialties:  []string{"Jazz", "Soul", "Corporate Events"},
			Availability: true,
			Experience:   "15+ years",
		},
		{
			ID:           "2",
			Name:         "Comedy Central Mike",
			Bio:          "Professional stand-up comedian featured on Comedy Central. Specializes in corporate entertainment and clean comedy.",
			Category:     models.CategoryComedians,
			Languages:    []string{"English"},
			FeeRange:     models.FeeRange{Min: 1500, Max: 4000},
			Location:     models.Location{City: "Los Angeles", State: "CA", Country: "USA"},
			Image:        "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400",
			Rating:       4.8,
			ReviewCount:  89,
			Specialties:  []string{"Corporate Comedy", "Clean Humor", "Improvisation"},
			Availability: true,
			Experience:   "12+ years",
		},
		{
			ID:           "3",
			Name:         "Elena Rodriguez",
			Bio:          "Professional ballroom and Latin dance instructor. Perfect for teaching and performing at weddings and cultural events.",
			Category:     models.CategoryDancers,
			Languages:    []string{"English", "Spanish"},
			FeeRange:     models.FeeRange{Min: 800, Max: 2500},
			Location:     models.Location{City: "Miami", State: "FL", Country: "USA"},
			Image:        "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=400",
			Rating:       4.7,
			ReviewCount:  156,
			Specialties:  []string{"Ballroom", "Latin Dance", "Wedding Choreography"},
			Availability: true,
			Experience:   "10+ years",
		},
		{
			ID:           "4",
			Name:         "Dr. James Wilson",
			Bio:          "Motivational speaker and business consultant. TEDx speaker with expertise in leadership and personal development.",
			Category:     models.CategorySpeakers,
			Languages:    []string{"English"},
			FeeRange:     models.FeeRange{Min: 3000, Max: 8000},
			Location:     models.Location{City: "Chicago", State: "IL", Country: "USA"},
			Image:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
			Rating:       4.9,
			ReviewCount:  203,
			Specialties:  []string{"Leadership", "Team Building", "Corporate Training"},
			Availability: true,
			Experience:   "20+ years",
		},
		{
			ID:           "5",
			Name:         "The Amazing Marco",
			Bio:          "Professional magician and illusion artist. Perfect for children parties, corporate events, and private gatherings.",
			Category:     models.CategoryMagicians,
			Languages:    []string{"English", "Italian"},
			FeeRange:     models.FeeRange{Min: 1000, Max: 3000},
			Location:     models.Location{City: "Las Vegas", State: "NV", Country: "USA"},
			Image:        "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=400",
			Rating:       4.6,
			ReviewCount:  78,
			Specialties:  []string{"Close-up Magic", "Stage Illusions", "Kids Entertainment"},
			Availability: true,
			Experience:   "8+ years",
		},
		{
			ID:           "6",
			Name:         "DJ Pulse",
			Bio:          "Electronic music producer and DJ specializing in weddings, corporate events, and nightclub performances.",
			Category:     models.CategoryDJs,
			Languages:    []string{"English"},
			FeeRange:     models.FeeRange{Min: 1200, Max: 4000},
			Location:     models.Location{City: "Austin", State: "TX", Country: "USA"},
			Image:        "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400",
			Rating:       4.8,
			ReviewCount:  234,
			Specialties:  []string{"Wedding DJ", "Corporate Events", "Electronic Music"},
			Availability: true,
			Experience:   "7+ years",
		},
	}
}

// SeedBookingLeads returns a fresh copy of the booking lead seed.
func SeedBookingLeads() []models.BookingLead {
	return []models.BookingLead{
		{
			ID:          "1",
			ArtistID:    "1",
			ArtistName:  "Sarah Johnson",
			EventDate:   day(2024, time.July, 15),
			EventType:   "Corporate Event",
			Location:    "Manhattan, NY",
			Budget:      3000,
			Status:      models.LeadStatusPending,
			ClientName:  "John Smith",
			ClientEmail: "john.smith@company.com",
			Message:     "Looking for a jazz vocalist for our annual company dinner.",
			CreatedAt:   time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			ArtistID:    "2",
			ArtistName:  "Comedy Central Mike",
			EventDate:   day(2024, time.August, 2),
			EventType:   "Private Party",
			Location:    "Beverly Hills, CA",
			Budget:      2500,
			Status:      models.LeadStatusConfirmed,
			ClientName:  "Lisa Davis",
			ClientEmail: "lisa.davis@email.com",
			Message:     "Birthday party entertainment for adults.",
			CreatedAt:   time.Date(2024, time.June, 18, 0, 0, 0, 0, time.UTC),
		},
	}
}

func day(year int, month time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
}
