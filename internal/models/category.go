package models

// Category is a display record. ArtistCount is stored as-is and is never
// recomputed from the artist list.
type Category struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	ArtistCount int    `json:"artist_count"`
	Position    int    `gorm:"index" json:"-"`
}
