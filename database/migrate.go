package database

import (
	"errors"
	"fmt"

	"artbook_backend/internal/logger"
	"artbook_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a Postgres connection and checks that it is reachable.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database unavailable: %w", err)
	}
	return db, nil
}

// AutoMigrate creates the catalog tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Artist{},
		&models.BookingLead{},
	); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}
	logger.Info("Catalog migration completed")
	return nil
}

// Seed loads the static catalog into an empty database. A non-empty
// artists table is left alone.
func Seed(db *gorm.DB) error {
	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var existing models.Artist
	err := tx.First(&existing).Error
	if err == nil {
		logger.Info("Catalog already seeded. Skipping.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check catalog: %w", err)
	}

	categories := SeedCategories()
	for i := range categories {
		categories[i].Position = i
	}
	if err := tx.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	artists := SeedArtists()
	for i := range artists {
		artists[i].Position = i
	}
	if err := tx.Create(&artists).Error; err != nil {
		return fmt.Errorf("failed to seed artists: %w", err)
	}
	leads := SeedBookingLeads()
	if err := tx.Create(&leads).Error; err != nil {
		return fmt.Errorf("failed to seed booking leads: %w", err)
	}

	logger.Info("✅ Catalog seeded", "artists", len(artists), "categories", len(categories), "leads", len(leads))
	return tx.Commit().Error
}
