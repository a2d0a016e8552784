package database

import (
	"skillbridge_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every model. Order matters:
// users come first because projects, bids, and reviews reference them.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Bid{},
		&models.Review{},
	)
}
