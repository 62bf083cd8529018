package db

import (
	"gorm.io/gorm"

	"github.com/Tejash429/course-platform-backend/internal/domain"
)

// AutoMigrateAll syncs every declared model to the database, parents before
// children so foreign keys resolve.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(domain.Models()...)
}
