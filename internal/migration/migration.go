package migration

import (
	"github.com/studioflow/studioflow-backend/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for all pipeline tables and seeds default
// profiles if the table is empty.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.ContentRecord{},
		&domain.SequenceCounter{},
		&domain.Assignment{},
		&domain.Profile{},
		&domain.TeamMember{},
	); err != nil {
		return err
	}

	var count int64
	db.Model(&domain.Profile{}).Count(&count)
	if count == 0 {
		return seedProfiles(db)
	}
	return nil
}

func seedProfiles(db *gorm.DB) error {
	profiles := []domain.Profile{
		// GEN is the reserved fallback namespace for unknown profiles
		{Code: "GEN", Name: "General", IsActive: true},
	}
	return db.Create(&profiles).Error
}
