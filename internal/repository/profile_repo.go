package repository

import (
	"errors"

	"github.com/studioflow/studioflow-backend/internal/domain"
	"gorm.io/gorm"
)

// ProfileRepository content profile (namespace) data access
type ProfileRepository interface {
	Exists(code string) (bool, error)
	List() ([]domain.Profile, error)
	Create(profile *domain.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Exists(code string) (bool, error) {
	var profile domain.Profile
	err := r.db.Where("code = ? AND is_active = ?", code, true).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *profileRepository) List() ([]domain.Profile, error) {
	var profiles []domain.Profile
	err := r.db.Order("code").Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) Create(profile *domain.Profile) error {
	return r.db.Create(profile).Error
}
