package repository

import (
	"github.com/studioflow/studioflow-backend/internal/domain"
	"gorm.io/gorm"
)

// MemberRepository team member data access
type MemberRepository interface {
	ListActiveByRole(role domain.Role) ([]domain.TeamMember, error)
	List() ([]domain.TeamMember, error)
	Create(member *domain.TeamMember) error
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) ListActiveByRole(role domain.Role) ([]domain.TeamMember, error) {
	var members []domain.TeamMember
	err := r.db.Where("role = ? AND is_active = ?", role, true).
		Order("created_at").
		Find(&members).Error
	return members, err
}

func (r *memberRepository) List() ([]domain.TeamMember, error) {
	var members []domain.TeamMember
	err := r.db.Order("created_at").Find(&members).Error
	return members, err
}

func (r *memberRepository) Create(member *domain.TeamMember) error {
	return r.db.Create(member).Error
}
