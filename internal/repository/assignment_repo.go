package repository

import (
	"errors"

	"github.com/studioflow/studioflow-backend/internal/common"
	"github.com/studioflow/studioflow-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssignmentRepository assignment data access
type AssignmentRepository interface {
	// Upsert creates or replaces the (record, role) assignment.
	Upsert(recordID string, role domain.Role, assigneeID string) error
	ListByRecord(recordID string) ([]domain.Assignment, error)
	// CountActive counts in-flight assignments held by a candidate for a
	// role: the owning record is approved, not dissolved, and not posted.
	CountActive(assigneeID string, role domain.Role) (int64, error)
	// RecordState loads the owning record; inside InTx the row is locked,
	// so guards checked on it hold until the assignment commits.
	RecordState(recordID string) (*domain.ContentRecord, error)
	// InTx runs fn against a transaction-bound repository, so a workload
	// read and the assignment write commit together.
	InTx(fn func(repo AssignmentRepository) error) error
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Upsert(recordID string, role domain.Role, assigneeID string) error {
	assignment := domain.Assignment{
		RecordID:   recordID,
		Role:       role,
		AssigneeID: assigneeID,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_id"}, {Name: "role"}},
		DoUpdates: clause.AssignmentColumns([]string{"assignee_id", "updated_at"}),
	}).Create(&assignment).Error
}

func (r *assignmentRepository) ListByRecord(recordID string) ([]domain.Assignment, error) {
	var assignments []domain.Assignment
	err := r.db.Where("record_id = ?", recordID).Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepository) CountActive(assigneeID string, role domain.Role) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Assignment{}).
		Joins("JOIN content_records ON content_records.id = assignments.record_id").
		Where("assignments.assignee_id = ? AND assignments.role = ?", assigneeID, role).
		Where("content_records.status = ?", domain.StatusApproved).
		Where("content_records.is_dissolved = ?", false).
		Where("content_records.stage <> ?", domain.StagePosted).
		Count(&count).Error
	return count, err
}

func (r *assignmentRepository) RecordState(recordID string) (*domain.ContentRecord, error) {
	var rec domain.ContentRecord
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", recordID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *assignmentRepository) InTx(fn func(repo AssignmentRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&assignmentRepository{db: tx})
	})
}
