package repository

import (
	"errors"

	"github.com/studioflow/studioflow-backend/internal/common"
	"github.com/studioflow/studioflow-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentTx exposes the operations a record mutation may need inside its
// own transaction, so identifier minting commits or rolls back together
// with the status change that triggered it.
type ContentTx interface {
	// AllocateSequence reserves the next per-namespace value.
	AllocateSequence(namespaceCode string) (int64, error)
	// CodeExists checks whether a content code is already taken, including
	// by logically deleted records (codes are never reused).
	CodeExists(code string) (bool, error)
}

// ContentRepository content record data access
type ContentRepository interface {
	Create(rec *domain.ContentRecord) error
	GetByID(id string) (*domain.ContentRecord, error)
	List(status string, page, limit int) ([]domain.ContentRecord, int64, error)
	// Mutate locks the record row, applies fn, and saves in one transaction,
	// so concurrent callers never observe a stale intermediate state.
	Mutate(id string, fn func(tx ContentTx, rec *domain.ContentRecord) error) (*domain.ContentRecord, error)
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(rec *domain.ContentRecord) error {
	return r.db.Create(rec).Error
}

func (r *contentRepository) GetByID(id string) (*domain.ContentRecord, error) {
	var rec domain.ContentRecord
	err := r.db.Preload("Assignments").Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *contentRepository) List(status string, page, limit int) ([]domain.ContentRecord, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := r.db.Model(&domain.ContentRecord{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recs []domain.ContentRecord
	err := query.Preload("Assignments").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&recs).Error
	return recs, total, err
}

func (r *contentRepository) Mutate(id string, fn func(tx ContentTx, rec *domain.ContentRecord) error) (*domain.ContentRecord, error) {
	var rec domain.ContentRecord
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// FOR UPDATE serializes concurrent decisions on the same record
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrRecordNotFound
		}
		if err != nil {
			return err
		}

		if err := fn(&contentTx{tx: tx}, &rec); err != nil {
			return err
		}
		return tx.Save(&rec).Error
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

type contentTx struct {
	tx *gorm.DB
}

func (t *contentTx) AllocateSequence(namespaceCode string) (int64, error) {
	return allocateSequence(t.tx, namespaceCode)
}

func (t *contentTx) CodeExists(code string) (bool, error) {
	var count int64
	err := t.tx.Model(&domain.ContentRecord{}).
		Where("content_code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
