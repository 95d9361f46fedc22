package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// seqStart is the first value handed out for a fresh namespace.
const seqStart = 1001

// SequenceRepository allocates strictly increasing per-namespace values.
type SequenceRepository interface {
	// InTx runs fn against a transaction-bound allocation view. The counter
	// bump, the LAST_INSERT_ID() read, and any taken-code checks must share
	// one connection; on a pooled *gorm.DB each statement may land on a
	// different connection and read another caller's LAST_INSERT_ID.
	InTx(fn func(tx ContentTx) error) error
}

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new SequenceRepository
func NewSequenceRepository(db *gorm.DB) SequenceRepository {
	return &sequenceRepository{db: db}
}

func (r *sequenceRepository) InTx(fn func(tx ContentTx) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&contentTx{tx: tx})
	})
}

// allocateSequence is the single-statement MySQL sequence-table idiom: the
// insert seeds a fresh namespace, the ON DUPLICATE KEY branch bumps the
// counter while stashing the reserved value in LAST_INSERT_ID(). The row
// lock taken by the statement linearizes concurrent callers; no advisory
// lock and no retry loop are involved. tx must be transaction-bound, since
// LAST_INSERT_ID() is per-connection state.
//
// MySQL reports RowsAffected = 1 for a fresh insert and 2 for the update
// branch, which tells us which side handed out the value.
func allocateSequence(tx *gorm.DB, namespaceCode string) (int64, error) {
	res := tx.Exec(
		`INSERT INTO sequence_counters (namespace_code, next_value, created_at, updated_at)
		 VALUES (?, ?, NOW(), NOW())
		 ON DUPLICATE KEY UPDATE next_value = LAST_INSERT_ID(next_value) + 1, updated_at = NOW()`,
		namespaceCode, seqStart+1,
	)
	if res.Error != nil {
		return 0, fmt.Errorf("allocate sequence (namespace=%s): %w", namespaceCode, res.Error)
	}
	if res.RowsAffected == 1 {
		return seqStart, nil
	}

	var value int64
	if err := tx.Raw("SELECT LAST_INSERT_ID()").Scan(&value).Error; err != nil {
		return 0, fmt.Errorf("read allocated sequence (namespace=%s): %w", namespaceCode, err)
	}
	return value, nil
}
