package domain

import "time"

// SequenceCounter holds the next identifier value for one namespace.
// Rows are created lazily on first allocation and never deleted; the only
// mutation is the atomic increment in the sequence repository.
type SequenceCounter struct {
	NamespaceCode string    `gorm:"column:namespace_code;primaryKey;type:varchar(20)" json:"namespace_code"`
	NextValue     int64     `gorm:"column:next_value" json:"next_value"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SequenceCounter) TableName() string { return "sequence_counters" }

// Profile is a content profile/category; its code is the namespace within
// which content identifiers are allocated.
type Profile struct {
	Code      string    `gorm:"column:code;primaryKey;type:varchar(20)" json:"code"`
	Name      string    `gorm:"column:name;type:varchar(100)" json:"name"`
	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
