package domain

import "time"

// Assignment binds one role on one record to a team member. Reassignment
// updates the row; one row per (record, role).
type Assignment struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecordID   string    `gorm:"column:record_id;type:varchar(36);uniqueIndex:uq_record_role;index" json:"record_id"`
	Role       Role      `gorm:"column:role;type:varchar(20);uniqueIndex:uq_record_role" json:"role"`
	AssigneeID string    `gorm:"column:assignee_id;type:varchar(50);index" json:"assignee_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Assignment) TableName() string { return "assignments" }

// TeamMember is a person who can hold pipeline assignments.
type TeamMember struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(50)" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100)" json:"name"`
	Role      Role      `gorm:"column:role;type:varchar(20);index" json:"role"`
	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TeamMember) TableName() string { return "team_members" }
