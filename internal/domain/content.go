package domain

import (
	"time"
)

// Status is the review lifecycle state of a content record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusDissolved Status = "dissolved"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusDissolved:
		return true
	}
	return false
}

// Stage is the production-pipeline position of an approved record.
type Stage string

const (
	StageNotStarted  Stage = "not_started"
	StagePlanning    Stage = "planning"
	StageShooting    Stage = "shooting"
	StageShootReview Stage = "shoot_review"
	StageEditing     Stage = "editing"
	StageEditReview  Stage = "edit_review"
	StageReadyToPost Stage = "ready_to_post"
	StagePosted      Stage = "posted"
)

// stageOrder is the single forward path through production.
var stageOrder = []Stage{
	StageNotStarted,
	StagePlanning,
	StageShooting,
	StageShootReview,
	StageEditing,
	StageEditReview,
	StageReadyToPost,
	StagePosted,
}

// ParseStage validates a stage value coming from the API boundary.
func ParseStage(s string) (Stage, bool) {
	for _, st := range stageOrder {
		if Stage(s) == st {
			return st, true
		}
	}
	return "", false
}

// Valid reports whether st is a known stage value.
func (st Stage) Valid() bool {
	_, ok := ParseStage(string(st))
	return ok
}

// Next returns the next stage on the forward path, or "" from the last stage.
func (st Stage) Next() Stage {
	for i, s := range stageOrder {
		if s == st && i+1 < len(stageOrder) {
			return stageOrder[i+1]
		}
	}
	return ""
}

// Prev returns the previous stage on the path, or "" from the first stage.
func (st Stage) Prev() Stage {
	for i, s := range stageOrder {
		if s == st && i > 0 {
			return stageOrder[i-1]
		}
	}
	return ""
}

// IsReviewGate reports whether st is an admin-only review gate.
// Only the admin decision moves a record out of a gate stage.
func (st Stage) IsReviewGate() bool {
	return st == StageShootReview || st == StageEditReview
}

// IsActive reports whether a record in this stage still counts as in-flight
// work for workload purposes.
func (st Stage) IsActive() bool {
	return st != StagePosted
}

// OwnerRole returns the role-holder responsible for driving work while the
// record sits in st. Gate stages belong to the admin.
func (st Stage) OwnerRole() Role {
	switch st {
	case StageShootReview, StageEditReview:
		return RoleAdmin
	case StageEditing:
		return RoleEditor
	case StageReadyToPost:
		return RolePostingManager
	default:
		// not_started, planning, shooting are videographer-driven
		return RoleVideographer
	}
}

// Role identifies who is acting on or assigned to a record.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleVideographer   Role = "videographer"
	RoleEditor         Role = "editor"
	RolePostingManager Role = "posting_manager"
)

// ParseRole validates a role value coming from the API boundary.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleVideographer, RoleEditor, RolePostingManager:
		return Role(s), true
	}
	return "", false
}

// AssignableRoles are the roles that hold per-record assignments. The admin
// gates every record and is never assigned.
var AssignableRoles = []Role{RoleVideographer, RoleEditor, RolePostingManager}

// ContentRecord is the aggregate root flowing through the pipeline:
// a submitted script plus its review state, production stage and counters.
type ContentRecord struct {
	ID                string     `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	Title             string     `gorm:"column:title;type:varchar(255)" json:"title"`
	Script            string     `gorm:"column:script;type:text" json:"script"`
	Status            Status     `gorm:"column:status;type:varchar(20);default:pending;index" json:"status"`
	Stage             Stage      `gorm:"column:stage;type:varchar(20);default:not_started" json:"stage"`
	ContentCode       *string    `gorm:"column:content_code;type:varchar(50);uniqueIndex" json:"content_code,omitempty"`
	NamespaceCode     string     `gorm:"column:namespace_code;type:varchar(20);index" json:"namespace_code"`
	RejectionCount    int        `gorm:"column:rejection_count;default:0" json:"rejection_count"`
	DisapprovalCount  int        `gorm:"column:disapproval_count;default:0" json:"disapproval_count"`
	IsDissolved       bool       `gorm:"column:is_dissolved;default:false;index" json:"is_dissolved"`
	DissolutionReason *string    `gorm:"column:dissolution_reason;type:text" json:"dissolution_reason,omitempty"`
	DisapprovalReason *string    `gorm:"column:disapproval_reason;type:text" json:"disapproval_reason,omitempty"`
	AuthorID          string     `gorm:"column:author_id;type:varchar(50);index" json:"author_id"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Join field
	Assignments []Assignment `gorm:"foreignKey:RecordID;references:ID" json:"assignments,omitempty"`
}

func (ContentRecord) TableName() string { return "content_records" }
