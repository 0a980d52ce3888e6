package models

import (
	"time"

	"github.com/google/uuid"
)

type IssueStatus string

const (
	IssueStatusOpen       IssueStatus = "open"
	IssueStatusInProgress IssueStatus = "in_progress"
	IssueStatusClosed     IssueStatus = "closed"
)

type IssuePriority string

const (
	IssuePriorityLow    IssuePriority = "low"
	IssuePriorityMedium IssuePriority = "medium"
	IssuePriorityHigh   IssuePriority = "high"
)

// Issue status is a plain enumerated field, not a guarded workflow: any
// status is reachable from any other, driven entirely by the caller.
type Issue struct {
	ID        int       `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ProjectID   uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Description *string   `json:"description" gorm:"type:text"`

	// opaque creator identifier from the identity provider
	UserID string `json:"userId" gorm:"type:varchar(255);not null"`

	Status   IssueStatus   `json:"status" gorm:"type:text;default:'open';not null"`
	Priority IssuePriority `json:"priority" gorm:"type:text;default:'low';not null"`
}

func (m Issue) TableName() string {
	return "issues"
}
