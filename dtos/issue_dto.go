package dtos

import (
	"time"

	"github.com/google/uuid"
)

type IssueCreateRequest struct {
	ProjectID   uuid.UUID `json:"projectId" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description *string   `json:"description"`
	Status      string    `json:"status" validate:"omitempty,oneof=open in_progress closed"`
	Priority    string    `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type IssuePriorityUpdateRequest struct {
	IssueID  int    `json:"issueId" validate:"required"`
	Priority string `json:"priority" validate:"required,oneof=low medium high"`
}

type IssueDeleteRequest struct {
	IssueID int `json:"issueId" validate:"required"`
}

type IssueDTO struct {
	ID          int       `json:"id"`
	ProjectID   uuid.UUID `json:"projectId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	UserID      string    `json:"userId"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
