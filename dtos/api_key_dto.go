package dtos

import (
	"time"

	"github.com/google/uuid"
)

type APIKeyCreateRequest struct {
	ProjectID uuid.UUID `json:"projectId" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Key       string    `json:"key" validate:"required"`
}

type APIKeyUpdateRequest struct {
	Name string `json:"name" validate:"required"`
	Key  string `json:"key" validate:"required"`
}

// APIKeyDTO carries the stored key verbatim. Owners manage their own keys,
// so the API returns what was submitted. Logs are another matter, see
// databasetypes.Secret.
type APIKeyDTO struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"projectId"`
	Name      string    `json:"name"`
	Key       string    `json:"key"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
