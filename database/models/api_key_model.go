package models

import (
	"github.com/google/uuid"
	databasetypes "github.com/l3montree-dev/trackforge/database/types"
)

// APIKey is a named opaque secret attached to a project. It is not a
// credential for this application itself - we store whatever the user
// entered, verbatim. The value never shows up in logs (databasetypes.Secret).
type APIKey struct {
	Model
	ProjectID uuid.UUID            `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_api_keys_project_name"`
	Name      string               `json:"name" gorm:"type:text;not null;uniqueIndex:idx_api_keys_project_name"`
	Key       databasetypes.Secret `json:"key" gorm:"type:text;not null"`
}

func (m APIKey) TableName() string {
	return "api_keys"
}
