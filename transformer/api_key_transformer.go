package transformer

import (
	"github.com/l3montree-dev/trackforge/database/models"
	databasetypes "github.com/l3montree-dev/trackforge/database/types"
	"github.com/l3montree-dev/trackforge/dtos"
)

func APIKeyCreateRequestToModel(keyCreate dtos.APIKeyCreateRequest) models.APIKey {
	return models.APIKey{
		ProjectID: keyCreate.ProjectID,
		Name:      keyCreate.Name,
		Key:       databasetypes.Secret(keyCreate.Key),
	}
}

func ApplyAPIKeyUpdateRequestToModel(keyUpdate dtos.APIKeyUpdateRequest, key *models.APIKey) {
	key.Name = keyUpdate.Name
	key.Key = databasetypes.Secret(keyUpdate.Key)
}

// APIKeyToDTO reveals the stored value. This is the only place the secret
// crosses back into a response body.
func APIKeyToDTO(key models.APIKey) dtos.APIKeyDTO {
	return dtos.APIKeyDTO{
		ID:        key.ID,
		ProjectID: key.ProjectID,
		Name:      key.Name,
		Key:       key.Key.Reveal(),
		CreatedAt: key.CreatedAt,
		UpdatedAt: key.UpdatedAt,
	}
}
