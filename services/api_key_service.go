package services

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/trackforge/database"
	"github.com/l3montree-dev/trackforge/dtos"
	"github.com/l3montree-dev/trackforge/monitoring"
	"github.com/l3montree-dev/trackforge/shared"
	"github.com/l3montree-dev/trackforge/transformer"
	"github.com/l3montree-dev/trackforge/utils"
	"github.com/labstack/echo/v4"
)

type apiKeyService struct {
	apiKeyRepository  shared.APIKeyRepository
	projectRepository shared.ProjectRepository
}

func NewAPIKeyService(apiKeyRepository shared.APIKeyRepository, projectRepository shared.ProjectRepository) *apiKeyService {
	return &apiKeyService{
		apiKeyRepository:  apiKeyRepository,
		projectRepository: projectRepository,
	}
}

func (s *apiKeyService) ListAPIKeys(callerID string, projectID uuid.UUID) ([]dtos.APIKeyDTO, error) {
	if _, err := s.projectRepository.ReadOwned(projectID, callerID); err != nil {
		if database.IsNotFoundError(err) {
			return nil, echo.NewHTTPError(404, "project not found").WithInternal(err)
		}
		return nil, echo.NewHTTPError(500, "could not list api keys").WithInternal(err)
	}

	keys, err := s.apiKeyRepository.GetByProjectID(projectID)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list api keys").WithInternal(err)
	}
	return utils.Map(keys, transformer.APIKeyToDTO), nil
}

func (s *apiKeyService) GetAPIKey(callerID string, apiKeyID uuid.UUID) (dtos.APIKeyDTO, error) {
	key, err := s.apiKeyRepository.ReadOwned(apiKeyID, callerID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return dtos.APIKeyDTO{}, echo.NewHTTPError(404, "api key not found").WithInternal(err)
		}
		return dtos.APIKeyDTO{}, echo.NewHTTPError(500, "could not load api key").WithInternal(err)
	}
	return transformer.APIKeyToDTO(key), nil
}

func (s *apiKeyService) CreateAPIKey(callerID string, req dtos.APIKeyCreateRequest) (dtos.APIKeyDTO, error) {
	if _, err := s.projectRepository.ReadOwned(req.ProjectID, callerID); err != nil {
		if database.IsNotFoundError(err) {
			return dtos.APIKeyDTO{}, echo.NewHTTPError(404, "project not found").WithInternal(err)
		}
		return dtos.APIKeyDTO{}, echo.NewHTTPError(500, "could not create api key").WithInternal(err)
	}

	key := transformer.APIKeyCreateRequestToModel(req)
	if err := s.apiKeyRepository.Create(nil, &key); err != nil {
		if database.IsDuplicateKeyError(err) {
			return dtos.APIKeyDTO{}, echo.NewHTTPError(409, "An API key with this name already exists in this project").WithInternal(err)
		}
		return dtos.APIKeyDTO{}, echo.NewHTTPError(500, "could not create api key").WithInternal(err)
	}

	monitoring.APIKeysCreated.Inc()
	return transformer.APIKeyToDTO(key), nil
}

func (s *apiKeyService) UpdateAPIKey(callerID string, apiKeyID uuid.UUID, req dtos.APIKeyUpdateRequest) (dtos.APIKeyDTO, error) {
	key, err := s.apiKeyRepository.ReadOwned(apiKeyID, callerID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return dtos.APIKeyDTO{}, echo.NewHTTPError(404, "api key not found").WithInternal(err)
		}
		return dtos.APIKeyDTO{}, echo.NewHTTPError(500, "could not update api key").WithInternal(err)
	}

	transformer.ApplyAPIKeyUpdateRequestToModel(req, &key)
	if err := s.apiKeyRepository.Update(nil, &key); err != nil {
		if database.IsDuplicateKeyError(err) {
			return dtos.APIKeyDTO{}, echo.NewHTTPError(409, "An API key with this name already exists in this project").WithInternal(err)
		}
		return dtos.APIKeyDTO{}, echo.NewHTTPError(500, "could not update api key").WithInternal(err)
	}
	return transformer.APIKeyToDTO(key), nil
}

func (s *apiKeyService) DeleteAPIKey(callerID string, apiKeyID uuid.UUID) error {
	key, err := s.apiKeyRepository.ReadOwned(apiKeyID, callerID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return echo.NewHTTPError(404, "api key not found").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not delete api key").WithInternal(err)
	}

	if err := s.apiKeyRepository.Delete(nil, key.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete api key").WithInternal(err)
	}
	return nil
}
