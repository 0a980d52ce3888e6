package services

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/trackforge/database"
	"github.com/l3montree-dev/trackforge/database/models"
	"github.com/l3montree-dev/trackforge/dtos"
	"github.com/l3montree-dev/trackforge/monitoring"
	"github.com/l3montree-dev/trackforge/shared"
	"github.com/l3montree-dev/trackforge/transformer"
	"github.com/labstack/echo/v4"
)

type projectService struct {
	projectRepository shared.ProjectRepository
	apiKeyRepository  shared.APIKeyRepository
}

func NewProjectService(projectRepository shared.ProjectRepository, apiKeyRepository shared.APIKeyRepository) *projectService {
	return &projectService{
		projectRepository: projectRepository,
		apiKeyRepository:  apiKeyRepository,
	}
}

// ResolveOwnedProject is shared by every handler that scopes work to a
// project. A project owned by another user yields the same 404 as a project
// that does not exist.
func (s *projectService) ResolveOwnedProject(callerID string, projectID uuid.UUID) (models.Project, error) {
	project, err := s.projectRepository.ReadOwned(projectID, callerID)
	if err != nil {
		if database.IsNotFoundError(err) {
			return models.Project{}, echo.NewHTTPError(404, "project not found").WithInternal(err)
		}
		return models.Project{}, echo.NewHTTPError(500, "could not load project").WithInternal(err)
	}
	return project, nil
}

func (s *projectService) ListProjects(callerID string) ([]dtos.ProjectDTO, error) {
	projects, err := s.projectRepository.GetByOwner(callerID)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list projects").WithInternal(err)
	}

	result := make([]dtos.ProjectDTO, 0, len(projects))
	for _, project := range projects {
		keys, err := s.apiKeyRepository.GetByProjectID(project.ID)
		if err != nil {
			return nil, echo.NewHTTPError(500, "could not list projects").WithInternal(err)
		}
		result = append(result, transformer.ProjectToDTO(project, keys))
	}
	return result, nil
}

// GetProject attaches the key list to an already resolved project.
func (s *projectService) GetProject(project models.Project) (dtos.ProjectDTO, error) {
	keys, err := s.apiKeyRepository.GetByProjectID(project.ID)
	if err != nil {
		return dtos.ProjectDTO{}, echo.NewHTTPError(500, "could not load project").WithInternal(err)
	}
	return transformer.ProjectToDTO(project, keys), nil
}

func (s *projectService) CreateProject(callerID string, req dtos.ProjectCreateRequest) (dtos.ProjectDTO, error) {
	project := transformer.ProjectCreateRequestToModel(req, callerID)

	var createdKeys int
	err := s.projectRepository.Transaction(func(tx shared.DB) error {
		if err := s.projectRepository.Create(tx, &project); err != nil {
			return err
		}

		keys := transformer.FilterValidAPIKeySubmissions(req.APIKeys, project.ID)
		createdKeys = len(keys)
		if len(keys) == 0 {
			return nil
		}
		return s.apiKeyRepository.CreateBatch(tx, keys)
	})
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return dtos.ProjectDTO{}, echo.NewHTTPError(409, "An API key with this name already exists in this project").WithInternal(err)
		}
		slog.Error("could not create project", "err", err, "userID", callerID)
		return dtos.ProjectDTO{}, echo.NewHTTPError(500, "could not create project").WithInternal(err)
	}

	monitoring.ProjectsCreated.Inc()
	monitoring.APIKeysCreated.Add(float64(createdKeys))

	keys, err := s.apiKeyRepository.GetByProjectID(project.ID)
	if err != nil {
		return dtos.ProjectDTO{}, echo.NewHTTPError(500, "could not load project").WithInternal(err)
	}
	return transformer.ProjectToDTO(project, keys), nil
}

// UpdateProject replaces the project fields and the full API key set in a
// single transaction. Keys absent from the request are gone afterwards.
func (s *projectService) UpdateProject(project models.Project, req dtos.ProjectUpdateRequest) (dtos.ProjectDTO, error) {
	transformer.ApplyProjectUpdateRequestToModel(req, &project)

	err := s.projectRepository.Transaction(func(tx shared.DB) error {
		if err := s.projectRepository.Update(tx, &project); err != nil {
			return err
		}

		if err := s.apiKeyRepository.DeleteByProjectID(tx, project.ID); err != nil {
			return err
		}

		keys := transformer.FilterValidAPIKeySubmissions(req.APIKeys, project.ID)
		if len(keys) == 0 {
			return nil
		}
		return s.apiKeyRepository.CreateBatch(tx, keys)
	})
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return dtos.ProjectDTO{}, echo.NewHTTPError(409, "An API key with this name already exists in this project").WithInternal(err)
		}
		slog.Error("could not update project", "err", err, "projectID", project.ID)
		return dtos.ProjectDTO{}, echo.NewHTTPError(500, "could not update project").WithInternal(err)
	}

	keys, err := s.apiKeyRepository.GetByProjectID(project.ID)
	if err != nil {
		return dtos.ProjectDTO{}, echo.NewHTTPError(500, "could not load project").WithInternal(err)
	}
	return transformer.ProjectToDTO(project, keys), nil
}

func (s *projectService) DeleteProject(project models.Project) error {
	// api keys and issues go with the project via ON DELETE CASCADE
	if err := s.projectRepository.Delete(nil, project.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete project").WithInternal(err)
	}

	monitoring.ProjectsDeleted.Inc()
	return nil
}
