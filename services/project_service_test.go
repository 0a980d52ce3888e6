package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/l3montree-dev/trackforge/database/models"
	"github.com/l3montree-dev/trackforge/dtos"
	"github.com/l3montree-dev/trackforge/mocks"
	"github.com/l3montree-dev/trackforge/monitoring"
	"github.com/l3montree-dev/trackforge/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestResolveOwnedProject(t *testing.T) {
	t.Run("should return 404 if the project belongs to another user", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		apiKeyRepository := mocks.NewAPIKeyRepository(t)

		projectID := uuid.New()
		projectRepository.On("ReadOwned", projectID, "user-1").Return(models.Project{}, gorm.ErrRecordNotFound)

		service := NewProjectService(projectRepository, apiKeyRepository)

		_, err := service.ResolveOwnedProject("user-1", projectID)

		assert.Error(t, err)
		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, 404, httpErr.Code)
	})

	t.Run("should return the project for its owner", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		apiKeyRepository := mocks.NewAPIKeyRepository(t)

		projectID := uuid.New()
		expected := models.Project{Name: "deployment tooling", UserID: "user-1"}
		projectRepository.On("ReadOwned", projectID, "user-1").Return(expected, nil)

		service := NewProjectService(projectRepository, apiKeyRepository)

		project, err := service.ResolveOwnedProject("user-1", projectID)

		assert.NoError(t, err)
		assert.Equal(t, expected, project)
	})
}

func TestCreateProject(t *testing.T) {
	req := dtos.ProjectCreateRequest{
		Name:       "deployment tooling",
		GithubLink: "https://github.com/example/deployment-tooling",
		Leader:     "alice",
		APIKeys: []dtos.APIKeySubmission{
			{Name: " ci ", Key: " secret-1 "},
			{Name: "", Key: "dangling"},
		},
	}

	t.Run("should create the project and its trimmed api keys in one transaction", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		apiKeyRepository := mocks.NewAPIKeyRepository(t)

		projectRepository.On("Transaction", mock.Anything).Return(func(fn func(tx *gorm.DB) error) error {
			return fn(nil)
		})
		projectRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		apiKeyRepository.On("CreateBatch", mock.Anything, mock.MatchedBy(func(keys []models.APIKey) bool {
			// the blank-named entry is dropped, the other one trimmed
			return len(keys) == 1 && keys[0].Name == "ci" && keys[0].Key.Reveal() == "secret-1"
		})).Return(nil)
		apiKeyRepository.On("GetByProjectID", mock.Anything).Return([]models.APIKey{}, nil)

		service := NewProjectService(projectRepository, apiKeyRepository)

		project, err := service.CreateProject("user-1", req)

		assert.NoError(t, err)
		assert.Equal(t, "user-1", project.UserID)
		assert.Equal(t, "deployment tooling", project.Name)
	})

	t.Run("should count the inline api keys in the created metric", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		apiKeyRepository := mocks.NewAPIKeyRepository(t)

		projectRepository.On("Transaction", mock.Anything).Return(func(fn func(tx *gorm.DB) error) error {
			return fn(nil)
		})
		projectRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		apiKeyRepository.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
		apiKeyRepository.On("GetByProjectID", mock.Anything).Return([]models.APIKey{}, nil)

		service := NewProjectService(projectRepository, apiKeyRepository)

		before := testutil.ToFloat64(monitoring.APIKeysCreated)

		_, err := service.CreateProject("user-1", req)

		assert.NoError(t, err)
		// one of the two submitted keys survives filtering
		assert.Equal(t, before+1, testutil.ToFloat64(monitoring.APIKeysCreated))
	})

	t.Run("should map a unique violation to a 409", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		apiKeyRepository := mocks.NewAPIKeyRepository(t)

		projectRepository.On("Transaction", mock.Anything).Return(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		service := NewProjectService(projectRepository, apiKeyRepository)

		_, err := service.CreateProject("user-1", req)

		assert.Error(t, err)
		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, 409, httpErr.Code)
		assert.Equal(t, "An API key with this name already exists in this project", httpErr.Message)
	})

	t.Run("should not insert keys if none survive filtering", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		apiKeyRepository := mocks.NewAPIKeyRepository(t)

		projectRepository.On("Transaction", mock.Anything).Return(func(fn func(tx *gorm.DB) error) error {
			return fn(nil)
		})
		projectRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		apiKeyRepository.On("GetByProjectID", mock.Anything).Return([]models.APIKey{}, nil)

		service := NewProjectService(projectRepository, apiKeyRepository)

		emptyKeys := req
		emptyKeys.APIKeys = []dtos.APIKeySubmission{{Name: "  ", Key: ""}}

		_, err := service.CreateProject("user-1", emptyKeys)

		assert.NoError(t, err)
		apiKeyRepository.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})
}

func TestUpdateProject(t *testing.T) {
	projectID := uuid.New()
	req := dtos.ProjectUpdateRequest{
		Name:       "renamed",
		GithubLink: "https://github.com/example/renamed",
		Leader:     "bob",
		APIKeys: []dtos.APIKeySubmission{
			{Name: "deploy", Key: "secret-2"},
		},
	}

	t.Run("should replace the full api key set", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		apiKeyRepository := mocks.NewAPIKeyRepository(t)

		existing := models.Project{Name: "old", UserID: "user-1"}
		existing.ID = projectID

		projectRepository.On("Transaction", mock.Anything).Return(func(fn func(tx *gorm.DB) error) error {
			return fn(nil)
		})
		projectRepository.On("Update", mock.Anything, mock.MatchedBy(func(p *models.Project) bool {
			return p.Name == "renamed" && p.Leader == "bob" && p.UserID == "user-1"
		})).Return(nil)
		apiKeyRepository.On("DeleteByProjectID", mock.Anything, projectID).Return(nil)
		apiKeyRepository.On("CreateBatch", mock.Anything, mock.MatchedBy(func(keys []models.APIKey) bool {
			return len(keys) == 1 && keys[0].Name == "deploy" && keys[0].ProjectID == projectID
		})).Return(nil)
		apiKeyRepository.On("GetByProjectID", projectID).Return([]models.APIKey{}, nil)

		service := NewProjectService(projectRepository, apiKeyRepository)

		project, err := service.UpdateProject(existing, req)

		assert.NoError(t, err)
		assert.Equal(t, "renamed", project.Name)
	})
}

func TestDeleteProject(t *testing.T) {
	t.Run("should delete the resolved project", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		apiKeyRepository := mocks.NewAPIKeyRepository(t)

		existing := models.Project{UserID: "user-1"}
		existing.ID = uuid.New()

		projectRepository.On("Delete", (shared.DB)(nil), existing.ID).Return(nil)

		service := NewProjectService(projectRepository, apiKeyRepository)

		err := service.DeleteProject(existing)

		assert.NoError(t, err)
	})
}
