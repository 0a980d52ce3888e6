package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/trackforge/database/repositories"
	"github.com/l3montree-dev/trackforge/dtos"
	"github.com/l3montree-dev/trackforge/integrationtestutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectLifecycleIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	projectRepository := repositories.NewProjectRepository(db)
	apiKeyRepository := repositories.NewAPIKeyRepository(db)
	issueRepository := repositories.NewIssueRepository(db)

	projectService := NewProjectService(projectRepository, apiKeyRepository)
	apiKeyService := NewAPIKeyService(apiKeyRepository, projectRepository)
	issueService := NewIssueService(issueRepository, projectRepository)

	createReq := dtos.ProjectCreateRequest{
		Name:       "deployment tooling",
		GithubLink: "https://github.com/example/deployment-tooling",
		Leader:     "alice",
		APIKeys: []dtos.APIKeySubmission{
			{Name: "ci", Key: "secret-1"},
			{Name: " deploy ", Key: " secret-2 "},
			{Name: "", Key: "dropped"},
		},
	}

	project, err := projectService.CreateProject("user-1", createReq)
	require.NoError(t, err)
	require.Equal(t, "user-1", project.UserID)
	require.Len(t, project.APIKeys, 2)

	t.Run("keys are stored verbatim after trimming", func(t *testing.T) {
		keys, err := apiKeyService.ListAPIKeys("user-1", project.ID)
		require.NoError(t, err)
		require.Len(t, keys, 2)

		names := []string{keys[0].Name, keys[1].Name}
		assert.Contains(t, names, "ci")
		assert.Contains(t, names, "deploy")
		for _, key := range keys {
			if key.Name == "deploy" {
				assert.Equal(t, "secret-2", key.Key)
			}
		}
	})

	t.Run("a foreign user cannot see the project", func(t *testing.T) {
		_, err := projectService.ResolveOwnedProject("user-2", project.ID)
		require.Error(t, err)
		assert.Equal(t, 404, err.(*echo.HTTPError).Code)

		_, err = apiKeyService.ListAPIKeys("user-2", project.ID)
		require.Error(t, err)
		assert.Equal(t, 404, err.(*echo.HTTPError).Code)
	})

	t.Run("duplicate key names within a project are rejected by the store", func(t *testing.T) {
		_, err := apiKeyService.CreateAPIKey("user-1", dtos.APIKeyCreateRequest{
			ProjectID: project.ID,
			Name:      "ci",
			Key:       "other-value",
		})
		require.Error(t, err)
		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, 409, httpErr.Code)
	})

	t.Run("the same key name is allowed in another project", func(t *testing.T) {
		other, err := projectService.CreateProject("user-1", dtos.ProjectCreateRequest{
			Name:       "other project",
			GithubLink: "https://github.com/example/other",
			Leader:     "alice",
		})
		require.NoError(t, err)

		_, err = apiKeyService.CreateAPIKey("user-1", dtos.APIKeyCreateRequest{
			ProjectID: other.ID,
			Name:      "ci",
			Key:       "secret-3",
		})
		assert.NoError(t, err)
	})

	t.Run("update replaces the full key set", func(t *testing.T) {
		owned, err := projectService.ResolveOwnedProject("user-1", project.ID)
		require.NoError(t, err)

		updated, err := projectService.UpdateProject(owned, dtos.ProjectUpdateRequest{
			Name:       "deployment tooling",
			GithubLink: "https://github.com/example/deployment-tooling",
			Leader:     "bob",
			APIKeys: []dtos.APIKeySubmission{
				{Name: "rotated", Key: "secret-9"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "bob", updated.Leader)
		require.Len(t, updated.APIKeys, 1)
		assert.Equal(t, "rotated", updated.APIKeys[0].Name)
	})

	t.Run("issues reference an existing project or fail with 404", func(t *testing.T) {
		_, err := issueService.CreateIssue("user-1", dtos.IssueCreateRequest{
			ProjectID: uuid.New(),
			Title:     "dangling",
		})
		require.Error(t, err)
		assert.Equal(t, 404, err.(*echo.HTTPError).Code)

		issue, err := issueService.CreateIssue("user-1", dtos.IssueCreateRequest{
			ProjectID: project.ID,
			Title:     "login broken",
			Priority:  "medium",
		})
		require.NoError(t, err)
		assert.Equal(t, "medium", issue.Priority)
		assert.Equal(t, "open", issue.Status)

		bumped, err := issueService.UpdateIssuePriority("user-1", dtos.IssuePriorityUpdateRequest{
			IssueID:  issue.ID,
			Priority: "high",
		})
		require.NoError(t, err)
		assert.Equal(t, "high", bumped.Priority)
		assert.Equal(t, issue.Title, bumped.Title)
	})

	t.Run("deleting the project cascades to keys and issues", func(t *testing.T) {
		owned, err := projectService.ResolveOwnedProject("user-1", project.ID)
		require.NoError(t, err)
		require.NoError(t, projectService.DeleteProject(owned))

		var keyCount, issueCount int64
		require.NoError(t, db.Table("api_keys").Where("project_id = ?", project.ID).Count(&keyCount).Error)
		require.NoError(t, db.Table("issues").Where("project_id = ?", project.ID).Count(&issueCount).Error)
		assert.Zero(t, keyCount)
		assert.Zero(t, issueCount)
	})
}
