package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/l3montree-dev/trackforge/database/models"
	"github.com/l3montree-dev/trackforge/dtos"
	"github.com/l3montree-dev/trackforge/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateIssue(t *testing.T) {
	projectID := uuid.New()

	t.Run("should default status and priority", func(t *testing.T) {
		issueRepository := mocks.NewIssueRepository(t)
		projectRepository := mocks.NewProjectRepository(t)

		issueRepository.On("Create", mock.Anything, mock.MatchedBy(func(issue *models.Issue) bool {
			return issue.Status == models.IssueStatusOpen && issue.Priority == models.IssuePriorityLow && issue.UserID == "user-1"
		})).Return(nil)

		service := NewIssueService(issueRepository, projectRepository)

		issue, err := service.CreateIssue("user-1", dtos.IssueCreateRequest{
			ProjectID: projectID,
			Title:     "login broken",
		})

		assert.NoError(t, err)
		assert.Equal(t, "open", issue.Status)
		assert.Equal(t, "low", issue.Priority)
	})

	t.Run("should map a foreign key violation to a 404", func(t *testing.T) {
		issueRepository := mocks.NewIssueRepository(t)
		projectRepository := mocks.NewProjectRepository(t)

		issueRepository.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

		service := NewIssueService(issueRepository, projectRepository)

		_, err := service.CreateIssue("user-1", dtos.IssueCreateRequest{
			ProjectID: projectID,
			Title:     "login broken",
		})

		assert.Error(t, err)
		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, 404, httpErr.Code)
		assert.Equal(t, "Project not found", httpErr.Message)
	})
}

func TestUpdateIssuePriority(t *testing.T) {
	t.Run("should return 404 when no row was touched", func(t *testing.T) {
		issueRepository := mocks.NewIssueRepository(t)
		projectRepository := mocks.NewProjectRepository(t)

		issueRepository.On("UpdatePriority", 42, models.IssuePriorityHigh).Return(int64(0), nil)

		service := NewIssueService(issueRepository, projectRepository)

		_, err := service.UpdateIssuePriority("user-1", dtos.IssuePriorityUpdateRequest{
			IssueID:  42,
			Priority: "high",
		})

		assert.Error(t, err)
		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, 404, httpErr.Code)
	})

	t.Run("should return the updated issue", func(t *testing.T) {
		issueRepository := mocks.NewIssueRepository(t)
		projectRepository := mocks.NewProjectRepository(t)

		issueRepository.On("UpdatePriority", 42, models.IssuePriorityHigh).Return(int64(1), nil)
		issueRepository.On("Read", 42).Return(models.Issue{
			ID:       42,
			Title:    "login broken",
			Priority: models.IssuePriorityHigh,
			Status:   models.IssueStatusOpen,
		}, nil)

		service := NewIssueService(issueRepository, projectRepository)

		issue, err := service.UpdateIssuePriority("user-1", dtos.IssuePriorityUpdateRequest{
			IssueID:  42,
			Priority: "high",
		})

		assert.NoError(t, err)
		assert.Equal(t, "high", issue.Priority)
		assert.Equal(t, 42, issue.ID)
	})
}

func TestDeleteIssue(t *testing.T) {
	t.Run("should return 404 for an unknown issue", func(t *testing.T) {
		issueRepository := mocks.NewIssueRepository(t)
		projectRepository := mocks.NewProjectRepository(t)

		issueRepository.On("DeleteByID", 7).Return(int64(0), nil)

		service := NewIssueService(issueRepository, projectRepository)

		err := service.DeleteIssue("user-1", dtos.IssueDeleteRequest{IssueID: 7})

		assert.Error(t, err)
		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, 404, httpErr.Code)
	})

	t.Run("should delete an existing issue", func(t *testing.T) {
		issueRepository := mocks.NewIssueRepository(t)
		projectRepository := mocks.NewProjectRepository(t)

		issueRepository.On("DeleteByID", 7).Return(int64(1), nil)

		service := NewIssueService(issueRepository, projectRepository)

		err := service.DeleteIssue("user-1", dtos.IssueDeleteRequest{IssueID: 7})

		assert.NoError(t, err)
	})
}
