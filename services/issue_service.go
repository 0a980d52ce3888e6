package services

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/trackforge/database"
	"github.com/l3montree-dev/trackforge/database/models"
	"github.com/l3montree-dev/trackforge/dtos"
	"github.com/l3montree-dev/trackforge/monitoring"
	"github.com/l3montree-dev/trackforge/shared"
	"github.com/l3montree-dev/trackforge/transformer"
	"github.com/l3montree-dev/trackforge/utils"
	"github.com/labstack/echo/v4"
)

type issueService struct {
	issueRepository   shared.IssueRepository
	projectRepository shared.ProjectRepository
}

func NewIssueService(issueRepository shared.IssueRepository, projectRepository shared.ProjectRepository) *issueService {
	return &issueService{
		issueRepository:   issueRepository,
		projectRepository: projectRepository,
	}
}

func (s *issueService) ListIssues(callerID string, projectID uuid.UUID) ([]dtos.IssueDTO, error) {
	issues, err := s.issueRepository.GetByProjectID(projectID)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list issues").WithInternal(err)
	}
	return utils.Map(issues, transformer.IssueToDTO), nil
}

// CreateIssue relies on the foreign key for project existence: a violation
// means the project id does not reference anything.
func (s *issueService) CreateIssue(callerID string, req dtos.IssueCreateRequest) (dtos.IssueDTO, error) {
	issue := transformer.IssueCreateRequestToModel(req, callerID)

	if err := s.issueRepository.Create(nil, &issue); err != nil {
		if database.IsForeignKeyViolation(err) {
			return dtos.IssueDTO{}, echo.NewHTTPError(404, "Project not found").WithInternal(err)
		}
		return dtos.IssueDTO{}, echo.NewHTTPError(500, "could not create issue").WithInternal(err)
	}

	monitoring.IssuesCreated.Inc()
	return transformer.IssueToDTO(issue), nil
}

func (s *issueService) UpdateIssuePriority(callerID string, req dtos.IssuePriorityUpdateRequest) (dtos.IssueDTO, error) {
	affected, err := s.issueRepository.UpdatePriority(req.IssueID, models.IssuePriority(req.Priority))
	if err != nil {
		return dtos.IssueDTO{}, echo.NewHTTPError(500, "could not update issue").WithInternal(err)
	}
	if affected == 0 {
		return dtos.IssueDTO{}, echo.NewHTTPError(404, "issue not found")
	}

	issue, err := s.issueRepository.Read(req.IssueID)
	if err != nil {
		return dtos.IssueDTO{}, echo.NewHTTPError(500, "could not update issue").WithInternal(err)
	}
	return transformer.IssueToDTO(issue), nil
}

func (s *issueService) DeleteIssue(callerID string, req dtos.IssueDeleteRequest) error {
	affected, err := s.issueRepository.DeleteByID(req.IssueID)
	if err != nil {
		return echo.NewHTTPError(500, "could not delete issue").WithInternal(err)
	}
	if affected == 0 {
		return echo.NewHTTPError(404, "issue not found")
	}

	monitoring.IssuesDeleted.Inc()
	return nil
}
