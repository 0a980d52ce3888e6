package transformer

import (
	"github.com/l3montree-dev/trackforge/database/models"
	"github.com/l3montree-dev/trackforge/dtos"
)

func IssueCreateRequestToModel(issueCreate dtos.IssueCreateRequest, reporterID string) models.Issue {
	status := models.IssueStatus(issueCreate.Status)
	if status == "" {
		status = models.IssueStatusOpen
	}
	priority := models.IssuePriority(issueCreate.Priority)
	if priority == "" {
		priority = models.IssuePriorityLow
	}

	return models.Issue{
		ProjectID:   issueCreate.ProjectID,
		Title:       issueCreate.Title,
		Description: issueCreate.Description,
		UserID:      reporterID,
		Status:      status,
		Priority:    priority,
	}
}

func IssueToDTO(issue models.Issue) dtos.IssueDTO {
	return dtos.IssueDTO{
		ID:          issue.ID,
		ProjectID:   issue.ProjectID,
		Title:       issue.Title,
		Description: issue.Description,
		UserID:      issue.UserID,
		Status:      string(issue.Status),
		Priority:    string(issue.Priority),
		CreatedAt:   issue.CreatedAt,
		UpdatedAt:   issue.UpdatedAt,
	}
}
