// Copyright (C) 2025 timbastin
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/trackforge/database"
	"github.com/l3montree-dev/trackforge/database/models"
	"github.com/l3montree-dev/trackforge/dtos"
)

type ProjectRepository interface {
	database.Repository[uuid.UUID, models.Project, DB]
	ReadOwned(id uuid.UUID, ownerID string) (models.Project, error)
	GetByOwner(ownerID string) ([]models.Project, error)
}

type APIKeyRepository interface {
	database.Repository[uuid.UUID, models.APIKey, DB]
	GetByProjectID(projectID uuid.UUID) ([]models.APIKey, error)
	ReadOwned(id uuid.UUID, ownerID string) (models.APIKey, error)
	DeleteByProjectID(tx DB, projectID uuid.UUID) error
}

type IssueRepository interface {
	database.Repository[int, models.Issue, DB]
	GetByProjectID(projectID uuid.UUID) ([]models.Issue, error)
	UpdatePriority(id int, priority models.IssuePriority) (int64, error)
	DeleteByID(id int) (int64, error)
}

// Every service method takes the calling user's identity explicitly. Nothing
// below reads ownership out of ambient request state. Ownership of a single
// project is resolved exactly once through ResolveOwnedProject (the access
// middleware calls it); the item operations take the resolved project.
type ProjectService interface {
	ListProjects(callerID string) ([]dtos.ProjectDTO, error)
	GetProject(project models.Project) (dtos.ProjectDTO, error)
	CreateProject(callerID string, req dtos.ProjectCreateRequest) (dtos.ProjectDTO, error)
	UpdateProject(project models.Project, req dtos.ProjectUpdateRequest) (dtos.ProjectDTO, error)
	DeleteProject(project models.Project) error
	ResolveOwnedProject(callerID string, projectID uuid.UUID) (models.Project, error)
}

type APIKeyService interface {
	ListAPIKeys(callerID string, projectID uuid.UUID) ([]dtos.APIKeyDTO, error)
	GetAPIKey(callerID string, apiKeyID uuid.UUID) (dtos.APIKeyDTO, error)
	CreateAPIKey(callerID string, req dtos.APIKeyCreateRequest) (dtos.APIKeyDTO, error)
	UpdateAPIKey(callerID string, apiKeyID uuid.UUID, req dtos.APIKeyUpdateRequest) (dtos.APIKeyDTO, error)
	DeleteAPIKey(callerID string, apiKeyID uuid.UUID) error
}

type IssueService interface {
	ListIssues(callerID string, projectID uuid.UUID) ([]dtos.IssueDTO, error)
	CreateIssue(callerID string, req dtos.IssueCreateRequest) (dtos.IssueDTO, error)
	UpdateIssuePriority(callerID string, req dtos.IssuePriorityUpdateRequest) (dtos.IssueDTO, error)
	DeleteIssue(callerID string, req dtos.IssueDeleteRequest) error
}
