// Copyright (C) 2025 l3montree GmbH
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

package transformer

import (
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/trackforge/database/models"
	databasetypes "github.com/l3montree-dev/trackforge/database/types"
	"github.com/l3montree-dev/trackforge/dtos"
	"github.com/l3montree-dev/trackforge/utils"
)

func ProjectCreateRequestToModel(projectCreate dtos.ProjectCreateRequest, ownerID string) models.Project {
	return models.Project{
		Name:        projectCreate.Name,
		Description: projectCreate.Description,
		StartDate:   projectCreate.StartDate,
		EndDate:     projectCreate.EndDate,
		GithubLink:  projectCreate.GithubLink,
		Leader:      projectCreate.Leader,
		UserID:      ownerID,
	}
}

// ApplyProjectUpdateRequestToModel overwrites every mutable field. The update
// endpoint is a full replace, not a patch. Ownership never moves.
func ApplyProjectUpdateRequestToModel(projectUpdate dtos.ProjectUpdateRequest, project *models.Project) {
	project.Name = projectUpdate.Name
	project.Description = projectUpdate.Description
	project.StartDate = projectUpdate.StartDate
	project.EndDate = projectUpdate.EndDate
	project.GithubLink = projectUpdate.GithubLink
	project.Leader = projectUpdate.Leader
}

// FilterValidAPIKeySubmissions trims the submitted entries and drops those
// that end up without a name or without a key.
func FilterValidAPIKeySubmissions(submissions []dtos.APIKeySubmission, projectID uuid.UUID) []models.APIKey {
	trimmed := utils.Map(submissions, func(s dtos.APIKeySubmission) dtos.APIKeySubmission {
		return dtos.APIKeySubmission{
			Name: strings.TrimSpace(s.Name),
			Key:  strings.TrimSpace(s.Key),
		}
	})
	valid := utils.Filter(trimmed, func(s dtos.APIKeySubmission) bool {
		return s.Name != "" && s.Key != ""
	})
	return utils.Map(valid, func(s dtos.APIKeySubmission) models.APIKey {
		return models.APIKey{
			ProjectID: projectID,
			Name:      s.Name,
			Key:       databasetypes.Secret(s.Key),
		}
	})
}

func ProjectToDTO(project models.Project, keys []models.APIKey) dtos.ProjectDTO {
	return dtos.ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		GithubLink:  project.GithubLink,
		Leader:      project.Leader,
		UserID:      project.UserID,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
		APIKeys:     utils.Map(keys, APIKeyToDTO),
	}
}
