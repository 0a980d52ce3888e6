// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package dtos

import (
	"time"

	"github.com/google/uuid"
)

// APIKeySubmission is the inline key payload carried by project create and
// update requests. Entries with a blank name or key are silently dropped.
type APIKeySubmission struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

type ProjectCreateRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	GithubLink  string     `json:"githublink" validate:"required,url"`
	Leader      string     `json:"leader" validate:"required"`

	APIKeys []APIKeySubmission `json:"apiKeys" validate:"dive"`
}

// ProjectUpdateRequest replaces the whole project including its API key set.
type ProjectUpdateRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	GithubLink  string     `json:"githublink" validate:"required,url"`
	Leader      string     `json:"leader" validate:"required"`

	APIKeys []APIKeySubmission `json:"apiKeys" validate:"dive"`
}

type ProjectDTO struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	GithubLink  string     `json:"githublink"`
	Leader      string     `json:"leader"`
	UserID      string     `json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	APIKeys []APIKeyDTO `json:"apiKeys"`
}
