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

package controllers

import (
	"fmt"

	"github.com/l3montree-dev/trackforge/dtos"
	"github.com/l3montree-dev/trackforge/shared"

	"github.com/labstack/echo/v4"
)

type ProjectController struct {
	service shared.ProjectService
}

func NewProjectController(service shared.ProjectService) *ProjectController {
	return &ProjectController{
		service: service,
	}
}

// @Summary List projects of the current user
// @Tags Projects
// @Security CookieAuth
// @Success 200 {array} dtos.ProjectDTO
// @Router /projects [get]
func (p *ProjectController) List(c shared.Context) error {
	session := shared.GetSession(c)

	projects, err := p.service.ListProjects(session.GetUserID())
	if err != nil {
		return err
	}

	return c.JSON(200, projects)
}

// @Summary Get a single project
// @Tags Projects
// @Security CookieAuth
// @Success 200 {object} dtos.ProjectDTO
// @Router /projects/{projectID} [get]
func (p *ProjectController) Read(c shared.Context) error {
	// resolved and ownership-checked by the project access middleware
	project, err := p.service.GetProject(shared.GetProject(c))
	if err != nil {
		return err
	}

	return c.JSON(200, project)
}

// @Summary Create a project, optionally with an inline set of api keys
// @Tags Projects
// @Security CookieAuth
// @Param body body dtos.ProjectCreateRequest true "Request body"
// @Success 201 {object} dtos.ProjectDTO
// @Router /projects [post]
func (p *ProjectController) Create(c shared.Context) error {
	session := shared.GetSession(c)

	var req dtos.ProjectCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	project, err := p.service.CreateProject(session.GetUserID(), req)
	if err != nil {
		return err
	}

	return c.JSON(201, project)
}

// @Summary Replace a project and its api key set
// @Tags Projects
// @Security CookieAuth
// @Param body body dtos.ProjectUpdateRequest true "Request body"
// @Success 200 {object} dtos.ProjectDTO
// @Router /projects/{projectID} [put]
func (p *ProjectController) Update(c shared.Context) error {
	var req dtos.ProjectUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	project, err := p.service.UpdateProject(shared.GetProject(c), req)
	if err != nil {
		return err
	}

	return c.JSON(200, project)
}

// @Summary Delete a project including its api keys and issues
// @Tags Projects
// @Security CookieAuth
// @Success 200
// @Router /projects/{projectID} [delete]
func (p *ProjectController) Delete(c shared.Context) error {
	if err := p.service.DeleteProject(shared.GetProject(c)); err != nil {
		return err
	}

	return c.NoContent(200)
}
