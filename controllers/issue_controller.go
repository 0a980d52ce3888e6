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

	"github.com/google/uuid"
	"github.com/l3montree-dev/trackforge/dtos"
	"github.com/l3montree-dev/trackforge/shared"

	"github.com/labstack/echo/v4"
)

type IssueController struct {
	service shared.IssueService
}

func NewIssueController(service shared.IssueService) *IssueController {
	return &IssueController{
		service: service,
	}
}

// @Summary List issues of a project
// @Tags Issues
// @Security CookieAuth
// @Param projectId query string true "Project ID"
// @Success 200 {array} dtos.IssueDTO
// @Router /issues [get]
func (i *IssueController) List(c shared.Context) error {
	session := shared.GetSession(c)

	projectID, err := uuid.Parse(shared.SanitizeParam(c.QueryParam("projectId")))
	if err != nil {
		return echo.NewHTTPError(400, "invalid project id").WithInternal(err)
	}

	issues, err := i.service.ListIssues(session.GetUserID(), projectID)
	if err != nil {
		return err
	}

	return c.JSON(200, issues)
}

// @Summary Create an issue in a project
// @Tags Issues
// @Security CookieAuth
// @Param body body dtos.IssueCreateRequest true "Request body"
// @Success 201 {object} dtos.IssueDTO
// @Router /issues [post]
func (i *IssueController) Create(c shared.Context) error {
	session := shared.GetSession(c)

	var req dtos.IssueCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	issue, err := i.service.CreateIssue(session.GetUserID(), req)
	if err != nil {
		return err
	}

	return c.JSON(201, issue)
}

// @Summary Change the priority of an issue
// @Tags Issues
// @Security CookieAuth
// @Param body body dtos.IssuePriorityUpdateRequest true "Request body"
// @Success 200 {object} dtos.IssueDTO
// @Router /issues [put]
func (i *IssueController) UpdatePriority(c shared.Context) error {
	session := shared.GetSession(c)

	var req dtos.IssuePriorityUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	issue, err := i.service.UpdateIssuePriority(session.GetUserID(), req)
	if err != nil {
		return err
	}

	return c.JSON(200, issue)
}

// @Summary Delete an issue
// @Tags Issues
// @Security CookieAuth
// @Param body body dtos.IssueDeleteRequest true "Request body"
// @Success 200
// @Router /issues [delete]
func (i *IssueController) Delete(c shared.Context) error {
	session := shared.GetSession(c)

	var req dtos.IssueDeleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if err := i.service.DeleteIssue(session.GetUserID(), req); err != nil {
		return err
	}

	return c.NoContent(200)
}
