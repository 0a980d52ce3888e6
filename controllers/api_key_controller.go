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

type APIKeyController struct {
	service shared.APIKeyService
}

func NewAPIKeyController(service shared.APIKeyService) *APIKeyController {
	return &APIKeyController{
		service: service,
	}
}

// @Summary List api keys of one owned project
// @Tags APIKeys
// @Security CookieAuth
// @Param projectId query string true "Project ID"
// @Success 200 {array} dtos.APIKeyDTO
// @Router /apikey [get]
func (a *APIKeyController) List(c shared.Context) error {
	session := shared.GetSession(c)

	projectID, err := uuid.Parse(shared.SanitizeParam(c.QueryParam("projectId")))
	if err != nil {
		return echo.NewHTTPError(400, "invalid project id").WithInternal(err)
	}

	keys, err := a.service.ListAPIKeys(session.GetUserID(), projectID)
	if err != nil {
		return err
	}

	return c.JSON(200, keys)
}

// @Summary Get a single api key
// @Tags APIKeys
// @Security CookieAuth
// @Success 200 {object} dtos.APIKeyDTO
// @Router /apikey/{apiKeyID} [get]
func (a *APIKeyController) Read(c shared.Context) error {
	session := shared.GetSession(c)

	apiKeyID, err := shared.GetAPIKeyID(c)
	if err != nil {
		return echo.NewHTTPError(400, "invalid api key id").WithInternal(err)
	}

	key, err := a.service.GetAPIKey(session.GetUserID(), apiKeyID)
	if err != nil {
		return err
	}

	return c.JSON(200, key)
}

// @Summary Create an api key in an owned project
// @Tags APIKeys
// @Security CookieAuth
// @Param body body dtos.APIKeyCreateRequest true "Request body"
// @Success 201 {object} dtos.APIKeyDTO
// @Router /apikey [post]
func (a *APIKeyController) Create(c shared.Context) error {
	session := shared.GetSession(c)

	var req dtos.APIKeyCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	key, err := a.service.CreateAPIKey(session.GetUserID(), req)
	if err != nil {
		return err
	}

	return c.JSON(201, key)
}

// @Summary Rename an api key or rotate its value
// @Tags APIKeys
// @Security CookieAuth
// @Param body body dtos.APIKeyUpdateRequest true "Request body"
// @Success 200 {object} dtos.APIKeyDTO
// @Router /apikey/{apiKeyID} [put]
func (a *APIKeyController) Update(c shared.Context) error {
	session := shared.GetSession(c)

	apiKeyID, err := shared.GetAPIKeyID(c)
	if err != nil {
		return echo.NewHTTPError(400, "invalid api key id").WithInternal(err)
	}

	var req dtos.APIKeyUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	key, err := a.service.UpdateAPIKey(session.GetUserID(), apiKeyID, req)
	if err != nil {
		return err
	}

	return c.JSON(200, key)
}

// @Summary Delete an api key
// @Tags APIKeys
// @Security CookieAuth
// @Success 200
// @Router /apikey/{apiKeyID} [delete]
func (a *APIKeyController) Delete(c shared.Context) error {
	session := shared.GetSession(c)

	apiKeyID, err := shared.GetAPIKeyID(c)
	if err != nil {
		return echo.NewHTTPError(400, "invalid api key id").WithInternal(err)
	}

	if err := a.service.DeleteAPIKey(session.GetUserID(), apiKeyID); err != nil {
		return err
	}

	return c.NoContent(200)
}
