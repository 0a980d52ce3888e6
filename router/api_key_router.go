// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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

package router

import (
	"github.com/l3montree-dev/trackforge/controllers"
	"github.com/labstack/echo/v4"
)

type APIKeyRouter struct {
	*echo.Group
}

// NewAPIKeyRouter registers the standalone api key routes. The project is
// addressed by the projectId query parameter on the collection routes and
// resolved through the key's project on the item routes.
func NewAPIKeyRouter(
	sessionRouter SessionRouter,
	apiKeyController *controllers.APIKeyController,
) APIKeyRouter {
	apiKeyRouter := sessionRouter.Group.Group("/apikey")
	apiKeyRouter.GET("/", apiKeyController.List)
	apiKeyRouter.POST("/", apiKeyController.Create)

	apiKeyRouter.GET("/:apiKeyID/", apiKeyController.Read)
	apiKeyRouter.PUT("/:apiKeyID/", apiKeyController.Update)
	apiKeyRouter.DELETE("/:apiKeyID/", apiKeyController.Delete)

	return APIKeyRouter{Group: apiKeyRouter}
}
