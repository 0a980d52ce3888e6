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
	"github.com/l3montree-dev/trackforge/middlewares"
	"github.com/l3montree-dev/trackforge/shared"
	"github.com/labstack/echo/v4"
)

type ProjectRouter struct {
	*echo.Group
}

func NewProjectRouter(
	sessionRouter SessionRouter,
	projectController *controllers.ProjectController,
	projectService shared.ProjectService,
) ProjectRouter {
	projectsRouter := sessionRouter.Group.Group("/projects")
	projectsRouter.GET("/", projectController.List)
	projectsRouter.POST("/", projectController.Create)

	/**
	Project scoped router
	All routes below this line are scoped to a specific project owned by the
	session user.
	*/
	projectRouter := projectsRouter.Group("/:projectID", middlewares.ProjectAccessMiddleware(projectService))
	projectRouter.GET("/", projectController.Read)
	projectRouter.PUT("/", projectController.Update)
	projectRouter.PATCH("/", projectController.Update)
	projectRouter.DELETE("/", projectController.Delete)

	return ProjectRouter{Group: projectRouter}
}
