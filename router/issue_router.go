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

type IssueRouter struct {
	*echo.Group
}

// NewIssueRouter registers the issue routes. Issues are addressed by the
// projectId query parameter on GET and by the issueId carried in the request
// body on PUT and DELETE.
func NewIssueRouter(
	sessionRouter SessionRouter,
	issueController *controllers.IssueController,
) IssueRouter {
	issueRouter := sessionRouter.Group.Group("/issues")
	issueRouter.GET("/", issueController.List)
	issueRouter.POST("/", issueController.Create)
	issueRouter.PUT("/", issueController.UpdatePriority)
	issueRouter.DELETE("/", issueController.Delete)

	return IssueRouter{Group: issueRouter}
}
