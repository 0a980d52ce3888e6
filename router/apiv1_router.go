package router

import (
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/trackforge/cmd/trackforge/api"
	"github.com/l3montree-dev/trackforge/middlewares"
	"github.com/l3montree-dev/trackforge/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

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

type APIV1Router struct {
	*echo.Group
}

type healthResponse struct {
	Status        string `json:"status"`
	GoVersion     string `json:"goVersion"`
	NumGoroutines int    `json:"numGoroutines"`
	PID           int    `json:"pid"`
	UptimeSeconds int    `json:"uptimeSeconds"`

	Database databaseHealth `json:"database"`
}

type databaseHealth struct {
	Status        string `json:"status"`
	TotalConns    int    `json:"totalConns"`
	IdleConns     int    `json:"idleConns"`
	AcquiredConns int    `json:"acquiredConns"`
	MaxConns      int    `json:"maxConns"`
}

func NewAPIV1Router(srv api.Server, db shared.DB, pool *pgxpool.Pool) APIV1Router {
	apiV1Router := srv.Echo.Group("/api/v1")

	registerOpsRoutes(apiV1Router, db, pool)

	return APIV1Router{Group: apiV1Router}
}

// registerOpsRoutes sets up the unauthenticated operational endpoints.
func registerOpsRoutes(router shared.Server, db shared.DB, pool *pgxpool.Pool) {
	router.GET("/health/", func(c echo.Context) error {
		resp := healthResponse{
			Status:        "ok",
			GoVersion:     runtime.Version(),
			NumGoroutines: runtime.NumGoroutine(),
			PID:           os.Getpid(),
			UptimeSeconds: int(time.Since(api.StartedAt).Seconds()),
		}

		resp.Database.Status = "healthy"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			resp.Database.Status = "unhealthy"
			resp.Status = "degraded"
		} else if pool != nil {
			stats := pool.Stat()
			resp.Database.TotalConns = int(stats.TotalConns())
			resp.Database.IdleConns = int(stats.IdleConns())
			resp.Database.AcquiredConns = int(stats.AcquiredConns())
			resp.Database.MaxConns = int(stats.MaxConns())
		}

		return c.JSON(200, resp)
	})

	router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
}

type SessionRouter struct {
	*echo.Group
}

// @Summary Get current user info
// @Security CookieAuth
// @Success 200 {object} object{userID=string}
// @Router /whoami [get]
func whoami(ctx echo.Context) error {
	return ctx.JSON(200, map[string]string{
		"userID": shared.GetSession(ctx).GetUserID(),
	})
}

// NewSessionRouter groups everything behind authentication. All resource
// routers hang off this group.
func NewSessionRouter(apiV1Router APIV1Router, identityClient shared.IdentityClient) SessionRouter {
	sessionRouter := apiV1Router.Group.Group("", middlewares.SessionMiddleware(identityClient))

	sessionRouter.GET("/whoami/", whoami)

	return SessionRouter{Group: sessionRouter}
}
