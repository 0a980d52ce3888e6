// Copyright (C) 2024 Tim Bastin, l3montree UG (haftungsbeschränkt)
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

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/l3montree-dev/trackforge/middlewares"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StartedAt is used by the health endpoint to report the process uptime.
var StartedAt = time.Now()

type Server struct {
	Echo *echo.Echo
}

// NewServer builds the echo instance with all base middlewares registered
// and ties its listener to the fx lifecycle.
func NewServer(lc fx.Lifecycle) Server {
	e := middlewares.Server()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}

			go func() {
				if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("failed to start server", "err", err)
					os.Exit(1)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	return Server{Echo: e}
}
