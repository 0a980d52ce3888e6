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

package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/l3montree-dev/trackforge/auth"
	"github.com/l3montree-dev/trackforge/shared"
	"github.com/labstack/echo/v4"
)

func getCookie(name string, cookies []*http.Cookie) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func cookieAuth(ctx context.Context, identityClient shared.IdentityClient, oryKratosSessionCookie string) (string, error) {
	unescaped, err := url.QueryUnescape(oryKratosSessionCookie)
	if err != nil {
		return "", err
	}

	return identityClient.GetIdentityFromCookie(ctx, unescaped)
}

// SessionMiddleware resolves the caller's identity from a bearer session
// token or the ory kratos session cookie. There are no public resources, a
// request without a valid session is rejected with 401.
func SessionMiddleware(identityClient shared.IdentityClient) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authorizationHeader := ctx.Request().Header.Get("Authorization")
			oryKratosSessionCookie := getCookie("ory_kratos_session", ctx.Cookies())

			var userID string
			var err error

			if strings.HasPrefix(authorizationHeader, "Bearer ") {
				token := strings.TrimPrefix(authorizationHeader, "Bearer ")
				userID, err = identityClient.GetIdentityFromSessionToken(ctx.Request().Context(), token)
				if err != nil {
					slog.Warn("could not get user ID from session token", "err", err)
					return echo.NewHTTPError(401, "unauthorized").WithInternal(err)
				}
			} else if oryKratosSessionCookie != nil {
				userID, err = cookieAuth(ctx.Request().Context(), identityClient, oryKratosSessionCookie.String())
				if err != nil {
					slog.Warn("could not get user ID from cookie", "err", err)
					return echo.NewHTTPError(401, "unauthorized").WithInternal(err)
				}
			} else {
				return echo.NewHTTPError(401, "unauthorized")
			}

			shared.SetSession(ctx, auth.NewSession(userID))
			return next(ctx)
		}
	}
}
