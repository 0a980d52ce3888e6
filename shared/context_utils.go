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
package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/l3montree-dev/trackforge/database/models"
)

type AuthSession interface {
	GetUserID() string
}

// IdentityClient is the narrow surface of the identity provider we rely on.
// It exchanges a bearer token or a session cookie for the opaque user id.
type IdentityClient interface {
	GetIdentityFromSessionToken(ctx context.Context, token string) (string, error)
	GetIdentityFromCookie(ctx context.Context, cookie string) (string, error)
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func GetProject(ctx Context) models.Project {
	return ctx.Get("project").(models.Project)
}

func SetProject(ctx Context, project models.Project) {
	ctx.Set("project", project)
}

// GetProjectID reads the projectID route param. Returns an error suitable to
// surface as a 400 when the param is missing or not a uuid.
func GetProjectID(ctx Context) (uuid.UUID, error) {
	return uuid.Parse(SanitizeParam(ctx.Param("projectID")))
}

func GetAPIKeyID(ctx Context) (uuid.UUID, error) {
	return uuid.Parse(SanitizeParam(ctx.Param("apiKeyID")))
}
