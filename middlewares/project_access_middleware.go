package middlewares

import (
	"github.com/l3montree-dev/trackforge/shared"
	"github.com/labstack/echo/v4"
)

// ProjectAccessMiddleware resolves the project addressed by the :projectID
// route param and makes sure it belongs to the session user before any
// handler below runs. The resolved project is stored on the context; the
// handlers below read it from there instead of resolving ownership again.
func ProjectAccessMiddleware(projectService shared.ProjectService) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			session := shared.GetSession(ctx)

			projectID, err := shared.GetProjectID(ctx)
			if err != nil {
				return echo.NewHTTPError(400, "invalid project id").WithInternal(err)
			}

			project, err := projectService.ResolveOwnedProject(session.GetUserID(), projectID)
			if err != nil {
				return err
			}

			shared.SetProject(ctx, project)
			return next(ctx)
		}
	}
}
