package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/trackforge/auth"
	"github.com/l3montree-dev/trackforge/database/models"
	"github.com/l3montree-dev/trackforge/mocks"
	"github.com/l3montree-dev/trackforge/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestProjectAccessMiddleware(t *testing.T) {
	e := echo.New()

	newCtx := func(projectID string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("projectID")
		c.SetParamValues(projectID)
		shared.SetSession(c, auth.NewSession("user-1"))
		return c
	}

	t.Run("should reject a malformed project id with 400", func(t *testing.T) {
		projectService := mocks.NewProjectService(t)

		mw := ProjectAccessMiddleware(projectService)
		handler := mw(func(ctx echo.Context) error { return nil })

		err := handler(newCtx("not-a-uuid"))
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})

	t.Run("should hide foreign projects behind a 404", func(t *testing.T) {
		projectService := mocks.NewProjectService(t)

		projectID := uuid.New()
		projectService.On("ResolveOwnedProject", "user-1", projectID).Return(models.Project{}, echo.NewHTTPError(404, "project not found"))

		mw := ProjectAccessMiddleware(projectService)

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			return nil
		})

		err := handler(newCtx(projectID.String()))
		assert.Error(t, err)
		assert.Equal(t, 404, err.(*echo.HTTPError).Code)
		assert.False(t, called)
	})

	t.Run("should store the resolved project on the context", func(t *testing.T) {
		projectService := mocks.NewProjectService(t)

		projectID := uuid.New()
		project := models.Project{Name: "tooling", UserID: "user-1"}
		project.ID = projectID
		projectService.On("ResolveOwnedProject", "user-1", projectID).Return(project, nil)

		mw := ProjectAccessMiddleware(projectService)

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, "tooling", shared.GetProject(ctx).Name)
			return nil
		})

		assert.NoError(t, handler(newCtx(projectID.String())))
		assert.True(t, called)
	})
}
