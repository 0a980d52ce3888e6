package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/trackforge/auth"
	"github.com/l3montree-dev/trackforge/database/models"
	"github.com/l3montree-dev/trackforge/dtos"
	"github.com/l3montree-dev/trackforge/mocks"
	"github.com/l3montree-dev/trackforge/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newAuthenticatedContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	shared.SetSession(ctx, auth.NewSession("user-1"))
	return ctx, rec
}

func TestProjectControllerCreate(t *testing.T) {
	t.Run("should fail on a garbage body", func(t *testing.T) {
		ctx, _ := newAuthenticatedContext(t, http.MethodPost, "/projects/", "fantasy")

		h := NewProjectController(nil)

		err := h.Create(ctx)
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})

	t.Run("should fail validation without a github link", func(t *testing.T) {
		ctx, _ := newAuthenticatedContext(t, http.MethodPost, "/projects/", `{"name": "tooling", "leader": "alice"}`)

		h := NewProjectController(nil)

		err := h.Create(ctx)
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})

	t.Run("should pass the session user to the service and return 201", func(t *testing.T) {
		ctx, rec := newAuthenticatedContext(t, http.MethodPost, "/projects/",
			`{"name": "tooling", "leader": "alice", "githublink": "https://github.com/example/tooling"}`)

		service := mocks.NewProjectService(t)
		service.On("CreateProject", "user-1", dtos.ProjectCreateRequest{
			Name:       "tooling",
			Leader:     "alice",
			GithubLink: "https://github.com/example/tooling",
		}).Return(dtos.ProjectDTO{Name: "tooling", UserID: "user-1"}, nil)

		h := NewProjectController(service)

		err := h.Create(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 201, rec.Code)

		var resp dtos.ProjectDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "user-1", resp.UserID)
	})
}

// resolvedProject puts a project on the context the way the access
// middleware does for the item routes.
func resolvedProject(ctx echo.Context) models.Project {
	project := models.Project{Name: "tooling", UserID: "user-1"}
	project.ID = uuid.New()
	shared.SetProject(ctx, project)
	return project
}

func TestProjectControllerRead(t *testing.T) {
	t.Run("should serve the project resolved by the access middleware", func(t *testing.T) {
		ctx, rec := newAuthenticatedContext(t, http.MethodGet, "/", "")
		project := resolvedProject(ctx)

		service := mocks.NewProjectService(t)
		service.On("GetProject", project).Return(dtos.ProjectDTO{ID: project.ID, Name: "tooling", UserID: "user-1"}, nil)

		h := NewProjectController(service)

		err := h.Read(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)

		var resp dtos.ProjectDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, project.ID, resp.ID)
	})

	t.Run("should forward the service error", func(t *testing.T) {
		ctx, _ := newAuthenticatedContext(t, http.MethodGet, "/", "")
		project := resolvedProject(ctx)

		service := mocks.NewProjectService(t)
		service.On("GetProject", project).Return(dtos.ProjectDTO{}, echo.NewHTTPError(500, "could not load project"))

		h := NewProjectController(service)

		err := h.Read(ctx)
		assert.Error(t, err)
		assert.Equal(t, 500, err.(*echo.HTTPError).Code)
	})
}

func TestProjectControllerUpdate(t *testing.T) {
	ctx, rec := newAuthenticatedContext(t, http.MethodPut, "/",
		`{"name": "tooling", "leader": "bob", "githublink": "https://github.com/example/tooling"}`)
	project := resolvedProject(ctx)

	service := mocks.NewProjectService(t)
	service.On("UpdateProject", project, dtos.ProjectUpdateRequest{
		Name:       "tooling",
		Leader:     "bob",
		GithubLink: "https://github.com/example/tooling",
	}).Return(dtos.ProjectDTO{ID: project.ID, Name: "tooling", Leader: "bob"}, nil)

	h := NewProjectController(service)

	err := h.Update(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
}

func TestProjectControllerDelete(t *testing.T) {
	ctx, rec := newAuthenticatedContext(t, http.MethodDelete, "/", "")
	project := resolvedProject(ctx)

	service := mocks.NewProjectService(t)
	service.On("DeleteProject", project).Return(nil)

	h := NewProjectController(service)

	err := h.Delete(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
}
