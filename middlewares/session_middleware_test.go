package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/trackforge/mocks"
	"github.com/l3montree-dev/trackforge/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSessionMiddleware(t *testing.T) {
	e := echo.New()

	t.Run("should resolve the user from a bearer token", func(t *testing.T) {
		identityClient := mocks.NewIdentityClient(t)
		identityClient.On("GetIdentityFromSessionToken", mock.Anything, "session-token").Return("user-1", nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer session-token")
		c := e.NewContext(req, httptest.NewRecorder())

		mw := SessionMiddleware(identityClient)

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, "user-1", shared.GetSession(ctx).GetUserID())
			return nil
		})

		assert.NoError(t, handler(c))
		assert.True(t, called)
	})

	t.Run("should fall back to the ory kratos session cookie", func(t *testing.T) {
		identityClient := mocks.NewIdentityClient(t)
		identityClient.On("GetIdentityFromCookie", mock.Anything, "ory_kratos_session=session_cookie_value").Return("user-2", nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "ory_kratos_session", Value: "session_cookie_value"})
		c := e.NewContext(req, httptest.NewRecorder())

		mw := SessionMiddleware(identityClient)

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, "user-2", shared.GetSession(ctx).GetUserID())
			return nil
		})

		assert.NoError(t, handler(c))
		assert.True(t, called)
	})

	t.Run("should reject a request without credentials", func(t *testing.T) {
		identityClient := mocks.NewIdentityClient(t)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		mw := SessionMiddleware(identityClient)

		handler := mw(func(ctx echo.Context) error {
			t.Fatal("handler must not be called")
			return nil
		})

		err := handler(c)
		assert.Error(t, err)
		assert.Equal(t, 401, err.(*echo.HTTPError).Code)
	})

	t.Run("should reject an invalid token", func(t *testing.T) {
		identityClient := mocks.NewIdentityClient(t)
		identityClient.On("GetIdentityFromSessionToken", mock.Anything, "expired").Return("", errors.New("session inactive"))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer expired")
		c := e.NewContext(req, httptest.NewRecorder())

		mw := SessionMiddleware(identityClient)

		handler := mw(func(ctx echo.Context) error {
			t.Fatal("handler must not be called")
			return nil
		})

		err := handler(c)
		assert.Error(t, err)
		assert.Equal(t, 401, err.(*echo.HTTPError).Code)
	})
}
