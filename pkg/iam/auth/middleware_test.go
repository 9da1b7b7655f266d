package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Abraxas-365/jobboard/pkg/httpx"
	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiddlewareApp(tokens TokenService) *fiber.App {
	mw := NewAuthMiddleware(tokens)
	app := fiber.New(fiber.Config{ErrorHandler: httpx.ErrorHandler})

	whoami := func(c *fiber.Ctx) error {
		ac, ok := GetAuthContext(c)
		if !ok {
			return c.SendString("anonymous")
		}
		return c.SendString(string(ac.Role) + ":" + ac.UserID.String())
	}

	app.Get("/required", mw.Authenticate(), whoami)
	app.Get("/optional", mw.OptionalAuthenticate(), whoami)
	app.Get("/employer", mw.Authenticate(), mw.RequireRole(RoleEmployer), whoami)
	app.Get("/review", mw.Authenticate(), mw.RequireScope(ScopeApplicationsReview), whoami)
	return app
}

func call(t *testing.T, app *fiber.App, path, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestMiddleware(t *testing.T) {
	tokens := NewJWTService("secret", time.Hour, "skillglide")
	app := newMiddlewareApp(tokens)

	seeker, err := tokens.GenerateAccessToken(kernel.UserID("seeker-1"), RoleJobseeker)
	require.NoError(t, err)
	employer, err := tokens.GenerateAccessToken(kernel.UserID("emp-1"), RoleEmployer)
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		token  string
		status int
		body   string
	}{
		{"required without token", "/required", "", http.StatusUnauthorized, ""},
		{"required with token", "/required", seeker, http.StatusOK, "jobseeker:seeker-1"},
		{"required with bad token", "/required", "bogus", http.StatusUnauthorized, ""},
		{"optional anonymous", "/optional", "", http.StatusOK, "anonymous"},
		{"optional with token", "/optional", employer, http.StatusOK, "employer:emp-1"},
		{"optional with bad token", "/optional", "bogus", http.StatusUnauthorized, ""},
		{"employer as jobseeker", "/employer", seeker, http.StatusForbidden, ""},
		{"employer as employer", "/employer", employer, http.StatusOK, "employer:emp-1"},
		{"review scope as jobseeker", "/review", seeker, http.StatusForbidden, ""},
		{"review scope as employer", "/review", employer, http.StatusOK, "employer:emp-1"},
		{"review scope without token", "/review", "", http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := call(t, app, tt.path, tt.token)
			assert.Equal(t, tt.status, status)
			if tt.body != "" {
				assert.Equal(t, tt.body, body)
			}
		})
	}
}

func TestAuthContext_NilIsAnonymous(t *testing.T) {
	var anonymous *AuthContext
	assert.False(t, anonymous.HasRole(RoleEmployer))
	assert.False(t, anonymous.HasScope(ScopeJobsRead))

	ac := &AuthContext{UserID: kernel.UserID("u1"), Role: RoleEmployer}
	assert.True(t, ac.HasScope(ScopeJobsDelete))
	assert.False(t, ac.HasScope(ScopeApplicationsApply))
}
