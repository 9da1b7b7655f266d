package applicationapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Abraxas-365/jobboard/pkg/httpx"
	"github.com/Abraxas-365/jobboard/pkg/iam/auth"
	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/Abraxas-365/jobboard/recruitment/application"
	"github.com/Abraxas-365/jobboard/recruitment/application/applicationsrv"
	"github.com/Abraxas-365/jobboard/recruitment/recruitmenttest"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app       *fiber.App
	store     *recruitmenttest.Store
	publisher *recruitmenttest.Publisher
	tokens    *auth.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := recruitmenttest.NewStore()
	publisher := &recruitmenttest.Publisher{}
	tokens := auth.NewJWTService("test-secret", time.Hour, "jobboard-test")

	svc := applicationsrv.NewApplicationService(store.Applications(), store.Jobs(), publisher)
	app := fiber.New(fiber.Config{ErrorHandler: httpx.ErrorHandler})
	RegisterRoutes(app.Group("/api/v1"), NewHandlers(svc), auth.NewAuthMiddleware(tokens))

	store.SeedJob(recruitmenttest.ActiveJob("job-1", "emp-1", time.Now().Add(-time.Hour)))
	return &testEnv{app: app, store: store, publisher: publisher, tokens: tokens}
}

func (e *testEnv) token(t *testing.T, userID kernel.UserID, role auth.Role) string {
	t.Helper()
	token, err := e.tokens.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestApply(t *testing.T) {
	env := newTestEnv(t)
	seeker := env.token(t, "seeker-1", auth.RoleJobseeker)

	status, body := env.do(t, http.MethodPost, "/api/v1/jobs/job-1/apply", seeker, map[string]any{
		"cover_letter": "Hello",
		"resume_url":   "https://cdn.example.com/cv.pdf",
	})
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "seeker-1", body["user_id"])
	assert.Len(t, env.publisher.Events(), 1)

	status, body = env.do(t, http.MethodPost, "/api/v1/jobs/job-1/apply", seeker, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, string(application.CodeApplicationAlreadyExists), body["code"])
}

func TestApply_StatusCodes(t *testing.T) {
	env := newTestEnv(t)
	closed := recruitmenttest.ActiveJob("closed", "emp-1", time.Now())
	closed.IsActive = false
	env.store.SeedJob(closed)

	seeker := env.token(t, "seeker-1", auth.RoleJobseeker)

	status, _ := env.do(t, http.MethodPost, "/api/v1/jobs/job-1/apply", env.token(t, "emp-1", auth.RoleEmployer), nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = env.do(t, http.MethodPost, "/api/v1/jobs/job-1/apply", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = env.do(t, http.MethodPost, "/api/v1/jobs/missing/apply", seeker, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body := env.do(t, http.MethodPost, "/api/v1/jobs/closed/apply", seeker, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, string(application.CodeJobInactive), body["code"])

	status, _ = env.do(t, http.MethodPost, "/api/v1/jobs/job-1/apply", seeker, map[string]any{"resume_url": "nope"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestListMine(t *testing.T) {
	env := newTestEnv(t)
	env.store.SeedApplication(application.Application{ID: "a1", UserID: "seeker-1", JobID: "job-1", CreatedAt: time.Now()})

	status, body := env.do(t, http.MethodGet, "/api/v1/jobs/applications/me", env.token(t, "seeker-1", auth.RoleJobseeker), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["total"])

	status, body = env.do(t, http.MethodGet, "/api/v1/jobs/applications/me", env.token(t, "emp-1", auth.RoleEmployer), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, body["total"])

	status, _ = env.do(t, http.MethodGet, "/api/v1/jobs/applications/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestListForJob(t *testing.T) {
	env := newTestEnv(t)
	env.store.SeedApplication(application.Application{ID: "a1", UserID: "seeker-1", JobID: "job-1", CreatedAt: time.Now()})

	status, body := env.do(t, http.MethodGet, "/api/v1/jobs/job-1/applications", env.token(t, "emp-1", auth.RoleEmployer), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["total"])

	status, _ = env.do(t, http.MethodGet, "/api/v1/jobs/job-1/applications", env.token(t, "emp-2", auth.RoleEmployer), nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = env.do(t, http.MethodGet, "/api/v1/jobs/job-1/applications", env.token(t, "seeker-1", auth.RoleJobseeker), nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = env.do(t, http.MethodGet, "/api/v1/jobs/missing/applications", env.token(t, "emp-1", auth.RoleEmployer), nil)
	assert.Equal(t, http.StatusNotFound, status)
}
