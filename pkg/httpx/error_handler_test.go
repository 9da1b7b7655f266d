package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Abraxas-365/jobboard/pkg/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(handlerErr error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error { return handlerErr })
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestErrorHandler_AppError(t *testing.T) {
	reg := errx.NewRegistry("THING")
	code := reg.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Thing not found")

	status, body := doGet(t, newTestApp(reg.New(code).WithDetail("id", "7")), "/boom")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "THING_NOT_FOUND", body["code"])
	assert.Equal(t, "NOT_FOUND", body["type"])
	assert.Equal(t, "7", body["details"].(map[string]any)["id"])
}

func TestErrorHandler_UnknownErrorIsInternal(t *testing.T) {
	status, body := doGet(t, newTestApp(errors.New("pq: connection reset")), "/boom")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
	assert.NotContains(t, body["message"], "pq")
}

func TestErrorHandler_FiberError(t *testing.T) {
	status, body := doGet(t, newTestApp(nil), "/missing")

	assert.Equal(t, http.StatusNotFound, status)
	assert.EqualValues(t, http.StatusNotFound, body["code"])
}
