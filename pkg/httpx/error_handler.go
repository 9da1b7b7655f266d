package httpx

import (
	"errors"

	"github.com/Abraxas-365/jobboard/pkg/errx"
	"github.com/Abraxas-365/jobboard/pkg/logx"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler converts internal errors to standard HTTP responses
func ErrorHandler(c *fiber.Ctx, err error) error {
	// Our custom errx.Error
	var appErr *errx.Error
	if errors.As(err, &appErr) {
		if appErr.HTTPStatus >= fiber.StatusInternalServerError {
			logx.WithFields(logx.Fields{
				"method": c.Method(),
				"path":   c.Path(),
				"code":   appErr.Code,
			}).Errorf("request failed: %v", appErr)
		}
		return c.Status(appErr.HTTPStatus).JSON(appErr.ToHTTPResponse())
	}

	// Fiber errors (e.g., 404 route not found, 405)
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
			"code":  fiberErr.Code,
		})
	}

	// Default unknown error
	logx.WithFields(logx.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Errorf("Internal Server Error: %v", err)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    errx.TypeInternal,
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
