package applicationapi

import (
	"github.com/Abraxas-365/jobboard/pkg/iam/auth"
	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/Abraxas-365/jobboard/recruitment/application"
	"github.com/Abraxas-365/jobboard/recruitment/application/applicationsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for application operations
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Apply submits the caller's application to a job
// POST /api/v1/jobs/:id/apply
func (h *Handlers) Apply(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	// The payload is optional, an empty body applies without attachments
	var req application.ApplyRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
		}
	}

	app, err := h.service.Apply(c.Context(), kernel.NewJobID(c.Params("id")), req, authContext)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

// ListMine lists the caller's applications
// GET /api/v1/jobs/applications/me
func (h *Handlers) ListMine(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	apps, err := h.service.ListMine(c.Context(), authContext)
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// ListForJob lists the applications received by a job owned by the caller
// GET /api/v1/jobs/:id/applications
func (h *Handlers) ListForJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	apps, err := h.service.ListForJob(c.Context(), kernel.NewJobID(c.Params("id")), authContext)
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// RegisterRoutes registers all application routes under router (the versioned API group)
func RegisterRoutes(router fiber.Router, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := router.Group("/jobs")

	api.Get("/applications/me",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeApplicationsReadOwn),
		handlers.ListMine,
	)

	api.Post("/:id/apply",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleJobseeker),
		handlers.Apply,
	)

	api.Get("/:id/applications",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleEmployer),
		handlers.ListForJob,
	)
}
