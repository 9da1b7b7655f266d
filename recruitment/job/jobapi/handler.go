package jobapi

import (
	"github.com/Abraxas-365/jobboard/pkg/iam/auth"
	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/Abraxas-365/jobboard/recruitment/job"
	"github.com/Abraxas-365/jobboard/recruitment/job/jobsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListJobs searches active jobs
// GET /api/v1/jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	req, err := parseListJobsRequest(c)
	if err != nil {
		return err
	}

	jobs, err := h.service.ListJobs(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// GetJob retrieves a job by ID
// GET /api/v1/jobs/:id
func (h *Handlers) GetJob(c *fiber.Ctx) error {
	jobResp, err := h.service.GetJob(c.Context(), kernel.NewJobID(c.Params("id")))
	if err != nil {
		return err
	}

	return c.JSON(jobResp)
}

// CreateJob creates a new job posting owned by the caller
// POST /api/v1/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	newJob, err := h.service.CreateJob(c.Context(), req, authContext)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newJob)
}

// UpdateJob patches a job owned by the caller
// PUT /api/v1/jobs/:id
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateJob(c.Context(), kernel.NewJobID(c.Params("id")), req, authContext)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// DeleteJob deletes a job owned by the caller together with its applications
// DELETE /api/v1/jobs/:id
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	resp, err := h.service.DeleteJob(c.Context(), kernel.NewJobID(c.Params("id")), authContext)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers all job routes under router (the versioned API group)
func RegisterRoutes(router fiber.Router, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := router.Group("/jobs")

	// Public reads; a token, when sent, must still be valid
	api.Get("/",
		authMiddleware.OptionalAuthenticate(),
		handlers.ListJobs,
	)

	api.Get("/:id",
		authMiddleware.OptionalAuthenticate(),
		handlers.GetJob,
	)

	// Employer routes, ownership is checked by the service
	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleEmployer),
		handlers.CreateJob,
	)

	api.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleEmployer),
		handlers.UpdateJob,
	)

	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleEmployer),
		handlers.DeleteJob,
	)
}
