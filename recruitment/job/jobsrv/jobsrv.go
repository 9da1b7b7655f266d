package jobsrv

import (
	"context"
	"errors"
	"time"

	"github.com/Abraxas-365/jobboard/pkg/errx"
	"github.com/Abraxas-365/jobboard/pkg/iam/auth"
	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/Abraxas-365/jobboard/pkg/logx"
	"github.com/Abraxas-365/jobboard/pkg/validatex"
	"github.com/Abraxas-365/jobboard/recruitment/job"
	"github.com/google/uuid"
)

// JobService provides business operations for jobs
type JobService struct {
	jobRepo job.Repository
	now     func() time.Time
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
		now:     time.Now,
	}
}

// ============================================================================
// Queries
// ============================================================================

// ListJobs searches active jobs, newest first
func (s *JobService) ListJobs(ctx context.Context, req job.ListJobsRequest) (*job.PaginatedJobsResponse, error) {
	if !req.Pagination.Valid() {
		return nil, job.ErrInvalidPagination().
			WithDetail("limit", req.Pagination.Limit).
			WithDetail("offset", req.Pagination.Offset)
	}

	if err := req.Filter.Validate(); err != nil {
		return nil, err
	}

	conds := job.BuildConditions(req.Filter, s.now())

	page, err := s.jobRepo.Search(ctx, conds, req.Pagination)
	if err != nil {
		return nil, persistenceError(err, "search jobs", logx.Fields{
			"limit":  req.Pagination.Limit,
			"offset": req.Pagination.Offset,
		})
	}

	return kernel.MapPaginated(page, func(l job.Listing) job.JobResponse {
		return l.Job.ToResponse(l.ApplicationsCount)
	}), nil
}

// GetJob retrieves a job by ID together with its applications count
func (s *JobService) GetJob(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	jobEntity, err := s.getJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	count, err := s.jobRepo.CountApplications(ctx, jobID)
	if err != nil {
		return nil, persistenceError(err, "count applications", logx.Fields{"job_id": jobID})
	}

	resp := jobEntity.ToResponse(count)
	return &resp, nil
}

// ============================================================================
// Mutations
// ============================================================================

// CreateJob creates a new job posting owned by the caller
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest, ac *auth.AuthContext) (*job.JobResponse, error) {
	if err := job.Authorize(ac, nil, job.ActionCreate); err != nil {
		return nil, err
	}

	if err := validatex.Struct(req); err != nil {
		return nil, err
	}

	now := s.now()
	newJob := &job.Job{
		ID:                  kernel.NewJobID(uuid.NewString()),
		Title:               req.Title,
		Description:         req.Description,
		Location:            req.Location,
		JobType:             req.JobType,
		WorkMode:            req.WorkMode,
		ExperienceLevel:     req.ExperienceLevel,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		Benefits:            req.Benefits,
		Skills:              req.Skills,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		SalaryCurrency:      valueOr(req.SalaryCurrency, job.DefaultSalaryCurrency),
		SalaryPeriod:        valueOr(req.SalaryPeriod, job.DefaultSalaryPeriod),
		ApplicationDeadline: req.ApplicationDeadline,
		IsActive:            true,
		IsFeatured:          req.IsFeatured,
		EmployerID:          ac.UserID,
		CompanyID:           req.CompanyID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := newJob.ValidateSalary(); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, persistenceError(err, "create job", logx.Fields{"employer_id": ac.UserID})
	}

	logx.WithFields(logx.Fields{
		"job_id":      newJob.ID,
		"employer_id": newJob.EmployerID,
	}).Info("job created")

	resp := newJob.ToResponse(0)
	return &resp, nil
}

// UpdateJob patches a job owned by the caller
func (s *JobService) UpdateJob(ctx context.Context, jobID kernel.JobID, req job.UpdateJobRequest, ac *auth.AuthContext) (*job.JobResponse, error) {
	if err := validatex.Struct(req); err != nil {
		return nil, err
	}

	existing, err := s.getJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := job.Authorize(ac, existing, job.ActionUpdate); err != nil {
		return nil, err
	}

	updated := *existing
	if err := updated.ApplyUpdate(req, s.now()); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, &updated); err != nil {
		return nil, persistenceError(err, "update job", logx.Fields{"job_id": jobID})
	}

	count, err := s.jobRepo.CountApplications(ctx, jobID)
	if err != nil {
		return nil, persistenceError(err, "count applications", logx.Fields{"job_id": jobID})
	}

	resp := updated.ToResponse(count)
	return &resp, nil
}

// DeleteJob hard-deletes a job owned by the caller; its applications are deleted with it
func (s *JobService) DeleteJob(ctx context.Context, jobID kernel.JobID, ac *auth.AuthContext) (*job.DeleteJobResponse, error) {
	existing, err := s.getJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := job.Authorize(ac, existing, job.ActionDelete); err != nil {
		return nil, err
	}

	removed, err := s.jobRepo.Delete(ctx, jobID)
	if err != nil {
		return nil, persistenceError(err, "delete job", logx.Fields{"job_id": jobID})
	}

	logx.WithFields(logx.Fields{
		"job_id":               jobID,
		"employer_id":          ac.UserID,
		"removed_applications": removed,
	}).Info("job deleted")

	return &job.DeleteJobResponse{
		Message:             "Job deleted successfully",
		JobID:               jobID,
		RemovedApplications: removed,
	}, nil
}

// ============================================================================
// Helpers
// ============================================================================

func (s *JobService) getJob(ctx context.Context, jobID kernel.JobID) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errx.IsCode(err, string(job.CodeJobNotFound)) {
			return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
		}
		return nil, persistenceError(err, "get job", logx.Fields{"job_id": jobID})
	}
	return jobEntity, nil
}

// persistenceError passes domain errors through and reports anything else as an internal fault
func persistenceError(err error, op string, fields logx.Fields) error {
	var appErr *errx.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	fields["operation"] = op
	fields["error"] = err.Error()
	logx.WithFields(fields).Error("job persistence failure")

	return errx.Wrap(err, "failed to "+op, errx.TypeInternal)
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
