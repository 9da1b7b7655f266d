package applicationsrv

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Abraxas-365/jobboard/pkg/errx"
	"github.com/Abraxas-365/jobboard/pkg/iam/auth"
	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/Abraxas-365/jobboard/pkg/logx"
	"github.com/Abraxas-365/jobboard/pkg/validatex"
	"github.com/Abraxas-365/jobboard/recruitment/application"
	"github.com/Abraxas-365/jobboard/recruitment/job"
	"github.com/google/uuid"
)

// ApplicationService provides business operations for applications
type ApplicationService struct {
	applicationRepo application.Repository
	jobRepo         job.Repository
	events          application.EventPublisher
	now             func() time.Time
}

// NewApplicationService creates a new instance of the application service.
// events may be nil, in which case nothing is published.
func NewApplicationService(
	applicationRepo application.Repository,
	jobRepo job.Repository,
	events application.EventPublisher,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		events:          events,
		now:             time.Now,
	}
}

// Apply submits the caller's application to a job
func (s *ApplicationService) Apply(ctx context.Context, jobID kernel.JobID, req application.ApplyRequest, ac *auth.AuthContext) (*application.ApplicationResponse, error) {
	if err := application.CanApply(ac); err != nil {
		return nil, err
	}

	if err := validatex.Struct(req); err != nil {
		return nil, err
	}

	jobEntity, err := s.getJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !jobEntity.IsActive {
		return nil, application.ErrJobInactive().WithDetail("job_id", jobID.String())
	}

	now := s.now()
	if jobEntity.IsDeadlinePassed(now) {
		return nil, application.ErrDeadlinePassed().
			WithDetail("job_id", jobID.String()).
			WithDetail("application_deadline", jobEntity.ApplicationDeadline)
	}

	// Short-circuit the common case; the unique constraint still decides races
	exists, err := s.applicationRepo.ExistsByUserAndJob(ctx, ac.UserID, jobID)
	if err != nil {
		return nil, persistenceError(err, "check existing application", logx.Fields{"job_id": jobID, "user_id": ac.UserID})
	}
	if exists {
		return nil, application.ErrApplicationAlreadyExists().WithDetail("job_id", jobID.String())
	}

	app := &application.Application{
		ID:             kernel.NewApplicationID(uuid.NewString()),
		UserID:         ac.UserID,
		JobID:          jobID,
		Status:         application.ApplicationStatusPending,
		CoverLetter:    optional(req.CoverLetter),
		ResumeURL:      optional(req.ResumeURL),
		VideoResumeURL: optional(req.VideoResumeURL),
		VoiceResumeURL: optional(req.VoiceResumeURL),
		CreatedAt:      now,
	}

	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, persistenceError(err, "create application", logx.Fields{"job_id": jobID, "user_id": ac.UserID})
	}

	logx.WithFields(logx.Fields{
		"application_id": app.ID,
		"job_id":         jobID,
		"user_id":        ac.UserID,
	}).Info("application submitted")

	s.publishSubmitted(ctx, app, jobEntity)

	resp := app.ToResponse()
	return &resp, nil
}

// ListMine lists the caller's applications, newest first
func (s *ApplicationService) ListMine(ctx context.Context, ac *auth.AuthContext) (*application.ApplicationListResponse, error) {
	if err := application.CanListOwn(ac); err != nil {
		return nil, err
	}

	apps, err := s.applicationRepo.ListByUser(ctx, ac.UserID)
	if err != nil {
		return nil, persistenceError(err, "list applications by user", logx.Fields{"user_id": ac.UserID})
	}

	resp := application.NewApplicationListResponse(apps)
	return &resp, nil
}

// ListForJob lists the applications received by a job owned by the caller, newest first
func (s *ApplicationService) ListForJob(ctx context.Context, jobID kernel.JobID, ac *auth.AuthContext) (*application.ApplicationListResponse, error) {
	jobEntity, err := s.getJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := job.Authorize(ac, jobEntity, job.ActionViewApplications); err != nil {
		return nil, err
	}

	apps, err := s.applicationRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, persistenceError(err, "list applications by job", logx.Fields{"job_id": jobID})
	}

	resp := application.NewApplicationListResponse(apps)
	return &resp, nil
}

// ============================================================================
// Helpers
// ============================================================================

func (s *ApplicationService) getJob(ctx context.Context, jobID kernel.JobID) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errx.IsCode(err, string(job.CodeJobNotFound)) {
			return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
		}
		return nil, persistenceError(err, "get job", logx.Fields{"job_id": jobID})
	}
	return jobEntity, nil
}

// publishSubmitted is best effort: the application is already stored
func (s *ApplicationService) publishSubmitted(ctx context.Context, app *application.Application, jobEntity *job.Job) {
	if s.events == nil {
		return
	}

	event := application.NewSubmittedEvent(app, jobEntity.Title, jobEntity.EmployerID)
	if err := s.events.PublishSubmitted(ctx, event); err != nil {
		logx.WithFields(logx.Fields{
			"application_id": app.ID,
			"job_id":         app.JobID,
		}).Warnf("failed to publish %s event: %v", event.Type, err)
	}
}

// persistenceError passes domain errors through and reports anything else as an internal fault
func persistenceError(err error, op string, fields logx.Fields) error {
	var appErr *errx.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	fields["operation"] = op
	fields["error"] = err.Error()
	logx.WithFields(fields).Error("application persistence failure")

	return errx.Wrap(err, "failed to "+op, errx.TypeInternal)
}

// optional drops blank strings so they are stored as NULL
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
