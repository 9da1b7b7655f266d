package applicationinfra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/Abraxas-365/jobboard/recruitment/application"
	"github.com/Abraxas-365/jobboard/recruitment/job"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// uniqueUserJob is the constraint guarding one application per (user, job)
const uniqueUserJob = "job_applications_user_job_key"

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type applicationModel struct {
	ID                   string     `db:"id"`
	UserID               string     `db:"user_id"`
	JobID                string     `db:"job_id"`
	Status               string     `db:"status"`
	CoverLetter          *string    `db:"cover_letter"`
	ResumeURL            *string    `db:"resume_url"`
	VideoResumeURL       *string    `db:"video_resume_url"`
	VoiceResumeURL       *string    `db:"voice_resume_url"`
	ReviewedAt           *time.Time `db:"reviewed_at"`
	InterviewScheduledAt *time.Time `db:"interview_scheduled_at"`
	CreatedAt            time.Time  `db:"created_at"`
}

// toEntity converts database model to domain entity
func (m *applicationModel) toEntity() *application.Application {
	return &application.Application{
		ID:                   kernel.ApplicationID(m.ID),
		UserID:               kernel.UserID(m.UserID),
		JobID:                kernel.JobID(m.JobID),
		Status:               application.ApplicationStatus(m.Status),
		CoverLetter:          m.CoverLetter,
		ResumeURL:            m.ResumeURL,
		VideoResumeURL:       m.VideoResumeURL,
		VoiceResumeURL:       m.VoiceResumeURL,
		ReviewedAt:           m.ReviewedAt,
		InterviewScheduledAt: m.InterviewScheduledAt,
		CreatedAt:            m.CreatedAt,
	}
}

// fromEntity converts domain entity to database model
func fromEntity(a *application.Application) *applicationModel {
	return &applicationModel{
		ID:                   a.ID.String(),
		UserID:               a.UserID.String(),
		JobID:                a.JobID.String(),
		Status:               string(a.Status),
		CoverLetter:          a.CoverLetter,
		ResumeURL:            a.ResumeURL,
		VideoResumeURL:       a.VideoResumeURL,
		VoiceResumeURL:       a.VoiceResumeURL,
		ReviewedAt:           a.ReviewedAt,
		InterviewScheduledAt: a.InterviewScheduledAt,
		CreatedAt:            a.CreatedAt,
	}
}

const applicationColumns = `
	id, user_id, job_id, status,
	cover_letter, resume_url, video_resume_url, voice_resume_url,
	reviewed_at, interview_scheduled_at, created_at`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new application; the unique constraint decides duplicates
func (r *PostgresApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	query := `
		INSERT INTO job_applications (
			id, user_id, job_id, status,
			cover_letter, resume_url, video_resume_url, voice_resume_url,
			reviewed_at, interview_scheduled_at, created_at
		) VALUES (
			:id, :user_id, :job_id, :status,
			:cover_letter, :resume_url, :video_resume_url, :voice_resume_url,
			:reviewed_at, :interview_scheduled_at, :created_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, fromEntity(app)); err != nil {
		return translateInsertError(err, app)
	}

	return nil
}

// ExistsByUserAndJob checks if the user already applied to the job
func (r *PostgresApplicationRepository) ExistsByUserAndJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM job_applications WHERE user_id = $1 AND job_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID.String(), jobID.String()); err != nil {
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}

	return exists, nil
}

// ListByUser lists the applications submitted by a user, newest first
func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID kernel.UserID) ([]*application.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	return r.list(ctx, query, userID.String())
}

// ListByJob lists the applications received by a job, newest first
func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID kernel.JobID) ([]*application.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE job_id = $1
		ORDER BY created_at DESC, id DESC`

	return r.list(ctx, query, jobID.String())
}

func (r *PostgresApplicationRepository) list(ctx context.Context, query string, arg string) ([]*application.Application, error) {
	var models []applicationModel
	if err := r.db.SelectContext(ctx, &models, query, arg); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	apps := make([]*application.Application, 0, len(models))
	for i := range models {
		apps = append(apps, models[i].toEntity())
	}
	return apps, nil
}

// translateInsertError maps constraint violations to domain errors
func translateInsertError(err error, app *application.Application) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "23505" && pqErr.Constraint == uniqueUserJob: // unique_violation
			return application.ErrApplicationAlreadyExists().
				WithDetail("job_id", app.JobID.String())
		case pqErr.Code == "23503": // foreign_key_violation, the job vanished mid-request
			return job.ErrJobNotFound().WithDetail("job_id", app.JobID.String())
		}
	}
	return fmt.Errorf("failed to create application: %w", err)
}
