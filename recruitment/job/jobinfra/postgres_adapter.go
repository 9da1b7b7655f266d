package jobinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/jobboard/pkg/database"
	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/Abraxas-365/jobboard/recruitment/job"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type jobModel struct {
	ID                  string         `db:"id"`
	Title               string         `db:"title"`
	Description         string         `db:"description"`
	Location            string         `db:"location"`
	JobType             string         `db:"job_type"`
	WorkMode            string         `db:"work_mode"`
	ExperienceLevel     string         `db:"experience_level"`
	Requirements        pq.StringArray `db:"requirements"`
	Responsibilities    pq.StringArray `db:"responsibilities"`
	Benefits            pq.StringArray `db:"benefits"`
	Skills              pq.StringArray `db:"skills"`
	SalaryMin           sql.NullInt64  `db:"salary_min"`
	SalaryMax           sql.NullInt64  `db:"salary_max"`
	SalaryCurrency      string         `db:"salary_currency"`
	SalaryPeriod        string         `db:"salary_period"`
	ApplicationDeadline *time.Time     `db:"application_deadline"`
	IsActive            bool           `db:"is_active"`
	IsFeatured          bool           `db:"is_featured"`
	EmployerID          string         `db:"employer_id"`
	CompanyID           sql.NullString `db:"company_id"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
}

type listingModel struct {
	jobModel
	ApplicationsCount int64 `db:"applications_count"`
}

const jobColumns = `
	j.id, j.title, j.description, j.location,
	j.job_type, j.work_mode, j.experience_level,
	j.requirements, j.responsibilities, j.benefits, j.skills,
	j.salary_min, j.salary_max, j.salary_currency, j.salary_period,
	j.application_deadline, j.is_active, j.is_featured,
	j.employer_id, j.company_id, j.created_at, j.updated_at`

// toEntity converts database model to domain entity
func (m *jobModel) toEntity() *job.Job {
	j := &job.Job{
		ID:                  kernel.JobID(m.ID),
		Title:               m.Title,
		Description:         m.Description,
		Location:            m.Location,
		JobType:             job.JobType(m.JobType),
		WorkMode:            job.WorkMode(m.WorkMode),
		ExperienceLevel:     job.ExperienceLevel(m.ExperienceLevel),
		Requirements:        []string(m.Requirements),
		Responsibilities:    []string(m.Responsibilities),
		Benefits:            []string(m.Benefits),
		Skills:              []string(m.Skills),
		SalaryCurrency:      m.SalaryCurrency,
		SalaryPeriod:        m.SalaryPeriod,
		ApplicationDeadline: m.ApplicationDeadline,
		IsActive:            m.IsActive,
		IsFeatured:          m.IsFeatured,
		EmployerID:          kernel.UserID(m.EmployerID),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}

	if m.SalaryMin.Valid {
		v := int(m.SalaryMin.Int64)
		j.SalaryMin = &v
	}
	if m.SalaryMax.Valid {
		v := int(m.SalaryMax.Int64)
		j.SalaryMax = &v
	}
	if m.CompanyID.Valid {
		id := kernel.CompanyID(m.CompanyID.String)
		j.CompanyID = &id
	}

	return j
}

// fromEntity converts domain entity to database model
func fromEntity(j *job.Job) *jobModel {
	m := &jobModel{
		ID:                  j.ID.String(),
		Title:               j.Title,
		Description:         j.Description,
		Location:            j.Location,
		JobType:             string(j.JobType),
		WorkMode:            string(j.WorkMode),
		ExperienceLevel:     string(j.ExperienceLevel),
		Requirements:        stringArray(j.Requirements),
		Responsibilities:    stringArray(j.Responsibilities),
		Benefits:            stringArray(j.Benefits),
		Skills:              stringArray(j.Skills),
		SalaryCurrency:      j.SalaryCurrency,
		SalaryPeriod:        j.SalaryPeriod,
		ApplicationDeadline: j.ApplicationDeadline,
		IsActive:            j.IsActive,
		IsFeatured:          j.IsFeatured,
		EmployerID:          j.EmployerID.String(),
		CreatedAt:           j.CreatedAt,
		UpdatedAt:           j.UpdatedAt,
	}

	if j.SalaryMin != nil {
		m.SalaryMin = sql.NullInt64{Int64: int64(*j.SalaryMin), Valid: true}
	}
	if j.SalaryMax != nil {
		m.SalaryMax = sql.NullInt64{Int64: int64(*j.SalaryMax), Valid: true}
	}
	if j.CompanyID != nil && !j.CompanyID.IsEmpty() {
		m.CompanyID = sql.NullString{String: j.CompanyID.String(), Valid: true}
	}

	return m
}

// NOT NULL text[] columns reject a nil array
func stringArray(s []string) pq.StringArray {
	if s == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(s)
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new job
func (r *PostgresJobRepository) Create(ctx context.Context, jobEntity *job.Job) error {
	query := `
		INSERT INTO jobs (
			id, title, description, location,
			job_type, work_mode, experience_level,
			requirements, responsibilities, benefits, skills,
			salary_min, salary_max, salary_currency, salary_period,
			application_deadline, is_active, is_featured,
			employer_id, company_id, created_at, updated_at
		) VALUES (
			:id, :title, :description, :location,
			:job_type, :work_mode, :experience_level,
			:requirements, :responsibilities, :benefits, :skills,
			:salary_min, :salary_max, :salary_currency, :salary_period,
			:application_deadline, :is_active, :is_featured,
			:employer_id, :company_id, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, fromEntity(jobEntity)); err != nil {
		if isCheckViolation(err, "jobs_salary_range_check") {
			return job.ErrInvalidSalaryRange()
		}
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// Update updates an existing job
func (r *PostgresJobRepository) Update(ctx context.Context, jobEntity *job.Job) error {
	query := `
		UPDATE jobs SET
			title = :title,
			description = :description,
			location = :location,
			job_type = :job_type,
			work_mode = :work_mode,
			experience_level = :experience_level,
			requirements = :requirements,
			responsibilities = :responsibilities,
			benefits = :benefits,
			skills = :skills,
			salary_min = :salary_min,
			salary_max = :salary_max,
			salary_currency = :salary_currency,
			salary_period = :salary_period,
			application_deadline = :application_deadline,
			is_active = :is_active,
			is_featured = :is_featured,
			company_id = :company_id,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, fromEntity(jobEntity))
	if err != nil {
		if isCheckViolation(err, "jobs_salary_range_check") {
			return job.ErrInvalidSalaryRange()
		}
		return fmt.Errorf("failed to update job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = $1`

	var model jobModel
	if err := r.db.GetContext(ctx, &model, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return model.toEntity(), nil
}

// Delete removes the job and its applications in one transaction
func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) (int64, error) {
	var removed int64

	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM job_applications WHERE job_id = $1`, id.String())
		if err != nil {
			return fmt.Errorf("failed to delete job applications: %w", err)
		}
		if removed, err = result.RowsAffected(); err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}

		result, err = tx.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id.String())
		if err != nil {
			return fmt.Errorf("failed to delete job: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return job.ErrJobNotFound()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

// Search runs the conditions as one query, newest first, with applications counted per row
func (r *PostgresJobRepository) Search(ctx context.Context, conds []job.Condition, pagination kernel.OffsetPagination) (*kernel.Paginated[job.Listing], error) {
	where, args, err := compileConditions(conds)
	if err != nil {
		return nil, fmt.Errorf("failed to compile job filter: %w", err)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM jobs j WHERE ` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s,
			(SELECT COUNT(*) FROM job_applications a WHERE a.job_id = j.id) AS applications_count
		FROM jobs j
		WHERE %s
		ORDER BY j.created_at DESC, j.id DESC
		LIMIT $%d OFFSET $%d
	`, jobColumns, where, len(args)+1, len(args)+2)

	args = append(args, pagination.Limit, pagination.Offset)

	var models []listingModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}

	listings := make([]job.Listing, 0, len(models))
	for i := range models {
		listings = append(listings, job.Listing{
			Job:               *models[i].toEntity(),
			ApplicationsCount: models[i].ApplicationsCount,
		})
	}

	return kernel.NewPaginated(listings, pagination, total), nil
}

// CountApplications counts the applications received by a job
func (r *PostgresJobRepository) CountApplications(ctx context.Context, jobID kernel.JobID) (int64, error) {
	query := `SELECT COUNT(*) FROM job_applications WHERE job_id = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, jobID.String()); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}

	return count, nil
}

func isCheckViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23514" && pqErr.Constraint == constraint
}
