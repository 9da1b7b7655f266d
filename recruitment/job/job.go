package job

import (
	"math"
	"time"

	"github.com/Abraxas-365/jobboard/pkg/kernel"
)

// JobType is the contract type of a posting
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeInternship JobType = "internship"
	JobTypeContract   JobType = "contract"
	JobTypeFreelance  JobType = "freelance"
)

func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeContract, JobTypeFreelance:
		return true
	}
	return false
}

// WorkMode is where the work happens
type WorkMode string

const (
	WorkModeRemote WorkMode = "remote"
	WorkModeOnsite WorkMode = "onsite"
	WorkModeHybrid WorkMode = "hybrid"
)

func (m WorkMode) IsValid() bool {
	switch m {
	case WorkModeRemote, WorkModeOnsite, WorkModeHybrid:
		return true
	}
	return false
}

// ExperienceLevel is the seniority band, in years
type ExperienceLevel string

const (
	ExperienceFresher ExperienceLevel = "fresher"
	ExperienceJunior  ExperienceLevel = "1-2"
	ExperienceMid     ExperienceLevel = "3-5"
	ExperienceSenior  ExperienceLevel = "5+"
)

func (l ExperienceLevel) IsValid() bool {
	switch l {
	case ExperienceFresher, ExperienceJunior, ExperienceMid, ExperienceSenior:
		return true
	}
	return false
}

const (
	DefaultSalaryCurrency = "INR"
	DefaultSalaryPeriod   = "month"

	// MaxSalary is the largest value the INTEGER salary columns hold
	MaxSalary = math.MaxInt32
	// MaxPostedWithinDays keeps the recency cutoff inside the timestamp range
	MaxPostedWithinDays = 36500
)

type Job struct {
	ID                  kernel.JobID      `db:"id" json:"id"`
	Title               string            `db:"title" json:"title"`
	Description         string            `db:"description" json:"description"`
	Location            string            `db:"location" json:"location"`
	JobType             JobType           `db:"job_type" json:"job_type"`
	WorkMode            WorkMode          `db:"work_mode" json:"work_mode"`
	ExperienceLevel     ExperienceLevel   `db:"experience_level" json:"experience_level"`
	Requirements        []string          `db:"requirements" json:"requirements"`
	Responsibilities    []string          `db:"responsibilities" json:"responsibilities"`
	Benefits            []string          `db:"benefits" json:"benefits"`
	Skills              []string          `db:"skills" json:"skills"`
	SalaryMin           *int              `db:"salary_min" json:"salary_min,omitempty"`
	SalaryMax           *int              `db:"salary_max" json:"salary_max,omitempty"`
	SalaryCurrency      string            `db:"salary_currency" json:"salary_currency"`
	SalaryPeriod        string            `db:"salary_period" json:"salary_period"`
	ApplicationDeadline *time.Time        `db:"application_deadline" json:"application_deadline,omitempty"`
	IsActive            bool              `db:"is_active" json:"is_active"`
	IsFeatured          bool              `db:"is_featured" json:"is_featured"`
	EmployerID          kernel.UserID     `db:"employer_id" json:"employer_id"`
	CompanyID           *kernel.CompanyID `db:"company_id" json:"company_id,omitempty"`
	CreatedAt           time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time         `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsOwnedBy checks if the job was posted by the given employer
func (j *Job) IsOwnedBy(userID kernel.UserID) bool {
	return !userID.IsEmpty() && j.EmployerID == userID
}

// IsDeadlinePassed checks if the application deadline is set and already behind now
func (j *Job) IsDeadlinePassed(now time.Time) bool {
	return j.ApplicationDeadline != nil && j.ApplicationDeadline.Before(now)
}

// ValidateSalary enforces 0 <= salary <= MaxSalary and salary_min <= salary_max when both are present
func (j *Job) ValidateSalary() error {
	if j.SalaryMin != nil && (*j.SalaryMin < 0 || *j.SalaryMin > MaxSalary) {
		return ErrInvalidSalaryRange().WithDetail("salary_min", *j.SalaryMin)
	}
	if j.SalaryMax != nil && (*j.SalaryMax < 0 || *j.SalaryMax > MaxSalary) {
		return ErrInvalidSalaryRange().WithDetail("salary_max", *j.SalaryMax)
	}
	if j.SalaryMin != nil && j.SalaryMax != nil && *j.SalaryMin > *j.SalaryMax {
		return ErrInvalidSalaryRange().
			WithDetail("salary_min", *j.SalaryMin).
			WithDetail("salary_max", *j.SalaryMax)
	}
	return nil
}

// ApplyUpdate patches the fields present in req and refreshes updated_at
func (j *Job) ApplyUpdate(req UpdateJobRequest, now time.Time) error {
	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Location != nil {
		j.Location = *req.Location
	}
	if req.JobType != nil {
		j.JobType = *req.JobType
	}
	if req.WorkMode != nil {
		j.WorkMode = *req.WorkMode
	}
	if req.ExperienceLevel != nil {
		j.ExperienceLevel = *req.ExperienceLevel
	}
	if req.Requirements != nil {
		j.Requirements = *req.Requirements
	}
	if req.Responsibilities != nil {
		j.Responsibilities = *req.Responsibilities
	}
	if req.Benefits != nil {
		j.Benefits = *req.Benefits
	}
	if req.Skills != nil {
		j.Skills = *req.Skills
	}
	if req.SalaryMin != nil {
		j.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		j.SalaryMax = req.SalaryMax
	}
	if req.SalaryCurrency != nil {
		j.SalaryCurrency = *req.SalaryCurrency
	}
	if req.SalaryPeriod != nil {
		j.SalaryPeriod = *req.SalaryPeriod
	}
	if req.ApplicationDeadline != nil {
		j.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.CompanyID != nil {
		j.CompanyID = req.CompanyID
	}
	if req.IsActive != nil {
		j.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		j.IsFeatured = *req.IsFeatured
	}

	if err := j.ValidateSalary(); err != nil {
		return err
	}

	j.UpdatedAt = now
	return nil
}

// ToResponse shapes the job for the API, attaching the derived applications count
func (j *Job) ToResponse(applicationsCount int64) JobResponse {
	return JobResponse{
		ID:                  j.ID,
		Title:               j.Title,
		Description:         j.Description,
		Location:            j.Location,
		JobType:             j.JobType,
		WorkMode:            j.WorkMode,
		ExperienceLevel:     j.ExperienceLevel,
		Requirements:        nonNil(j.Requirements),
		Responsibilities:    nonNil(j.Responsibilities),
		Benefits:            nonNil(j.Benefits),
		Skills:              nonNil(j.Skills),
		SalaryMin:           j.SalaryMin,
		SalaryMax:           j.SalaryMax,
		SalaryCurrency:      j.SalaryCurrency,
		SalaryPeriod:        j.SalaryPeriod,
		ApplicationDeadline: j.ApplicationDeadline,
		IsActive:            j.IsActive,
		IsFeatured:          j.IsFeatured,
		EmployerID:          j.EmployerID,
		CompanyID:           j.CompanyID,
		ApplicationsCount:   applicationsCount,
		CreatedAt:           j.CreatedAt,
		UpdatedAt:           j.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
