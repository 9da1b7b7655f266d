package job

import (
	"time"

	"github.com/Abraxas-365/jobboard/pkg/kernel"
)

// CreateJobRequest - DTO for creating a new job
type CreateJobRequest struct {
	Title               string            `json:"title" validate:"required,pgtext,max=200"`
	Description         string            `json:"description" validate:"required,pgtext"`
	Location            string            `json:"location" validate:"required,pgtext,max=200"`
	JobType             JobType           `json:"job_type" validate:"required,oneof=full-time part-time internship contract freelance"`
	WorkMode            WorkMode          `json:"work_mode" validate:"required,oneof=remote onsite hybrid"`
	ExperienceLevel     ExperienceLevel   `json:"experience_level" validate:"required,oneof=fresher 1-2 3-5 5+"`
	Requirements        []string          `json:"requirements,omitempty" validate:"omitempty,dive,required,pgtext"`
	Responsibilities    []string          `json:"responsibilities,omitempty" validate:"omitempty,dive,required,pgtext"`
	Benefits            []string          `json:"benefits,omitempty" validate:"omitempty,dive,required,pgtext"`
	Skills              []string          `json:"skills,omitempty" validate:"omitempty,dive,required,pgtext"`
	SalaryMin           *int              `json:"salary_min,omitempty" validate:"omitempty,min=0,max=2147483647"`
	SalaryMax           *int              `json:"salary_max,omitempty" validate:"omitempty,min=0,max=2147483647"`
	SalaryCurrency      string            `json:"salary_currency,omitempty" validate:"omitempty,len=3,pgtext"`
	SalaryPeriod        string            `json:"salary_period,omitempty" validate:"omitempty,oneof=hour day week month year"`
	ApplicationDeadline *time.Time        `json:"application_deadline,omitempty"`
	CompanyID           *kernel.CompanyID `json:"company_id,omitempty" validate:"omitempty,pgtext"`
	IsFeatured          bool              `json:"is_featured,omitempty"`
}

// UpdateJobRequest - DTO for patching a job; nil fields are left unchanged
type UpdateJobRequest struct {
	Title               *string           `json:"title,omitempty" validate:"omitempty,min=1,pgtext,max=200"`
	Description         *string           `json:"description,omitempty" validate:"omitempty,min=1,pgtext"`
	Location            *string           `json:"location,omitempty" validate:"omitempty,min=1,pgtext,max=200"`
	JobType             *JobType          `json:"job_type,omitempty" validate:"omitempty,oneof=full-time part-time internship contract freelance"`
	WorkMode            *WorkMode         `json:"work_mode,omitempty" validate:"omitempty,oneof=remote onsite hybrid"`
	ExperienceLevel     *ExperienceLevel  `json:"experience_level,omitempty" validate:"omitempty,oneof=fresher 1-2 3-5 5+"`
	Requirements        *[]string         `json:"requirements,omitempty" validate:"omitempty,dive,required,pgtext"`
	Responsibilities    *[]string         `json:"responsibilities,omitempty" validate:"omitempty,dive,required,pgtext"`
	Benefits            *[]string         `json:"benefits,omitempty" validate:"omitempty,dive,required,pgtext"`
	Skills              *[]string         `json:"skills,omitempty" validate:"omitempty,dive,required,pgtext"`
	SalaryMin           *int              `json:"salary_min,omitempty" validate:"omitempty,min=0,max=2147483647"`
	SalaryMax           *int              `json:"salary_max,omitempty" validate:"omitempty,min=0,max=2147483647"`
	SalaryCurrency      *string           `json:"salary_currency,omitempty" validate:"omitempty,len=3,pgtext"`
	SalaryPeriod        *string           `json:"salary_period,omitempty" validate:"omitempty,oneof=hour day week month year"`
	ApplicationDeadline *time.Time        `json:"application_deadline,omitempty"`
	CompanyID           *kernel.CompanyID `json:"company_id,omitempty" validate:"omitempty,pgtext"`
	IsActive            *bool             `json:"is_active,omitempty"`
	IsFeatured          *bool             `json:"is_featured,omitempty"`
}

// ListJobsRequest - DTO for searching active jobs
type ListJobsRequest struct {
	Filter     Filter                  `json:"filter"`
	Pagination kernel.OffsetPagination `json:"pagination"`
}

// Response type alias for paginated jobs
type PaginatedJobsResponse = kernel.Paginated[JobResponse]

// JobResponse - DTO for returning job data
type JobResponse struct {
	ID                  kernel.JobID      `json:"id"`
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	Location            string            `json:"location"`
	JobType             JobType           `json:"job_type"`
	WorkMode            WorkMode          `json:"work_mode"`
	ExperienceLevel     ExperienceLevel   `json:"experience_level"`
	Requirements        []string          `json:"requirements"`
	Responsibilities    []string          `json:"responsibilities"`
	Benefits            []string          `json:"benefits"`
	Skills              []string          `json:"skills"`
	SalaryMin           *int              `json:"salary_min"`
	SalaryMax           *int              `json:"salary_max"`
	SalaryCurrency      string            `json:"salary_currency"`
	SalaryPeriod        string            `json:"salary_period"`
	ApplicationDeadline *time.Time        `json:"application_deadline"`
	IsActive            bool              `json:"is_active"`
	IsFeatured          bool              `json:"is_featured"`
	EmployerID          kernel.UserID     `json:"employer_id"`
	CompanyID           *kernel.CompanyID `json:"company_id"`
	ApplicationsCount   int64             `json:"applications_count"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// DeleteJobResponse - confirmation returned after a hard delete
type DeleteJobResponse struct {
	Message             string       `json:"message"`
	JobID               kernel.JobID `json:"job_id"`
	RemovedApplications int64        `json:"removed_applications"`
}

// Listing is a job together with its derived applications count
type Listing struct {
	Job               Job
	ApplicationsCount int64
}
