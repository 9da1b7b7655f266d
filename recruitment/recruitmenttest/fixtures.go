package recruitmenttest

import (
	"time"

	"github.com/Abraxas-365/jobboard/pkg/iam/auth"
	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/Abraxas-365/jobboard/recruitment/job"
)

// ActiveJob returns a valid active job owned by employerID
func ActiveJob(id kernel.JobID, employerID kernel.UserID, createdAt time.Time) job.Job {
	return job.Job{
		ID:              id,
		Title:           "Backend Engineer",
		Description:     "Own the services behind the job board",
		Location:        "Remote, India",
		JobType:         job.JobTypeFullTime,
		WorkMode:        job.WorkModeRemote,
		ExperienceLevel: job.ExperienceMid,
		Skills:          []string{"go", "postgres"},
		SalaryCurrency:  job.DefaultSalaryCurrency,
		SalaryPeriod:    job.DefaultSalaryPeriod,
		IsActive:        true,
		EmployerID:      employerID,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
}

func Employer(id kernel.UserID) *auth.AuthContext {
	return &auth.AuthContext{UserID: id, Role: auth.RoleEmployer}
}

func Jobseeker(id kernel.UserID) *auth.AuthContext {
	return &auth.AuthContext{UserID: id, Role: auth.RoleJobseeker}
}
