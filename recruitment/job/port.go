package job

import (
	"context"

	"github.com/Abraxas-365/jobboard/pkg/kernel"
)

type Repository interface {
	// Create creates a new job
	Create(ctx context.Context, job *Job) error

	// Update overwrites the mutable columns of an existing job
	Update(ctx context.Context, job *Job) error

	// GetByID retrieves a job by ID, ErrJobNotFound when absent
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// Delete removes a job and its applications, returning how many applications went with it
	Delete(ctx context.Context, id kernel.JobID) (int64, error)

	// Search returns the jobs matching every condition, newest first
	Search(ctx context.Context, conds []Condition, pagination kernel.OffsetPagination) (*kernel.Paginated[Listing], error)

	// CountApplications counts the applications received by a job
	CountApplications(ctx context.Context, jobID kernel.JobID) (int64, error)
}
