// Package recruitmenttest provides in-memory repositories for service and handler tests.
// They follow the PostgreSQL adapters: (user, job) is unique, deleting a job deletes its
// applications, and lists are ordered newest first with id as tie breaker.
package recruitmenttest

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/Abraxas-365/jobboard/recruitment/application"
	"github.com/Abraxas-365/jobboard/recruitment/job"
)

// Store holds jobs and applications behind one lock
type Store struct {
	mu   sync.Mutex
	jobs map[kernel.JobID]job.Job
	apps []application.Application

	// Fault, when set, is returned by every repository call
	Fault error
}

func NewStore() *Store {
	return &Store{jobs: make(map[kernel.JobID]job.Job)}
}

// Jobs returns the store as a job.Repository
func (s *Store) Jobs() job.Repository { return &jobRepo{s} }

// Applications returns the store as an application.Repository
func (s *Store) Applications() application.Repository { return &applicationRepo{s} }

// SeedJob inserts j as is
func (s *Store) SeedJob(j job.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[j.ID] = j
}

// SeedApplication inserts a without the uniqueness check
func (s *Store) SeedApplication(a application.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps = append(s.apps, a)
}

// ApplicationCount returns how many applications are stored
func (s *Store) ApplicationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.apps)
}

// ============================================================================
// job.Repository
// ============================================================================

type jobRepo struct{ s *Store }

func (r *jobRepo) Create(_ context.Context, j *job.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fault != nil {
		return r.s.Fault
	}
	if _, exists := r.s.jobs[j.ID]; exists {
		return fmt.Errorf("duplicate job id %s", j.ID)
	}
	r.s.jobs[j.ID] = *j
	return nil
}

func (r *jobRepo) Update(_ context.Context, j *job.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fault != nil {
		return r.s.Fault
	}
	if _, exists := r.s.jobs[j.ID]; !exists {
		return job.ErrJobNotFound()
	}
	r.s.jobs[j.ID] = *j
	return nil
}

func (r *jobRepo) GetByID(_ context.Context, id kernel.JobID) (*job.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fault != nil {
		return nil, r.s.Fault
	}
	j, exists := r.s.jobs[id]
	if !exists {
		return nil, job.ErrJobNotFound()
	}
	return &j, nil
}

func (r *jobRepo) Delete(_ context.Context, id kernel.JobID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fault != nil {
		return 0, r.s.Fault
	}
	if _, exists := r.s.jobs[id]; !exists {
		return 0, job.ErrJobNotFound()
	}

	before := len(r.s.apps)
	r.s.apps = slices.DeleteFunc(r.s.apps, func(a application.Application) bool {
		return a.JobID == id
	})
	delete(r.s.jobs, id)

	return int64(before - len(r.s.apps)), nil
}

func (r *jobRepo) Search(_ context.Context, conds []job.Condition, p kernel.OffsetPagination) (*kernel.Paginated[job.Listing], error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fault != nil {
		return nil, r.s.Fault
	}

	matched := make([]job.Job, 0, len(r.s.jobs))
	for _, j := range r.s.jobs {
		if job.MatchAll(conds, &j) {
			matched = append(matched, j)
		}
	}
	slices.SortFunc(matched, func(a, b job.Job) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, string(a.ID), string(b.ID))
	})

	total := len(matched)
	start := min(p.Offset, total)
	end := min(start+p.Limit, total)

	listings := make([]job.Listing, 0, end-start)
	for _, j := range matched[start:end] {
		listings = append(listings, job.Listing{Job: j, ApplicationsCount: r.s.countApplications(j.ID)})
	}

	return kernel.NewPaginated(listings, p, total), nil
}

func (r *jobRepo) CountApplications(_ context.Context, jobID kernel.JobID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fault != nil {
		return 0, r.s.Fault
	}
	return r.s.countApplications(jobID), nil
}

func (s *Store) countApplications(jobID kernel.JobID) int64 {
	var n int64
	for _, a := range s.apps {
		if a.JobID == jobID {
			n++
		}
	}
	return n
}

// ============================================================================
// application.Repository
// ============================================================================

type applicationRepo struct{ s *Store }

func (r *applicationRepo) Create(_ context.Context, a *application.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fault != nil {
		return r.s.Fault
	}
	if _, exists := r.s.jobs[a.JobID]; !exists {
		return job.ErrJobNotFound().WithDetail("job_id", a.JobID.String())
	}
	for _, existing := range r.s.apps {
		if existing.UserID == a.UserID && existing.JobID == a.JobID {
			return application.ErrApplicationAlreadyExists().WithDetail("job_id", a.JobID.String())
		}
	}
	r.s.apps = append(r.s.apps, *a)
	return nil
}

func (r *applicationRepo) ExistsByUserAndJob(_ context.Context, userID kernel.UserID, jobID kernel.JobID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fault != nil {
		return false, r.s.Fault
	}
	return slices.ContainsFunc(r.s.apps, func(a application.Application) bool {
		return a.UserID == userID && a.JobID == jobID
	}), nil
}

func (r *applicationRepo) ListByUser(_ context.Context, userID kernel.UserID) ([]*application.Application, error) {
	return r.list(func(a *application.Application) bool { return a.BelongsTo(userID) })
}

func (r *applicationRepo) ListByJob(_ context.Context, jobID kernel.JobID) ([]*application.Application, error) {
	return r.list(func(a *application.Application) bool { return a.JobID == jobID })
}

func (r *applicationRepo) list(keep func(*application.Application) bool) ([]*application.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fault != nil {
		return nil, r.s.Fault
	}

	out := make([]*application.Application, 0)
	for i := range r.s.apps {
		a := r.s.apps[i]
		if keep(&a) {
			out = append(out, &a)
		}
	}
	slices.SortFunc(out, func(a, b *application.Application) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, string(a.ID), string(b.ID))
	})
	return out, nil
}

// newestFirst orders by created_at DESC, id DESC
func newestFirst(aAt, bAt time.Time, aID, bID string) int {
	if c := bAt.Compare(aAt); c != 0 {
		return c
	}
	switch {
	case aID > bID:
		return -1
	case aID < bID:
		return 1
	}
	return 0
}
