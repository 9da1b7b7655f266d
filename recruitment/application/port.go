package application

import (
	"context"

	"github.com/Abraxas-365/jobboard/pkg/kernel"
)

type Repository interface {
	// Create stores a new application.
	// A second application for the same (user, job) fails with ErrApplicationAlreadyExists.
	Create(ctx context.Context, app *Application) error

	// ExistsByUserAndJob checks if the user already applied to the job
	ExistsByUserAndJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) (bool, error)

	// ListByUser lists the applications submitted by a user, newest first
	ListByUser(ctx context.Context, userID kernel.UserID) ([]*Application, error)

	// ListByJob lists the applications received by a job, newest first
	ListByJob(ctx context.Context, jobID kernel.JobID) ([]*Application, error)
}

// EventPublisher announces application lifecycle events to other services
type EventPublisher interface {
	PublishSubmitted(ctx context.Context, event SubmittedEvent) error
}
