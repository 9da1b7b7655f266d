package application

import (
	"time"

	"github.com/Abraxas-365/jobboard/pkg/kernel"
)

const EventSubmitted = "application.submitted"

// SubmittedEvent is published after an application is stored
type SubmittedEvent struct {
	Type          string               `json:"type"`
	ApplicationID kernel.ApplicationID `json:"application_id"`
	JobID         kernel.JobID         `json:"job_id"`
	JobTitle      string               `json:"job_title"`
	EmployerID    kernel.UserID        `json:"employer_id"`
	ApplicantID   kernel.UserID        `json:"applicant_id"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

// NewSubmittedEvent builds the event for app, submitted to a job owned by employerID
func NewSubmittedEvent(app *Application, jobTitle string, employerID kernel.UserID) SubmittedEvent {
	return SubmittedEvent{
		Type:          EventSubmitted,
		ApplicationID: app.ID,
		JobID:         app.JobID,
		JobTitle:      jobTitle,
		EmployerID:    employerID,
		ApplicantID:   app.UserID,
		OccurredAt:    app.CreatedAt,
	}
}
