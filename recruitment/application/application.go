package application

import (
	"time"

	"github.com/Abraxas-365/jobboard/pkg/kernel"
)

// ApplicationStatus represents the status of an application
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"     // Initial submission
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"    // Seen by the employer
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted" // Passed initial review
	ApplicationStatusInterviewed ApplicationStatus = "interviewed" // Interview held
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusHired       ApplicationStatus = "hired"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusShortlisted,
		ApplicationStatusInterviewed, ApplicationStatusRejected, ApplicationStatusHired:
		return true
	}
	return false
}

type Application struct {
	ID                   kernel.ApplicationID `db:"id" json:"id"`
	UserID               kernel.UserID        `db:"user_id" json:"user_id"`
	JobID                kernel.JobID         `db:"job_id" json:"job_id"`
	Status               ApplicationStatus    `db:"status" json:"status"`
	CoverLetter          *string              `db:"cover_letter" json:"cover_letter,omitempty"`
	ResumeURL            *string              `db:"resume_url" json:"resume_url,omitempty"`
	VideoResumeURL       *string              `db:"video_resume_url" json:"video_resume_url,omitempty"`
	VoiceResumeURL       *string              `db:"voice_resume_url" json:"voice_resume_url,omitempty"`
	ReviewedAt           *time.Time           `db:"reviewed_at" json:"reviewed_at,omitempty"`
	InterviewScheduledAt *time.Time           `db:"interview_scheduled_at" json:"interview_scheduled_at,omitempty"`
	CreatedAt            time.Time            `db:"created_at" json:"created_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// BelongsTo checks if the application was submitted by userID
func (a *Application) BelongsTo(userID kernel.UserID) bool {
	return !userID.IsEmpty() && a.UserID == userID
}

// ToResponse shapes the application for the API
func (a *Application) ToResponse() ApplicationResponse {
	return ApplicationResponse{
		ID:                   a.ID,
		UserID:               a.UserID,
		JobID:                a.JobID,
		Status:               a.Status,
		CoverLetter:          a.CoverLetter,
		ResumeURL:            a.ResumeURL,
		VideoResumeURL:       a.VideoResumeURL,
		VoiceResumeURL:       a.VoiceResumeURL,
		ReviewedAt:           a.ReviewedAt,
		InterviewScheduledAt: a.InterviewScheduledAt,
		CreatedAt:            a.CreatedAt,
	}
}
