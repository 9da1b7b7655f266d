package application

import (
	"time"

	"github.com/Abraxas-365/jobboard/pkg/kernel"
)

// ApplyRequest - DTO for applying to a job; every field is optional
type ApplyRequest struct {
	CoverLetter    *string `json:"cover_letter,omitempty" validate:"omitempty,pgtext,max=5000"`
	ResumeURL      *string `json:"resume_url,omitempty" validate:"omitempty,url,pgtext"`
	VideoResumeURL *string `json:"video_resume_url,omitempty" validate:"omitempty,url,pgtext"`
	VoiceResumeURL *string `json:"voice_resume_url,omitempty" validate:"omitempty,url,pgtext"`
}

// ApplicationResponse - DTO for returning application data
type ApplicationResponse struct {
	ID                   kernel.ApplicationID `json:"id"`
	UserID               kernel.UserID        `json:"user_id"`
	JobID                kernel.JobID         `json:"job_id"`
	Status               ApplicationStatus    `json:"status"`
	CoverLetter          *string              `json:"cover_letter"`
	ResumeURL            *string              `json:"resume_url"`
	VideoResumeURL       *string              `json:"video_resume_url"`
	VoiceResumeURL       *string              `json:"voice_resume_url"`
	ReviewedAt           *time.Time           `json:"reviewed_at"`
	InterviewScheduledAt *time.Time           `json:"interview_scheduled_at"`
	CreatedAt            time.Time            `json:"created_at"`
}

// ApplicationListResponse - DTO for a list of applications, newest first
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Total        int                   `json:"total"`
}

// NewApplicationListResponse shapes a list of applications
func NewApplicationListResponse(apps []*Application) ApplicationListResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, a.ToResponse())
	}
	return ApplicationListResponse{Applications: out, Total: len(out)}
}
