package ports

import (
	"context"
	"time"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// ApplyInput carries all data needed to submit a job application.
type ApplyInput struct {
	JobID        string
	FreelancerID string
	CoverLetter  string
}

// ApplicantSummary is the public identity of an applicant, resolved for the
// job owner's review list.
type ApplicantSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// JobSummary is the job view resolved onto a freelancer's own applications.
type JobSummary struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
}

// JobApplication is one application as seen by the job owner.
type JobApplication struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	Applicant   ApplicantSummary         `json:"applicant"`
	CoverLetter string                   `json:"cover_letter"`
	Status      domain.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
}

// OwnApplication is one application as seen by the freelancer who sent it.
type OwnApplication struct {
	ID          string                   `json:"id"`
	Job         JobSummary               `json:"job"`
	CoverLetter string                   `json:"cover_letter"`
	Status      domain.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
}

// ApplicationService defines use-case operations for job applications.
type ApplicationService interface {
	Apply(ctx context.Context, input ApplyInput) (*domain.Application, error)
	ListForJob(ctx context.Context, jobID string) ([]JobApplication, error)
	ListForApplicant(ctx context.Context, freelancerID string) ([]OwnApplication, error)
	// UpdateStatus transitions an application's review state. Only the owner
	// of the referenced job may do so; callerID must match the job's client.
	UpdateStatus(ctx context.Context, callerID, id string, status domain.ApplicationStatus) (*domain.Application, error)
}
