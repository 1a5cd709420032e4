package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// ApplicationService implements applying to jobs and reviewing applications.
type ApplicationService struct {
	apps   ports.ApplicationRepository
	jobs   ports.JobRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewApplicationService(apps ports.ApplicationRepository, jobs ports.JobRepository, users ports.UserRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, users: users, logger: logger}
}

// Apply submits an application with status Pending. The one-per-(job,
// freelancer) rule is enforced by the repository's unique index, so two
// concurrent identical requests resolve to one success and one duplicate.
func (s *ApplicationService) Apply(ctx context.Context, input ports.ApplyInput) (*domain.Application, error) {
	if input.JobID == "" || input.CoverLetter == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	if input.FreelancerID == "" {
		return nil, fmt.Errorf("%w: freelancer id is required", domain.ErrValidation)
	}

	if _, err := s.jobs.FindByID(ctx, input.JobID); err != nil {
		return nil, err
	}

	app := &domain.Application{
		JobID:        input.JobID,
		FreelancerID: input.FreelancerID,
		CoverLetter:  input.CoverLetter,
		Status:       domain.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.apps.Insert(ctx, app)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("job_id", created.JobID).Str("freelancer_id", created.FreelancerID).Msg("application submitted")
	return created, nil
}

// ListForJob returns all applications for a job with each applicant's public
// identity resolved. A missing job is an error; no applications is an empty
// list.
func (s *ApplicationService) ListForJob(ctx context.Context, jobID string) ([]ports.JobApplication, error) {
	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		return nil, err
	}

	apps, err := s.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	out := make([]ports.JobApplication, 0, len(apps))
	for _, app := range apps {
		item := ports.JobApplication{
			ID:          app.ID,
			JobID:       app.JobID,
			CoverLetter: app.CoverLetter,
			Status:      app.Status,
			CreatedAt:   app.CreatedAt,
		}
		user, err := s.users.FindByID(ctx, app.FreelancerID)
		switch {
		case err == nil:
			item.Applicant = ports.ApplicantSummary{ID: user.ID, Username: user.Username, Email: user.Email}
		case errors.Is(err, domain.ErrUserNotFound):
			// Applicant record gone; keep the application with a bare reference.
			item.Applicant = ports.ApplicantSummary{ID: app.FreelancerID}
		default:
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// ListForApplicant returns one freelancer's applications with the referenced
// job resolved.
func (s *ApplicationService) ListForApplicant(ctx context.Context, freelancerID string) ([]ports.OwnApplication, error) {
	apps, err := s.apps.ListByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, err
	}

	out := make([]ports.OwnApplication, 0, len(apps))
	for _, app := range apps {
		item := ports.OwnApplication{
			ID:          app.ID,
			CoverLetter: app.CoverLetter,
			Status:      app.Status,
			CreatedAt:   app.CreatedAt,
		}
		job, err := s.jobs.FindByID(ctx, app.JobID)
		switch {
		case err == nil:
			item.Job = ports.JobSummary{ID: job.ID, Title: job.Title, Description: job.Description, Budget: job.Budget}
		case errors.Is(err, domain.ErrJobNotFound):
			item.Job = ports.JobSummary{ID: app.JobID}
		default:
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// UpdateStatus transitions an application's review state. Only the owner of
// the referenced job may accept or reject.
func (s *ApplicationService) UpdateStatus(ctx context.Context, callerID, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	if !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: status must be one of Pending, Accepted, Rejected", domain.ErrInvalidStatus)
	}

	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != callerID {
		return nil, domain.ErrForbidden
	}

	if !app.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, app.Status, status)
	}

	updated, err := s.apps.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("application_id", id).Str("status", string(status)).Msg("application status updated")
	return updated, nil
}
