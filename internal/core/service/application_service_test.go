package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type stubApplicationRepo struct {
	apps   []domain.Application
	nextID int
}

func (r *stubApplicationRepo) Insert(_ context.Context, app *domain.Application) (*domain.Application, error) {
	for _, existing := range r.apps {
		if existing.JobID == app.JobID && existing.FreelancerID == app.FreelancerID {
			return nil, domain.ErrDuplicateApplication
		}
	}
	r.nextID++
	created := *app
	created.ID = fmt.Sprintf("app_%d", r.nextID)
	r.apps = append(r.apps, created)
	return &created, nil
}

func (r *stubApplicationRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	for i := range r.apps {
		if r.apps[i].ID == id {
			app := r.apps[i]
			return &app, nil
		}
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *stubApplicationRepo) ListByJob(_ context.Context, jobID string) ([]domain.Application, error) {
	var out []domain.Application
	for _, app := range r.apps {
		if app.JobID == jobID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (r *stubApplicationRepo) ListByFreelancer(_ context.Context, freelancerID string) ([]domain.Application, error) {
	var out []domain.Application
	for _, app := range r.apps {
		if app.FreelancerID == freelancerID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (r *stubApplicationRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	for i := range r.apps {
		if r.apps[i].ID == id {
			r.apps[i].Status = status
			app := r.apps[i]
			return &app, nil
		}
	}
	return nil, domain.ErrApplicationNotFound
}

func newTestApplicationService(apps *stubApplicationRepo, jobs *stubJobRepo, users *stubUserRepo) *ApplicationService {
	return NewApplicationService(apps, jobs, users, zerolog.Nop())
}

func seedJob(jobs *stubJobRepo, id, clientID string) {
	jobs.jobs = append(jobs.jobs, domain.Job{ID: id, Title: "Job " + id, Description: "desc", Budget: 1000, ClientID: clientID})
}

func TestApplicationService_Apply_Success(t *testing.T) {
	apps, jobs, users := &stubApplicationRepo{}, &stubJobRepo{}, newStubUserRepo()
	seedJob(jobs, "job_1", "client_1")
	svc := newTestApplicationService(apps, jobs, users)

	app, err := svc.Apply(context.Background(), ports.ApplyInput{
		JobID: "job_1", FreelancerID: "fl_1", CoverLetter: "Hi",
	})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if app.Status != domain.StatusPending {
		t.Fatalf("expected Pending, got %s", app.Status)
	}
	if app.CreatedAt.IsZero() {
		t.Fatalf("expected server-assigned creation time")
	}
}

func TestApplicationService_Apply_Validation(t *testing.T) {
	svc := newTestApplicationService(&stubApplicationRepo{}, &stubJobRepo{}, newStubUserRepo())

	if _, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: "", FreelancerID: "fl", CoverLetter: "x"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing job, got %v", err)
	}
	if _, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: "job", FreelancerID: "fl", CoverLetter: ""}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing cover letter, got %v", err)
	}
}

func TestApplicationService_Apply_UnknownJob(t *testing.T) {
	svc := newTestApplicationService(&stubApplicationRepo{}, &stubJobRepo{}, newStubUserRepo())

	if _, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: "missing", FreelancerID: "fl", CoverLetter: "x"}); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	apps, jobs := &stubApplicationRepo{}, &stubJobRepo{}
	seedJob(jobs, "job_1", "client_1")
	svc := newTestApplicationService(apps, jobs, newStubUserRepo())

	input := ports.ApplyInput{JobID: "job_1", FreelancerID: "fl_1", CoverLetter: "Hi"}
	if _, err := svc.Apply(context.Background(), input); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if _, err := svc.Apply(context.Background(), input); !errors.Is(err, domain.ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
	if len(apps.apps) != 1 {
		t.Fatalf("expected exactly one stored application, got %d", len(apps.apps))
	}
}

func TestApplicationService_ListForJob_ResolvesApplicants(t *testing.T) {
	apps, jobs, users := &stubApplicationRepo{}, &stubJobRepo{}, newStubUserRepo()
	seedJob(jobs, "job_1", "client_1")
	if _, err := users.Create(context.Background(), &domain.User{Username: "fl_1", Email: "fl@example.com", Role: domain.RoleFreelancer}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	svc := newTestApplicationService(apps, jobs, users)

	if _, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: "job_1", FreelancerID: "fl_1", CoverLetter: "Hi"}); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	list, err := svc.ListForJob(context.Background(), "job_1")
	if err != nil {
		t.Fatalf("ListForJob returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 application, got %d", len(list))
	}
	if list[0].Applicant.Username != "fl_1" || list[0].Applicant.Email != "fl@example.com" {
		t.Fatalf("applicant not resolved: %+v", list[0].Applicant)
	}
}

func TestApplicationService_ListForJob_UnknownJob(t *testing.T) {
	svc := newTestApplicationService(&stubApplicationRepo{}, &stubJobRepo{}, newStubUserRepo())

	if _, err := svc.ListForJob(context.Background(), "missing"); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplicationService_ListForJob_EmptyIsNotError(t *testing.T) {
	jobs := &stubJobRepo{}
	seedJob(jobs, "job_1", "client_1")
	svc := newTestApplicationService(&stubApplicationRepo{}, jobs, newStubUserRepo())

	list, err := svc.ListForJob(context.Background(), "job_1")
	if err != nil {
		t.Fatalf("ListForJob returned error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
}

func TestApplicationService_ListForApplicant_ResolvesJobs(t *testing.T) {
	apps, jobs := &stubApplicationRepo{}, &stubJobRepo{}
	seedJob(jobs, "job_1", "client_1")
	svc := newTestApplicationService(apps, jobs, newStubUserRepo())

	if _, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: "job_1", FreelancerID: "fl_1", CoverLetter: "Hi"}); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	list, err := svc.ListForApplicant(context.Background(), "fl_1")
	if err != nil {
		t.Fatalf("ListForApplicant returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 application, got %d", len(list))
	}
	if list[0].Job.Title != "Job job_1" || list[0].Job.Budget != 1000 {
		t.Fatalf("job not resolved: %+v", list[0].Job)
	}
}

func TestApplicationService_UpdateStatus_Accept(t *testing.T) {
	apps, jobs := &stubApplicationRepo{}, &stubJobRepo{}
	seedJob(jobs, "job_1", "client_1")
	svc := newTestApplicationService(apps, jobs, newStubUserRepo())

	app, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: "job_1", FreelancerID: "fl_1", CoverLetter: "Hi"})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), "client_1", app.ID, domain.StatusAccepted)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != domain.StatusAccepted {
		t.Fatalf("expected Accepted, got %s", updated.Status)
	}
}

func TestApplicationService_UpdateStatus_InvalidValue(t *testing.T) {
	apps, jobs := &stubApplicationRepo{}, &stubJobRepo{}
	seedJob(jobs, "job_1", "client_1")
	svc := newTestApplicationService(apps, jobs, newStubUserRepo())

	app, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: "job_1", FreelancerID: "fl_1", CoverLetter: "Hi"})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), "client_1", app.ID, "Bogus"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	stored, err := apps.FindByID(context.Background(), app.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored.Status != domain.StatusPending {
		t.Fatalf("stored status changed on invalid update: %s", stored.Status)
	}
}

func TestApplicationService_UpdateStatus_NotFound(t *testing.T) {
	svc := newTestApplicationService(&stubApplicationRepo{}, &stubJobRepo{}, newStubUserRepo())

	if _, err := svc.UpdateStatus(context.Background(), "client_1", "missing", domain.StatusAccepted); !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestApplicationService_UpdateStatus_NotOwner(t *testing.T) {
	apps, jobs := &stubApplicationRepo{}, &stubJobRepo{}
	seedJob(jobs, "job_1", "client_1")
	svc := newTestApplicationService(apps, jobs, newStubUserRepo())

	app, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: "job_1", FreelancerID: "fl_1", CoverLetter: "Hi"})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), "client_2", app.ID, domain.StatusAccepted); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestApplicationService_UpdateStatus_TerminalTransition(t *testing.T) {
	apps, jobs := &stubApplicationRepo{}, &stubJobRepo{}
	seedJob(jobs, "job_1", "client_1")
	svc := newTestApplicationService(apps, jobs, newStubUserRepo())

	app, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: "job_1", FreelancerID: "fl_1", CoverLetter: "Hi"})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "client_1", app.ID, domain.StatusAccepted); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	// Re-applying the same status is allowed; leaving a terminal state is not.
	if _, err := svc.UpdateStatus(context.Background(), "client_1", app.ID, domain.StatusAccepted); err != nil {
		t.Fatalf("self-transition failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "client_1", app.ID, domain.StatusPending); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestApplicationService_ListOrderPreserved(t *testing.T) {
	// The repository contract orders newest-first; the service must not
	// reorder while resolving references.
	now := time.Now().UTC()
	apps := &stubApplicationRepo{apps: []domain.Application{
		{ID: "app_2", JobID: "job_1", FreelancerID: "fl_2", Status: domain.StatusPending, CreatedAt: now},
		{ID: "app_1", JobID: "job_1", FreelancerID: "fl_1", Status: domain.StatusPending, CreatedAt: now.Add(-time.Hour)},
	}}
	jobs := &stubJobRepo{}
	seedJob(jobs, "job_1", "client_1")
	svc := newTestApplicationService(apps, jobs, newStubUserRepo())

	list, err := svc.ListForJob(context.Background(), "job_1")
	if err != nil {
		t.Fatalf("ListForJob returned error: %v", err)
	}
	if len(list) != 2 || list[0].ID != "app_2" || list[1].ID != "app_1" {
		t.Fatalf("order not preserved: %+v", list)
	}
}
