package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// ApplicationRepository defines persistence for job applications. The
// (job_id, freelancer_id) pair is unique at the store level; Insert surfaces
// a conflict as domain.ErrDuplicateApplication. List operations return
// applications ordered by creation time descending.
type ApplicationRepository interface {
	Insert(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]domain.Application, error)
	ListByFreelancer(ctx context.Context, freelancerID string) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
}
