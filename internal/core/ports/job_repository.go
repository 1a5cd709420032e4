package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// JobFilter carries the optional search constraints for listing jobs.
// A nil budget bound or empty title means "no constraint".
type JobFilter struct {
	Title     string // case-insensitive substring match
	MinBudget *float64
	MaxBudget *float64
}

// JobRepository defines persistence for job postings. All list operations
// return jobs ordered by creation time descending.
type JobRepository interface {
	Insert(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, filter JobFilter) ([]domain.Job, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Job, error)
}
