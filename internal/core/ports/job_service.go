package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// CreateJobInput carries all data needed to post a new job.
type CreateJobInput struct {
	Title       string
	Description string
	Budget      float64
	ClientID    string
}

// JobService defines use-case operations for job postings.
type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	ListAll(ctx context.Context) ([]domain.Job, error)
	Search(ctx context.Context, filter JobFilter) ([]domain.Job, error)
	ListByOwner(ctx context.Context, clientID string) ([]domain.Job, error)
}

// JobCache is a read-through cache for job list and search results. A miss is
// reported as (nil, false, nil); cache failures are never fatal to a request.
type JobCache interface {
	Get(ctx context.Context, key string) ([]domain.Job, bool, error)
	Set(ctx context.Context, key string, jobs []domain.Job) error
	// Invalidate drops every cached job listing.
	Invalidate(ctx context.Context) error
}
