package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

const cacheKeyAllJobs = "all"

// JobService implements job posting, listing and search. List and search
// results go through a read-through cache invalidated on every new posting.
type JobService struct {
	repo   ports.JobRepository
	cache  ports.JobCache
	logger zerolog.Logger
}

func NewJobService(repo ports.JobRepository, cache ports.JobCache, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, cache: cache, logger: logger}
}

// Create posts a new job with a server-assigned creation timestamp.
func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	if input.Title == "" || input.Description == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	if input.Budget <= 0 {
		return nil, fmt.Errorf("%w: budget must be a positive number", domain.ErrValidation)
	}
	if input.ClientID == "" {
		return nil, fmt.Errorf("%w: client id is required", domain.ErrValidation)
	}

	job := &domain.Job{
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		ClientID:    input.ClientID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, job)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("job cache invalidation failed")
	}

	s.logger.Info().Str("job_id", created.ID).Str("client_id", created.ClientID).Msg("job posted")
	return created, nil
}

func (s *JobService) ListAll(ctx context.Context) ([]domain.Job, error) {
	return s.cached(ctx, cacheKeyAllJobs, ports.JobFilter{})
}

func (s *JobService) Search(ctx context.Context, filter ports.JobFilter) ([]domain.Job, error) {
	return s.cached(ctx, searchKey(filter), filter)
}

func (s *JobService) ListByOwner(ctx context.Context, clientID string) ([]domain.Job, error) {
	return s.repo.ListByClient(ctx, clientID)
}

// cached serves a listing from the cache when possible, falling back to the
// repository. Cache failures degrade to a direct read, never an error.
func (s *JobService) cached(ctx context.Context, key string, filter ports.JobFilter) ([]domain.Job, error) {
	jobs, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("job cache read failed")
	} else if hit {
		return jobs, nil
	}

	jobs, err = s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, jobs); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("job cache write failed")
	}
	return jobs, nil
}

// searchKey derives a stable cache key from the search constraints.
func searchKey(f ports.JobFilter) string {
	var b strings.Builder
	b.WriteString("search:")
	b.WriteString(strings.ToLower(f.Title))
	if f.MinBudget != nil {
		fmt.Fprintf(&b, ":min=%g", *f.MinBudget)
	}
	if f.MaxBudget != nil {
		fmt.Fprintf(&b, ":max=%g", *f.MaxBudget)
	}
	return b.String()
}
