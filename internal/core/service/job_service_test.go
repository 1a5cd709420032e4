package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type stubJobRepo struct {
	jobs       []domain.Job
	lastFilter ports.JobFilter
	nextID     int
}

func (r *stubJobRepo) Insert(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.nextID++
	created := *job
	created.ID = string(rune('a' + r.nextID - 1))
	r.jobs = append(r.jobs, created)
	return &created, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			j := r.jobs[i]
			return &j, nil
		}
	}
	return nil, domain.ErrJobNotFound
}

func (r *stubJobRepo) List(_ context.Context, filter ports.JobFilter) ([]domain.Job, error) {
	r.lastFilter = filter
	return r.jobs, nil
}

func (r *stubJobRepo) ListByClient(_ context.Context, clientID string) ([]domain.Job, error) {
	var out []domain.Job
	for _, j := range r.jobs {
		if j.ClientID == clientID {
			out = append(out, j)
		}
	}
	return out, nil
}

type stubJobCache struct {
	entries     map[string][]domain.Job
	invalidated int
}

func newStubJobCache() *stubJobCache {
	return &stubJobCache{entries: make(map[string][]domain.Job)}
}

func (c *stubJobCache) Get(_ context.Context, key string) ([]domain.Job, bool, error) {
	jobs, ok := c.entries[key]
	return jobs, ok, nil
}

func (c *stubJobCache) Set(_ context.Context, key string, jobs []domain.Job) error {
	c.entries[key] = jobs
	return nil
}

func (c *stubJobCache) Invalidate(_ context.Context) error {
	c.invalidated++
	c.entries = make(map[string][]domain.Job)
	return nil
}

func newTestJobService(repo *stubJobRepo, cache *stubJobCache) *JobService {
	return NewJobService(repo, cache, zerolog.Nop())
}

func TestJobService_Create_Success(t *testing.T) {
	repo := &stubJobRepo{}
	cache := newStubJobCache()
	svc := newTestJobService(repo, cache)

	job, err := svc.Create(context.Background(), ports.CreateJobInput{
		Title:       "Backend Engineer",
		Description: "Build APIs",
		Budget:      2500,
		ClientID:    "client_1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if job.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if job.CreatedAt.IsZero() {
		t.Fatalf("expected server-assigned creation time")
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected cache invalidation, got %d", cache.invalidated)
	}
}

func TestJobService_Create_Validation(t *testing.T) {
	svc := newTestJobService(&stubJobRepo{}, newStubJobCache())

	cases := []ports.CreateJobInput{
		{Title: "", Description: "d", Budget: 100, ClientID: "c"},
		{Title: "t", Description: "", Budget: 100, ClientID: "c"},
		{Title: "t", Description: "d", Budget: 0, ClientID: "c"},
		{Title: "t", Description: "d", Budget: -5, ClientID: "c"},
		{Title: "t", Description: "d", Budget: 100, ClientID: ""},
	}
	for i, input := range cases {
		if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestJobService_ListAll_CachesResult(t *testing.T) {
	repo := &stubJobRepo{jobs: []domain.Job{{ID: "a", Title: "First"}}}
	cache := newStubJobCache()
	svc := newTestJobService(repo, cache)

	jobs, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	if _, ok := cache.entries[cacheKeyAllJobs]; !ok {
		t.Fatalf("expected listing to be cached")
	}

	// Second read comes from the cache even if the repo changes underneath.
	repo.jobs = nil
	jobs, err = svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected cached listing, got %d jobs", len(jobs))
	}
}

func TestJobService_Search_ForwardsFilter(t *testing.T) {
	repo := &stubJobRepo{}
	svc := newTestJobService(repo, newStubJobCache())

	min, max := 1000.0, 5000.0
	if _, err := svc.Search(context.Background(), ports.JobFilter{Title: "Engineer", MinBudget: &min, MaxBudget: &max}); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if repo.lastFilter.Title != "Engineer" {
		t.Fatalf("title filter not forwarded: %+v", repo.lastFilter)
	}
	if repo.lastFilter.MinBudget == nil || *repo.lastFilter.MinBudget != 1000 {
		t.Fatalf("min budget not forwarded: %+v", repo.lastFilter)
	}
	if repo.lastFilter.MaxBudget == nil || *repo.lastFilter.MaxBudget != 5000 {
		t.Fatalf("max budget not forwarded: %+v", repo.lastFilter)
	}
}

func TestSearchKey_DistinguishesFilters(t *testing.T) {
	min := 1000.0
	keys := map[string]bool{
		searchKey(ports.JobFilter{}):                                  true,
		searchKey(ports.JobFilter{Title: "engineer"}):                 true,
		searchKey(ports.JobFilter{Title: "engineer", MinBudget: &min}): true,
		searchKey(ports.JobFilter{MinBudget: &min}):                   true,
	}
	if len(keys) != 4 {
		t.Fatalf("expected 4 distinct cache keys, got %d", len(keys))
	}
}

func TestJobService_ListByOwner(t *testing.T) {
	repo := &stubJobRepo{jobs: []domain.Job{
		{ID: "a", ClientID: "client_1"},
		{ID: "b", ClientID: "client_2"},
	}}
	svc := newTestJobService(repo, newStubJobCache())

	jobs, err := svc.ListByOwner(context.Background(), "client_1")
	if err != nil {
		t.Fatalf("ListByOwner returned error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "a" {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}
}
