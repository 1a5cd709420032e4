package service

import (
	"context"
	"fmt"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// ProfileService exposes the freelancer directory and self-service profile
// updates.
type ProfileService struct {
	repo ports.UserRepository
}

func NewProfileService(repo ports.UserRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) ListFreelancers(ctx context.Context) ([]domain.PublicProfile, error) {
	users, err := s.repo.ListByRole(ctx, domain.RoleFreelancer)
	if err != nil {
		return nil, err
	}
	return publicProfiles(users), nil
}

func (s *ProfileService) GetFreelancer(ctx context.Context, id string) (domain.PublicProfile, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.PublicProfile{}, err
	}
	return user.Public(), nil
}

func (s *ProfileService) SearchFreelancers(ctx context.Context, q string) ([]domain.PublicProfile, error) {
	if q == "" {
		return nil, fmt.Errorf("%w: query required", domain.ErrValidation)
	}
	users, err := s.repo.SearchByRole(ctx, domain.RoleFreelancer, q)
	if err != nil {
		return nil, err
	}
	return publicProfiles(users), nil
}

// UpdateProfile applies patch to the user's own record. Updating anyone
// else's profile is forbidden.
func (s *ProfileService) UpdateProfile(ctx context.Context, callerID, id string, patch ports.ProfilePatch) (domain.PublicProfile, error) {
	// Existence check first so a missing record reads as 404, not 403.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domain.PublicProfile{}, err
	}
	if callerID != id {
		return domain.PublicProfile{}, domain.ErrForbidden
	}

	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.PublicProfile{}, err
	}
	return user.Public(), nil
}

func publicProfiles(users []*domain.User) []domain.PublicProfile {
	profiles := make([]domain.PublicProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Public())
	}
	return profiles
}
