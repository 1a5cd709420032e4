package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// AuthService implements signup and login.
type AuthService interface {
	Register(ctx context.Context, username, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// ProfileService exposes the freelancer directory and self-service profile
// updates.
type ProfileService interface {
	ListFreelancers(ctx context.Context) ([]domain.PublicProfile, error)
	GetFreelancer(ctx context.Context, id string) (domain.PublicProfile, error)
	SearchFreelancers(ctx context.Context, q string) ([]domain.PublicProfile, error)
	// UpdateProfile applies patch to the user identified by id. Only the user
	// themselves may update their profile; callerID must match id.
	UpdateProfile(ctx context.Context, callerID, id string, patch ProfilePatch) (domain.PublicProfile, error)
}
