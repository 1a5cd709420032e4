package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// ProfilePatch carries a partial profile update. Zero-value fields keep the
// stored value.
type ProfilePatch struct {
	Username string
	Email    string
	Skills   []string
	Bio      string
}

// UserRepository defines persistence for user records. Email uniqueness is
// enforced by the store itself; Create surfaces a conflict as
// domain.ErrDuplicateEmail.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, patch ProfilePatch) (*domain.User, error)
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
	// SearchByRole matches username or any skill against q, case-insensitively.
	SearchByRole(ctx context.Context, role, q string) ([]*domain.User, error)
}
