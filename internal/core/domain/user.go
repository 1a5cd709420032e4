package domain

import (
	"errors"
	"time"
)

const (
	RoleClient     = "client"
	RoleFreelancer = "freelancer"
)

var ErrUserNotFound = errors.New("user not found")
var ErrDuplicateEmail = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidRole reports whether role is one of the two marketplace roles.
func ValidRole(role string) bool {
	return role == RoleClient || role == RoleFreelancer
}

// User models an authenticated actor in the marketplace. Clients post jobs,
// freelancers apply to them. The password hash never leaves the process.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Skills       []string  `json:"skills,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicProfile is the externally visible slice of a user record.
type PublicProfile struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Skills   []string `json:"skills,omitempty"`
	Bio      string   `json:"bio,omitempty"`
}

// Public strips the credential fields from a user record.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Skills:   u.Skills,
		Bio:      u.Bio,
	}
}
