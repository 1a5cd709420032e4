package domain

import "errors"

var ErrForbidden = errors.New("access forbidden")
var ErrValidation = errors.New("validation failed")

// Capability names a role-gated write operation. Handlers declare the
// capability a route requires instead of repeating inline role checks.
type Capability string

const (
	CapPostJob            Capability = "post_job"
	CapApplyToJob         Capability = "apply_to_job"
	CapReviewApplications Capability = "review_applications"
)

var rolePolicy = map[Capability][]string{
	CapPostJob:            {RoleClient},
	CapApplyToJob:         {RoleFreelancer},
	CapReviewApplications: {RoleClient},
}

// RoleAllows reports whether a role holds the given capability.
func RoleAllows(role string, cap Capability) bool {
	for _, r := range rolePolicy[cap] {
		if r == role {
			return true
		}
	}
	return false
}
