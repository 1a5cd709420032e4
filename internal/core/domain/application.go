package domain

import (
	"errors"
	"time"
)

// ApplicationStatus represents the review state of a job application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusAccepted ApplicationStatus = "Accepted"
	StatusRejected ApplicationStatus = "Rejected"
)

var ErrApplicationNotFound = errors.New("application not found")
var ErrDuplicateApplication = errors.New("application already exists for this job")
var ErrInvalidStatus = errors.New("invalid status value")
var ErrInvalidTransition = errors.New("invalid status transition")

// validTransitions defines the allowed review-state transitions. Accepted and
// Rejected are terminal; re-applying the current status is always allowed.
var validTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending: {StatusAccepted, StatusRejected},
}

// ValidStatus reports whether s is a known application status.
func ValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Application records one freelancer applying to one job. At most one
// application may exist per (JobID, FreelancerID) pair.
type Application struct {
	ID           string            `json:"id"`
	JobID        string            `json:"job_id"`
	FreelancerID string            `json:"freelancer_id"`
	CoverLetter  string            `json:"cover_letter"`
	Status       ApplicationStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
}
