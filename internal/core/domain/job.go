package domain

import (
	"errors"
	"time"
)

var ErrJobNotFound = errors.New("job not found")

// Job is a posting created by a client. Budget is always positive.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	ClientID    string    `json:"client_id"`
	CreatedAt   time.Time `json:"created_at"`
}
