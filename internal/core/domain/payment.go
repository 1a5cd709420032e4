package domain

import "time"

// PaymentStatus is the recorded outcome of a gateway payment.
type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "Success"
	PaymentFailed  PaymentStatus = "Failed"
	PaymentPending PaymentStatus = "Pending"
)

// Payment records a verified (or rejected) gateway callback. Job and
// freelancer references are optional; verification happens before any
// engagement is necessarily linked.
type Payment struct {
	ID           string        `json:"id"`
	OrderID      string        `json:"order_id"`
	PaymentID    string        `json:"payment_id"`
	ClientID     string        `json:"client_id,omitempty"`
	FreelancerID string        `json:"freelancer_id,omitempty"`
	JobID        string        `json:"job_id,omitempty"`
	Amount       float64       `json:"amount,omitempty"`
	Status       PaymentStatus `json:"status"`
	Date         time.Time     `json:"date"`
}
