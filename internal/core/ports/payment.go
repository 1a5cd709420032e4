package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// GatewayOrder is a payment order created at the gateway. Amount is in
// currency subunits (paise for INR), as the gateway requires.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// PaymentGateway is the order-management side of the payment provider. Only
// order creation crosses this boundary; signature verification is local.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountSubunits int64, currency, receipt string) (*GatewayOrder, error)
}

// PaymentRepository persists payment records produced by verification.
type PaymentRepository interface {
	Insert(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
}

// CreateOrderInput carries the client's order request. Amount is in major
// currency units.
type CreateOrderInput struct {
	Amount   float64
	Currency string
}

// VerifyPaymentInput carries the gateway callback fields to verify. The
// engagement references are optional and recorded when present.
type VerifyPaymentInput struct {
	OrderID      string
	PaymentID    string
	Signature    string
	ClientID     string
	FreelancerID string
	JobID        string
	Amount       float64
}

// PaymentService creates gateway orders and verifies payment callbacks.
type PaymentService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*GatewayOrder, error)
	// VerifyPayment reports whether the supplied signature authenticates the
	// (order, payment) pair. A mismatch is a false result, not an error.
	VerifyPayment(ctx context.Context, input VerifyPaymentInput) (bool, error)
}
