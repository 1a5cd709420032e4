package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

const defaultCurrency = "INR"

// PaymentService creates gateway orders and verifies payment signatures. The
// signing secret is the gateway key secret, fixed at construction.
type PaymentService struct {
	gateway ports.PaymentGateway
	repo    ports.PaymentRepository
	secret  []byte
	logger  zerolog.Logger
}

func NewPaymentService(gateway ports.PaymentGateway, repo ports.PaymentRepository, keySecret string, logger zerolog.Logger) *PaymentService {
	return &PaymentService{gateway: gateway, repo: repo, secret: []byte(keySecret), logger: logger}
}

// CreateOrder opens an order at the gateway. Amount arrives in major currency
// units and is converted to subunits as the gateway requires.
func (s *PaymentService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ports.GatewayOrder, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be a positive number", domain.ErrValidation)
	}
	currency := input.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	receipt := fmt.Sprintf("receipt_%d", time.Now().UnixMilli())
	order, err := s.gateway.CreateOrder(ctx, int64(input.Amount*100), currency, receipt)
	if err != nil {
		s.logger.Error().Err(err).Msg("gateway order creation failed")
		return nil, err
	}

	s.logger.Info().Str("order_id", order.ID).Int64("amount", order.Amount).Msg("payment order created")
	return order, nil
}

// VerifyPayment recomputes the expected signature over orderID|paymentID and
// compares it to the supplied one. A mismatch is a false result, not an
// error. The outcome is recorded as a payment record either way.
func (s *PaymentService) VerifyPayment(ctx context.Context, input ports.VerifyPaymentInput) (bool, error) {
	if input.OrderID == "" || input.PaymentID == "" || input.Signature == "" {
		return false, fmt.Errorf("%w: order_id, payment_id and signature are required", domain.ErrValidation)
	}

	verified := s.signatureMatches(input.OrderID, input.PaymentID, input.Signature)

	status := domain.PaymentSuccess
	if !verified {
		status = domain.PaymentFailed
	}
	record := &domain.Payment{
		OrderID:      input.OrderID,
		PaymentID:    input.PaymentID,
		ClientID:     input.ClientID,
		FreelancerID: input.FreelancerID,
		JobID:        input.JobID,
		Amount:       input.Amount,
		Status:       status,
		Date:         time.Now().UTC(),
	}
	if _, err := s.repo.Insert(ctx, record); err != nil {
		// The verification result stands; losing the audit record is logged,
		// not surfaced.
		s.logger.Error().Err(err).Str("order_id", input.OrderID).Msg("payment record insert failed")
	}

	s.logger.Info().Str("order_id", input.OrderID).Bool("verified", verified).Msg("payment verification")
	return verified, nil
}

func (s *PaymentService) signatureMatches(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
