package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/api/metrics"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// PaymentHandler handles gateway order creation and payment verification.
type PaymentHandler struct {
	paymentService ports.PaymentService
}

func NewPaymentHandler(paymentService ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

type createOrderRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency"`
}

type verifyPaymentRequest struct {
	OrderID      string  `json:"order_id" validate:"required"`
	PaymentID    string  `json:"payment_id" validate:"required"`
	Signature    string  `json:"signature" validate:"required"`
	ClientID     string  `json:"client_id"`
	FreelancerID string  `json:"freelancer_id"`
	JobID        string  `json:"job_id"`
	Amount       float64 `json:"amount"`
}

type verifyPaymentResponse struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
}

// CreateOrder handles POST /api/payments/create-order.
//
// @Summary      Create a payment order at the gateway
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      200   {object}  ports.GatewayOrder
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/payments/create-order [post]
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.paymentService.CreateOrder(c.Request().Context(), ports.CreateOrderInput{
		Amount:   req.Amount,
		Currency: req.Currency,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// VerifyPayment handles POST /api/payments/verify-payment. A signature
// mismatch is a 200 with verified=false, not an error.
//
// @Summary      Verify a payment callback signature
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      verifyPaymentRequest  true  "Callback fields"
// @Success      200   {object}  verifyPaymentResponse
// @Failure      400   {object}  messageResponse
// @Router       /api/payments/verify-payment [post]
func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	var req verifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	verified, err := h.paymentService.VerifyPayment(c.Request().Context(), ports.VerifyPaymentInput{
		OrderID:      req.OrderID,
		PaymentID:    req.PaymentID,
		Signature:    req.Signature,
		ClientID:     req.ClientID,
		FreelancerID: req.FreelancerID,
		JobID:        req.JobID,
		Amount:       req.Amount,
	})
	if err != nil {
		return err
	}

	resp := verifyPaymentResponse{Verified: verified, Message: "payment verified successfully"}
	if !verified {
		resp.Message = "payment verification failed"
		metrics.PaymentVerificationsTotal.WithLabelValues("rejected").Inc()
	} else {
		metrics.PaymentVerificationsTotal.WithLabelValues("verified").Inc()
	}
	return c.JSON(http.StatusOK, resp)
}
