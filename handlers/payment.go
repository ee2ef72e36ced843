package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	bookingRepo "maxxtravel/database/repository/booking"
	"maxxtravel/models"
	"maxxtravel/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// CheckoutService is the slice of the payment service the endpoints use.
type CheckoutService interface {
	CreateCheckoutSession(ctx context.Context, amount float64, currency, description string) (string, error)
	CreateBookingCheckout(ctx context.Context, amount float64, currency, bookingID string) (string, error)
	VerifyWebhook(payload []byte, sigHeader string) (stripe.Event, error)
}

// PaymentHandler exposes checkout creation and the Stripe webhook.
type PaymentHandler struct {
	Payments CheckoutService
	Repo     bookingRepo.BookingRepository
	Logger   *zap.Logger
}

func NewPaymentHandler(payments CheckoutService, repo bookingRepo.BookingRepository, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Payments: payments, Repo: repo, Logger: logger}
}

// InitiatePaymentHandler opens a checkout session for a quoted amount.
func (h *PaymentHandler) InitiatePaymentHandler(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	var url string
	var err error
	if req.BookingID != "" {
		url, err = h.Payments.CreateBookingCheckout(c.Request.Context(), req.Amount, req.Currency, req.BookingID)
	} else {
		url, err = h.Payments.CreateCheckoutSession(c.Request.Context(), req.Amount, req.Currency, "Travel Booking")
	}
	if err != nil {
		h.Logger.Error("payment session could not be created", zap.Float64("amount", req.Amount), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "payment session could not be created", "")
		return
	}

	c.JSON(http.StatusOK, models.PaymentResponse{CheckoutURL: url})
}

// StripeWebhookHandler verifies a webhook delivery and marks the referenced
// booking as paid on checkout completion.
func (h *PaymentHandler) StripeWebhookHandler(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read payload", err.Error())
		return
	}

	event, err := h.Payments.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		h.Logger.Warn("stripe webhook rejected", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid webhook", "")
		return
	}

	if event.Type == "checkout.session.completed" {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			h.Logger.Error("failed to parse checkout session", zap.Error(err))
			utils.JSONError(c, http.StatusBadRequest, "invalid webhook payload", "")
			return
		}

		bookingID := session.Metadata["booking_id"]
		if bookingID == "" {
			h.Logger.Warn("booking id not found in session metadata", zap.String("session", session.ID))
		} else if _, err := h.Repo.UpdatePaymentStatus(c.Request.Context(), bookingID, models.PaymentPaid); err != nil {
			h.Logger.Warn("failed to mark booking paid", zap.String("bookingId", bookingID), zap.Error(err))
		} else {
			h.Logger.Info("booking payment completed", zap.String("bookingId", bookingID))
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
