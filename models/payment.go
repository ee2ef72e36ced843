package models

// PaymentRequest asks for a checkout session covering a quoted amount.
type PaymentRequest struct {
	Amount    float64 `json:"amount" binding:"required"`
	Currency  string  `json:"currency"`
	SessionID string  `json:"session_id"`
	BookingID string  `json:"booking_id"`
}

// PaymentResponse carries the hosted checkout URL back to the caller.
type PaymentResponse struct {
	CheckoutURL string `json:"checkout_url"`
}
