package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the endpoint handlers for route registration.
type HandlerBundle struct {
	// Voice endpoints.
	VoiceWebhookHandler gin.HandlerFunc

	// Search and order endpoints.
	GetFlightsHandler  gin.HandlerFunc
	GetHotelsHandler   gin.HandlerFunc
	BookFlightHandler  gin.HandlerFunc
	BookHotelHandler   gin.HandlerFunc

	// Booking persistence endpoints.
	ConfirmBookingHandler gin.HandlerFunc
	GetBookingHandler     gin.HandlerFunc
	ListBookingsHandler   gin.HandlerFunc

	// Payment endpoints.
	InitiatePaymentHandler gin.HandlerFunc
	StripeWebhookHandler   gin.HandlerFunc
}
