package routes

import (
	"net/http"

	"maxxtravel/handlers"
	"maxxtravel/utils"

	"github.com/gin-gonic/gin"
)

// RegisterVoiceRoutes registers the voice-assistant webhook.
func RegisterVoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/voice")
	{
		api.POST("/webhook", hb.VoiceWebhookHandler)
		// Legacy path kept for deployed voice-platform configs.
		api.POST("/voice-webhook", hb.VoiceWebhookHandler)
	}
}

// RegisterBookingRoutes registers search, order, persistence and payment endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/booking")
	{
		api.GET("/flights", hb.GetFlightsHandler)
		api.GET("/hotels", hb.GetHotelsHandler)
		api.POST("/flight-book", hb.BookFlightHandler)
		api.POST("/hotel-book", hb.BookHotelHandler)

		api.POST("/confirm", hb.ConfirmBookingHandler)
		api.GET("/record/:id", hb.GetBookingHandler)
		api.GET("/records", hb.ListBookingsHandler)

		api.POST("/pay", hb.InitiatePaymentHandler)
		api.POST("/stripe-webhook", hb.StripeWebhookHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Maxx travel agent is running", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires up all endpoints.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterHealthRoute(r)
	RegisterVoiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
