package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	bookingRepo "maxxtravel/database/repository/booking"
	"maxxtravel/models"
	"maxxtravel/services/amadeus"
	"maxxtravel/services/calendar"
	"maxxtravel/services/tasks"
	"maxxtravel/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TravelGateway is the slice of the Amadeus client the REST endpoints use.
type TravelGateway interface {
	SearchFlights(ctx context.Context, origin, destination, date string, adults, children int) ([]models.FlightOffer, error)
	SearchHotels(ctx context.Context, cityCode, checkIn, checkOut string, adults int) ([]models.HotelOffer, error)
	CreateFlightOrder(ctx context.Context, orderData map[string]interface{}, travelers []map[string]interface{}) (*amadeus.FlightOrder, error)
	CreateHotelBooking(ctx context.Context, bookingData map[string]interface{}, guests []map[string]interface{}, payments []map[string]interface{}) (*amadeus.HotelBooking, error)
}

// TaskEnqueuer is the slice of the asynq client the handlers use.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// BookingHandler exposes the thin REST wrappers over search, order creation
// and booking persistence.
type BookingHandler struct {
	Gateway  TravelGateway
	Repo     bookingRepo.BookingRepository
	Calendar *calendar.Service
	Tasks    TaskEnqueuer
	Logger   *zap.Logger
}

func NewBookingHandler(gateway TravelGateway, repo bookingRepo.BookingRepository, cal *calendar.Service, taskQueue TaskEnqueuer, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Gateway: gateway, Repo: repo, Calendar: cal, Tasks: taskQueue, Logger: logger}
}

func queryFallback(c *gin.Context, keys ...string) string {
	for _, key := range keys {
		if v := c.Query(key); v != "" {
			return v
		}
	}
	return ""
}

// GetFlightsHandler searches one-way flights for a route and date.
func (h *BookingHandler) GetFlightsHandler(c *gin.Context) {
	origin := queryFallback(c, "origin", "originLocationCode")
	destination := queryFallback(c, "destination", "destinationLocationCode")
	date := queryFallback(c, "date", "departureDate")
	if origin == "" || destination == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing query parameters", "origin, destination and date are required")
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "date must be formatted YYYY-MM-DD")
		return
	}

	adults := intQuery(c, "adults", 1)
	children := intQuery(c, "children", 0)

	flights, err := h.Gateway.SearchFlights(c.Request.Context(), origin, destination, date, adults, children)
	if err != nil {
		h.Logger.Error("flight search failed",
			zap.String("origin", origin), zap.String("destination", destination), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to search flights", "")
		return
	}
	if flights == nil {
		flights = []models.FlightOffer{}
	}
	c.JSON(http.StatusOK, gin.H{"flights": flights})
}

// GetHotelsHandler searches hotel offers for a city and stay window.
func (h *BookingHandler) GetHotelsHandler(c *gin.Context) {
	cityCode := queryFallback(c, "city_code", "cityCode")
	checkIn := queryFallback(c, "check_in_date", "checkInDate")
	checkOut := queryFallback(c, "check_out_date", "checkOutDate")
	if cityCode == "" || checkIn == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing query parameters", "city_code and check_in_date are required")
		return
	}
	if checkOut == "" {
		checkOut = checkIn
	}
	for _, d := range []string{checkIn, checkOut} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date", "dates must be formatted YYYY-MM-DD")
			return
		}
	}

	hotels, err := h.Gateway.SearchHotels(c.Request.Context(), cityCode, checkIn, checkOut, intQuery(c, "adults", 1))
	if err != nil {
		h.Logger.Error("hotel search failed", zap.String("cityCode", cityCode), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to search hotels", "")
		return
	}
	if hotels == nil {
		hotels = []models.HotelOffer{}
	}
	c.JSON(http.StatusOK, gin.H{"hotels": hotels})
}

// BookFlightHandler creates a (sandbox-simulated) flight order.
func (h *BookingHandler) BookFlightHandler(c *gin.Context) {
	var input models.FlightOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	order, err := h.Gateway.CreateFlightOrder(c.Request.Context(), input.OrderData, input.Travelers)
	if err != nil {
		h.Logger.Error("flight order failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "flight booking failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": order})
}

// BookHotelHandler creates a (sandbox-simulated) hotel booking.
func (h *BookingHandler) BookHotelHandler(c *gin.Context) {
	var input models.HotelOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Gateway.CreateHotelBooking(c.Request.Context(), input.BookingData, input.Guests, input.Payments)
	if err != nil {
		h.Logger.Error("hotel booking failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "hotel booking failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

type confirmBookingInput struct {
	UserName      string  `json:"user_name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         string  `json:"phone" binding:"required"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	FlightNumber  string  `json:"flight_number"`
	AmountPaid    float64 `json:"amount_paid"`
	PaymentStatus string  `json:"payment_status"`
}

// ConfirmBookingHandler persists a booking record and dispatches a
// best-effort calendar trip invite, queued when the task queue is running.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	var input confirmBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	record := models.BookingRecord{
		UserName:      input.UserName,
		Email:         input.Email,
		Phone:         input.Phone,
		Origin:        input.Origin,
		Destination:   input.Destination,
		DepartureDate: input.DepartureDate,
		FlightNumber:  input.FlightNumber,
		AmountPaid:    input.AmountPaid,
		PaymentStatus: input.PaymentStatus,
	}

	id, err := h.Repo.Create(c.Request.Context(), record)
	if err != nil {
		h.Logger.Error("failed to store booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to confirm booking", "")
		return
	}

	record.ID = id
	h.dispatchTripInvite(c.Request.Context(), record)

	c.JSON(http.StatusOK, gin.H{"message": "Booking stored", "booking_id": id})
}

// dispatchTripInvite hands the calendar invite to the task queue when one is
// wired, otherwise sends it inline. Best-effort either way; the booking is
// already stored.
func (h *BookingHandler) dispatchTripInvite(ctx context.Context, record models.BookingRecord) {
	if record.DepartureDate == "" {
		return
	}

	if h.Tasks != nil {
		payload := models.TripInvitePayload{
			BookingID:     record.ID,
			UserName:      record.UserName,
			Email:         record.Email,
			Origin:        record.Origin,
			Destination:   record.Destination,
			DepartureDate: record.DepartureDate,
		}
		task, opts, err := tasks.NewTripInviteTask(payload, time.Time{})
		if err == nil {
			_, err = h.Tasks.Enqueue(task, opts...)
		}
		if err != nil {
			h.Logger.Warn("failed to enqueue trip invite",
				zap.String("bookingId", record.ID), zap.Error(err))
		}
		return
	}

	h.sendTripInvite(ctx, record)
}

func (h *BookingHandler) sendTripInvite(ctx context.Context, record models.BookingRecord) {
	if h.Calendar == nil || !h.Calendar.IsConfigured() {
		return
	}
	departure, err := time.Parse("2006-01-02", record.DepartureDate)
	if err != nil {
		return
	}

	summary := "Trip: " + record.Origin + " to " + record.Destination
	_, err = h.Calendar.CreateEvent(ctx, summary,
		"Booked via Maxx travel assistant",
		departure, departure.Add(2*time.Hour),
		[]string{record.Email})
	if err != nil {
		h.Logger.Warn("calendar invite failed", zap.String("email", record.Email), zap.Error(err))
	}
}

// GetBookingHandler fetches a stored booking by id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	record, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err == bookingRepo.ErrNotFound {
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return
	}
	if err != nil {
		h.Logger.Error("failed to fetch booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": record})
}

// ListBookingsHandler lists bookings for a contact email.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing query parameters", "email is required")
		return
	}
	records, err := h.Repo.ListByEmail(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", "")
		return
	}
	if records == nil {
		records = []models.BookingRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}

func intQuery(c *gin.Context, key string, fallback int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
