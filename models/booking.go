package models

import "time"

// Payment status values for a booking record.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// BookingRecord is a persisted booking with contact and trip details.
type BookingRecord struct {
	ID            string    `bson:"id" json:"id"`
	UserName      string    `bson:"userName" json:"user_name"`
	Email         string    `bson:"email" json:"email"`
	Phone         string    `bson:"phone" json:"phone"`
	Origin        string    `bson:"origin,omitempty" json:"origin,omitempty"`
	Destination   string    `bson:"destination,omitempty" json:"destination,omitempty"`
	DepartureDate string    `bson:"departureDate,omitempty" json:"departure_date,omitempty"`
	FlightNumber  string    `bson:"flightNumber,omitempty" json:"flight_number,omitempty"`
	AmountPaid    float64   `bson:"amountPaid,omitempty" json:"amount_paid,omitempty"`
	PaymentStatus string    `bson:"paymentStatus" json:"payment_status"`
	BookedAt      time.Time `bson:"bookedAt" json:"booked_at"`
	CreatedAt     time.Time `bson:"createdAt" json:"-"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"-"`
}

// TripInvitePayload is the queued-task payload for sending a calendar
// invite after a booking is confirmed.
type TripInvitePayload struct {
	BookingID     string `json:"bookingId"`
	UserName      string `json:"userName"`
	Email         string `json:"email"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
}

// FlightOrderRequest wraps an Amadeus flight order payload.
type FlightOrderRequest struct {
	OrderData map[string]interface{}   `json:"order_data" binding:"required"`
	Travelers []map[string]interface{} `json:"travelers" binding:"required"`
}

// HotelOrderRequest wraps an Amadeus hotel booking payload.
type HotelOrderRequest struct {
	BookingData map[string]interface{}   `json:"booking_data" binding:"required"`
	Guests      []map[string]interface{} `json:"guests" binding:"required"`
	Payments    []map[string]interface{} `json:"payments,omitempty"`
}
