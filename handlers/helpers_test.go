package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	bookingRepo "maxxtravel/database/repository/booking"
	"maxxtravel/models"
	"maxxtravel/services/amadeus"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeGateway implements TravelGateway with canned responses.
type fakeGateway struct {
	flights []models.FlightOffer
	hotels  []models.HotelOffer
	err     error

	searchedOrigin, searchedDestination, searchedDate string
	searchedCity, searchedCheckIn, searchedCheckOut   string
}

func (f *fakeGateway) SearchFlights(_ context.Context, origin, destination, date string, _, _ int) ([]models.FlightOffer, error) {
	f.searchedOrigin, f.searchedDestination, f.searchedDate = origin, destination, date
	return f.flights, f.err
}

func (f *fakeGateway) SearchHotels(_ context.Context, cityCode, checkIn, checkOut string, _ int) ([]models.HotelOffer, error) {
	f.searchedCity, f.searchedCheckIn, f.searchedCheckOut = cityCode, checkIn, checkOut
	return f.hotels, f.err
}

func (f *fakeGateway) CreateFlightOrder(_ context.Context, orderData map[string]interface{}, travelers []map[string]interface{}) (*amadeus.FlightOrder, error) {
	if f.err != nil {
		return nil, f.err
	}
	offers, _ := orderData["flightOffers"].([]interface{})
	return &amadeus.FlightOrder{Type: "flight-order", ID: "ord1", Status: "CONFIRMED", FlightOffers: offers, Travelers: travelers}, nil
}

func (f *fakeGateway) CreateHotelBooking(_ context.Context, bookingData map[string]interface{}, guests []map[string]interface{}, payments []map[string]interface{}) (*amadeus.HotelBooking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &amadeus.HotelBooking{Type: "hotel-booking", ID: "bk1", Status: "CONFIRMED", BookingData: bookingData, Guests: guests, Payments: payments}, nil
}

// fakeRepo implements bookingRepo.BookingRepository in memory.
type fakeRepo struct {
	records map[string]models.BookingRecord
	nextID  string
	err     error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]models.BookingRecord), nextID: "b1"}
}

func (f *fakeRepo) Create(_ context.Context, record models.BookingRecord) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	record.ID = f.nextID
	if record.PaymentStatus == "" {
		record.PaymentStatus = models.PaymentPending
	}
	f.records[record.ID] = record
	return record.ID, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*models.BookingRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	record, ok := f.records[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return &record, nil
}

func (f *fakeRepo) ListByEmail(_ context.Context, email string) ([]models.BookingRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.BookingRecord
	for _, record := range f.records {
		if record.Email == email {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdatePaymentStatus(_ context.Context, id, status string) (*models.BookingRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	record, ok := f.records[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	record.PaymentStatus = status
	f.records[id] = record
	return &record, nil
}

// fakeEnqueuer implements TaskEnqueuer, recording enqueued tasks.
type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

// fakeCheckoutService implements CheckoutService.
type fakeCheckoutService struct {
	url       string
	err       error
	event     stripe.Event
	verifyErr error

	bookingID string
	payload   []byte
	sig       string
}

func (f *fakeCheckoutService) CreateCheckoutSession(_ context.Context, _ float64, _, _ string) (string, error) {
	return f.url, f.err
}

func (f *fakeCheckoutService) CreateBookingCheckout(_ context.Context, _ float64, _ string, bookingID string) (string, error) {
	f.bookingID = bookingID
	return f.url, f.err
}

func (f *fakeCheckoutService) VerifyWebhook(payload []byte, sigHeader string) (stripe.Event, error) {
	f.payload, f.sig = payload, sigHeader
	return f.event, f.verifyErr
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return out
}
