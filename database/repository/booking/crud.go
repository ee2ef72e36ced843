package bookingRepo

import (
	"context"
	"errors"
	"time"

	"maxxtravel/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// Create inserts a new booking record and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, record models.BookingRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.PaymentStatus == "" {
		record.PaymentStatus = models.PaymentPending
	}
	if record.BookedAt.IsZero() {
		record.BookedAt = time.Now()
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetByID returns a booking record by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.BookingRecord, error) {
	var record models.BookingRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByEmail fetches all bookings made with a contact email, newest first.
func (r *mongoBookingRepo) ListByEmail(ctx context.Context, email string) ([]models.BookingRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "bookedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdatePaymentStatus sets the payment status on a booking and returns the
// updated record.
func (r *mongoBookingRepo) UpdatePaymentStatus(ctx context.Context, id, status string) (*models.BookingRecord, error) {
	update := bson.M{"$set": bson.M{"paymentStatus": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var record models.BookingRecord
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
