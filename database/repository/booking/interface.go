package bookingRepo

import (
	"context"

	"maxxtravel/database"
	"maxxtravel/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists confirmed booking records.
type BookingRepository interface {
	Create(ctx context.Context, record models.BookingRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	ListByEmail(ctx context.Context, email string) ([]models.BookingRecord, error)
	UpdatePaymentStatus(ctx context.Context, id, status string) (*models.BookingRecord, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo(dbName string) BookingRepository {
	db := database.MongoClient.Database(dbName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
