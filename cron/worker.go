// Package cron runs the background task worker for queued post-booking work.
package cron

import (
	"context"
	"encoding/json"
	"time"

	"maxxtravel/config"
	"maxxtravel/models"
	"maxxtravel/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	googlecalendar "google.golang.org/api/calendar/v3"
)

// InviteSender is the slice of the calendar service the worker uses.
type InviteSender interface {
	IsConfigured() bool
	CreateEvent(ctx context.Context, summary, description string, start, end time.Time, attendeeEmails []string) (*googlecalendar.Event, error)
}

// InitTripInviteWorker starts the asynq worker consuming the trip-invite
// queue in the background.
func InitTripInviteWorker(invites InviteSender, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeTripInvite, handleTripInviteTask(invites, logger))

	go func() {
		logger.Info("starting trip-invite worker")
		const maxAttempts = 5
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("trip-invite worker failed to start",
				zap.Int("attempt", attempt), zap.Error(err))
			if attempt == maxAttempts {
				logger.Fatal("trip-invite worker exhausted start attempts")
			}
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()
}

// handleTripInviteTask sends the calendar invite for a confirmed booking.
// Malformed payloads and unusable dates are dropped rather than retried;
// calendar API failures are returned so asynq retries them.
func handleTripInviteTask(invites InviteSender, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.TripInvitePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid trip-invite payload", zap.Error(err))
			return nil
		}

		if !invites.IsConfigured() || p.Email == "" {
			return nil
		}
		departure, err := time.Parse("2006-01-02", p.DepartureDate)
		if err != nil {
			logger.Warn("trip invite dropped, unusable departure date",
				zap.String("bookingId", p.BookingID), zap.String("date", p.DepartureDate))
			return nil
		}

		summary := "Trip: " + p.Origin + " to " + p.Destination
		_, err = invites.CreateEvent(ctx, summary,
			"Booked via Maxx travel assistant",
			departure, departure.Add(2*time.Hour),
			[]string{p.Email})
		if err != nil {
			logger.Warn("calendar invite failed",
				zap.String("bookingId", p.BookingID), zap.Error(err))
			return err
		}

		logger.Info("trip invite sent",
			zap.String("bookingId", p.BookingID), zap.String("email", p.Email))
		return nil
	}
}
