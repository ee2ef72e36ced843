// Package tasks builds the queued task types the background worker consumes.
package tasks

import (
	"encoding/json"
	"time"

	"maxxtravel/models"

	"github.com/hibiken/asynq"
)

const TypeTripInvite = "trip:invite"

// NewTripInviteTask wraps a trip-invite payload for the queue. Pass a zero
// processAt to run it as soon as a worker is free.
func NewTripInviteTask(payload models.TripInvitePayload, processAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}

	opts := []asynq.Option{asynq.MaxRetry(3)}
	if !processAt.IsZero() {
		opts = append(opts, asynq.ProcessAt(processAt))
	}
	return asynq.NewTask(TypeTripInvite, b), opts, nil
}
