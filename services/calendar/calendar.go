// Package calendar sends Google Calendar invites for confirmed trips.
package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	googlecalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const googleTokenURL = "https://oauth2.googleapis.com/token"

// Service wraps the Google Calendar API behind refresh-token credentials.
type Service struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// IsConfigured reports whether calendar credentials were supplied.
func (s *Service) IsConfigured() bool {
	return s.ClientID != "" && s.ClientSecret != "" && s.RefreshToken != ""
}

func (s *Service) calendarService(ctx context.Context) (*googlecalendar.Service, error) {
	conf := &oauth2.Config{
		ClientID:     s.ClientID,
		ClientSecret: s.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: googleTokenURL},
	}
	source := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: s.RefreshToken})
	return googlecalendar.NewService(ctx, option.WithTokenSource(source))
}

// CreateEvent inserts an invite on the primary calendar. Times are UTC.
func (s *Service) CreateEvent(ctx context.Context, summary, description string, start, end time.Time, attendeeEmails []string) (*googlecalendar.Event, error) {
	if !s.IsConfigured() {
		return nil, fmt.Errorf("calendar: credentials not configured")
	}

	svc, err := s.calendarService(ctx)
	if err != nil {
		return nil, fmt.Errorf("calendar: build service: %w", err)
	}

	attendees := make([]*googlecalendar.EventAttendee, 0, len(attendeeEmails))
	for _, email := range attendeeEmails {
		attendees = append(attendees, &googlecalendar.EventAttendee{Email: email})
	}

	event := &googlecalendar.Event{
		Summary:     summary,
		Description: description,
		Start: &googlecalendar.EventDateTime{
			DateTime: start.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &googlecalendar.EventDateTime{
			DateTime: end.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		Attendees: attendees,
	}

	created, err := svc.Events.Insert("primary", event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: insert event: %w", err)
	}
	return created, nil
}
