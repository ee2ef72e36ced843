package models

import "time"

// DialogueState is the position of a conversation in the booking flow.
type DialogueState string

const (
	StateStart         DialogueState = "start"
	StateAwaitingInput DialogueState = "awaiting_input"
	StateAwaitingDate  DialogueState = "awaiting_date"
	StateFlightFound   DialogueState = "flight_found"
	StateHotelFound    DialogueState = "hotel_found"
)

// DialogueSession holds conversation context between voice turns.
// Keyed by the caller-supplied session/user identifier, trusted as-is.
type DialogueSession struct {
	SessionID          string        `json:"sessionId"`
	State              DialogueState `json:"state"`
	PendingOrigin      string        `json:"pendingOrigin,omitempty"`
	PendingDestination string        `json:"pendingDestination,omitempty"`
	Flight             *FlightOffer  `json:"flight,omitempty"`
	Hotel              *HotelOffer   `json:"hotel,omitempty"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// NewDialogueSession returns a fresh session in the start state.
func NewDialogueSession(sessionID string) *DialogueSession {
	return &DialogueSession{
		SessionID: sessionID,
		State:     StateStart,
		UpdatedAt: time.Now(),
	}
}

// ClearPending drops turn-scoped scratch data after a flow completes or resets.
func (s *DialogueSession) ClearPending() {
	s.PendingOrigin = ""
	s.PendingDestination = ""
	s.Flight = nil
	s.Hotel = nil
}
