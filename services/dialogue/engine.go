package dialogue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"maxxtravel/models"

	"go.uber.org/zap"
)

// Engine is the turn-by-turn dialogue controller. Given the extracted
// entities and the current session state it decides whether to search, ask a
// follow-up, confirm a choice, or trigger payment, and computes the next
// state. The session is always written back before the reply goes out.
type Engine struct {
	Store    SessionStore
	Resolver PlaceResolver
	Flights  FlightSearcher
	Hotels   HotelSearcher
	Payments CheckoutCreator
	Logger   *zap.Logger

	// Now overrides the clock in tests.
	Now func() time.Time
}

func (e *Engine) clock() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Engine) logger() *zap.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return zap.L()
}

// HandleTurn runs one request/response cycle. Business failures (no results,
// unresolved cities, gateway trouble) come back as reply text; the returned
// error is reserved for internal faults such as an unreachable session store.
func (e *Engine) HandleTurn(ctx context.Context, req models.VoiceRequest) (string, error) {
	if strings.TrimSpace(req.Utterance()) == "" {
		return msgDidNotCatch, nil
	}

	sessionID := req.Session()
	if sessionID == "" {
		sessionID = "anonymous"
	}

	session, err := e.Store.Get(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("dialogue: load session %q: %w", sessionID, err)
	}

	var reply string
	switch session.State {
	case models.StateStart:
		session.State = models.StateAwaitingInput
		reply = msgGreeting
	case models.StateAwaitingInput:
		reply = e.handleQuery(ctx, session, req)
	case models.StateAwaitingDate:
		reply = e.handleAwaitingDate(ctx, session, req)
	case models.StateFlightFound:
		reply = e.handleFlightConfirmation(ctx, session, req.Utterance())
	case models.StateHotelFound:
		reply = e.handleHotelConfirmation(ctx, session, req.Utterance())
	default:
		session.State = models.StateAwaitingInput
		reply = msgFallback
	}

	if err := e.Store.Put(ctx, sessionID, session); err != nil {
		// The reply still goes out; the next turn just starts from stale state.
		e.logger().Error("failed to write back dialogue session",
			zap.String("sessionId", sessionID), zap.Error(err))
	}
	return reply, nil
}

func (e *Engine) handleQuery(ctx context.Context, session *models.DialogueSession, req models.VoiceRequest) string {
	intent := Extract(req, e.clock())

	switch {
	case intent.HasFlight() && intent.Date != "":
		return e.searchFlight(ctx, session, intent.Origin, intent.Destination, intent.Date)
	case intent.HasFlight():
		session.PendingOrigin = intent.Origin
		session.PendingDestination = intent.Destination
		session.State = models.StateAwaitingDate
		return msgAskDate
	case intent.HasHotel() && intent.Date != "":
		return e.searchHotel(ctx, session, intent.City, intent.Date)
	case intent.HasHotel():
		return msgAskHotelDate
	default:
		return msgClarify
	}
}

func (e *Engine) handleAwaitingDate(ctx context.Context, session *models.DialogueSession, req models.VoiceRequest) string {
	intent := Extract(req, e.clock())

	switch {
	case intent.HasFlight() && intent.Date != "":
		// Caller restated the whole query; the new one wins.
		return e.searchFlight(ctx, session, intent.Origin, intent.Destination, intent.Date)
	case intent.Date != "" && session.PendingOrigin != "" && session.PendingDestination != "":
		return e.searchFlight(ctx, session, session.PendingOrigin, session.PendingDestination, intent.Date)
	case intent.HasFlight():
		session.PendingOrigin = intent.Origin
		session.PendingDestination = intent.Destination
		return msgAskDate
	default:
		return msgAskDate
	}
}

// searchFlight resolves both places and queries the flight gateway. State only
// advances past resolution once both codes are known; an unresolved place
// leaves the session exactly where it was.
func (e *Engine) searchFlight(ctx context.Context, session *models.DialogueSession, origin, destination, date string) string {
	originCode, ok := e.Resolver.Resolve(ctx, origin)
	if !ok {
		return msgUnresolvedPlace(origin)
	}
	destinationCode, ok := e.Resolver.Resolve(ctx, destination)
	if !ok {
		return msgUnresolvedPlace(destination)
	}

	offers, err := e.Flights.SearchFlights(ctx, originCode, destinationCode, date, 1, 0)
	if err != nil {
		e.logger().Warn("flight search failed",
			zap.String("origin", originCode),
			zap.String("destination", destinationCode),
			zap.String("date", date),
			zap.Error(err))
		session.ClearPending()
		session.State = models.StateAwaitingInput
		return msgSearchTrouble
	}
	if len(offers) == 0 {
		session.ClearPending()
		session.State = models.StateAwaitingInput
		return msgNoFlights
	}

	session.ClearPending()
	session.Flight = &offers[0]
	session.State = models.StateFlightFound
	return msgFlightFound(origin, destination, offers[0])
}

func (e *Engine) searchHotel(ctx context.Context, session *models.DialogueSession, city, date string) string {
	cityCode, ok := e.Resolver.Resolve(ctx, city)
	if !ok {
		return msgUnresolvedPlace(city)
	}

	offers, err := e.Hotels.SearchHotels(ctx, cityCode, date, date, 1)
	if err != nil {
		e.logger().Warn("hotel search failed",
			zap.String("cityCode", cityCode),
			zap.String("date", date),
			zap.Error(err))
		session.ClearPending()
		session.State = models.StateAwaitingInput
		return msgSearchTrouble
	}
	if len(offers) == 0 {
		session.ClearPending()
		session.State = models.StateAwaitingInput
		return msgNoHotels
	}

	session.ClearPending()
	session.Hotel = &offers[0]
	session.State = models.StateHotelFound
	return msgHotelFound(city, offers[0])
}

func (e *Engine) handleFlightConfirmation(ctx context.Context, session *models.DialogueSession, utterance string) string {
	if isAffirmative(utterance) && session.Flight != nil {
		offer := session.Flight
		description := fmt.Sprintf("Flight %s to %s", offer.Origin, offer.Destination)
		url, err := e.Payments.CreateCheckoutSession(ctx, offer.Price.Total, paymentCurrency(offer.Price.Currency), description)
		if err != nil {
			e.logger().Warn("checkout session creation failed",
				zap.String("description", description), zap.Error(err))
			// Stay in flight_found so another "yes" can retry.
			return msgPaymentTrouble
		}
		session.ClearPending()
		session.State = models.StateStart
		return msgPaymentLink(url)
	}

	session.ClearPending()
	session.State = models.StateAwaitingInput
	return msgAnotherFlight
}

func (e *Engine) handleHotelConfirmation(ctx context.Context, session *models.DialogueSession, utterance string) string {
	if isAffirmative(utterance) && session.Hotel != nil {
		offer := session.Hotel
		description := "Hotel " + offer.Name
		url, err := e.Payments.CreateCheckoutSession(ctx, offer.Price.Total, paymentCurrency(offer.Price.Currency), description)
		if err != nil {
			e.logger().Warn("checkout session creation failed",
				zap.String("description", description), zap.Error(err))
			return msgPaymentTrouble
		}
		session.ClearPending()
		session.State = models.StateStart
		return msgPaymentLink(url)
	}

	session.ClearPending()
	session.State = models.StateAwaitingInput
	return msgAnotherHotel
}

func paymentCurrency(currency string) string {
	if currency == "" {
		return "usd"
	}
	return strings.ToLower(currency)
}
