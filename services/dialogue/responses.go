package dialogue

import (
	"fmt"
	"strings"

	"maxxtravel/models"
)

// Canned reply templates for the voice assistant.

const (
	msgGreeting = "Hi! I'm Maxx, your travel assistant. " +
		"Say things like 'Book flight from Mumbai to Dubai on August 15' or " +
		"'Find hotels in Paris tomorrow'. What would you like to do?"

	msgDidNotCatch = "I didn't catch that. Could you please repeat?"

	msgClarify = "I didn't understand your request fully. " +
		"Try saying 'Book flight from Delhi to Dubai on August 20' or 'Hotel in Paris tomorrow'."

	msgAskDate = "What date would you like to travel? You can say something like 'August 20' or 'tomorrow'."

	msgAskHotelDate = "What date is your stay? Try the full request, like 'Hotel in Paris tomorrow'."

	msgNoFlights = "Sorry, I couldn't find any flights for that route and date."

	msgNoHotels = "Sorry, no hotels found for that city and date."

	msgSearchTrouble = "Sorry, something went wrong while searching. Please try again in a moment."

	msgPaymentTrouble = "Sorry, I couldn't start the payment right now. Say 'yes' to try again."

	msgAnotherFlight = "Okay, let me know if you'd like to search another flight."

	msgAnotherHotel = "Okay, let me know if you'd like to find another hotel."

	msgFallback = "I'm Maxx! Say something like 'Find flights to London next week.'"
)

func msgUnresolvedPlace(place string) string {
	return fmt.Sprintf("Sorry, I couldn't find a match for '%s'. Could you try a different city name?", titleCase(place))
}

func msgFlightFound(origin, destination string, offer models.FlightOffer) string {
	return fmt.Sprintf(
		"Found a flight from %s to %s. Departs at %s, airline %s, %s %.2f. Want to book it?",
		titleCase(origin), titleCase(destination),
		offer.DepartureAt, offer.CarrierCode,
		offer.Price.Currency, offer.Price.Total,
	)
}

func msgHotelFound(city string, offer models.HotelOffer) string {
	return fmt.Sprintf(
		"I found a hotel in %s on %s: %s, %s %.2f per night. Do you want to book it?",
		titleCase(city), offer.CheckIn,
		offer.Name, offer.Price.Currency, offer.Price.Total,
	)
}

func msgPaymentLink(url string) string {
	return "Awesome! Please complete your payment here: " + url
}

// affirmativeTokens is the fixed marker set for confirmation detection.
// Crude substring matching; anything that doesn't hit a token is negative.
var affirmativeTokens = []string{"yes", "yeah", "yep", "sure", "confirm"}

func isAffirmative(text string) bool {
	lower := strings.ToLower(text)
	for _, token := range affirmativeTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
