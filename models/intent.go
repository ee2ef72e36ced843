package models

// ExtractedIntent holds the entities pulled out of a single utterance.
// Empty fields mean the entity was absent; extraction never fails hard.
// Origin/Destination (flight intent) and City (hotel intent) are mutually
// exclusive outcomes of extraction.
type ExtractedIntent struct {
	Origin      string
	Destination string
	City        string
	Date        string // YYYY-MM-DD
}

// HasFlight reports whether a full flight query was extracted.
func (i ExtractedIntent) HasFlight() bool {
	return i.Origin != "" && i.Destination != ""
}

// HasHotel reports whether a hotel query was extracted.
func (i ExtractedIntent) HasHotel() bool {
	return i.City != ""
}
