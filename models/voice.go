package models

// VoiceMetadata carries entities pre-extracted by an upstream voice platform.
// When present these are trusted over in-process pattern extraction.
type VoiceMetadata struct {
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
	City        string `json:"city,omitempty"`
	Date        string `json:"date,omitempty"`
	Adults      int    `json:"adults,omitempty"`
}

// VoiceRequest is one inbound dialogue turn.
type VoiceRequest struct {
	Text      string         `json:"text"`
	VoiceText string         `json:"voice_text"`
	SessionID string         `json:"session_id"`
	UserID    string         `json:"user_id"`
	Metadata  *VoiceMetadata `json:"metadata,omitempty"`
}

// Utterance returns the spoken text, whichever field carried it.
func (r VoiceRequest) Utterance() string {
	if r.Text != "" {
		return r.Text
	}
	return r.VoiceText
}

// Session returns the conversation key, whichever field carried it.
func (r VoiceRequest) Session() string {
	if r.SessionID != "" {
		return r.SessionID
	}
	return r.UserID
}

// VoiceResponse is the reply for one dialogue turn.
type VoiceResponse struct {
	ResponseText string `json:"response_text"`
}
