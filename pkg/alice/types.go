// Package alice holds the Yandex Dialogs webhook protocol types.
package alice

import (
	"encoding/json"

	"alice-ticktick/pkg/nlp"
)

// WebhookRequest is the envelope Alice POSTs to the skill webhook.
type WebhookRequest struct {
	Meta    Meta    `json:"meta"`
	Session Session `json:"session"`
	Request Request `json:"request"`
	Version string  `json:"version"`
}

// Meta carries client metadata.
type Meta struct {
	Locale   string `json:"locale"`
	Timezone string `json:"timezone"`
	ClientID string `json:"client_id"`
}

// Session identifies the dialogue session and the user behind it.
type Session struct {
	New       bool   `json:"new"`
	MessageID int    `json:"message_id"`
	SessionID string `json:"session_id"`
	SkillID   string `json:"skill_id"`
	User      *User  `json:"user,omitempty"`
}

// User is the Yandex account behind the session. AccessToken is the
// OAuth token of the linked TickTick account, present only after the
// user completed account linking.
type User struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token,omitempty"`
}

// Request is the recognized utterance plus its NLU breakdown.
type Request struct {
	Command           string `json:"command"`
	OriginalUtterance string `json:"original_utterance"`
	Type              string `json:"type"`
	NLU               NLU    `json:"nlu"`
}

// NLU is the upstream analysis of the utterance: tokens, recognized
// entities with token spans, and matched intents with their slots.
type NLU struct {
	Tokens   []string          `json:"tokens"`
	Entities []nlp.Entity      `json:"entities"`
	Intents  map[string]Intent `json:"intents"`
}

// Intent is one matched intent with its filled slots.
type Intent struct {
	Slots map[string]Slot `json:"slots"`
}

// Slot is a single slot value. Value is kept raw: slot payloads are
// heterogeneous (strings, numbers, datetime objects) and are decoded
// exactly once at the intent-extraction boundary.
type Slot struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// WebhookResponse is the skill's reply envelope.
type WebhookResponse struct {
	Response Response `json:"response"`
	Version  string   `json:"version"`
}

// Response is the spoken/displayed reply.
type Response struct {
	Text       string `json:"text"`
	TTS        string `json:"tts,omitempty"`
	EndSession bool   `json:"end_session"`
}

// MaxResponseLength is the hard limit Alice imposes on response text.
const MaxResponseLength = 1024

// NewResponse builds a reply envelope for the given request, truncating
// the text to the platform limit.
func NewResponse(req *WebhookRequest, text string) WebhookResponse {
	version := "1.0"
	if req != nil && req.Version != "" {
		version = req.Version
	}
	return WebhookResponse{
		Response: Response{Text: Truncate(text)},
		Version:  version,
	}
}

// Truncate trims text to MaxResponseLength runes, ellipsis included.
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxResponseLength {
		return text
	}
	return string(runes[:MaxResponseLength-1]) + "…"
}
