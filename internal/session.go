package internal

import "github.com/google/uuid"

// Session holds the per-run workspace identity: an opaque id generated once,
// the active language, and whether a chat request is currently in flight.
type Session struct {
	ID              string `json:"id"`
	CurrentLanguage string `json:"current_language"`
	Processing      bool   `json:"-"`
}

// NewSession creates a session with a fresh opaque id. The id is stable for
// the lifetime of the process and is sent with every chat request.
func NewSession(language string) *Session {
	if language == "" {
		language = DefaultLanguage()
	}
	return &Session{
		ID:              uuid.NewString(),
		CurrentLanguage: language,
	}
}
