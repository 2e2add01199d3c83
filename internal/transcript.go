package internal

import "time"

// Transcript is the exportable form of a workspace conversation.
type Transcript struct {
	SessionID  string        `json:"session_id" yaml:"session_id"`
	Language   string        `json:"language" yaml:"language"`
	ExportedAt time.Time     `json:"exported_at" yaml:"exported_at"`
	Messages   []ChatMessage `json:"messages" yaml:"messages"`
}

// NewTranscript snapshots the session's conversation for export.
func NewTranscript(session *Session, history *ChatHistory) *Transcript {
	return &Transcript{
		SessionID:  session.ID,
		Language:   session.CurrentLanguage,
		ExportedAt: time.Now(),
		Messages:   history.Messages(),
	}
}
