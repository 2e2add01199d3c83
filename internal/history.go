package internal

import (
	"encoding/json"
	"time"
)

// Message senders.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Message kinds.
const (
	KindNormal = "normal"
	KindError  = "error"
)

// maxHistoryMessages bounds the stored conversation; oldest entries are
// evicted first.
const maxHistoryMessages = 100

// restoredMessages is how many trailing messages are re-rendered when a
// session is restored.
const restoredMessages = 10

// ChatMessage is one immutable entry in the conversation history.
type ChatMessage struct {
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	Kind      string    `json:"kind"`
}

// ChatHistory is an insertion-ordered, bounded sequence of messages.
type ChatHistory struct {
	messages []ChatMessage
}

// NewChatHistory returns an empty history.
func NewChatHistory() *ChatHistory {
	return &ChatHistory{}
}

// Append adds msg and trims to the most recent maxHistoryMessages entries.
func (h *ChatHistory) Append(msg ChatMessage) {
	h.messages = append(h.messages, msg)
	if len(h.messages) > maxHistoryMessages {
		h.messages = h.messages[len(h.messages)-maxHistoryMessages:]
	}
}

// Len returns the number of stored messages.
func (h *ChatHistory) Len() int {
	return len(h.messages)
}

// Messages returns a copy of all stored messages in order.
func (h *ChatHistory) Messages() []ChatMessage {
	out := make([]ChatMessage, len(h.messages))
	copy(out, h.messages)
	return out
}

// Recent returns the last restoredMessages entries, the slice re-rendered on
// session restore.
func (h *ChatHistory) Recent() []ChatMessage {
	start := len(h.messages) - restoredMessages
	if start < 0 {
		start = 0
	}
	out := make([]ChatMessage, len(h.messages)-start)
	copy(out, h.messages[start:])
	return out
}

// MarshalJSON encodes the history as a flat message array, the stored form.
func (h *ChatHistory) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.messages)
}

// UnmarshalJSON decodes the stored message array, trimming to the bound in
// case an oversized history was persisted by an older build.
func (h *ChatHistory) UnmarshalJSON(data []byte) error {
	var msgs []ChatMessage
	if err := json.Unmarshal(data, &msgs); err != nil {
		return err
	}
	if len(msgs) > maxHistoryMessages {
		msgs = msgs[len(msgs)-maxHistoryMessages:]
	}
	h.messages = msgs
	return nil
}
