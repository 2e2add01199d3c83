package internal

import (
	"context"
	"strings"
	"sync"
	"time"
)

// ChatSender is the slice of the assistant client the orchestrator needs.
type ChatSender interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// Orchestrator runs the single-flight chat request cycle: optimistic render
// of the user's message, typing indicator, response or error rendering, and
// history persistence. A send attempted while a request is outstanding is
// dropped, not queued.
type Orchestrator struct {
	session *Session
	history *ChatHistory
	store   *Store
	client  ChatSender
	view    View

	// onInsertCode is invoked when the user accepts a generated snippet, so
	// the owner can mark the buffer dirty.
	onInsertCode func(code string)

	mu sync.Mutex
}

// NewOrchestrator wires an orchestrator over its collaborators. onInsertCode
// may be nil.
func NewOrchestrator(session *Session, history *ChatHistory, store *Store, client ChatSender, view View, onInsertCode func(string)) *Orchestrator {
	return &Orchestrator{
		session:      session,
		history:      history,
		store:        store,
		client:       client,
		view:         view,
		onInsertCode: onInsertCode,
	}
}

// Processing reports whether a request is currently in flight.
func (o *Orchestrator) Processing() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.session.Processing
}

// Send runs one full chat exchange. It returns false without side effects
// when the trimmed message is empty or another request is already in flight.
// The user's message is rendered optimistically and never rolled back; a
// failed request becomes an error-kind message instead.
func (o *Orchestrator) Send(ctx context.Context, message string) bool {
	message = strings.TrimSpace(message)
	if message == "" {
		return false
	}

	o.mu.Lock()
	if o.session.Processing {
		o.mu.Unlock()
		LogDebug("Dropping chat send while a request is in flight")
		return false
	}
	o.session.Processing = true
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.session.Processing = false
		o.mu.Unlock()
		o.view.FocusInput()
	}()

	o.view.ClearInput()
	o.appendAndRender(ChatMessage{
		Content:   message,
		Sender:    SenderUser,
		Timestamp: time.Now(),
		Kind:      KindNormal,
	})

	o.view.ShowTypingIndicator()
	resp, err := o.client.Chat(ctx, ChatRequest{
		Message:   message,
		Language:  o.session.CurrentLanguage,
		Code:      o.view.GetEditorText(),
		SessionID: o.session.ID,
	})
	o.view.HideTypingIndicator()

	switch {
	case err != nil:
		LogWarn("Chat request failed: %v", err)
		o.appendAndRender(ChatMessage{
			Content:   "The assistant could not be reached. Please try again.",
			Sender:    SenderAssistant,
			Timestamp: time.Now(),
			Kind:      KindError,
		})
	case !resp.Success:
		reason := resp.Error
		if reason == "" {
			reason = "the assistant reported an unknown error"
		}
		o.appendAndRender(ChatMessage{
			Content:   "Request failed: " + reason,
			Sender:    SenderAssistant,
			Timestamp: time.Now(),
			Kind:      KindError,
		})
	default:
		o.appendAndRender(ChatMessage{
			Content:   resp.Response,
			Sender:    SenderAssistant,
			Timestamp: time.Now(),
			Kind:      KindNormal,
		})
		if resp.Code != "" && o.view.OfferGeneratedCode(resp.Code) {
			o.view.SetEditorText(resp.Code)
			if o.onInsertCode != nil {
				o.onInsertCode(resp.Code)
			}
		}
	}

	if err := o.store.SaveHistory(o.history); err != nil {
		LogWarn("Failed to persist chat history: %v", err)
	}

	return true
}

// RestoreRecent re-renders the tail of the stored conversation into the view.
func (o *Orchestrator) RestoreRecent() {
	for _, msg := range o.history.Recent() {
		o.view.RenderMessage(msg)
	}
}

func (o *Orchestrator) appendAndRender(msg ChatMessage) {
	o.history.Append(msg)
	o.view.RenderMessage(msg)
}
