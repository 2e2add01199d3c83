package internal

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestOrchestrator(t *testing.T, client ChatSender) (*Orchestrator, *fakeView, *Store) {
	t.Helper()
	store := openTestStore(t)
	view := &fakeView{}
	session := NewSession("python")
	orch := NewOrchestrator(session, NewChatHistory(), store, client, view, nil)
	return orch, view, store
}

func TestOrchestrator_SendSuccess(t *testing.T) {
	client := &fakeChatClient{response: &ChatResponse{Success: true, Response: "here you go"}}
	orch, view, store := newTestOrchestrator(t, client)
	view.editorText = "print('ctx')"

	if !orch.Send(context.Background(), "  help me  ") {
		t.Fatal("Send() = false, want true")
	}

	msgs := view.renderedMessages()
	if len(msgs) != 2 {
		t.Fatalf("rendered %d messages, want 2", len(msgs))
	}
	if msgs[0].Sender != SenderUser || msgs[0].Content != "help me" {
		t.Errorf("first rendered = %+v, want trimmed user message", msgs[0])
	}
	if msgs[1].Sender != SenderAssistant || msgs[1].Content != "here you go" {
		t.Errorf("second rendered = %+v", msgs[1])
	}

	if view.typingShown != 1 || view.typingHides != 1 {
		t.Errorf("typing indicator shown/hidden = %d/%d, want 1/1", view.typingShown, view.typingHides)
	}
	if view.clearCalls != 1 {
		t.Errorf("input cleared %d times, want 1", view.clearCalls)
	}
	if view.focusCalls != 1 {
		t.Errorf("input focused %d times, want 1", view.focusCalls)
	}
	if orch.Processing() {
		t.Error("Processing() = true after completed exchange")
	}

	// The editor text rode along as request context.
	if client.requests[0].Code != "print('ctx')" {
		t.Errorf("request code = %q", client.requests[0].Code)
	}
	if client.requests[0].Language != "python" {
		t.Errorf("request language = %q", client.requests[0].Language)
	}

	// Completed exchange is persisted.
	if restored := store.LoadHistory(); restored.Len() != 2 {
		t.Errorf("persisted history Len() = %d, want 2", restored.Len())
	}
}

func TestOrchestrator_EmptyMessageRejected(t *testing.T) {
	client := &fakeChatClient{}
	orch, view, _ := newTestOrchestrator(t, client)

	if orch.Send(context.Background(), "   ") {
		t.Error("Send() with blank message = true, want false")
	}
	if client.requestCount() != 0 {
		t.Errorf("blank message issued %d requests, want 0", client.requestCount())
	}
	if len(view.renderedMessages()) != 0 {
		t.Error("blank message rendered output")
	}
}

func TestOrchestrator_SingleFlight(t *testing.T) {
	gate := make(chan struct{})
	client := &fakeChatClient{
		gate:     gate,
		response: &ChatResponse{Success: true, Response: "done"},
	}
	orch, view, _ := newTestOrchestrator(t, client)

	firstDone := make(chan bool)
	go func() {
		firstDone <- orch.Send(context.Background(), "a")
	}()

	// Wait until the first request is in flight.
	deadline := time.Now().Add(2 * time.Second)
	for client.requestCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("first request never started")
		}
		time.Sleep(time.Millisecond)
	}

	// The second send is dropped, not queued.
	if orch.Send(context.Background(), "b") {
		t.Error("second Send() while in flight = true, want false")
	}

	msgs := view.renderedMessages()
	if len(msgs) != 1 || msgs[0].Content != "a" {
		t.Fatalf("history while in flight = %+v, want only message a", msgs)
	}

	close(gate)
	if !<-firstDone {
		t.Error("first Send() = false, want true")
	}

	if client.requestCount() != 1 {
		t.Errorf("issued %d requests, want exactly 1", client.requestCount())
	}
}

func TestOrchestrator_RequestFailure(t *testing.T) {
	client := &fakeChatClient{err: errors.New("connection refused")}
	orch, view, _ := newTestOrchestrator(t, client)

	if !orch.Send(context.Background(), "hello") {
		t.Fatal("Send() = false, want true (the exchange ran)")
	}

	msgs := view.renderedMessages()
	if len(msgs) != 2 {
		t.Fatalf("rendered %d messages, want 2", len(msgs))
	}
	// The optimistic user message is not rolled back.
	if msgs[0].Sender != SenderUser {
		t.Errorf("first message sender = %q, want user", msgs[0].Sender)
	}
	if msgs[1].Kind != KindError {
		t.Errorf("failure message kind = %q, want error", msgs[1].Kind)
	}
	if view.typingHides != 1 {
		t.Errorf("typing indicator hidden %d times, want exactly 1", view.typingHides)
	}
	if orch.Processing() {
		t.Error("Processing() = true after failure")
	}
}

func TestOrchestrator_ServiceReportedError(t *testing.T) {
	client := &fakeChatClient{response: &ChatResponse{Success: false, Error: "model overloaded"}}
	orch, view, _ := newTestOrchestrator(t, client)

	orch.Send(context.Background(), "hello")

	msgs := view.renderedMessages()
	if len(msgs) != 2 || msgs[1].Kind != KindError {
		t.Fatalf("rendered = %+v, want error message", msgs)
	}
}

func TestOrchestrator_GeneratedCodeOffer(t *testing.T) {
	tests := []struct {
		name       string
		accept     bool
		wantEditor string
	}{
		{"accepted", true, "print('generated')"},
		{"declined", false, "original"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeChatClient{response: &ChatResponse{
				Success:  true,
				Response: "try this",
				Code:     "print('generated')",
			}}
			inserted := ""
			store := openTestStore(t)
			view := &fakeView{editorText: "original", acceptCode: tt.accept}
			orch := NewOrchestrator(NewSession("python"), NewChatHistory(), store, client, view, func(code string) {
				inserted = code
			})

			orch.Send(context.Background(), "write code")

			if len(view.offeredCode) != 1 {
				t.Fatalf("code offered %d times, want 1", len(view.offeredCode))
			}
			if view.GetEditorText() != tt.wantEditor {
				t.Errorf("editor text = %q, want %q", view.GetEditorText(), tt.wantEditor)
			}
			if tt.accept && inserted != "print('generated')" {
				t.Errorf("insert callback got %q", inserted)
			}
			if !tt.accept && inserted != "" {
				t.Errorf("insert callback fired on decline with %q", inserted)
			}
		})
	}
}

func TestOrchestrator_RestoreRecent(t *testing.T) {
	store := openTestStore(t)
	history := NewChatHistory()
	for i := 0; i < 25; i++ {
		history.Append(ChatMessage{Content: "m", Sender: SenderUser, Kind: KindNormal})
	}
	view := &fakeView{}
	orch := NewOrchestrator(NewSession("python"), history, store, &fakeChatClient{}, view, nil)

	orch.RestoreRecent()

	if got := len(view.renderedMessages()); got != 10 {
		t.Errorf("restored %d messages, want 10", got)
	}
}
