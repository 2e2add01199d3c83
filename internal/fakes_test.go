package internal

import (
	"context"
	"sync"
)

// fakeView records everything the workspace pushes at it.
type fakeView struct {
	mu sync.Mutex

	editorText string
	selStart   int
	selEnd     int

	rendered    []ChatMessage
	typingShown int
	typingHides int
	warnings    []string
	runOutputs  []string

	offeredCode []string
	acceptCode  bool

	clearCalls int
	focusCalls int
}

func (v *fakeView) RenderMessage(msg ChatMessage) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rendered = append(v.rendered, msg)
}

func (v *fakeView) ShowTypingIndicator() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.typingShown++
}

func (v *fakeView) HideTypingIndicator() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.typingHides++
}

func (v *fakeView) GetEditorText() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.editorText
}

func (v *fakeView) SetEditorText(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editorText = text
}

func (v *fakeView) GetCaret() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selStart, v.selEnd
}

func (v *fakeView) SetCaret(start, end int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selStart, v.selEnd = start, end
}

func (v *fakeView) ClearInput() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.clearCalls++
}

func (v *fakeView) FocusInput() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.focusCalls++
}

func (v *fakeView) OfferGeneratedCode(code string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.offeredCode = append(v.offeredCode, code)
	return v.acceptCode
}

func (v *fakeView) ShowRunOutput(output string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.runOutputs = append(v.runOutputs, output)
}

func (v *fakeView) ShowWarning(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.warnings = append(v.warnings, text)
}

func (v *fakeView) renderedMessages() []ChatMessage {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]ChatMessage, len(v.rendered))
	copy(out, v.rendered)
	return out
}

// fakeChatClient serves canned responses; an optional gate blocks the request
// until released, for in-flight tests.
type fakeChatClient struct {
	mu       sync.Mutex
	requests []ChatRequest

	response *ChatResponse
	err      error
	gate     chan struct{}
}

func (c *fakeChatClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	gate := c.gate
	c.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if c.err != nil {
		return nil, c.err
	}
	if c.response != nil {
		return c.response, nil
	}
	return &ChatResponse{Success: true, Response: "ok"}, nil
}

func (c *fakeChatClient) requestCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}
