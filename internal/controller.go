package internal

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Controller owns one programming workspace: the active code buffer bound to
// the view, the persisted per-language buffers and preferences, the chat
// orchestrator, and the simulated runner. It is explicitly constructed and
// torn down with Init/Dispose so it can run against any View implementation.
type Controller struct {
	session *Session
	store   *Store
	view    View
	history *ChatHistory
	runner  *Runner
	orch    *Orchestrator
	sched   *AutosaveScheduler

	mu      sync.Mutex
	changed bool
}

// ControllerOptions tune timing for tests; zero values mean production
// defaults. A negative RunDelay disables the artificial run pause.
type ControllerOptions struct {
	DebounceInterval time.Duration
	PeriodicInterval time.Duration
	RunDelay         time.Duration
}

// NewController wires a controller over its injected dependencies. Init must
// be called before use.
func NewController(store *Store, view View, client ChatSender, opts ControllerOptions) *Controller {
	c := &Controller{
		store: store,
		view:  view,
	}

	c.runner = NewRunner(opts.RunDelay)

	c.session = NewSession(store.LoadLanguage())
	c.history = store.LoadHistory()
	c.orch = NewOrchestrator(c.session, c.history, store, client, view, func(string) {
		c.NoteEdit()
	})
	c.sched = NewAutosaveScheduler(opts.DebounceInterval, opts.PeriodicInterval, c.SaveActiveBuffer)
	return c
}

// Init restores persisted state into the view and starts autosaving: the
// active buffer (or its default snippet), and the tail of the stored
// conversation.
func (c *Controller) Init() {
	c.view.SetEditorText(c.store.LoadBuffer(c.session.CurrentLanguage))
	c.orch.RestoreRecent()
	c.sched.Start()
	LogInfo("Workspace session %s started (language: %s)", c.session.ID, c.session.CurrentLanguage)
}

// Dispose stops the autosave timers and synchronously flushes the buffer and
// history, the best-effort "before unload" path.
func (c *Controller) Dispose() {
	c.sched.Stop()
	c.mu.Lock()
	c.changed = true // force a final write
	c.mu.Unlock()
	c.SaveActiveBuffer()
	if err := c.store.SaveHistory(c.history); err != nil {
		LogWarn("Failed to flush chat history: %v", err)
	}
}

// Session returns the controller's session.
func (c *Controller) Session() *Session {
	return c.session
}

// History returns the conversation history.
func (c *Controller) History() *ChatHistory {
	return c.history
}

// NoteEdit marks the active buffer dirty and restarts the idle-save
// countdown. Call it on every keystroke-level change.
func (c *Controller) NoteEdit() {
	c.mu.Lock()
	c.changed = true
	c.mu.Unlock()
	c.sched.NoteEdit()
}

// SaveActiveBuffer persists the active buffer if it changed since the last
// save. Both autosave timers share this as their idempotent body.
func (c *Controller) SaveActiveBuffer() {
	c.mu.Lock()
	if !c.changed {
		c.mu.Unlock()
		return
	}
	c.changed = false
	c.mu.Unlock()

	if err := c.store.SaveBuffer(c.session.CurrentLanguage, c.view.GetEditorText()); err != nil {
		LogWarn("Autosave failed for %s: %v", c.session.CurrentLanguage, err)
		c.mu.Lock()
		c.changed = true
		c.mu.Unlock()
	}
}

// SwitchLanguage saves the current buffer, activates language, persists the
// preference immediately, and binds that language's buffer (lazily its
// default snippet) to the view.
func (c *Controller) SwitchLanguage(language string) {
	if language == c.session.CurrentLanguage {
		return
	}

	c.mu.Lock()
	c.changed = true
	c.mu.Unlock()
	c.SaveActiveBuffer()

	c.session.CurrentLanguage = language
	if err := c.store.SaveLanguage(language); err != nil {
		LogWarn("Failed to persist language preference: %v", err)
	}

	c.view.SetEditorText(c.store.LoadBuffer(language))
	c.mu.Lock()
	c.changed = false
	c.mu.Unlock()
}

// SetTheme persists the theme preference immediately.
func (c *Controller) SetTheme(theme string) {
	if err := c.store.SaveTheme(theme); err != nil {
		LogWarn("Failed to persist theme: %v", err)
	}
}

// Send runs one chat exchange through the orchestrator; the active buffer
// rides along as context. Returns false when the message was dropped (empty,
// or a request is already in flight).
func (c *Controller) Send(ctx context.Context, message string) bool {
	return c.orch.Send(ctx, message)
}

// RunCode dispatches the active buffer through the simulated runner and
// renders the pseudo-output. An empty buffer is a warning, not an error.
func (c *Controller) RunCode(ctx context.Context) {
	output, err := c.runner.Run(ctx, c.session.CurrentLanguage, c.view.GetEditorText())
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			c.view.ShowWarning("Nothing to run - the editor is empty.")
			return
		}
		LogWarn("Simulated run failed: %v", err)
		return
	}
	c.view.ShowRunOutput(output)
}

// edit applies a pure text operation to the view's buffer and caret and
// marks the buffer dirty.
func (c *Controller) edit(op func(EditState) EditState) {
	start, end := c.view.GetCaret()
	state := op(EditState{Text: c.view.GetEditorText(), SelStart: start, SelEnd: end})
	c.view.SetEditorText(state.Text)
	c.view.SetCaret(state.SelStart, state.SelEnd)
	c.NoteEdit()
}

// Indent inserts or block-applies one indentation unit.
func (c *Controller) Indent() {
	c.edit(InsertIndentation)
}

// Outdent strips one indentation unit from the selected lines.
func (c *Controller) Outdent() {
	c.edit(DecreaseIndentation)
}

// ToggleComment toggles the active language's line comment on the caret's
// line.
func (c *Controller) ToggleComment() {
	c.edit(func(s EditState) EditState {
		return ToggleComment(s, c.session.CurrentLanguage)
	})
}

// DuplicateLine copies the caret's line below itself.
func (c *Controller) DuplicateLine() {
	c.edit(DuplicateLine)
}

// TypeCharacter inserts ch, auto-closing brackets and quotes.
func (c *Controller) TypeCharacter(ch rune) {
	c.edit(func(s EditState) EditState {
		return AutoCloseBracket(s, ch)
	})
}

// InsertNewline breaks the line, carrying the current indentation forward.
func (c *Controller) InsertNewline() {
	c.edit(InsertNewline)
}
