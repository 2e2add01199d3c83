package internal

// View is the narrow rendering surface the workspace drives. Keeping it this
// small lets the text engine and chat orchestrator run against a fake in
// tests, with no terminal attached.
type View interface {
	// RenderMessage displays one chat message (normal or error kind).
	RenderMessage(msg ChatMessage)

	// ShowTypingIndicator and HideTypingIndicator bracket an in-flight
	// request. Hide is called exactly once per shown indicator.
	ShowTypingIndicator()
	HideTypingIndicator()

	// Editor buffer access.
	GetEditorText() string
	SetEditorText(text string)
	GetCaret() (start, end int)
	SetCaret(start, end int)

	// Chat input control.
	ClearInput()
	FocusInput()

	// OfferGeneratedCode presents an insert/decline choice for a generated
	// snippet and reports whether the user accepted it. The snippet is never
	// applied without consent.
	OfferGeneratedCode(code string) bool

	// ShowRunOutput displays simulated execution output.
	ShowRunOutput(output string)

	// ShowWarning displays a lightweight inline warning (validation no-ops).
	ShowWarning(text string)
}
