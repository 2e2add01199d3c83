package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Hollywoodr19/programming-bot-2025/internal"
)

func TestTerminalView_RenderMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  internal.ChatMessage
		want string
	}{
		{
			name: "user message",
			msg:  internal.ChatMessage{Content: "hello there", Sender: internal.SenderUser, Kind: internal.KindNormal},
			want: "hello there",
		},
		{
			name: "assistant message",
			msg:  internal.ChatMessage{Content: "try a loop", Sender: internal.SenderAssistant, Kind: internal.KindNormal},
			want: "try a loop",
		},
		{
			name: "error message",
			msg:  internal.ChatMessage{Content: "could not be reached", Sender: internal.SenderAssistant, Kind: internal.KindError},
			want: "could not be reached",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			view := newTerminalView(&out, strings.NewReader(""), "dark")
			tt.msg.Timestamp = time.Now()

			view.RenderMessage(tt.msg)

			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output %q does not contain %q", out.String(), tt.want)
			}
		})
	}
}

func TestTerminalView_EditorState(t *testing.T) {
	view := newTerminalView(&bytes.Buffer{}, strings.NewReader(""), "dark")

	view.SetEditorText("print('hi')")
	view.SetCaret(3, 7)

	if got := view.GetEditorText(); got != "print('hi')" {
		t.Errorf("GetEditorText() = %q", got)
	}
	start, end := view.GetCaret()
	if start != 3 || end != 7 {
		t.Errorf("GetCaret() = (%d, %d), want (3, 7)", start, end)
	}

	// Shrinking the text clamps the caret.
	view.SetEditorText("ab")
	start, end = view.GetCaret()
	if start != 2 || end != 2 {
		t.Errorf("caret after shrink = (%d, %d), want (2, 2)", start, end)
	}
}

func TestTerminalView_OfferGeneratedCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes word", "yes\n", true},
		{"uppercase", "Y\n", true},
		{"no", "n\n", false},
		{"empty line", "\n", false},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			view := newTerminalView(&out, strings.NewReader(tt.input), "dark")

			got := view.OfferGeneratedCode("print('hi')")
			if got != tt.want {
				t.Errorf("OfferGeneratedCode() = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "print('hi')") {
				t.Error("offered code was not shown")
			}
		})
	}
}

func TestStylesForTheme(t *testing.T) {
	// Unknown themes fall back to dark.
	for _, theme := range []string{"dark", "light", "solarized", ""} {
		_ = stylesForTheme(theme)
	}

	light := stylesForTheme("light")
	dark := stylesForTheme("dark")
	if light.user.GetForeground() == dark.user.GetForeground() {
		t.Error("light and dark themes should use different colors")
	}
}
