package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Hollywoodr19/programming-bot-2025/internal"
	"github.com/charmbracelet/lipgloss"
)

// viewStyles is one theme's set of lipgloss styles.
type viewStyles struct {
	user      lipgloss.Style
	assistant lipgloss.Style
	errorMsg  lipgloss.Style
	typing    lipgloss.Style
	output    lipgloss.Style
	warning   lipgloss.Style
	code      lipgloss.Style
}

func darkStyles() viewStyles {
	return viewStyles{
		user:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		assistant: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		errorMsg:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		typing:    lipgloss.NewStyle().Faint(true).Italic(true),
		output:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")).Padding(0, 1),
		warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		code:      lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	}
}

func lightStyles() viewStyles {
	return viewStyles{
		user:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("90")),
		assistant: lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
		errorMsg:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("124")),
		typing:    lipgloss.NewStyle().Faint(true).Italic(true),
		output:    lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("254")).Padding(0, 1),
		warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		code:      lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
	}
}

func stylesForTheme(theme string) viewStyles {
	if theme == "light" {
		return lightStyles()
	}
	return darkStyles()
}

// terminalView renders the workspace onto a terminal. It also carries the
// editor buffer and caret, since a line-oriented terminal has no editor
// widget of its own.
type terminalView struct {
	out    io.Writer
	in     *bufio.Reader
	styles viewStyles

	editorText string
	selStart   int
	selEnd     int
}

func newTerminalView(out io.Writer, in io.Reader, theme string) *terminalView {
	return &terminalView{
		out:    out,
		in:     bufio.NewReader(in),
		styles: stylesForTheme(theme),
	}
}

// SetTheme switches the style set.
func (v *terminalView) SetTheme(theme string) {
	v.styles = stylesForTheme(theme)
}

func (v *terminalView) RenderMessage(msg internal.ChatMessage) {
	switch {
	case msg.Kind == internal.KindError:
		fmt.Fprintln(v.out, v.styles.errorMsg.Render("! "+msg.Content))
	case msg.Sender == internal.SenderUser:
		fmt.Fprintln(v.out, v.styles.user.Render("You: ")+msg.Content)
	default:
		fmt.Fprintln(v.out, v.styles.assistant.Render("Assistant: ")+msg.Content)
	}
}

func (v *terminalView) ShowTypingIndicator() {
	fmt.Fprintln(v.out, v.styles.typing.Render("assistant is typing..."))
}

func (v *terminalView) HideTypingIndicator() {
	// Line-oriented output cannot erase the indicator; the next message
	// simply follows it.
}

func (v *terminalView) GetEditorText() string {
	return v.editorText
}

func (v *terminalView) SetEditorText(text string) {
	v.editorText = text
	if v.selStart > len(text) {
		v.selStart = len(text)
	}
	if v.selEnd > len(text) {
		v.selEnd = len(text)
	}
}

func (v *terminalView) GetCaret() (int, int) {
	return v.selStart, v.selEnd
}

func (v *terminalView) SetCaret(start, end int) {
	v.selStart = start
	v.selEnd = end
}

func (v *terminalView) ClearInput() {
	// Input lines are consumed as they are read; nothing to clear.
}

func (v *terminalView) FocusInput() {
	// The terminal prompt is always focused.
}

// OfferGeneratedCode shows the snippet and asks for consent before the
// caller replaces the buffer.
func (v *terminalView) OfferGeneratedCode(code string) bool {
	fmt.Fprintln(v.out, v.styles.assistant.Render("The assistant generated code:"))
	fmt.Fprintln(v.out, v.styles.code.Render(code))
	fmt.Fprint(v.out, "Insert into the editor? [y/N] ")

	line, err := v.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (v *terminalView) ShowRunOutput(output string) {
	fmt.Fprintln(v.out, v.styles.output.Render(strings.TrimRight(output, "\n")))
}

func (v *terminalView) ShowWarning(text string) {
	fmt.Fprintln(v.out, v.styles.warning.Render(text))
}
