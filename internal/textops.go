package internal

import "strings"

// indentUnit is the soft-tab used everywhere. A literal run of spaces keeps
// the rendered width identical across terminals and editors.
const indentUnit = "    "

// EditState is the buffer-and-caret triple every text operation consumes and
// produces. SelStart == SelEnd means a plain caret with no selection.
type EditState struct {
	Text     string
	SelStart int
	SelEnd   int
}

// clamp normalizes the caret range into [0, len(Text)] and orders the ends.
func (s EditState) clamp() EditState {
	n := len(s.Text)
	if s.SelStart < 0 {
		s.SelStart = 0
	}
	if s.SelStart > n {
		s.SelStart = n
	}
	if s.SelEnd < 0 {
		s.SelEnd = 0
	}
	if s.SelEnd > n {
		s.SelEnd = n
	}
	if s.SelEnd < s.SelStart {
		s.SelStart, s.SelEnd = s.SelEnd, s.SelStart
	}
	return s
}

// lineBounds locates the line containing pos by scanning back to the previous
// newline (or buffer start) and forward to the next newline (or buffer end).
// The returned range excludes the line terminators.
func lineBounds(text string, pos int) (start, end int) {
	start = strings.LastIndexByte(text[:pos], '\n') + 1
	end = strings.IndexByte(text[pos:], '\n')
	if end == -1 {
		end = len(text)
	} else {
		end += pos
	}
	return start, end
}

// leadingWhitespace returns the run of spaces and tabs at the start of line.
func leadingWhitespace(line string) string {
	for i, ch := range line {
		if ch != ' ' && ch != '\t' {
			return line[:i]
		}
	}
	return line
}

// InsertIndentation inserts one indent unit at the caret, or prefixes every
// line of the selection with it. With a selection the result selects the
// whole rewritten span.
func InsertIndentation(s EditState) EditState {
	s = s.clamp()

	if s.SelStart == s.SelEnd {
		text := s.Text[:s.SelStart] + indentUnit + s.Text[s.SelStart:]
		caret := s.SelStart + len(indentUnit)
		return EditState{Text: text, SelStart: caret, SelEnd: caret}
	}

	selected := s.Text[s.SelStart:s.SelEnd]
	lines := strings.Split(selected, "\n")
	for i, line := range lines {
		lines[i] = indentUnit + line
	}
	rewritten := strings.Join(lines, "\n")

	text := s.Text[:s.SelStart] + rewritten + s.Text[s.SelEnd:]
	return EditState{Text: text, SelStart: s.SelStart, SelEnd: s.SelStart + len(rewritten)}
}

// DecreaseIndentation strips up to one indent unit of leading spaces from
// every selected line (or the caret's line). Lines without leading spaces are
// untouched.
func DecreaseIndentation(s EditState) EditState {
	s = s.clamp()

	start, _ := lineBounds(s.Text, s.SelStart)
	_, end := lineBounds(s.Text, s.SelEnd)

	span := s.Text[start:end]
	lines := strings.Split(span, "\n")
	for i, line := range lines {
		strip := 0
		for strip < len(indentUnit) && strip < len(line) && line[strip] == ' ' {
			strip++
		}
		lines[i] = line[strip:]
	}
	rewritten := strings.Join(lines, "\n")

	text := s.Text[:start] + rewritten + s.Text[end:]
	return EditState{Text: text, SelStart: start, SelEnd: start + len(rewritten)}
}

// ToggleComment toggles the language's single-line comment token on the line
// containing the caret. Removing strips exactly one token plus at most one
// following space; inserting places the token after the leading whitespace.
func ToggleComment(s EditState, language string) EditState {
	s = s.clamp()
	token := LookupLanguage(language).CommentToken

	start, end := lineBounds(s.Text, s.SelStart)
	line := s.Text[start:end]
	indent := leadingWhitespace(line)
	body := line[len(indent):]

	var newLine string
	if strings.HasPrefix(body, token) {
		rest := body[len(token):]
		rest = strings.TrimPrefix(rest, " ")
		newLine = indent + rest
	} else {
		newLine = indent + token + " " + body
	}

	text := s.Text[:start] + newLine + s.Text[end:]
	caret := s.SelStart + len(newLine) - len(line)
	if caret < start {
		caret = start
	}
	return EditState{Text: text, SelStart: caret, SelEnd: caret}
}

// DuplicateLine copies the caret's line directly below itself and moves the
// caret to the end of the duplicate.
func DuplicateLine(s EditState) EditState {
	s = s.clamp()

	start, end := lineBounds(s.Text, s.SelStart)
	line := s.Text[start:end]

	text := s.Text[:end] + "\n" + line + s.Text[end:]
	caret := end + 1 + len(line)
	return EditState{Text: text, SelStart: caret, SelEnd: caret}
}

// ClosingBracket returns the closing counterpart to auto-insert after a typed
// opener or quote, and whether the character participates in auto-closing.
func ClosingBracket(ch rune) (rune, bool) {
	switch ch {
	case '(':
		return ')', true
	case '[':
		return ']', true
	case '{':
		return '}', true
	case '"':
		return '"', true
	case '\'':
		return '\'', true
	}
	return 0, false
}

// AutoCloseBracket inserts ch plus its closing counterpart at the caret and
// leaves the caret between the pair. Characters without a counterpart are
// inserted as-is.
func AutoCloseBracket(s EditState, ch rune) EditState {
	s = s.clamp()

	closer, ok := ClosingBracket(ch)
	insert := string(ch)
	if ok {
		insert += string(closer)
	}

	text := s.Text[:s.SelStart] + insert + s.Text[s.SelEnd:]
	caret := s.SelStart + len(string(ch))
	return EditState{Text: text, SelStart: caret, SelEnd: caret}
}

// InsertNewline breaks the line at the caret and carries the current line's
// leading whitespace onto the new one, independent of language.
func InsertNewline(s EditState) EditState {
	s = s.clamp()

	start, end := lineBounds(s.Text, s.SelStart)
	indent := leadingWhitespace(s.Text[start:end])

	insert := "\n" + indent
	text := s.Text[:s.SelStart] + insert + s.Text[s.SelEnd:]
	caret := s.SelStart + len(insert)
	return EditState{Text: text, SelStart: caret, SelEnd: caret}
}
