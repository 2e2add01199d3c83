package internal

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultRunDelay is the artificial pause before simulated output appears,
// standing in for asynchronous execution.
const DefaultRunDelay = time.Second

// outputCall matches one print-style call per language. Only the literal text
// inside the argument list is reproduced; there is no interpreter behind
// this.
var outputCalls = map[string]*regexp.Regexp{
	"python":     regexp.MustCompile(`print\(([^)]*)\)`),
	"javascript": regexp.MustCompile(`console\.log\(([^)]*)\)`),
}

// Runner is the simulated execution dispatcher: it maps a (language, source)
// pair to deterministic pseudo-output after an artificial delay.
type Runner struct {
	delay time.Duration
}

// NewRunner creates a runner. A zero delay means DefaultRunDelay; negative
// disables the pause (used by tests).
func NewRunner(delay time.Duration) *Runner {
	switch {
	case delay == 0:
		delay = DefaultRunDelay
	case delay < 0:
		delay = 0
	}
	return &Runner{delay: delay}
}

// Run produces the simulated output for source in language. Empty source is a
// validation no-op. The artificial delay is cut short if ctx is cancelled.
func (r *Runner) Run(ctx context.Context, language, source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", &ValidationError{Field: "code", Reason: "nothing to run"}
	}

	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	return simulateOutput(language, source), nil
}

// simulateOutput applies the language's extraction over source.
func simulateOutput(language, source string) string {
	pattern, ok := outputCalls[language]
	if !ok {
		return fmt.Sprintf("%s code processed successfully.\n", LookupLanguage(language).Name)
	}

	matches := pattern.FindAllStringSubmatch(source, -1)
	if len(matches) == 0 {
		return "Code executed successfully (simulated).\n"
	}

	var out strings.Builder
	for _, m := range matches {
		out.WriteString(stripQuotes(strings.TrimSpace(m[1])))
		out.WriteByte('\n')
	}
	return out.String()
}

// stripQuotes removes one matching pair of surrounding quote characters.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'' || first == '`') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
