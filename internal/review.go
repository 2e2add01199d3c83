package internal

import (
	"fmt"
	"strings"
)

// ReviewResult is the structured outcome of an assistant code review.
type ReviewResult struct {
	Score       int      `json:"score"`
	Analysis    string   `json:"analysis"`
	Language    string   `json:"language"`
	Suggestions []string `json:"suggestions"`
	Issues      []string `json:"issues_found"`
	Strengths   []string `json:"strengths"`
}

// Caps applied to the parsed review lists.
const (
	maxReviewSuggestions = 5
	maxReviewIssues      = 10
	maxReviewStrengths   = 5
)

var reviewMarkers = []string{"SCORE:", "ANALYSIS:", "SUGGESTIONS:", "ISSUES:", "STRENGTHS:"}

// BuildReviewPrompt produces the structured review prompt for a code buffer.
// The marker layout is what ParseReviewResponse expects back.
func BuildReviewPrompt(language, code string) string {
	return fmt.Sprintf(`Analyze this %s code and give a detailed code review:

`+"```%s\n%s\n```"+`

Evaluate the following aspects:
1. Functionality - does the code do what it should?
2. Code quality - readability, maintainability, structure
3. Security - potential vulnerabilities
4. Performance - efficiency and optimization opportunities
5. Best practices - does the code follow established standards?

Give an honest score from 0-100 and concrete, actionable improvements.
Structure your answer like this:

SCORE: [0-100]
ANALYSIS: [detailed assessment]
SUGGESTIONS: [concrete improvements]
ISSUES: [problems found]
STRENGTHS: [positive aspects]
`, language, language, code)
}

// ParseReviewResponse turns the assistant's free-text review into a
// ReviewResult. Parsing is forgiving: a missing score defaults to 75, and a
// reply with no recognizable sections degrades to its leading text as the
// analysis.
func ParseReviewResponse(text, language string) *ReviewResult {
	result := &ReviewResult{
		Score:    75,
		Language: language,
	}

	if score, ok := parseScore(sectionAfter(text, "SCORE:")); ok {
		result.Score = score
	}

	result.Analysis = sectionAfter(text, "ANALYSIS:")
	if result.Analysis == "" {
		result.Analysis = truncate(text, 500)
	}
	result.Suggestions = capList(listSection(text, "SUGGESTIONS:"), maxReviewSuggestions)
	result.Issues = capList(listSection(text, "ISSUES:"), maxReviewIssues)
	result.Strengths = capList(listSection(text, "STRENGTHS:"), maxReviewStrengths)

	return result
}

// parseScore pulls the first run of digits out of the score line and clamps
// it to 0-100.
func parseScore(line string) (int, bool) {
	line = strings.TrimSpace(line)
	score := 0
	seen := false
	for _, ch := range line {
		if ch < '0' || ch > '9' {
			if seen {
				break
			}
			continue
		}
		seen = true
		score = score*10 + int(ch-'0')
		if score > 100 {
			return 100, true
		}
	}
	return score, seen
}

// sectionAfter extracts the text between marker and the next marker (or the
// next blank line, whichever comes first).
func sectionAfter(text, marker string) string {
	idx := strings.Index(text, marker)
	if idx == -1 {
		return ""
	}
	start := idx + len(marker)

	end := len(text)
	if blank := strings.Index(text[start:], "\n\n"); blank != -1 {
		end = start + blank
	}
	for _, next := range reviewMarkers {
		if next == marker {
			continue
		}
		if pos := strings.Index(text[start:], next); pos != -1 && start+pos < end {
			end = start + pos
		}
	}

	return strings.TrimSpace(text[start:end])
}

// listSection extracts a section and splits it into list items, stripping
// common bullet and numbering prefixes.
func listSection(text, marker string) []string {
	section := sectionAfter(text, marker)
	if section == "" {
		return nil
	}

	var items []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = stripListPrefix(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

func stripListPrefix(line string) string {
	for _, prefix := range []string{"- ", "* ", "• "} {
		if rest, ok := strings.CutPrefix(line, prefix); ok {
			return strings.TrimSpace(rest)
		}
	}
	// Numbered items: "1. ", "12. "
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i+1 < len(line) && line[i] == '.' && line[i+1] == ' ' {
		return strings.TrimSpace(line[i+2:])
	}
	return line
}

func capList(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(s[:n])
}
