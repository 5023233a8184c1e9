package sdprompt

import (
	"regexp"
	"strings"
)

// MaxCandidates caps the number of prompts kept from one completion.
const MaxCandidates = 10

var (
	arrowTail   = regexp.MustCompile(`(?m)→.*$`)
	listMarker  = regexp.MustCompile(`^(?:[-*•]+\s*|\d+[.)]\s+)`)
	splitPoints = regexp.MustCompile(`[\n,、]+`)
)

// exampleMarkers flag lines that echo the instruction rather than answer it.
var exampleMarkers = []string{"Example", "Keyword", "キーワード", "例:"}

// ExtractCandidates splits raw vendor text into prompt candidates.
//
// Everything from an arrow to the end of its line is dropped, so example
// lines echoed from the instruction ("可愛い子 → cute, ...") contribute no
// tags. The text is split on newlines and commas. Each piece is trimmed of whitespace, quotes and list
// markers; empty pieces and pieces referencing example markers are dropped.
// Duplicates are removed case-insensitively keeping the first occurrence and
// at most MaxCandidates are returned. The result is nil when nothing remains.
func ExtractCandidates(raw string) []string {
	text := arrowTail.ReplaceAllString(raw, "")

	var out []string
	seen := make(map[string]bool)
	for _, piece := range splitPoints.Split(text, -1) {
		c := cleanCandidate(piece)
		if c == "" || hasExampleMarker(c) {
			continue
		}
		key := strings.ToLower(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
		if len(out) == MaxCandidates {
			break
		}
	}
	return out
}

func cleanCandidate(s string) string {
	s = strings.TrimSpace(s)
	s = listMarker.ReplaceAllString(s, "")
	s = strings.Trim(s, "\"'`“”「」 \t\r")
	return strings.TrimSpace(s)
}

func hasExampleMarker(s string) bool {
	for _, m := range exampleMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
