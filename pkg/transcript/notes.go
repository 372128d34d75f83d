package transcript

import (
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// maxNoteLength bounds the free-text note carried into the results row.
const maxNoteLength = 120

// noteKeywords is the fixed set of error-like phrases scanned for in agent
// response text. Matching is case-insensitive substring matching.
var noteKeywords = []string{
	"error",
	"failed",
	"unable",
	"permission denied",
	"not found",
}

// ExtractNotes scans the agent's response text for the first error-like
// line and returns it truncated. This is a best-effort annotation for a
// human reading the report, not a structured error signal; an empty string
// means nothing matched.
func ExtractNotes(data []byte) string {
	if !gjson.ValidBytes(data) {
		return ""
	}

	note := ""
	gjson.ParseBytes(data).Get("requests").ForEach(func(_, req gjson.Result) bool {
		text := req.Get("response.text").String()
		if text == "" {
			return true
		}
		for _, line := range strings.Split(text, "\n") {
			lower := strings.ToLower(line)
			for _, keyword := range noteKeywords {
				if strings.Contains(lower, keyword) {
					note = truncateNote(strings.TrimSpace(line))
					return false
				}
			}
		}
		return true
	})

	return note
}

func truncateNote(note string) string {
	if len(note) <= maxNoteLength {
		return note
	}

	// Back up to a rune boundary so the cut never splits a multibyte
	// character.
	cut := maxNoteLength
	for cut > 0 && !utf8.RuneStart(note[cut]) {
		cut--
	}
	return note[:cut]
}
