package kvp

import (
	"strings"
)

// Line is one logical source line after normalization.
// Text keeps the original case for values such as file paths; Folded is the
// lower-cased copy used for header and key matching.
type Line struct {
	Number int // 1-based source line
	Text   string
	Folded string
}

// Empty reports whether nothing is left after comment stripping.
func (l Line) Empty() bool {
	return l.Text == ""
}

// StripComment truncates s at the first occurrence of comment.
func StripComment(s string, comment byte) string {
	if i := strings.IndexByte(s, comment); i >= 0 {
		return s[:i]
	}
	return s
}

// Normalize splits text into logical lines for the given dialect.
// Blank and comment-only lines are kept as empty lines so line numbers stay
// positional.
func Normalize(text string, d Dialect) []Line {
	text = strings.TrimPrefix(text, "\ufeff")
	if text == "" {
		return nil
	}
	raw := strings.Split(text, "\n")
	// a trailing newline does not open another line
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	lines := make([]Line, len(raw))
	for i, s := range raw {
		s = strings.TrimSuffix(s, "\r")
		s = strings.TrimSpace(StripComment(s, d.Comment))
		lines[i] = Line{Number: i + 1, Text: s, Folded: strings.ToLower(s)}
	}
	return lines
}
