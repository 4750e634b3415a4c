package value

import (
	"strings"
	"unicode/utf8"
)

// Escape encodes s for safe inclusion in element content or in a
// double-quoted attribute value. The characters & < > " ' are replaced by
// entities and invalid UTF-8 sequences are substituted with U+FFFD.
func Escape(s string) string {
	if !needsEscape(s) {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + len(s)/8)

	// Ranging over a string yields utf8.RuneError for each invalid byte,
	// which WriteRune encodes as U+FFFD.
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// needsEscape reports whether s contains a character Escape rewrites.
func needsEscape(s string) bool {
	return strings.ContainsAny(s, `&<>"'`) || !utf8.ValidString(s)
}
