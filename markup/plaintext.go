package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// Plaintext escapes the text and makes its whitespace visible: every run of two or more
// spaces keeps its width with non-breaking spaces, and line breaks become <br>.
func Plaintext(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	escaped := html.EscapeString(text)

	var sb strings.Builder
	sb.Grow(len(escaped))

	spaces := 0
	flushSpaces := func() {
		if spaces > 1 {
			sb.WriteString(strings.Repeat("&nbsp;", spaces-1))
		}
		if spaces > 0 {
			sb.WriteByte(' ')
		}
		spaces = 0
	}

	for i := 0; i < len(escaped); i++ {
		switch b := escaped[i]; b {
		case ' ':
			spaces++
		case '\n':
			flushSpaces()
			sb.WriteString("<br>")
		default:
			flushSpaces()
			sb.WriteByte(b)
		}
	}
	flushSpaces()

	return sb.String()
}
