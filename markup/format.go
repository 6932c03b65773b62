package markup

import (
	"errors"
	"fmt"
	"strings"
)

// Format defines the markup language of a user-authored text, e.g. "bbcode" or "markdown+html".
type Format string

const (
	FormatPlaintext    Format = "plaintext"
	FormatBBCode       Format = "bbcode"
	FormatBBCodeHTML   Format = "bbcode+html"
	FormatMarkdown     Format = "markdown"
	FormatMarkdownHTML Format = "markdown+html"
)

// rawHTMLSuffix marks the formats in which raw HTML in the text passes through.
const rawHTMLSuffix = "+html"

var ErrUnknownFormat = errors.New("unknown format")

// Formats lists every supported Format.
var Formats = []Format{
	FormatPlaintext,
	FormatBBCode,
	FormatBBCodeHTML,
	FormatMarkdown,
	FormatMarkdownHTML,
}

// ParseFormat returns the Format with the given name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// IsValid reports whether f is one of the supported formats.
func (f Format) IsValid() bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// AllowRawHTML reports whether raw HTML in the text is passed through instead of escaped.
func (f Format) AllowRawHTML() bool {
	return strings.HasSuffix(string(f), rawHTMLSuffix)
}

// Engine returns the name of the markup language without the raw HTML modifier,
// e.g. "bbcode" for "bbcode+html".
func (f Format) Engine() string {
	return strings.TrimSuffix(string(f), rawHTMLSuffix)
}
