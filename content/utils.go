package content

import "github.com/Drolfothesgnir/bbforum/markup"

// Kind defines the type of the section, e.g. "default", "gallery", "faq"
type Kind string

const (
	KindDefault Kind = "default"
)

type Type string

const (
	TypeParagraph Type = "paragraph"
	TypeList      Type = "list"
	TypeCode      Type = "code"
	TypeQuote     Type = "quote"
	TypeDivider   Type = "divider"
)

// DefaultFormat is the markup format of the texts which don't specify one.
const DefaultFormat = markup.FormatBBCode

// TextRenderer converts a user-authored text of the given format into HTML.
type TextRenderer func(text string, format markup.Format) string

type ContentItem interface {
	ContentType() Type

	// HTML renders the item, passing its user-authored texts through r.
	HTML(r TextRenderer) string
}

type Typed struct {
	Type Type `json:"type"` // Required.
}

func (t Typed) ContentType() Type { return t.Type }

// parseFormat returns DefaultFormat for an empty name.
func parseFormat(name markup.Format) (markup.Format, error) {
	if name == "" {
		return DefaultFormat, nil
	}
	return markup.ParseFormat(string(name))
}
