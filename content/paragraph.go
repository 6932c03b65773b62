package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Drolfothesgnir/bbforum/markup"
)

type Paragraph struct {
	Typed
	Format markup.Format `json:"format"` // Optional. "bbcode" by default.
	Text   string        `json:"text"`   // Required. Inline rich text, e.g. [b][i]bold+italic[/i][/b]
}

// NewParagraph parses raw json paragraph data, validates it and returns new Paragraph.
func NewParagraph(raw json.RawMessage) (*Paragraph, error) {
	var p Paragraph
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}

	if p.Type != TypeParagraph {
		return nil, fmt.Errorf("paragraph: expected type %q, got %q", TypeParagraph, p.Type)
	}

	if strings.TrimSpace(p.Text) == "" {
		return nil, errors.New("paragraph: text is required")
	}

	format, err := parseFormat(p.Format)
	if err != nil {
		return nil, fmt.Errorf("paragraph: %w", err)
	}
	p.Format = format

	return &p, nil
}

func (p *Paragraph) HTML(r TextRenderer) string {
	return "<p>" + r(p.Text, p.Format) + "</p>"
}
