package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Drolfothesgnir/bbforum/markup"
	"golang.org/x/net/html"
)

const (
	ListStyleBullet   = "bullet"
	ListStyleNumbered = "numbered"
)

type List struct {
	Typed
	Style  string        `json:"style"`  // Required. Can be one of "bullet" or "numbered".
	Format markup.Format `json:"format"` // Optional. "bbcode" by default.
	Items  []string      `json:"items"`  // Required, not empty. Each element is rendered in the list format.
}

func NewList(raw json.RawMessage) (*List, error) {
	var l List
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, err
	}

	if l.Style != ListStyleBullet && l.Style != ListStyleNumbered {
		return nil, fmt.Errorf("list: unknown style %q", l.Style)
	}

	if len(l.Items) == 0 {
		return nil, errors.New("list: items must not be empty")
	}

	format, err := parseFormat(l.Format)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	l.Format = format

	return &l, nil
}

func (l *List) HTML(r TextRenderer) string {
	tag := "ul"
	if l.Style == ListStyleNumbered {
		tag = "ol"
	}

	var sb strings.Builder
	sb.WriteString("<" + tag + ">")
	for _, item := range l.Items {
		sb.WriteString("<li>" + r(item, l.Format) + "</li>")
	}
	sb.WriteString("</" + tag + ">")

	return sb.String()
}

type Code struct {
	Typed
	Language string `json:"language"` // Optional. Can be "go", "js", "sql", etc.
	Code     string `json:"code"`     // Required.
}

func NewCode(raw json.RawMessage) (*Code, error) {
	var c Code
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}

	if c.Code == "" {
		return nil, errors.New("code: code is required")
	}

	c.Language = strings.ToLower(strings.TrimSpace(c.Language))

	return &c, nil
}

// HTML renders the code verbatim, it's never interpreted as markup.
func (c *Code) HTML(_ TextRenderer) string {
	open := "<pre><code>"
	if c.Language != "" {
		open = `<pre><code class="language-` + html.EscapeString(c.Language) + `">`
	}

	return open + html.EscapeString(c.Code) + "</code></pre>"
}

type Quote struct {
	Typed
	Format markup.Format `json:"format"` // Optional. "bbcode" by default.
	Text   string        `json:"text"`   // Required. Quote's body.
	Author string        `json:"author"` // Optional.
}

func NewQuote(raw json.RawMessage) (*Quote, error) {
	var q Quote
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, err
	}

	if strings.TrimSpace(q.Text) == "" {
		return nil, errors.New("quote: text is required")
	}

	format, err := parseFormat(q.Format)
	if err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}
	q.Format = format
	q.Author = strings.TrimSpace(q.Author)

	return &q, nil
}

func (q *Quote) HTML(r TextRenderer) string {
	out := "<blockquote>" + r(q.Text, q.Format)
	if q.Author != "" {
		out += "<footer>" + html.EscapeString(q.Author) + "</footer>"
	}

	return out + "</blockquote>"
}

// Content divider.
type Divider struct {
	Typed
}

func (Divider) HTML(_ TextRenderer) string {
	return "<hr>"
}
