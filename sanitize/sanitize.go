package sanitize

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips every element and attribute of the rendered markup
// which is not safe to display.
type Sanitizer interface {
	Sanitize(html string) string
}

var (
	// classNames matches the classes set by the renderers.
	classNames = regexp.MustCompile(`^(block|spoiler|user-tag|emoji)$`)

	// emoticonText matches the emoticon literals used as image alt texts, e.g. ":'(" or "<3".
	emoticonText = regexp.MustCompile(`^[\p{L}\p{N}\s:;'()<>+\-]*$`)
)

// Policy is the Sanitizer for user-generated content.
type Policy struct {
	policy *bluemonday.Policy
}

// NewPolicy creates the user-generated content policy extended with
// the classes and styles produced by the renderers.
func NewPolicy() *Policy {
	p := bluemonday.UGCPolicy()

	p.AllowAttrs("class").Matching(classNames).OnElements("div", "span", "a", "img")
	p.AllowStyles("color").OnElements("span")
	p.AllowAttrs("alt", "title").Matching(emoticonText).OnElements("img")

	return &Policy{policy: p}
}

// Sanitize returns the html without the disallowed elements and attributes.
func (p *Policy) Sanitize(html string) string {
	return p.policy.Sanitize(html)
}
