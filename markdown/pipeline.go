package markdown

import (
	"strings"

	"github.com/Drolfothesgnir/bbforum/bbcode"
	"zombiezen.com/go/commonmark"
)

// Pipeline defines a markdown engine which renders a whole text into HTML.
//
// It receives the same render inputs as the BBCode engine so the engines are
// interchangeable for the caller.
type Pipeline interface {
	Render(text string, emojiSettings []bbcode.EmojiSetting, currentUser *bbcode.UserRef, allowRawHTML bool) string
}

// CommonMark is the Pipeline backed by the CommonMark reference grammar.
// Emoticons and mentions are not recognized in markdown texts.
type CommonMark struct{}

// Render parses the text as CommonMark and renders it into HTML.
// Raw HTML blocks and inline HTML are skipped unless allowRawHTML is true.
func (CommonMark) Render(text string, _ []bbcode.EmojiSetting, _ *bbcode.UserRef, allowRawHTML bool) string {
	blocks, refMap := commonmark.Parse([]byte(text))

	r := &commonmark.HTMLRenderer{
		ReferenceMap: refMap,
		IgnoreRaw:    !allowRawHTML,
	}

	var sb strings.Builder

	// writing into strings.Builder never fails
	_ = r.Render(&sb, blocks)

	return sb.String()
}
