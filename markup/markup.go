package markup

import (
	"github.com/Drolfothesgnir/bbforum/bbcode"
	"github.com/Drolfothesgnir/bbforum/markdown"
	"golang.org/x/text/unicode/norm"
)

// Renderer converts a user-authored text of any supported Format into HTML.
//
// The output is not sanitized. It must go through the sanitizer before it's displayed.
type Renderer struct {
	// Routes defines the links produced by the BBCode engine.
	Routes bbcode.Routes

	// Markdown renders the markdown formats. CommonMark is used if nil.
	Markdown markdown.Pipeline
}

// NewRenderer creates new Renderer with the given routes and markdown pipeline.
func NewRenderer(routes bbcode.Routes, md markdown.Pipeline) *Renderer {
	return &Renderer{Routes: routes, Markdown: md}
}

// Render converts the text into HTML according to its format. Unknown formats are
// treated as plain text.
func (r *Renderer) Render(
	text string,
	format Format,
	emojiSettings []bbcode.EmojiSetting,
	currentUser *bbcode.UserRef,
) string {
	text = norm.NFC.String(text)

	switch format {
	case FormatMarkdown, FormatMarkdownHTML:
		md := r.Markdown
		if md == nil {
			md = markdown.CommonMark{}
		}
		return md.Render(text, emojiSettings, currentUser, format.AllowRawHTML())

	case FormatBBCode, FormatBBCodeHTML:
		return bbcode.Parse(text, bbcode.RenderContext{
			CurrentUser:   currentUser,
			EmojiSettings: emojiSettings,
			AllowRawHTML:  format.AllowRawHTML(),
			Routes:        r.Routes,
		})

	default:
		return Plaintext(text)
	}
}

var defaultRenderer = &Renderer{}

// Parse renders the text with the default routes and the CommonMark pipeline.
func Parse(
	text string,
	format Format,
	emojiSettings []bbcode.EmojiSetting,
	currentUser *bbcode.UserRef,
) string {
	return defaultRenderer.Render(text, format, emojiSettings, currentUser)
}
