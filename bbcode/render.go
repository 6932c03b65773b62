package bbcode

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// UserRef identifies the viewer of the rendered text.
type UserRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Routes defines the URL scheme of the links produced by the renderer.
// Empty fields fall back to DefaultRoutes.
type Routes struct {
	// Leaving is the prefix of the leaving-redirect page, the query-escaped
	// external URL is appended to it.
	Leaving string `json:"leaving"`

	// Profile is the prefix of user profile pages, the path-escaped username is appended to it.
	Profile string `json:"profile"`

	// EmojiBase is the base path of emoticon images.
	EmojiBase string `json:"emoji_base"`
}

// DefaultRoutes is used for every empty field of Routes.
var DefaultRoutes = Routes{
	Leaving:   "/leaving?url=",
	Profile:   "/user/",
	EmojiBase: "/static/emoji",
}

// RenderContext is the per-call, read-only input of the renderers.
type RenderContext struct {
	// CurrentUser is the viewer. Mentions are rendered as profile links only for a known viewer.
	CurrentUser *UserRef

	// EmojiSettings are the viewer's emoticon preferences.
	EmojiSettings []EmojiSetting

	// AllowRawHTML makes the plain text pass through verbatim instead of being HTML-escaped.
	AllowRawHTML bool

	Routes Routes
}

func (ctx *RenderContext) routes() Routes {
	r := ctx.Routes
	if r.Leaving == "" {
		r.Leaving = DefaultRoutes.Leaving
	}
	if r.Profile == "" {
		r.Profile = DefaultRoutes.Profile
	}
	if r.EmojiBase == "" {
		r.EmojiBase = DefaultRoutes.EmojiBase
	}
	return r
}

// Render converts the token sequence into markup.
// Tokens without a registered renderer are emitted as literal text.
// A link end renders nothing if its start produced no anchor.
func Render(tokens []Token, ctx RenderContext) string {
	var (
		sb      strings.Builder
		anchors []bool
	)

	for _, tok := range tokens {
		var render RenderFunc
		if tok.Kind >= 0 && tok.Kind < kindCount {
			render = catalog[tok.Kind].Render
		}

		if render == nil {
			sb.WriteString(ctx.literal(tok.Raw))
			continue
		}

		out := render(tok.Captures, &ctx)

		switch tok.Kind {
		case LinkStart:
			anchors = append(anchors, out != "")
		case LinkEnd:
			if n := len(anchors); n > 0 {
				opened := anchors[n-1]
				anchors = anchors[:n-1]
				if !opened {
					continue
				}
			}
		}

		sb.WriteString(out)
	}

	return sb.String()
}

// Parse tokenizes and renders the input string.
func Parse(input string, ctx RenderContext) string {
	return Render(Tokenize(input), ctx)
}

func (ctx *RenderContext) literal(s string) string {
	if ctx.AllowRawHTML {
		return s
	}
	return html.EscapeString(s)
}

func static(out string) RenderFunc {
	return func([]string, *RenderContext) string {
		return out
	}
}

// renderLinkStart opens an anchor pointing through the leaving page.
// An empty target produces no anchor at all.
func renderLinkStart(captures []string, ctx *RenderContext) string {
	target := capture(captures, 0)
	if target == "" {
		return ""
	}

	return `<a href="` + ctx.routes().Leaving + url.QueryEscape(target) + `" rel="nofollow">`
}

// renderColourStart interpolates the colour as is, sanitizing the style is up to the caller.
func renderColourStart(captures []string, _ *RenderContext) string {
	colour := capture(captures, 0)
	if colour == "" {
		return "<span>"
	}

	return `<span style="color: ` + colour + `">`
}

func renderUserTag(captures []string, ctx *RenderContext) string {
	name := capture(captures, 0)
	if ctx.CurrentUser == nil {
		return "@" + html.EscapeString(name)
	}

	return `<a href="` + ctx.routes().Profile + url.PathEscape(name) + `" class="user-tag">@` +
		html.EscapeString(name) + `</a>`
}

func renderEmoji(kind Kind, name, alt string) RenderFunc {
	alt = html.EscapeString(alt)

	return func(_ []string, ctx *RenderContext) string {
		src := ctx.routes().EmojiBase + "/"
		if category := ResolveEmoji(kind, ctx.EmojiSettings); category != "" {
			src += url.PathEscape(category) + "/"
		}
		src += name + ".png"

		return `<img class="emoji" src="` + src + `" alt="` + alt + `" title="` + alt + `">`
	}
}
