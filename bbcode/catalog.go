package bbcode

import (
	"regexp"
	"strings"
)

// RenderFunc converts captured groups of a Token into the output markup.
type RenderFunc func(captures []string, ctx *RenderContext) string

// Entry is a row of the token catalog.
type Entry struct {
	// Kind is the kind of the Token produced by the entry.
	Kind Kind

	// Name is the short name of the construct, e.g. "b" for bold or "smile" for ":)".
	// For emoticons it is also the image file name.
	Name string

	// Render converts the Token into markup. Nil means the raw text is emitted as literal text.
	Render RenderFunc

	// literals are the exact byte sequences matched by the entry, most specific first.
	literals []string

	// fold makes literal matching ASCII case-insensitive.
	fold bool

	// pattern is matched against the buffer starting from its last '['.
	// It must be anchored on both sides.
	pattern *regexp.Regexp
}

// match reports whether the buffer ends with the entry's pattern.
// It returns the byte offset in the buffer at which the match starts and the captured groups.
func (e *Entry) match(buf string) (start int, captures []string, ok bool) {
	for _, lit := range e.literals {
		n := len(buf) - len(lit)
		if n < 0 {
			continue
		}

		suffix := buf[n:]
		if suffix == lit || (e.fold && strings.EqualFold(suffix, lit)) {
			return n, nil, true
		}
	}

	if e.pattern == nil {
		return 0, nil, false
	}

	idx := strings.LastIndexByte(buf, '[')
	if idx < 0 {
		return 0, nil, false
	}

	m := e.pattern.FindStringSubmatch(buf[idx:])
	if m == nil {
		return 0, nil, false
	}

	return idx, m[1:], true
}

// triggers returns the set of bytes a match of the entry can end with.
func (e *Entry) triggers() []byte {
	var out []byte
	for _, lit := range e.literals {
		last := lit[len(lit)-1]
		out = append(out, last)
		if e.fold && 'a' <= last|0x20 && last|0x20 <= 'z' {
			out = append(out, last|0x20, last&^0x20)
		}
	}

	if e.pattern != nil {
		out = append(out, ']')
	}

	return out
}

func tag(kind Kind, name string, render RenderFunc, literals ...string) Entry {
	return Entry{Kind: kind, Name: name, Render: render, literals: literals, fold: true}
}

func emoji(kind Kind, name string, literals ...string) Entry {
	return Entry{Kind: kind, Name: name, Render: renderEmoji(kind, name, literals[0]), literals: literals}
}

// catalog is the immutable token catalog indexed by Kind.
var catalog = [kindCount]Entry{
	Plaintext:   {Kind: Plaintext, Name: "text"},
	DoubleSpace: {Kind: DoubleSpace, Name: "space", Render: static("&nbsp; "), literals: []string{"  "}},
	LineBreak:   {Kind: LineBreak, Name: "br", Render: static("<br>"), literals: []string{"\r\n", "\n"}},

	BoldStart:       tag(BoldStart, "b", static("<strong>"), "[b]"),
	BoldEnd:         tag(BoldEnd, "b", static("</strong>"), "[/b]"),
	ItalicStart:     tag(ItalicStart, "i", static("<em>"), "[i]"),
	ItalicEnd:       tag(ItalicEnd, "i", static("</em>"), "[/i]"),
	UnderlineStart:  tag(UnderlineStart, "u", static("<u>"), "[u]"),
	UnderlineEnd:    tag(UnderlineEnd, "u", static("</u>"), "[/u]"),
	StrikeStart:     tag(StrikeStart, "s", static("<s>"), "[s]"),
	StrikeEnd:       tag(StrikeEnd, "s", static("</s>"), "[/s]"),
	BlockquoteStart: tag(BlockquoteStart, "bq", static("<blockquote>"), "[bq]", "[quote]"),
	BlockquoteEnd:   tag(BlockquoteEnd, "bq", static("</blockquote>"), "[/bq]", "[/quote]"),
	BlockStart:      tag(BlockStart, "bl", static(`<div class="block">`), "[bl]"),
	BlockEnd:        tag(BlockEnd, "bl", static("</div>"), "[/bl]"),
	LinkStart: {
		Kind:    LinkStart,
		Name:    "link",
		Render:  renderLinkStart,
		pattern: regexp.MustCompile(`(?i)^\[link=([^\[\]\n]*)\]$`),
	},
	LinkEnd: tag(LinkEnd, "link", static("</a>"), "[/link]"),
	ColourStart: {
		Kind:    ColourStart,
		Name:    "colour",
		Render:  renderColourStart,
		pattern: regexp.MustCompile(`(?i)^\[colou?r=([^\[\]\n]*)\]$`),
	},
	ColourEnd:    tag(ColourEnd, "colour", static("</span>"), "[/colour]", "[/color]"),
	SpoilerStart: tag(SpoilerStart, "spoiler", static(`<span class="spoiler">`), "[spoiler]"),
	SpoilerEnd:   tag(SpoilerEnd, "spoiler", static("</span>"), "[/spoiler]"),
	CodeStart:    tag(CodeStart, "code", static("<code>"), "[code]"),
	CodeEnd:      tag(CodeEnd, "code", static("</code>"), "[/code]"),

	HorizontalRule: tag(HorizontalRule, "hr", static("<hr>"), "[hr]"),
	UserTag:        {Kind: UserTag, Name: "user", Render: renderUserTag},

	EmojiAngry:     emoji(EmojiAngry, "angry", ">:("),
	EmojiCry:       emoji(EmojiCry, "cry", ":'("),
	EmojiSmile:     emoji(EmojiSmile, "smile", ":)"),
	EmojiSad:       emoji(EmojiSad, "sad", ":("),
	EmojiGrin:      emoji(EmojiGrin, "grin", ":D"),
	EmojiWink:      emoji(EmojiWink, "wink", ";)"),
	EmojiTongue:    emoji(EmojiTongue, "tongue", ":P", ":p"),
	EmojiSurprised: emoji(EmojiSurprised, "surprised", ":O", ":o"),
	EmojiHeart:     emoji(EmojiHeart, "heart", "<3"),

	EmojiThumbsUp:   emoji(EmojiThumbsUp, "thumbsup", ":+1:"),
	EmojiThumbsDown: emoji(EmojiThumbsDown, "thumbsdown", ":-1:"),
	EmojiLaugh:      emoji(EmojiLaugh, "lol", ":lol:"),
	EmojiWow:        emoji(EmojiWow, "wow", ":wow:"),
	EmojiRage:       emoji(EmojiRage, "rage", ":angry:"),
	EmojiLove:       emoji(EmojiLove, "love", ":heart:"),
}

// byTrigger maps the last byte of every possible match to the entries, in catalog order,
// which can end with that byte. Only these entries are tried after a byte is appended.
//
// WARNING: all the patterns are ASCII, multi-byte runes never trigger a match attempt.
var byTrigger [256][]*Entry

// emojiByName maps an emoticon's name to its Kind.
var emojiByName = map[string]Kind{}

func init() {
	for k := Kind(0); k < kindCount; k++ {
		e := &catalog[k]
		for _, b := range e.triggers() {
			byTrigger[b] = appendUnique(byTrigger[b], e)
		}

		if k.IsEmoji() {
			emojiByName[e.Name] = k
		}
	}
}

func appendUnique(entries []*Entry, e *Entry) []*Entry {
	for _, x := range entries {
		if x == e {
			return entries
		}
	}
	return append(entries, e)
}

// Lookup returns the catalog entry of the kind.
func Lookup(kind Kind) (Entry, bool) {
	if kind < 0 || kind >= kindCount {
		return Entry{}, false
	}
	return catalog[kind], true
}

// EmojiByName returns the Kind of the emoticon with the given name, e.g. "smile" for ":)".
func EmojiByName(name string) (Kind, bool) {
	k, ok := emojiByName[name]
	return k, ok
}

// EmojiName returns the name of the emoticon kind, or an empty string if k is not an emoticon.
func EmojiName(k Kind) string {
	if !k.IsEmoji() {
		return ""
	}
	return catalog[k].Name
}
