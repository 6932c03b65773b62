package bbcode

// Kind defines the class of a Token, e.g. plain text, line break, bold start tag or an emoticon.
//
// The order of declaration is the catalog order: for every lexing position the matchers are
// tried in this order, so a pattern must be declared before any pattern which is its strict suffix.
type Kind int

const (
	Plaintext Kind = iota
	DoubleSpace
	LineBreak

	BoldStart
	BoldEnd
	ItalicStart
	ItalicEnd
	UnderlineStart
	UnderlineEnd
	StrikeStart
	StrikeEnd
	BlockquoteStart
	BlockquoteEnd
	BlockStart
	BlockEnd
	LinkStart
	LinkEnd
	ColourStart
	ColourEnd
	SpoilerStart
	SpoilerEnd
	CodeStart
	CodeEnd

	HorizontalRule
	UserTag

	// emoticons
	EmojiAngry // ">:(" must precede ":("
	EmojiCry
	EmojiSmile
	EmojiSad
	EmojiGrin
	EmojiWink
	EmojiTongue
	EmojiSurprised
	EmojiHeart

	// reactions
	EmojiThumbsUp
	EmojiThumbsDown
	EmojiLaugh
	EmojiWow
	EmojiRage
	EmojiLove

	kindCount
)

const (
	firstEmoji    = EmojiAngry
	firstReaction = EmojiThumbsUp
	lastEmoji     = EmojiLove
)

var kindNames = [kindCount]string{
	Plaintext:       "Plaintext",
	DoubleSpace:     "DoubleSpace",
	LineBreak:       "LineBreak",
	BoldStart:       "BoldStart",
	BoldEnd:         "BoldEnd",
	ItalicStart:     "ItalicStart",
	ItalicEnd:       "ItalicEnd",
	UnderlineStart:  "UnderlineStart",
	UnderlineEnd:    "UnderlineEnd",
	StrikeStart:     "StrikeStart",
	StrikeEnd:       "StrikeEnd",
	BlockquoteStart: "BlockquoteStart",
	BlockquoteEnd:   "BlockquoteEnd",
	BlockStart:      "BlockStart",
	BlockEnd:        "BlockEnd",
	LinkStart:       "LinkStart",
	LinkEnd:         "LinkEnd",
	ColourStart:     "ColourStart",
	ColourEnd:       "ColourEnd",
	SpoilerStart:    "SpoilerStart",
	SpoilerEnd:      "SpoilerEnd",
	CodeStart:       "CodeStart",
	CodeEnd:         "CodeEnd",
	HorizontalRule:  "HorizontalRule",
	UserTag:         "UserTag",
	EmojiAngry:      "EmojiAngry",
	EmojiCry:        "EmojiCry",
	EmojiSmile:      "EmojiSmile",
	EmojiSad:        "EmojiSad",
	EmojiGrin:       "EmojiGrin",
	EmojiWink:       "EmojiWink",
	EmojiTongue:     "EmojiTongue",
	EmojiSurprised:  "EmojiSurprised",
	EmojiHeart:      "EmojiHeart",
	EmojiThumbsUp:   "EmojiThumbsUp",
	EmojiThumbsDown: "EmojiThumbsDown",
	EmojiLaugh:      "EmojiLaugh",
	EmojiWow:        "EmojiWow",
	EmojiRage:       "EmojiRage",
	EmojiLove:       "EmojiLove",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Kind(?)"
	}
	return kindNames[k]
}

// pairedKinds maps every End kind to its Start kind.
var pairedKinds = map[Kind]Kind{
	BoldEnd:       BoldStart,
	ItalicEnd:     ItalicStart,
	UnderlineEnd:  UnderlineStart,
	StrikeEnd:     StrikeStart,
	BlockquoteEnd: BlockquoteStart,
	BlockEnd:      BlockStart,
	LinkEnd:       LinkStart,
	ColourEnd:     ColourStart,
	SpoilerEnd:    SpoilerStart,
	CodeEnd:       CodeStart,
}

// startKinds lists the pairable Start kinds in catalog order.
var startKinds = []Kind{
	BoldStart,
	ItalicStart,
	UnderlineStart,
	StrikeStart,
	BlockquoteStart,
	BlockStart,
	LinkStart,
	ColourStart,
	SpoilerStart,
	CodeStart,
}

// IsStart reports whether k opens a pairable construct.
func (k Kind) IsStart() bool {
	start, ok := pairedKinds[k+1]
	return ok && start == k
}

// IsEnd reports whether k closes a pairable construct.
func (k Kind) IsEnd() bool {
	_, ok := pairedKinds[k]
	return ok
}

// Pair returns the counterpart of a pairable kind: the Start for an End and vice versa.
// For kinds which do not participate in balancing Pair returns k itself.
func (k Kind) Pair() Kind {
	if start, ok := pairedKinds[k]; ok {
		return start
	}
	if k.IsStart() {
		return k + 1
	}
	return k
}

// IsEmoji reports whether k is an emoticon or a reaction.
func (k Kind) IsEmoji() bool {
	return k >= firstEmoji && k <= lastEmoji
}

// IsReaction reports whether k belongs to the reaction subset of the emoticons.
func (k Kind) IsReaction() bool {
	return k >= firstReaction && k <= lastEmoji
}

// allowedInCode reports whether k is recognized while the lexer is in code-literal mode.
func (k Kind) allowedInCode() bool {
	switch k {
	case Plaintext, DoubleSpace, LineBreak, CodeStart, CodeEnd:
		return true
	}
	return false
}
