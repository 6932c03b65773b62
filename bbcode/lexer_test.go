package bbcode

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func requireTokens(t *testing.T, want []Token, got []Token) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("tokens (-want +got):\n%s", diff)
	}
}

func TestTokenize_Empty(t *testing.T) {
	require.Empty(t, Tokenize(""))
}

func TestTokenize_PlainText(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: Plaintext, Raw: "hello world", Pos: 0},
	}, Tokenize("hello world"))
}

func TestTokenize_Bold(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: BoldStart, Raw: "[b]", Pos: 0},
		{Kind: Plaintext, Raw: "hi", Pos: 3},
		{Kind: BoldEnd, Raw: "[/b]", Pos: 5},
	}, Tokenize("[b]hi[/b]"))
}

func TestTokenize_CaseInsensitiveTags(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: BoldStart, Raw: "[B]", Pos: 0},
		{Kind: Plaintext, Raw: "hi", Pos: 3},
		{Kind: BoldEnd, Raw: "[/b]", Pos: 5},
	}, Tokenize("[B]hi[/b]"))
}

func TestTokenize_AutoClose(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: BoldStart, Raw: "[b]", Pos: 0},
		{Kind: Plaintext, Raw: "bold", Pos: 3},
		{Kind: BoldEnd, Pos: 7, Synthetic: true},
	}, Tokenize("[b]bold"))
}

func TestTokenize_AutoOpenPrecedesText(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: BoldStart, Pos: 0, Synthetic: true},
		{Kind: Plaintext, Raw: "bold", Pos: 0},
		{Kind: BoldEnd, Raw: "[/b]", Pos: 4},
	}, Tokenize("bold[/b]"))
}

func TestTokenize_SyntheticClosesInCatalogOrder(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: ItalicStart, Raw: "[i]", Pos: 0},
		{Kind: BoldStart, Raw: "[b]", Pos: 3},
		{Kind: Plaintext, Raw: "x", Pos: 6},
		{Kind: BoldEnd, Pos: 7, Synthetic: true},
		{Kind: ItalicEnd, Pos: 7, Synthetic: true},
	}, Tokenize("[i][b]x"))
}

func TestTokenize_Mention(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: Plaintext, Raw: "hi ", Pos: 0},
		{Kind: UserTag, Raw: "@alice", Captures: []string{"alice"}, Pos: 3},
		{Kind: Plaintext, Raw: ",", Pos: 9},
		{Kind: Plaintext, Raw: " yo", Pos: 10},
	}, Tokenize("hi @alice, yo"))
}

func TestTokenize_MentionAtEndOfInput(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: UserTag, Raw: "@bob_42", Captures: []string{"bob_42"}, Pos: 0},
	}, Tokenize("@bob_42"))
}

func TestTokenize_MentionTrailingCharacterIsNotReinterpreted(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: UserTag, Raw: "@bob", Captures: []string{"bob"}, Pos: 0},
		{Kind: Plaintext, Raw: "[", Pos: 4},
		{Kind: Plaintext, Raw: "b]", Pos: 5},
	}, Tokenize("@bob[b]"))
}

func TestTokenize_MentionUnicode(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: UserTag, Raw: "@Ёжик", Captures: []string{"Ёжик"}, Pos: 0},
		{Kind: Plaintext, Raw: "!", Pos: len("@Ёжик")},
	}, Tokenize("@Ёжик!"))
}

func TestTokenize_AddressShapedMentionsStayText(t *testing.T) {
	inputs := []string{
		"mail bob@example.com",
		"mail first.last@example.com",
		"see https://host.org/@bob",
		"[link=@bob]",
		"lonely @ sign",
		"@",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			for _, tok := range Tokenize(input) {
				require.NotEqual(t, UserTag, tok.Kind)
			}
		})
	}
}

func TestTokenize_DoubleAtSign(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: Plaintext, Raw: "@", Pos: 0},
		{Kind: UserTag, Raw: "@bob", Captures: []string{"bob"}, Pos: 1},
	}, Tokenize("@@bob"))
}

func TestTokenize_CodeLiteral(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: CodeStart, Raw: "[code]", Pos: 0},
		{Kind: Plaintext, Raw: "[b]@bob :)", Pos: 6},
		{Kind: CodeEnd, Raw: "[/code]", Pos: 16},
		{Kind: BoldStart, Raw: "[b]", Pos: 23},
		{Kind: BoldEnd, Pos: 26, Synthetic: true},
	}, Tokenize("[code][b]@bob :)[/code][b]"))
}

func TestTokenize_CodeLiteralKeepsWhitespaceTokens(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: CodeStart, Raw: "[code]", Pos: 0},
		{Kind: Plaintext, Raw: "a", Pos: 6},
		{Kind: DoubleSpace, Raw: "  ", Pos: 7},
		{Kind: Plaintext, Raw: "b", Pos: 9},
		{Kind: LineBreak, Raw: "\n", Pos: 10},
		{Kind: CodeEnd, Raw: "[/code]", Pos: 11},
	}, Tokenize("[code]a  b\n[/code]"))
}

func TestTokenize_NestedCodeLiteral(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: CodeStart, Raw: "[code]", Pos: 0},
		{Kind: CodeStart, Raw: "[code]", Pos: 6},
		{Kind: Plaintext, Raw: "x", Pos: 12},
		{Kind: CodeEnd, Raw: "[/code]", Pos: 13},
		{Kind: Plaintext, Raw: "y[/b]", Pos: 20},
		{Kind: CodeEnd, Pos: 25, Synthetic: true},
	}, Tokenize("[code][code]x[/code]y[/b]"))
}

func TestTokenize_BlockquoteSwallowsLineBreaks(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: BlockquoteStart, Raw: "[bq]", Pos: 0},
		{Kind: Plaintext, Raw: "hi", Pos: 4},
		{Kind: BlockquoteEnd, Raw: "[/bq]", Pos: 6},
		{Kind: Plaintext, Raw: "Next", Pos: 14},
	}, Tokenize("[bq]hi[/bq]\r\n\nNext"))
}

func TestTokenize_BlockSwallowsOnlyLeadingBreaks(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: BlockStart, Raw: "[bl]", Pos: 0},
		{Kind: BlockEnd, Raw: "[/bl]", Pos: 4},
		{Kind: Plaintext, Raw: "a", Pos: 10},
		{Kind: LineBreak, Raw: "\n", Pos: 11},
		{Kind: Plaintext, Raw: "b", Pos: 12},
	}, Tokenize("[bl][/bl]\na\nb"))
}

func TestTokenize_LinkAndColourCaptures(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: LinkStart, Raw: "[link=http://a.b/c?d=1]", Captures: []string{"http://a.b/c?d=1"}, Pos: 0},
		{Kind: Plaintext, Raw: "x", Pos: 23},
		{Kind: LinkEnd, Raw: "[/link]", Pos: 24},
		{Kind: ColourStart, Raw: "[color=#f00]", Captures: []string{"#f00"}, Pos: 31},
		{Kind: Plaintext, Raw: "y", Pos: 43},
		{Kind: ColourEnd, Raw: "[/colour]", Pos: 44},
	}, Tokenize("[link=http://a.b/c?d=1]x[/link][color=#f00]y[/colour]"))
}

func TestTokenize_EmptyLinkTarget(t *testing.T) {
	tokens := Tokenize("[link=]x[/link]")
	require.Len(t, tokens, 3)
	require.Equal(t, LinkStart, tokens[0].Kind)
	require.Equal(t, []string{""}, tokens[0].Captures)
}

func TestTokenize_Emoticons(t *testing.T) {
	testCases := []struct {
		input string
		kind  Kind
	}{
		{":)", EmojiSmile},
		{":(", EmojiSad},
		{">:(", EmojiAngry},
		{":'(", EmojiCry},
		{":D", EmojiGrin},
		{";)", EmojiWink},
		{":p", EmojiTongue},
		{":O", EmojiSurprised},
		{"<3", EmojiHeart},
		{":+1:", EmojiThumbsUp},
		{":-1:", EmojiThumbsDown},
		{":lol:", EmojiLaugh},
		{":wow:", EmojiWow},
		{":angry:", EmojiRage},
		{":heart:", EmojiLove},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			requireTokens(t, []Token{
				{Kind: Plaintext, Raw: "a ", Pos: 0},
				{Kind: tc.kind, Raw: tc.input, Pos: 2},
			}, Tokenize("a "+tc.input))
		})
	}
}

func TestTokenize_Whitespace(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: Plaintext, Raw: "a", Pos: 0},
		{Kind: DoubleSpace, Raw: "  ", Pos: 1},
		{Kind: Plaintext, Raw: " b", Pos: 3},
		{Kind: LineBreak, Raw: "\r\n", Pos: 5},
		{Kind: Plaintext, Raw: "c", Pos: 7},
	}, Tokenize("a   b\r\nc"))
}

func TestTokenize_MultiByteText(t *testing.T) {
	requireTokens(t, []Token{
		{Kind: Plaintext, Raw: "привет ", Pos: 0},
		{Kind: BoldStart, Raw: "[b]", Pos: 13},
		{Kind: Plaintext, Raw: "мир", Pos: 16},
		{Kind: BoldEnd, Pos: 22, Synthetic: true},
	}, Tokenize("привет [b]мир"))
}

func TestLexer_NextMatchesTokenize(t *testing.T) {
	input := "[quote]@alice said :)[/quote]\n[spoiler]x[hr]"
	l := NewLexer(input)

	var got []Token
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		got = append(got, tok)
	}

	requireTokens(t, Tokenize(input), got)

	// exhausted lexer stays exhausted
	_, ok := l.Next()
	require.False(t, ok)
	require.Zero(t, l.State().OpenCount(SpoilerStart))
	require.Zero(t, l.State().OpenCount(Kind(-1)))
}

func TestTokenize_PlaintextMaximality(t *testing.T) {
	inputs := []string{
		"a [b]b[/b] c  d\ne",
		"[x] [y] [[b]]",
		"no tags at all, just text.",
		"[code]a[b]c[/code]d",
	}

	for _, input := range inputs {
		tokens := Tokenize(input)
		for i := 1; i < len(tokens); i++ {
			bothText := tokens[i-1].Kind == Plaintext && tokens[i].Kind == Plaintext
			require.False(t, bothText, "adjacent plain text in %q at %d", input, i)
		}
	}
}

func requireBalanced(t *testing.T, input string) {
	t.Helper()

	var counts [kindCount]int
	for _, tok := range Tokenize(input) {
		switch {
		case tok.Kind.IsStart():
			counts[tok.Kind]++
		case tok.Kind.IsEnd():
			counts[tok.Kind.Pair()]--
		}
	}

	for _, start := range startKinds {
		require.Zero(t, counts[start], "%s is unbalanced in %q", start, input)
	}
}

func TestTokenize_Balance(t *testing.T) {
	inputs := []string{
		"[b][i][u][s]",
		"[/b][/i][/u][/s][/bq][/bl][/link][/colour][/spoiler][/code]",
		"[b]x[/b][/b][b]",
		"[code][b][/code][/b]",
		"[link=x][link=y]z[/link]",
		strings.Repeat("[quote]", 10) + "x" + strings.Repeat("[/bq]", 3),
	}

	for _, input := range inputs {
		requireBalanced(t, input)
	}
}

func FuzzTokenize_Balance(f *testing.F) {
	f.Add("[b]bold")
	f.Add("bold[/b]")
	f.Add("Hello @alice, check [link=https://example.com]this[/link]!")
	f.Add("[code][b]x[/code][/b]")
	f.Add("[bq]hi[/bq]\nNext")

	f.Fuzz(func(t *testing.T, input string) {
		requireBalanced(t, input)
	})
}
