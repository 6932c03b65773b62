package bbcode

import "unicode/utf8"

// Lexer turns an input string into the balanced sequence of Tokens.
//
// The sequence is finite, ordered and cannot be restarted: every call of Next
// returns the following Token until the input is exhausted.
type Lexer struct {
	input string

	// pos is the byte offset of the next rune to append to the buffer.
	pos int

	// start is the byte offset of the unmatched buffer, which spans input[start:pos].
	start int

	state   BalancerState
	mention mention

	// ready holds the Tokens produced but not yet returned by Next.
	ready []Token

	done bool
}

// NewLexer creates new Lexer over the input string.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:   input,
		mention: mention{at: -1},
	}
}

// Next returns the next Token and true, or an empty Token and false once the input is exhausted.
func (l *Lexer) Next() (Token, bool) {
	for len(l.ready) == 0 {
		if l.done {
			return Token{}, false
		}
		l.step()
	}

	tok := l.ready[0]
	l.ready = l.ready[1:]
	return tok, true
}

// State returns the balancer state as of the last appended rune.
func (l *Lexer) State() BalancerState {
	return l.state
}

// Tokenize returns the complete balanced token sequence of the input string.
func Tokenize(input string) []Token {
	l := NewLexer(input)

	// guessing the token number to minimize the number of the slice resizes
	tokens := make([]Token, 0, len(input)/4+1)

	for {
		tok, ok := l.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// step appends one rune to the buffer and tries to match it.
func (l *Lexer) step() {
	if l.pos >= len(l.input) {
		l.finish()
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	at := l.pos
	l.pos += w

	if l.mention.active() {
		// the tentative mention keeps growing, nothing is committed
		if isWordRune(r) {
			return
		}

		if l.mention.hasName(at) {
			l.commitMention(at)
			return
		}

		// a bare '@' followed by a non-word character
		l.mention.reset()
	}

	if r == '@' && !l.state.inCodeLiteral && mentionEligible(l.input[l.start:at]) {
		l.mention.at = at
		return
	}

	l.matchSuffix()
}

// matchSuffix tries the catalog entries triggered by the last appended byte against the buffer.
func (l *Lexer) matchSuffix() {
	buf := l.input[l.start:l.pos]

	for _, e := range byTrigger[buf[len(buf)-1]] {
		if l.state.inCodeLiteral && !e.Kind.allowedInCode() {
			continue
		}

		offset, captures, ok := e.match(buf)
		if !ok {
			continue
		}

		l.accept(e.Kind, l.start+offset, captures)
		return
	}
}

// accept emits the matched token spanning input[at:pos], preceded by the flushed
// buffer prefix and, for an unmatched End tag, by a synthetic Start.
func (l *Lexer) accept(kind Kind, at int, captures []string) {
	switch {
	case kind.IsStart():
		l.state.open(kind)

	case kind.IsEnd():
		if !l.state.close(kind) {
			// the synthetic Start goes before the text preceding the End tag
			l.emit(Token{Kind: kind.Pair(), Pos: l.start, Synthetic: true})
		}
	}

	l.flush(at)
	l.emit(Token{
		Kind:     kind,
		Raw:      l.input[at:l.pos],
		Captures: captures,
		Pos:      at,
	})
	l.start = l.pos
}

// commitMention emits the confirmed mention ending at the offset end. Every rune appended
// after the username is emitted as a separate Plaintext token.
func (l *Lexer) commitMention(end int) {
	at := l.mention.at
	l.mention.reset()

	l.flush(at)
	l.emit(Token{
		Kind:     UserTag,
		Raw:      l.input[at:end],
		Captures: []string{l.input[at+1 : end]},
		Pos:      at,
	})

	if end < l.pos {
		l.emit(Token{Kind: Plaintext, Raw: l.input[end:l.pos], Pos: end})
	}

	l.start = l.pos
}

// flush emits the buffer content before the offset end as a Plaintext token.
func (l *Lexer) flush(end int) {
	if l.start < end {
		l.emit(Token{Kind: Plaintext, Raw: l.input[l.start:end], Pos: l.start})
	}
	l.start = end
}

func (l *Lexer) emit(tok Token) {
	if l.state.suppress(tok.Kind) {
		return
	}
	l.ready = append(l.ready, tok)
}

// finish flushes the leftover buffer and closes every tag left open.
func (l *Lexer) finish() {
	if l.mention.hasName(l.pos) {
		l.commitMention(l.pos)
	}
	l.mention.reset()

	l.flush(l.pos)

	for _, tok := range l.state.unclosed(l.pos) {
		l.emit(tok)
	}

	l.done = true
}
