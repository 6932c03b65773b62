package bbcode

// BalancerState is the state carried alongside the lexer during a single parse call.
// It is never shared between calls.
type BalancerState struct {
	// openCounts holds the number of currently open tags for every Start kind.
	openCounts [kindCount]int

	// ignoringBreaks is true right after a blockquote or a block was closed,
	// until any token other than a line break is emitted.
	ignoringBreaks bool

	// inCodeLiteral is true while at least one code tag is open.
	inCodeLiteral bool
}

// OpenCount returns the number of currently open tags of the Start kind.
func (s BalancerState) OpenCount(start Kind) int {
	if start < 0 || start >= kindCount {
		return 0
	}
	return s.openCounts[start]
}

// open registers a Start tag.
func (s *BalancerState) open(start Kind) {
	s.openCounts[start]++
	s.inCodeLiteral = s.openCounts[CodeStart] > 0
}

// close registers an End tag and reports whether it had an open counterpart.
// When it returns false the caller must emit a synthetic Start.
func (s *BalancerState) close(end Kind) bool {
	start := end.Pair()
	if s.openCounts[start] == 0 {
		return false
	}

	s.openCounts[start]--
	s.inCodeLiteral = s.openCounts[CodeStart] > 0
	return true
}

// suppress reports whether the token must be swallowed according to the whitespace
// rules, and updates the rules' state with the emitted token otherwise.
func (s *BalancerState) suppress(k Kind) bool {
	if k == LineBreak && s.ignoringBreaks {
		return true
	}

	s.ignoringBreaks = k == BlockquoteEnd || k == BlockEnd
	return false
}

// unclosed returns synthetic End tokens for every tag left open, ordered by kind
// ascending through the catalog, and resets the open counts.
func (s *BalancerState) unclosed(pos int) []Token {
	var out []Token
	for _, start := range startKinds {
		for ; s.openCounts[start] > 0; s.openCounts[start]-- {
			out = append(out, Token{Kind: start.Pair(), Pos: pos, Synthetic: true})
		}
	}

	s.inCodeLiteral = false
	return out
}
