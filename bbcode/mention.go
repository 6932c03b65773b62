package bbcode

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// addressPunct are the characters which make an '@' look like a part of an e-mail address
// or a URL rather than a mention, e.g. "first.last@host" or "https://host/@user".
const addressPunct = ".-+%/:=&?#"

// isWordRune reports whether r can be a part of a username.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// mentionEligible is the first phase of the mention recognition: it reports whether
// an '@' at the end of the buffer can start a mention.
//
// The '@' can start a mention if it's the first character of the buffer or if it follows
// a non-word character. An '@' following a word character or an address punctuation is
// address-shaped and stays plain text.
func mentionEligible(before string) bool {
	if before == "" {
		return true
	}

	prev, _ := utf8.DecodeLastRuneInString(before)
	if isWordRune(prev) {
		return false
	}

	return !strings.ContainsRune(addressPunct, prev)
}

// mention tracks a tentative mention in the unmatched buffer. The mention is not
// committed until it's confirmed by a non-word character or by the end of input.
type mention struct {
	// at is the byte offset of the '@' in the input, -1 if there is no tentative mention.
	at int
}

func (m *mention) active() bool {
	return m.at >= 0
}

func (m *mention) reset() {
	m.at = -1
}

// hasName reports whether at least one username rune follows the '@' before the offset end.
func (m *mention) hasName(end int) bool {
	return m.active() && end > m.at+1
}
