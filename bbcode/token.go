package bbcode

// Token is a single classified unit of the input: a tag, a run of literal text,
// an emoticon or a user mention.
type Token struct {
	// Kind defines the class of the Token.
	Kind Kind

	// Raw is the exact matched byte sequence from the input.
	// Synthetic tokens have an empty Raw.
	Raw string

	// Captures holds the parenthesized parts of the match, e.g. the URL of a link,
	// the value of a colour or the username of a mention.
	Captures []string

	// Pos is the byte offset of Raw in the input string.
	//
	// For synthetic tokens Pos is the offset at which the token was inserted.
	Pos int

	// Synthetic is true if the Token did not appear in the input and was
	// inserted to repair unbalanced markup.
	Synthetic bool
}

// capture returns i-th captured group of the token or an empty string if there is none.
func capture(captures []string, i int) string {
	if i < len(captures) {
		return captures[i]
	}
	return ""
}
