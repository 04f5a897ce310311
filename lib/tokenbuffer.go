package lib

// TokenBuffer hands one scan's output to a consumer in order. The scan
// completes before the first read, so unlike a live token stream there is
// nothing to wait on and reads cannot fail.
type TokenBuffer struct {
	tokens []Token
	pos    int
}

var _ tokenReader = (*TokenBuffer)(nil)

func NewTokenBuffer(tokens []Token) *TokenBuffer {
	return &TokenBuffer{tokens: tokens}
}

func (tb *TokenBuffer) Next() (Token, bool) {
	tok, done := tb.Peek()
	if !done {
		tb.pos++
	}
	return tok, done
}

func (tb *TokenBuffer) Peek() (Token, bool) {
	if tb.pos >= len(tb.tokens) {
		return Token{}, true
	}
	return tb.tokens[tb.pos], false
}
