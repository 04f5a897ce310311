package lib

// tokenReader is the read side handed to a downstream parser: tokens in
// scan order with one-token lookahead. The bool result reports that the
// sequence is exhausted.
type tokenReader interface {
	Next() (tok Token, done bool)
	Peek() (tok Token, done bool)
}
