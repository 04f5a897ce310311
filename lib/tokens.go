package lib

// TokenKind values are stable strings because the token shape is handed
// to the downstream parser as-is and may be serialized.
type TokenKind string

const (
	TokenKeyword  TokenKind = "keyword"
	TokenID       TokenKind = "id"
	TokenNumber   TokenKind = "number"
	TokenOperator TokenKind = "operator"
	TokenBlock    TokenKind = "block"
)

// Token is one classified lexeme. Text is the exact source substring that
// was consumed; Line is the 0-based line of its first character.
type Token struct {
	Kind TokenKind `json:"kind"`
	Text string    `json:"text"`
	Line int       `json:"line"`
}

// Reserved words. Checked by exact match after a full identifier run has
// been scanned, so "variable" stays an id.
var keywords = map[string]bool{
	"var":      true,
	"if":       true,
	"else":     true,
	"while":    true,
	"for":      true,
	"break":    true,
	"continue": true,
	"function": true,
	"return":   true,
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
