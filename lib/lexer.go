package lib

// Lex scans source and hands each token to emit in order. It stops at the
// first lexical error; tokens emitted before the failure have already been
// delivered to the callback.
func Lex(source string, emit func(Token)) error {
	l := newLexer(source, emit)
	return l.scan()
}

// Scan runs one complete scan and returns the full token sequence, or the
// first LexicalError with no tokens.
func Scan(source string) ([]Token, error) {
	tokens := []Token{}
	err := Lex(source, func(tok Token) {
		tokens = append(tokens, tok)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// lexer holds the state of one scan call: the source, a cursor and the
// 0-based line of the cursor position. A lexer is never reused.
type lexer struct {
	src          []rune
	pos          int
	line         int
	emitCallback func(Token)
}

func newLexer(source string, emit func(Token)) *lexer {
	return &lexer{
		src:          []rune(source),
		pos:          0,
		line:         0,
		emitCallback: emit,
	}
}

// scan is the dispatch loop. It classifies the character at the cursor,
// runs the matching automaton, and lets accept do the shared bookkeeping.
func (l *lexer) scan() error {
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		switch {
		case isLetter(ch):
			if err := l.accept(l.scanWord(l.pos)); err != nil {
				return err
			}
		case isDigit(ch) || ch == '.':
			if err := l.accept(l.scanNumber(l.pos)); err != nil {
				return err
			}
		case isOperatorChar(ch):
			if err := l.accept(l.scanOperator(l.pos)); err != nil {
				return err
			}
		case ch == '{' || ch == '}':
			if err := l.accept(Token{Kind: TokenBlock, Text: string(ch)}, nil); err != nil {
				return err
			}
		case ch == '\n' || ch == '\r':
			l.line++
			l.pos++
		case ch == ' ' || ch == '\t':
			l.pos++
		default:
			return &LexicalError{Msg: "unexpected char", Char: ch, Line: l.line}
		}
	}
	return nil
}

// accept stamps the token with the line of its first character, emits it,
// and advances the cursor past exactly the consumed text. Automata never
// consume newlines, so the current line is always the starting line.
func (l *lexer) accept(tok Token, err error) error {
	if err != nil {
		return err
	}
	tok.Line = l.line
	l.emitCallback(tok)
	l.pos += len([]rune(tok.Text))
	return nil
}

// Dispatch class for the operator automaton. Note that '<' and '>' are
// not members: the automaton can scan them (see scanOperator) but the
// dispatcher treats them as unexpected characters.
func isOperatorChar(ch rune) bool {
	switch ch {
	case '+', '-', '*', '/', '&', '|', '=', '!', ';', '(', ')':
		return true
	}
	return false
}

// scanWord consumes a maximal [A-Za-z][A-Za-z0-9]* run starting at start
// and classifies it against the keyword set. The terminating character is
// inspected but not included in the token.
func (l *lexer) scanWord(start int) (Token, error) {
	if start >= len(l.src) || !isLetter(l.src[start]) {
		return Token{}, &LexicalError{Msg: "not an identifier", Line: l.line}
	}
	end := start + 1
	for end < len(l.src) && (isLetter(l.src[end]) || isDigit(l.src[end])) {
		end++
	}
	text := string(l.src[start:end])
	if keywords[text] {
		return Token{Kind: TokenKeyword, Text: text}, nil
	}
	return Token{Kind: TokenID, Text: text}, nil
}

// Number automaton states. FRACREQ is the only state that cannot legally
// end the literal: it has demanded a digit after a dot.
type numState int

const (
	numStart numState = iota
	numLeadZero
	numDigits
	numFracReq
	numFrac
)

// scanNumber consumes a decimal literal (no sign, no exponent) starting
// at start. Accepted shapes: "0", digit runs, optional fraction with at
// least one digit, and fraction-only literals like ".5". A digit run may
// start with '0' ("01" scans as one literal), but a second '0' right
// after the leading zero terminates it, so "00" is two tokens.
func (l *lexer) scanNumber(start int) (Token, error) {
	state := numStart
	end := start
loop:
	for end < len(l.src) {
		ch := l.src[end]
		switch state {
		case numStart:
			switch {
			case ch == '0':
				state = numLeadZero
			case ch >= '1' && ch <= '9':
				state = numDigits
			case ch == '.':
				state = numFracReq
			default:
				return Token{}, &LexicalError{Msg: "not a number", Line: l.line}
			}
		case numLeadZero:
			switch {
			case ch >= '1' && ch <= '9':
				state = numDigits
			case ch == '.':
				state = numFracReq
			default:
				break loop
			}
		case numDigits:
			switch {
			case isDigit(ch):
			case ch == '.':
				state = numFracReq
			default:
				break loop
			}
		case numFracReq:
			if !isDigit(ch) {
				return Token{}, &LexicalError{Msg: "not a number", Line: l.line}
			}
			state = numFrac
		case numFrac:
			if !isDigit(ch) {
				break loop
			}
		}
		end++
	}
	if state == numStart || state == numFracReq {
		return Token{}, &LexicalError{Msg: "not a number", Line: l.line}
	}
	return Token{Kind: TokenNumber, Text: string(l.src[start:end])}, nil
}

var doubleOps = map[string]bool{
	"++": true,
	"--": true,
	"==": true,
	"!=": true,
	"<=": true,
	">=": true,
	"&&": true,
	"||": true,
}

// scanOperator consumes an operator or punctuation lexeme starting at
// start, using at most one character of lookahead; the longest match
// wins. The lookahead character is not included unless it completes a
// two-character operator.
func (l *lexer) scanOperator(start int) (Token, error) {
	if start >= len(l.src) {
		return Token{}, &LexicalError{Msg: "not an operator", Line: l.line}
	}
	first := l.src[start]
	switch first {
	case '*', '/', '(', ')', ';':
		return Token{Kind: TokenOperator, Text: string(first)}, nil
	case '+', '-', '=', '&', '|', '>', '<', '!':
		if start+1 < len(l.src) {
			pair := string(l.src[start : start+2])
			if doubleOps[pair] {
				return Token{Kind: TokenOperator, Text: pair}, nil
			}
		}
		return Token{Kind: TokenOperator, Text: string(first)}, nil
	}
	return Token{}, &LexicalError{Msg: "not an operator", Line: l.line}
}
