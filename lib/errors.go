package lib

import (
	"fmt"
)

// LexicalError is the only error the scanner produces. Scanning halts at
// the first one; there is no recovery or multi-error collection. Char is
// zero when no single offending character applies.
type LexicalError struct {
	Msg  string
	Char rune
	Line int
}

func (e *LexicalError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("%s '%c' in line %d", e.Msg, e.Char, e.Line)
	}
	return e.Msg
}
