package parse

import (
	"errors"
	"fmt"

	"github.com/sequitur-logic/sequitur/token"
)

var (
	ErrParse = errors.New("parse error")
)

func unexpected(t *token.Token) error {
	return fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, t.Text, t.Pos)
}

func expectedAt(toks []token.Token, i int, what string) error {
	if i >= len(toks) {
		return fmt.Errorf("%w: expected %s at end of input", ErrParse, what)
	}
	return fmt.Errorf("%w: expected %s, got %q at offset %d", ErrParse, what, toks[i].Text, toks[i].Pos)
}
