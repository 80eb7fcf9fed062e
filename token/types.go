package token

import "fmt"

type TokenType int

const (
	TWord TokenType = iota
	TConn
	TLParen
	TRParen
	TComma
	TInfSep
	TTwoSided
	TNSided
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TWord:     "TWord",
		TConn:     "TConn",
		TLParen:   "TLParen",
		TRParen:   "TRParen",
		TComma:    "TComma",
		TInfSep:   "TInfSep",
		TTwoSided: "TTwoSided",
		TNSided:   "TNSided",
	}[t]
}

// Token is a lexeme of logic notation. Pos is a byte offset into the
// prepared input.
type Token struct {
	Type TokenType
	Pos  int
	Text string
}

// Level is the inference level encoded by a TInfSep token: 1 for "/",
// 2 for "//" and so on.
func (t *Token) Level() int {
	if t.Type != TInfSep {
		return 0
	}
	return len(t.Text)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q at offset %d", t.Type, t.Text, t.Pos)
}

type TokenizeErr struct {
	Err error
	Pos int
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func NewTokenizeErr(err error, pos int) *TokenizeErr {
	return &TokenizeErr{Err: err, Pos: pos}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err.Error(), e.Pos)
}

func ExpectedErr(what string, pos int) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), pos)
}

func UnexpectedErr(what string, pos int) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), pos)
}
