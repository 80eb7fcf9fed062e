// Package token tokenizes logic notation: formulae in infix form,
// inference bars and sequent separators.
package token

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const punct = "(),⇒|/"

// Tokenize splits src into tokens. ops are the connective symbols of
// the language in play; at every position the longest matching symbol
// wins. Whitespace separates tokens and is otherwise ignored. A run of
// '/' lexes as a single TInfSep whose length is the inference level.
func Tokenize(ops []string, src string) ([]Token, error) {
	sorted := make([]string, len(ops))
	copy(sorted, ops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	var toks []Token
	i := 0
	for i < len(src) {
		r, w := utf8.DecodeRuneInString(src[i:])
		if r == utf8.RuneError && w == 1 {
			return nil, NewTokenizeErr(ErrBadUTF8, i)
		}
		switch {
		case unicode.IsSpace(r):
			i += w
		case r == '(':
			toks = append(toks, Token{Type: TLParen, Pos: i, Text: "("})
			i += w
		case r == ')':
			toks = append(toks, Token{Type: TRParen, Pos: i, Text: ")"})
			i += w
		case r == ',':
			toks = append(toks, Token{Type: TComma, Pos: i, Text: ","})
			i += w
		case r == '⇒':
			toks = append(toks, Token{Type: TTwoSided, Pos: i, Text: "⇒"})
			i += w
		case r == '|':
			toks = append(toks, Token{Type: TNSided, Pos: i, Text: "|"})
			i += w
		case r == '/':
			j := i
			for j < len(src) && src[j] == '/' {
				j++
			}
			toks = append(toks, Token{Type: TInfSep, Pos: i, Text: src[i:j]})
			i = j
		default:
			if op := matchOp(sorted, src[i:]); op != "" {
				toks = append(toks, Token{Type: TConn, Pos: i, Text: op})
				i += len(op)
				continue
			}
			j := i + w
			for j < len(src) {
				r2, w2 := utf8.DecodeRuneInString(src[j:])
				if r2 == utf8.RuneError && w2 == 1 {
					break
				}
				if unicode.IsSpace(r2) || strings.ContainsRune(punct, r2) || matchOp(sorted, src[j:]) != "" {
					break
				}
				j += w2
			}
			toks = append(toks, Token{Type: TWord, Pos: i, Text: src[i:j]})
			i = j
		}
	}
	return toks, nil
}

func matchOp(sorted []string, s string) string {
	for _, op := range sorted {
		if strings.HasPrefix(s, op) {
			return op
		}
	}
	return ""
}
