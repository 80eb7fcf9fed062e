// Package parse converts logic notation to and from syntax values:
// formulae in infix form, inferences with / bars, and two or n sided
// sequents. A Parser carries an alias table so input may use ASCII
// spellings like "not", "&" or "==>".
package parse

import (
	"fmt"
	"strings"

	"github.com/sequitur-logic/sequitur/lang"
	"github.com/sequitur-logic/sequitur/syntax"
	"github.com/sequitur-logic/sequitur/token"
)

// Replacement rewrites an alias before tokenization. Replacements are
// applied in declaration order over the raw input.
type Replacement struct {
	Old, New string
}

type Parser struct {
	lang      *lang.Language
	ops       []string
	infix     map[string]bool
	replace   []Replacement
	unreplace []Replacement
}

type Option func(*Parser)

// WithReplacements sets the alias table applied before tokenization.
func WithReplacements(rs ...Replacement) Option {
	return func(p *Parser) { p.replace = rs }
}

// WithUnparseReplacements sets rewrites applied to unparsed output.
func WithUnparseReplacements(rs ...Replacement) Option {
	return func(p *Parser) { p.unreplace = rs }
}

// WithInfix restricts which connectives are written infix. The default
// is every binary connective of the language.
func WithInfix(syms ...string) Option {
	return func(p *Parser) {
		p.infix = make(map[string]bool, len(syms))
		for _, s := range syms {
			p.infix[s] = true
		}
	}
}

func New(l *lang.Language, opts ...Option) *Parser {
	p := &Parser{lang: l, infix: map[string]bool{}}
	for _, c := range l.Connectives {
		p.ops = append(p.ops, c.Sym)
		if c.Arity == 2 {
			p.infix[c.Sym] = true
		}
	}
	for _, f := range opts {
		f(p)
	}
	return p
}

// Value is a tagged union of parse results: exactly one field is set.
type Value struct {
	F   *syntax.Formula
	Inf *syntax.Inference
	Seq syntax.Sequent
}

// Parse reads a formula, an inference or a sequent, picking the kind by
// the separators present: sequent separators win over inference bars,
// and plain input is a formula.
func (p *Parser) Parse(s string) (*Value, error) {
	toks, err := p.tokenize(s)
	if err != nil {
		return nil, err
	}
	switch {
	case hasType(toks, token.TTwoSided) || hasType(toks, token.TNSided):
		q, err := p.sequent(toks)
		if err != nil {
			return nil, err
		}
		return &Value{Seq: q}, nil
	case hasType(toks, token.TInfSep):
		inf, err := p.inference(toks, true)
		if err != nil {
			return nil, err
		}
		return &Value{Inf: inf}, nil
	default:
		f, err := p.formulaRange(toks)
		if err != nil {
			return nil, err
		}
		return &Value{F: f}, nil
	}
}

func (p *Parser) ParseFormula(s string) (*syntax.Formula, error) {
	toks, err := p.tokenize(s)
	if err != nil {
		return nil, err
	}
	return p.formulaRange(toks)
}

func (p *Parser) ParseInference(s string) (*syntax.Inference, error) {
	toks, err := p.tokenize(s)
	if err != nil {
		return nil, err
	}
	return p.inference(toks, true)
}

func (p *Parser) ParseSequent(s string) (syntax.Sequent, error) {
	toks, err := p.tokenize(s)
	if err != nil {
		return nil, err
	}
	return p.sequent(toks)
}

func (p *Parser) tokenize(s string) ([]token.Token, error) {
	for _, r := range p.replace {
		s = strings.ReplaceAll(s, r.Old, r.New)
	}
	toks, err := token.Tokenize(p.ops, s)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	return toks, nil
}

// ------------------------------------------------------------------
// formulae

func (p *Parser) formulaRange(toks []token.Token) (*syntax.Formula, error) {
	pi := 0
	f, err := p.expr(toks, &pi)
	if err != nil {
		return nil, err
	}
	if pi != len(toks) {
		return nil, unexpected(&toks[pi])
	}
	return f, nil
}

// expr is an operand optionally followed by one infix application.
// Chaining infix operators at the same level needs parentheses.
func (p *Parser) expr(toks []token.Token, pi *int) (*syntax.Formula, error) {
	left, err := p.operand(toks, pi)
	if err != nil {
		return nil, err
	}
	if *pi < len(toks) && toks[*pi].Type == token.TConn && p.infix[toks[*pi].Text] {
		op := toks[*pi].Text
		*pi++
		right, err := p.operand(toks, pi)
		if err != nil {
			return nil, err
		}
		return syntax.Apply(op, left, right), nil
	}
	return left, nil
}

func (p *Parser) operand(toks []token.Token, pi *int) (*syntax.Formula, error) {
	if *pi >= len(toks) {
		return nil, expectedAt(toks, *pi, "a formula")
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TWord:
		if !p.lang.IsAtomic(t.Text) && !p.lang.IsMetavariable(t.Text) && !p.lang.IsConstant(t.Text) {
			return nil, fmt.Errorf("%w: %q is not a formula of the language", ErrParse, t.Text)
		}
		*pi++
		return syntax.Atom(t.Text), nil
	case token.TConn:
		sym := t.Text
		arity, _ := p.lang.Arity(sym)
		*pi++
		if arity == 1 {
			arg, err := p.operand(toks, pi)
			if err != nil {
				return nil, err
			}
			return syntax.Apply(sym, arg), nil
		}
		// Prefix notation: sym(a, b, ...).
		if err := expect(toks, pi, token.TLParen, `"("`); err != nil {
			return nil, err
		}
		var args []*syntax.Formula
		for {
			arg, err := p.expr(toks, pi)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if *pi < len(toks) && toks[*pi].Type == token.TComma {
				*pi++
				continue
			}
			break
		}
		if err := expect(toks, pi, token.TRParen, `")"`); err != nil {
			return nil, err
		}
		if len(args) != arity {
			return nil, fmt.Errorf("%w: %q wants %d arguments, got %d", ErrParse, sym, arity, len(args))
		}
		return syntax.Apply(sym, args...), nil
	case token.TLParen:
		// A parenthesized group is a binary infix application.
		*pi++
		left, err := p.operand(toks, pi)
		if err != nil {
			return nil, err
		}
		if *pi >= len(toks) || toks[*pi].Type != token.TConn || !p.infix[toks[*pi].Text] {
			return nil, expectedAt(toks, *pi, "an infix connective")
		}
		op := toks[*pi].Text
		*pi++
		right, err := p.operand(toks, pi)
		if err != nil {
			return nil, err
		}
		if err := expect(toks, pi, token.TRParen, `")"`); err != nil {
			return nil, err
		}
		return syntax.Apply(op, left, right), nil
	}
	return nil, unexpected(t)
}

// ------------------------------------------------------------------
// inferences

// inference parses a token range as an inference. With outer set the
// surrounding parentheses are optional; nested inferences must be
// parenthesized.
func (p *Parser) inference(toks []token.Token, outer bool) (*syntax.Inference, error) {
	if !outer && !wrapped(toks) {
		return nil, fmt.Errorf("%w: nested inference must be parenthesized", ErrParse)
	}
	for wrapped(toks) {
		toks = toks[1 : len(toks)-1]
	}
	sep, err := topSeparator(toks)
	if err != nil {
		return nil, err
	}
	prems, err := p.judgements(toks[:sep])
	if err != nil {
		return nil, err
	}
	concls, err := p.judgements(toks[sep+1:])
	if err != nil {
		return nil, err
	}
	if len(prems) == 0 && len(concls) == 0 {
		return syntax.NewInference(nil, nil, toks[sep].Level())
	}
	return syntax.NewInference(prems, concls, 0)
}

// topSeparator finds the unique depth 0 inference separator of the
// highest level.
func topSeparator(toks []token.Token) (int, error) {
	depth, best, count := 0, -1, 0
	for i := range toks {
		switch toks[i].Type {
		case token.TLParen:
			depth++
		case token.TRParen:
			depth--
		case token.TInfSep:
			if depth != 0 {
				continue
			}
			switch {
			case best < 0 || toks[i].Level() > toks[best].Level():
				best, count = i, 1
			case toks[i].Level() == toks[best].Level():
				count++
			}
		}
	}
	if best < 0 {
		return 0, fmt.Errorf("%w: no top level inference separator", ErrParse)
	}
	if count > 1 {
		return 0, fmt.Errorf("%w: more than one top level %q separator", ErrParse, toks[best].Text)
	}
	return best, nil
}

func (p *Parser) judgements(toks []token.Token) ([]syntax.Judgement, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	var res []syntax.Judgement
	for _, ch := range splitTop(toks, token.TComma) {
		if len(ch) == 0 {
			return nil, fmt.Errorf("%w: empty inference member", ErrParse)
		}
		if hasType(ch, token.TInfSep) {
			inf, err := p.inference(ch, false)
			if err != nil {
				return nil, err
			}
			res = append(res, syntax.InferenceJudgement(inf))
			continue
		}
		f, err := p.formulaRange(ch)
		if err != nil {
			return nil, err
		}
		res = append(res, syntax.FormulaJudgement(f))
	}
	return res, nil
}

// ------------------------------------------------------------------
// sequents

func (p *Parser) sequent(toks []token.Token) (syntax.Sequent, error) {
	two := hasType(toks, token.TTwoSided)
	n := hasType(toks, token.TNSided)
	switch {
	case two && n:
		return nil, fmt.Errorf("%w: mixed sequent separators", ErrParse)
	case !two && !n:
		return nil, fmt.Errorf("%w: no sequent separator", ErrParse)
	}
	sepType := token.TNSided
	if two {
		sepType = token.TTwoSided
	}
	parts := splitTop(toks, sepType)
	if two && len(parts) != 2 {
		return nil, fmt.Errorf("%w: a two sided sequent has exactly one %q", ErrParse, "⇒")
	}
	sides := make([]syntax.Side, len(parts))
	for i, part := range parts {
		s, err := p.side(part)
		if err != nil {
			return nil, err
		}
		sides[i] = s
	}
	return syntax.NewSequent(sides...)
}

func (p *Parser) side(toks []token.Token) (syntax.Side, error) {
	s := syntax.Side{}
	if len(toks) == 0 {
		return s, nil
	}
	for _, ch := range splitTop(toks, token.TComma) {
		if len(ch) == 0 {
			return nil, fmt.Errorf("%w: empty sequent member", ErrParse)
		}
		if len(ch) == 1 && ch[0].Type == token.TWord && p.lang.IsContextVariable(ch[0].Text) {
			s = append(s, syntax.ContextMember(ch[0].Text))
			continue
		}
		f, err := p.formulaRange(ch)
		if err != nil {
			return nil, err
		}
		s = append(s, syntax.FormulaMember(f))
	}
	return s, nil
}

// ------------------------------------------------------------------
// token range helpers

func hasType(toks []token.Token, tt token.TokenType) bool {
	for i := range toks {
		if toks[i].Type == tt {
			return true
		}
	}
	return false
}

// wrapped reports whether the first token is a parenthesis closed by
// the last.
func wrapped(toks []token.Token) bool {
	if len(toks) < 2 || toks[0].Type != token.TLParen {
		return false
	}
	depth := 0
	for i := range toks {
		switch toks[i].Type {
		case token.TLParen:
			depth++
		case token.TRParen:
			depth--
			if depth == 0 {
				return i == len(toks)-1
			}
		}
	}
	return false
}

// splitTop splits at depth 0 occurrences of tt. Separators inside
// parentheses are left alone.
func splitTop(toks []token.Token, tt token.TokenType) [][]token.Token {
	var res [][]token.Token
	depth, start := 0, 0
	for i := range toks {
		switch toks[i].Type {
		case token.TLParen:
			depth++
		case token.TRParen:
			depth--
		case tt:
			if depth == 0 {
				res = append(res, toks[start:i])
				start = i + 1
			}
		}
	}
	return append(res, toks[start:])
}

func expect(toks []token.Token, pi *int, tt token.TokenType, what string) error {
	if *pi >= len(toks) || toks[*pi].Type != tt {
		return expectedAt(toks, *pi, what)
	}
	*pi++
	return nil
}
