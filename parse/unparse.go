package parse

import (
	"strings"

	"github.com/sequitur-logic/sequitur/syntax"
)

// Unparse renders a parsed value back to notation. The result parses to
// an equal value.
func (p *Parser) Unparse(v *Value) string {
	switch {
	case v.Seq != nil:
		return p.UnparseSequent(v.Seq)
	case v.Inf != nil:
		return p.UnparseInference(v.Inf)
	default:
		return p.UnparseFormula(v.F)
	}
}

func (p *Parser) UnparseFormula(f *syntax.Formula) string {
	return p.post(p.unparseFormula(f, true))
}

func (p *Parser) unparseFormula(f *syntax.Formula, outer bool) string {
	if f.IsLeaf() {
		return f.Sym
	}
	if arity, ok := p.lang.Arity(f.Sym); ok && arity == 1 {
		return f.Sym + p.unparseFormula(f.Args[0], false)
	}
	if p.infix[f.Sym] && len(f.Args) == 2 {
		s := "(" + p.unparseFormula(f.Args[0], false) + " " + f.Sym + " " + p.unparseFormula(f.Args[1], false) + ")"
		if outer {
			return s[1 : len(s)-1]
		}
		return s
	}
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = p.unparseFormula(a, false)
	}
	return f.Sym + "(" + strings.Join(parts, ", ") + ")"
}

func (p *Parser) UnparseInference(inf *syntax.Inference) string {
	s := p.unparseInference(inf)
	return p.post(s[1 : len(s)-1])
}

func (p *Parser) unparseInference(inf *syntax.Inference) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, j := range inf.Premises {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.unparseJudgement(j))
	}
	if len(inf.Premises) > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(strings.Repeat("/", inf.Level()))
	if len(inf.Conclusions) > 0 {
		b.WriteByte(' ')
	}
	for i, j := range inf.Conclusions {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.unparseJudgement(j))
	}
	b.WriteByte(')')
	return b.String()
}

func (p *Parser) unparseJudgement(j syntax.Judgement) string {
	if j.Inf != nil {
		return p.unparseInference(j.Inf)
	}
	return p.unparseFormula(j.F, true)
}

func (p *Parser) UnparseSequent(q syntax.Sequent) string {
	sep := " | "
	if len(q) == 2 {
		sep = " ⇒ "
	}
	parts := make([]string, len(q))
	for i, side := range q {
		elems := make([]string, len(side))
		for j, m := range side {
			if m.IsContext() {
				elems[j] = m.Ctx
			} else {
				elems[j] = p.unparseFormula(m.F, true)
			}
		}
		parts[i] = strings.Join(elems, ", ")
	}
	return p.post(strings.TrimSpace(strings.Join(parts, sep)))
}

func (p *Parser) post(s string) string {
	for _, r := range p.unreplace {
		s = strings.ReplaceAll(s, r.Old, r.New)
	}
	return s
}
