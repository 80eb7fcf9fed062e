package syntax

import (
	"strings"
)

// BindKind tags the Binding union.
type BindKind int

const (
	BindFormula BindKind = iota
	BindSide
	BindStandard
)

// Binding is what a schematic variable stands for: a formula for
// metavariables, a stretch of side members for context variables, or a
// standard for standard variables.
type Binding struct {
	Kind BindKind
	F    *Formula
	Side Side
	Std  *Standard
}

func BindF(f *Formula) Binding {
	return Binding{Kind: BindFormula, F: f}
}

func BindS(side Side) Binding {
	return Binding{Kind: BindSide, Side: side}
}

func BindStd(std *Standard) Binding {
	return Binding{Kind: BindStandard, Std: std}
}

func (b Binding) Equal(o Binding) bool {
	if b.Kind != o.Kind {
		return false
	}
	switch b.Kind {
	case BindFormula:
		return b.F.Equal(o.F)
	case BindSide:
		return b.Side.Equal(o.Side)
	case BindStandard:
		return b.Std.Equal(o.Std)
	}
	return false
}

func (b Binding) Key() string {
	switch b.Kind {
	case BindFormula:
		return b.F.Key()
	case BindSide:
		return "[" + b.Side.Key() + "]"
	case BindStandard:
		return b.Std.Key()
	}
	return "?"
}

// Substitution maps schematic variable symbols to bindings. Enumeration
// follows insertion order, so runs are reproducible.
type Substitution struct {
	syms []string
	vals map[string]Binding
}

func NewSubstitution() *Substitution {
	return &Substitution{vals: map[string]Binding{}}
}

func (s *Substitution) Len() int {
	return len(s.syms)
}

func (s *Substitution) Get(sym string) (Binding, bool) {
	b, ok := s.vals[sym]
	return b, ok
}

// Bind sets sym to b. A symbol bound for the first time goes to the end
// of the enumeration order; rebinding keeps the original position.
func (s *Substitution) Bind(sym string, b Binding) {
	if _, ok := s.vals[sym]; !ok {
		s.syms = append(s.syms, sym)
	}
	s.vals[sym] = b
}

// Syms returns the bound symbols in insertion order.
func (s *Substitution) Syms() []string {
	return append([]string(nil), s.syms...)
}

func (s *Substitution) Clone() *Substitution {
	res := &Substitution{
		syms: append([]string(nil), s.syms...),
		vals: make(map[string]Binding, len(s.vals)),
	}
	for k, v := range s.vals {
		res.vals[k] = v
	}
	return res
}

// Equal compares bindings, ignoring insertion order.
func (s *Substitution) Equal(o *Substitution) bool {
	if len(s.vals) != len(o.vals) {
		return false
	}
	for k, v := range s.vals {
		ov, ok := o.vals[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

func (s *Substitution) Key() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, sym := range s.syms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sym)
		b.WriteString(": ")
		b.WriteString(s.vals[sym].Key())
	}
	b.WriteByte('}')
	return b.String()
}

func (s *Substitution) String() string {
	return s.Key()
}
