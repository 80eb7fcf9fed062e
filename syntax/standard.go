package syntax

import (
	"sort"
	"strings"
)

// StandardKind tags the Standard union.
type StandardKind int

const (
	// StdSet is a plain set of truth values, such as {1} or {1, i}.
	StdSet StandardKind = iota
	// StdPair is an ordered pair of lower-level standards.
	StdPair
	// StdVar is a schematic standard variable.
	StdVar
)

func (k StandardKind) String() string {
	switch k {
	case StdSet:
		return "set"
	case StdPair:
		return "pair"
	case StdVar:
		return "variable"
	}
	return "unknown"
}

// Standard is an evaluation standard for metainferential systems: a set
// of truth values at level 0, or a pair of standards, or a schematic
// variable. Bar marks the complemented standard.
type Standard struct {
	Kind StandardKind
	Bar  bool

	// StdSet
	Vals []string

	// StdPair
	Left, Right *Standard

	// StdVar
	Var string
}

func ValueSet(vals ...string) *Standard {
	return &Standard{Kind: StdSet, Vals: vals}
}

func StandardPair(left, right *Standard) *Standard {
	return &Standard{Kind: StdPair, Left: left, Right: right}
}

func StandardVariable(sym string) *Standard {
	return &Standard{Kind: StdVar, Var: sym}
}

// Barred returns a copy with the bar flag flipped.
func (s *Standard) Barred() *Standard {
	res := s.Clone()
	res.Bar = !res.Bar
	return res
}

func (s *Standard) Clone() *Standard {
	if s == nil {
		return nil
	}
	res := &Standard{Kind: s.Kind, Bar: s.Bar, Var: s.Var}
	if len(s.Vals) > 0 {
		res.Vals = append([]string(nil), s.Vals...)
	}
	res.Left = s.Left.Clone()
	res.Right = s.Right.Clone()
	return res
}

// Equal compares structurally. Value sets compare as sets: order and
// repetition do not matter.
func (s *Standard) Equal(o *Standard) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.Kind != o.Kind || s.Bar != o.Bar {
		return false
	}
	switch s.Kind {
	case StdSet:
		return equalValueSets(s.Vals, o.Vals)
	case StdPair:
		return s.Left.Equal(o.Left) && s.Right.Equal(o.Right)
	case StdVar:
		return s.Var == o.Var
	}
	return false
}

func equalValueSets(a, b []string) bool {
	for _, x := range a {
		if !containsVal(b, x) {
			return false
		}
	}
	for _, x := range b {
		if !containsVal(a, x) {
			return false
		}
	}
	return true
}

func containsVal(vals []string, v string) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}

// Level is 0 for sets and variables, pair nesting depth otherwise.
func (s *Standard) Level() int {
	if s.Kind != StdPair {
		return 0
	}
	l, r := s.Left.Level(), s.Right.Level()
	if r > l {
		l = r
	}
	return l + 1
}

func (s *Standard) Key() string {
	if s == nil {
		return "<nil>"
	}
	var b strings.Builder
	s.writeKey(&b)
	return b.String()
}

func (s *Standard) writeKey(b *strings.Builder) {
	switch s.Kind {
	case StdSet:
		sorted := append([]string(nil), s.Vals...)
		sort.Strings(sorted)
		b.WriteByte('{')
		b.WriteString(strings.Join(sorted, ","))
		b.WriteByte('}')
	case StdPair:
		b.WriteByte('[')
		s.Left.writeKey(b)
		b.WriteByte(',')
		s.Right.writeKey(b)
		b.WriteByte(']')
	case StdVar:
		b.WriteString(s.Var)
	}
	if s.Bar {
		b.WriteByte('\'')
	}
}

func (s *Standard) String() string {
	return s.Key()
}
