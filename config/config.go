// Package config loads declarative system descriptions: a YAML document
// describing a language plus tableaux rules and/or a sequent calculus is
// turned into ready-to-use runtime values. Loading is fail fast; the
// first malformed rule reports its name and position in the document.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/sequitur-logic/sequitur/lang"
	"github.com/sequitur-logic/sequitur/parse"
	"github.com/sequitur-logic/sequitur/seqcalc"
	"github.com/sequitur-logic/sequitur/syntax"
	"github.com/sequitur-logic/sequitur/tableaux"
)

type ConnectiveConfig struct {
	Symbol string `json:"symbol"`
	Arity  int    `json:"arity"`
}

type LanguageConfig struct {
	Atomics          []string           `json:"atomics"`
	Connectives      []ConnectiveConfig `json:"connectives"`
	Constants        []string           `json:"constants,omitempty"`
	Metavariables    []string           `json:"metavariables"`
	ContextVariables []string           `json:"contextVariables,omitempty"`
	Infinite         bool               `json:"infinite,omitempty"`
}

type AliasConfig struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// TableauNodeConfig is one node of a schematic rule tree. Content is
// notation parsed with the document's language and aliases.
type TableauNodeConfig struct {
	Content       string              `json:"content"`
	Index         *int                `json:"index,omitempty"`
	Justification string              `json:"justification,omitempty"`
	Children      []TableauNodeConfig `json:"children,omitempty"`
}

type TableauRuleConfig struct {
	Name string            `json:"name"`
	Root TableauNodeConfig `json:"root"`
}

type TableauxConfig struct {
	Rules []TableauRuleConfig `json:"rules"`
	// Closure lists schematic node pairs; each entry must have exactly
	// two nodes.
	Closure [][]TableauNodeConfig `json:"closure,omitempty"`
	// ClosurePolicy is "rules" (default), "indexed" or "atomic".
	ClosurePolicy string `json:"closurePolicy,omitempty"`
	// Premises is "negated" (default) or "indexed".
	Premises    string `json:"premises,omitempty"`
	Negation    string `json:"negation,omitempty"`
	FastClosure bool   `json:"fastClosure,omitempty"`
}

type AxiomConfig struct {
	Name    string `json:"name"`
	Sequent string `json:"sequent"`
}

type SequentRuleConfig struct {
	Name       string   `json:"name"`
	Conclusion string   `json:"conclusion"`
	Premises   []string `json:"premises,omitempty"`
}

type CalculusConfig struct {
	Axioms      []AxiomConfig       `json:"axioms"`
	Rules       []SequentRuleConfig `json:"rules"`
	SolverOrder []string            `json:"solverOrder,omitempty"`
	FastAxioms  bool                `json:"fastAxioms,omitempty"`
}

type SystemConfig struct {
	Language LanguageConfig  `json:"language"`
	Aliases  []AliasConfig   `json:"aliases,omitempty"`
	Tableaux *TableauxConfig `json:"tableaux,omitempty"`
	Calculus *CalculusConfig `json:"calculus,omitempty"`
}

// System is the runtime form of a loaded document.
type System struct {
	Lang     *lang.Language
	Parser   *parse.Parser
	Tableaux *tableaux.System
	Calculus *seqcalc.Calculus
}

// Load reads and parses a YAML system description.
func Load(path string) (*System, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	sys, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sys, nil
}

// Parse builds a System from YAML bytes.
func Parse(d []byte) (*System, error) {
	var cfg SystemConfig
	if err := yaml.Unmarshal(d, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return Build(&cfg)
}

// Build validates a decoded config and constructs the runtime values.
func Build(cfg *SystemConfig) (*System, error) {
	l, err := buildLanguage(&cfg.Language)
	if err != nil {
		return nil, err
	}
	reps := make([]parse.Replacement, len(cfg.Aliases))
	for i, a := range cfg.Aliases {
		if a.Old == "" {
			return nil, fmt.Errorf("%w: alias %d has an empty pattern", ErrConfig, i)
		}
		reps[i] = parse.Replacement{Old: a.Old, New: a.New}
	}
	p := parse.New(l, parse.WithReplacements(reps...))
	sys := &System{Lang: l, Parser: p}

	if cfg.Tableaux != nil {
		ts, err := buildTableaux(l, p, cfg.Tableaux)
		if err != nil {
			return nil, err
		}
		sys.Tableaux = ts
	}
	if cfg.Calculus != nil {
		c, err := buildCalculus(l, p, cfg.Calculus)
		if err != nil {
			return nil, err
		}
		sys.Calculus = c
	}
	return sys, nil
}

func buildLanguage(lc *LanguageConfig) (*lang.Language, error) {
	if len(lc.Atomics) == 0 {
		return nil, fmt.Errorf("%w: language has no atomics", ErrConfig)
	}
	seen := map[string]bool{}
	l := &lang.Language{
		Atomics:     lc.Atomics,
		Constants:   lc.Constants,
		Metavars:    lc.Metavariables,
		ContextVars: lc.ContextVariables,
		Infinite:    lc.Infinite,
	}
	for _, c := range lc.Connectives {
		if c.Symbol == "" {
			return nil, fmt.Errorf("%w: connective with an empty symbol", ErrConfig)
		}
		if c.Arity < 1 {
			return nil, fmt.Errorf("%w: connective %q has arity %d", ErrConfig, c.Symbol, c.Arity)
		}
		if seen[c.Symbol] {
			return nil, fmt.Errorf("%w: connective %q declared twice", ErrConfig, c.Symbol)
		}
		seen[c.Symbol] = true
		l.Connectives = append(l.Connectives, lang.Connective{Sym: c.Symbol, Arity: c.Arity})
	}
	return l, nil
}

func buildTableaux(l *lang.Language, p *parse.Parser, tc *TableauxConfig) (*tableaux.System, error) {
	ts := &tableaux.System{
		Lang:   l,
		Config: tableaux.Config{FastClosure: tc.FastClosure},
	}
	for _, rc := range tc.Rules {
		if rc.Name == "" {
			return nil, fmt.Errorf("%w: tableau rule with an empty name", ErrConfig)
		}
		if _, ok := ts.RuleNamed(rc.Name); ok {
			return nil, fmt.Errorf("%w: tableau rule %q declared twice", ErrConfig, rc.Name)
		}
		root, err := buildTableauNode(l, p, &rc.Root, rc.Name)
		if err != nil {
			return nil, err
		}
		t := tableaux.NewTree(*root)
		for i := range rc.Root.Children {
			if err := addTableauChildren(l, p, t, 0, &rc.Root.Children[i], rc.Name); err != nil {
				return nil, err
			}
		}
		ts.Rules = append(ts.Rules, tableaux.Rule{Name: rc.Name, Tree: t})
	}
	for i, pair := range tc.Closure {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: closure rule %d has %d nodes, want 2", ErrConfig, i, len(pair))
		}
		a, err := buildTableauNode(l, p, &pair[0], "closure")
		if err != nil {
			return nil, err
		}
		b, err := buildTableauNode(l, p, &pair[1], "closure")
		if err != nil {
			return nil, err
		}
		ts.Closure = append(ts.Closure, tableaux.ClosureRule{*a, *b})
	}
	switch tc.ClosurePolicy {
	case "", "rules":
	case "indexed":
		ts.ClosurePolicy = tableaux.IndexedClosure{}
	case "atomic":
		ts.ClosurePolicy = tableaux.AtomicClosure{}
	default:
		return nil, fmt.Errorf("%w: unknown closure policy %q", ErrConfig, tc.ClosurePolicy)
	}
	switch tc.Premises {
	case "", "negated":
		if tc.Negation != "" {
			ts.Premises = tableaux.NegatedConclusionPremises{Negation: tc.Negation}
		}
	case "indexed":
		ts.Premises = tableaux.IndexedPremises{}
	default:
		return nil, fmt.Errorf("%w: unknown premise policy %q", ErrConfig, tc.Premises)
	}
	return ts, nil
}

func buildTableauNode(l *lang.Language, p *parse.Parser, nc *TableauNodeConfig, rule string) (*tableaux.Node, error) {
	f, err := p.ParseFormula(nc.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: rule %q: %v", ErrConfig, rule, err)
	}
	if err := l.WellFormed(f, true); err != nil {
		return nil, fmt.Errorf("%w: rule %q: %v", ErrConfig, rule, err)
	}
	return &tableaux.Node{Content: f, Index: nc.Index, Just: nc.Justification}, nil
}

func addTableauChildren(l *lang.Language, p *parse.Parser, t *tableaux.Tree, parent int, nc *TableauNodeConfig, rule string) error {
	n, err := buildTableauNode(l, p, nc, rule)
	if err != nil {
		return err
	}
	i := t.Add(parent, *n)
	for k := range nc.Children {
		if err := addTableauChildren(l, p, t, i, &nc.Children[k], rule); err != nil {
			return err
		}
	}
	return nil
}

func buildCalculus(l *lang.Language, p *parse.Parser, cc *CalculusConfig) (*seqcalc.Calculus, error) {
	c := &seqcalc.Calculus{
		Lang:        l,
		SolverOrder: cc.SolverOrder,
		Config:      seqcalc.Config{FastAxioms: cc.FastAxioms},
	}
	for _, ac := range cc.Axioms {
		if ac.Name == "" {
			return nil, fmt.Errorf("%w: axiom with an empty name", ErrConfig)
		}
		q, err := parseSchemaSequent(l, p, ac.Sequent)
		if err != nil {
			return nil, fmt.Errorf("%w: axiom %q: %v", ErrConfig, ac.Name, err)
		}
		c.Axioms = append(c.Axioms, seqcalc.Axiom{Name: ac.Name, Seq: q})
	}
	for _, rc := range cc.Rules {
		if rc.Name == "" {
			return nil, fmt.Errorf("%w: sequent rule with an empty name", ErrConfig)
		}
		if _, ok := c.RuleNamed(rc.Name); ok {
			return nil, fmt.Errorf("%w: sequent rule %q declared twice", ErrConfig, rc.Name)
		}
		concl, err := parseSchemaSequent(l, p, rc.Conclusion)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %q conclusion: %v", ErrConfig, rc.Name, err)
		}
		r := seqcalc.Rule{Name: rc.Name, Conclusion: concl}
		for i, ps := range rc.Premises {
			prem, err := parseSchemaSequent(l, p, ps)
			if err != nil {
				return nil, fmt.Errorf("%w: rule %q premise %d: %v", ErrConfig, rc.Name, i, err)
			}
			r.Premises = append(r.Premises, prem)
		}
		c.Rules = append(c.Rules, r)
	}
	for _, name := range cc.SolverOrder {
		if _, ok := c.RuleNamed(name); !ok {
			return nil, fmt.Errorf("%w: solver order names unknown rule %q", ErrConfig, name)
		}
	}
	return c, nil
}

func parseSchemaSequent(l *lang.Language, p *parse.Parser, s string) (syntax.Sequent, error) {
	q, err := p.ParseSequent(s)
	if err != nil {
		return nil, err
	}
	for si, side := range q {
		if err := l.WellFormedSide(side, true); err != nil {
			return nil, fmt.Errorf("side %d: %w", si, err)
		}
	}
	return q, nil
}
