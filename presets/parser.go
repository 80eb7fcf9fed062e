package presets

import (
	"github.com/sequitur-logic/sequitur/parse"
)

// ClassicalAliases is the ASCII alias table for classical notation.
// Order matters: word aliases like "verum" must come before the single
// letter "v" for disjunction.
func ClassicalAliases() []parse.Replacement {
	return []parse.Replacement{
		// Sentential constants.
		{Old: "falsum", New: "⊥"},
		{Old: "Falsum", New: "⊥"},
		{Old: "bottom", New: "⊥"},
		{Old: "Bottom", New: "⊥"},
		{Old: "verum", New: "⊤"},
		{Old: "Verum", New: "⊤"},
		{Old: "top", New: "⊤"},
		{Old: "Top", New: "⊤"},

		// Negation.
		{Old: "¬", New: "~"},
		{Old: "not ", New: "~"},

		// Conjunction.
		{Old: "&", New: "∧"},
		{Old: "^", New: "∧"},
		{Old: " and ", New: "∧"},

		// Disjunction.
		{Old: "v", New: "∨"},
		{Old: " or ", New: "∨"},

		// Conditional; "if p then q" reads as "p then q".
		{Old: " then ", New: "→"},
		{Old: "-->", New: "→"},
		{Old: "if ", New: ""},

		// Biconditional.
		{Old: " iff ", New: "↔"},
		{Old: "<->", New: "↔"},

		// The semantic turnstile reads as an inference bar.
		{Old: "|=", New: "/"},

		// Sequent notation.
		{Old: "==>", New: "⇒"},
		{Old: "Gamma", New: "Γ"},
		{Old: "Delta", New: "Δ"},
		{Old: "Sigma", New: "Σ"},
		{Old: "Pi", New: "Π"},
		{Old: "Theta", New: "Θ"},
		{Old: "Lambda", New: "Λ"},
	}
}

// ClassicalParser parses classical notation with the ASCII aliases.
func ClassicalParser() *parse.Parser {
	return parse.New(ClassicalLanguage(), parse.WithReplacements(ClassicalAliases()...))
}
