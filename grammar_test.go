package addrparse

import "testing"

func TestGrammarTableIsValid(t *testing.T) {
	if err := validateGrammar(grammarRules); err != nil {
		t.Fatalf("grammar table failed validation: %v", err)
	}
}

func TestGrammarRejectsUndefinedNonterminal(t *testing.T) {
	bad := []rule{
		{startSymbol, syms("simple"), ""},
		{"simple", syms("nonexistent"), ""},
	}
	if err := validateGrammar(bad); err == nil {
		t.Fatalf("expected an error for a reference to an undefined nonterminal")
	}
}

func TestGrammarRejectsMissingStartSymbol(t *testing.T) {
	bad := []rule{
		{"simple", sym(CatWord), ""},
	}
	if err := validateGrammar(bad); err == nil {
		t.Fatalf("expected an error when the start symbol has no production")
	}
}
