// grammar.go — the fixed context-free grammar this package recognizes
// addresses against, expressed as plain data rather than generated code.
//
// WHAT THIS MODULE DOES
// ======================
// Productions are rows of a table (rule{LHS, RHS, Role}), not Go types or
// functions — the same "small explicit struct, no magic" register the
// rest of this package uses for static tables. Symbols on the right-hand
// side are either terminals (a Category from category.go, lowercase by
// convention would collide with Go identifiers so terminals are written
// as their Category string) or nonterminals (symbol names declared as
// the LHS of some rule). validateGrammar, run once from init(), checks
// that every nonterminal mentioned on a right-hand side has at least one
// production and that the start symbol exists — the Go analogue of a
// one-time "does this table make sense" pass over a hand-authored
// grammar file.
//
// Role labels a production for the projector (project.go): "street",
// "door_number_value", "door_number_unit", "floor", "location" (the
// trailing phrase the projector discards), or "" for purely structural
// productions that carry no address component on their own.
package addrparse

import "fmt"

// Symbol is either a nonterminal name or a terminal Category, used
// interchangeably on the right-hand side of a rule.
type Symbol string

const startSymbol Symbol = "address"

// rule is one production: LHS -> RHS, with a Role for tree nodes built
// from this production.
type rule struct {
	LHS  Symbol
	RHS  []Symbol
	Role string
}

func sym(cats ...Category) []Symbol {
	out := make([]Symbol, len(cats))
	for i, c := range cats {
		out[i] = Symbol(c)
	}
	return out
}

func syms(names ...Symbol) []Symbol { return names }

// grammarRules is the full production table. Order within a nonterminal
// matters only for enumeration order (and therefore for tie-breaking
// between otherwise-equal-ranked trees); it has no effect on what
// languages are accepted.
var grammarRules = []rule{
	// address -> one of the three address kinds.
	{startSymbol, syms("simple"), ""},
	{startSymbol, syms("intersection"), ""},
	{startSymbol, syms("between"), ""},

	// simple: one street, optional door number/floor, optional trailing
	// location phrase (discarded by the projector).
	{"simple", syms("street_with_num", "location_opt"), ""},
	{"simple", syms("street_no_num", "location_opt"), ""},

	{"street_with_num", syms("street", "door_number", "floor_opt"), ""},

	{"street_no_num", syms("street_qualified"), "street"},
	{"street_no_num", syms("street_bare_multi"), "street"},
	{"street_no_num", syms("unnamed_street"), "street"},

	// location_opt is an unbounded trailing phrase (locality names routinely
	// run two or more words, e.g. "Villa Chacón"), right-recursive the same
	// way name_seq is below.
	{"location_opt", nil, ""},
	{"location_opt", syms("location_part", "location_opt"), ""},
	{"location_opt", syms("location_part"), ""},

	{"location_part", sym(CatOf, CatWord), "location"},
	{"location_part", sym(CatWord), "location"},

	// intersection: two streets joined by a connector; at most one side
	// carries a door number.
	{"intersection", syms("street", "door_number_opt", "isct_conn", "street"), ""},
	{"isct_conn", sym(CatIsctSep), ""},
	{"isct_conn", sym(CatAndWord), ""},

	// between: a street (with its own optional door number) bounded by
	// two cross streets.
	{"between", syms("street", "door_number_opt", "btwn_conn", "street", "and_conn", "street"), ""},
	{"door_number_opt", nil, ""},
	{"door_number_opt", syms("door_number"), ""},
	{"btwn_conn", sym(CatBtwnSep), ""},
	{"btwn_conn", sym(CatBetween), ""},
	{"and_conn", sym(CatAndWord), ""},

	// street: either a name (qualified by a street-type marker, a route
	// marker, or standing bare with one or more words) or the explicit
	// "no name given" marker.
	{"street", syms("street_qualified"), "street"},
	{"street", syms("street_bare_multi"), "street"},
	{"street", syms("street_bare_single"), "street"},
	{"street", syms("unnamed_street"), "street"},

	{"street_qualified", sym(CatStreetTypeS), ""},
	{"street_qualified", sym(CatStreetTypeL), ""},
	{"street_qualified", append(sym(CatStreetTypeS), Symbol("name_seq")), ""},
	{"street_qualified", append(sym(CatStreetTypeL), Symbol("name_seq")), ""},
	{"street_qualified", sym(CatRoute), ""},
	{"street_qualified", append(sym(CatRoute), Symbol("name_seq")), ""},
	{"street_qualified", append(sym(CatRoute), Symbol("num_value")), ""},

	// a bare name needs two or more name-like tokens to stand alone as
	// the only street in a "simple" address (this is what keeps a lone
	// unqualified word like "qwerty" out of street_no_num while still
	// letting a single bare word name one side of an intersection).
	{"street_bare_multi", syms("name_seq_multi"), ""},
	{"street_bare_single", syms("name_part"), ""},

	{"name_seq_multi", syms("name_part", "name_seq_multi"), ""},
	{"name_seq_multi", syms("name_part", "name_part"), ""},

	{"name_seq", syms("name_part"), ""},
	{"name_seq", syms("name_part", "name_seq"), ""},

	{"name_part", sym(CatWord), ""},
	{"name_part", sym(CatLetter), ""},
	{"name_part", sym(CatOf), ""},
	{"name_part", sym(CatNumLabelL), ""},
	// NUMS_LETTER ("2B") is deliberately also a floor_opt alternative
	// below: the grammar accepts it either way, and rank.go's "fewer
	// unnamed streets" + kind preference is what actually settles which
	// reading wins for a given input.
	{"name_part", sym(CatNumsLetter), ""},

	{"unnamed_street", sym(CatMissingName), ""},

	// door_number: a value, optionally with a unit/apartment qualifier; a
	// value led by a number-label marker ("N° 1100", "N1331", "km 45"); or
	// the explicit "no number" marker. S_N/MISSING_NUM are themselves the
	// door number's value ("s/n" is a value, not merely its absence).
	{"door_number", syms("num_value", "unit_opt"), ""},
	{"door_number", syms("unit_prefix", "num_value"), ""},
	{"door_number", sym(CatSN), "door_number_value"},
	{"door_number", sym(CatMissingNum), "door_number_value"},

	{"unit_prefix", sym(CatN), "door_number_unit"},
	{"unit_prefix", sym(CatNumLabelS), "door_number_unit"},
	{"unit_prefix", sym(CatNumLabelL), "door_number_unit"},
	{"unit_prefix", sym(CatKm), "door_number_unit"},

	{"num_value", sym(CatNum), "door_number_value"},
	{"num_value", sym(CatNumRange), "door_number_value"},
	{"num_value", sym(CatDecimal), "door_number_value"},

	{"unit_opt", nil, ""},
	{"unit_opt", syms("unit"), ""},

	{"unit", append(sym(CatDoorType), Symbol("unit_text")), "door_number_unit"},
	{"unit", sym(CatGroundFloor), "door_number_unit"},
	{"unit", append(sym(CatNumLabelS), Symbol("unit_text")), "door_number_unit"},

	{"unit_text", sym(CatWord), ""},
	{"unit_text", sym(CatNum), ""},
	{"unit_text", sym(CatLetter), ""},
	{"unit_text", append(sym(CatWord), Symbol("unit_text")), ""},

	// floor_opt: a floor marker with its value, an ordinal (optionally
	// followed by a letter or word), a number followed by a letter or word,
	// a NUMS_LETTER ("2B"), a ground-floor marker, or nothing at all.
	{"floor_opt", nil, ""},
	{"floor_opt", append(sym(CatFloor), Symbol("floor_value")), "floor"},
	{"floor_opt", syms("ordinal_floor"), "floor"},
	{"floor_opt", append(sym(CatNum), Symbol("floor_letter")), "floor"},
	{"floor_opt", sym(CatNumsLetter), "floor"},
	{"floor_opt", sym(CatGroundFloor), "floor"},

	{"floor_value", sym(CatNum), ""},
	{"floor_value", sym(CatOrdinal), ""},
	{"floor_value", sym(CatWord), ""},
	{"floor_value", append(sym(CatOrdinal), Symbol("floor_letter")), ""},

	{"ordinal_floor", sym(CatOrdinal), ""},
	{"ordinal_floor", append(sym(CatOrdinal), Symbol("floor_letter")), ""},

	{"floor_letter", sym(CatLetter), ""},
	{"floor_letter", sym(CatWord), ""},
}

func init() {
	if err := validateGrammar(grammarRules); err != nil {
		panic(fmt.Sprintf("addrparse: invalid grammar: %v", err))
	}
}

// validateGrammar checks that every nonterminal referenced on a
// right-hand side has at least one production, and that the start
// symbol itself is defined. It does not (and cannot, statically) check
// for unreachable or infinitely-recursive rules; those would surface at
// parse time as an address that never produces a tree.
func validateGrammar(rules []rule) error {
	defined := map[Symbol]bool{}
	terminals := map[Symbol]bool{}
	for _, cat := range orderedCategories {
		terminals[Symbol(cat)] = true
	}

	for _, r := range rules {
		defined[r.LHS] = true
	}
	if !defined[startSymbol] {
		return fmt.Errorf("start symbol %q has no production", startSymbol)
	}
	for _, r := range rules {
		for _, s := range r.RHS {
			if terminals[s] || defined[s] {
				continue
			}
			return fmt.Errorf("rule %s -> %v references undefined symbol %q", r.LHS, r.RHS, s)
		}
	}
	return nil
}

// rulesFor returns every production with the given left-hand side, in
// table order.
func rulesFor(lhs Symbol) []rule {
	var out []rule
	for _, r := range grammarRules {
		if r.LHS == lhs {
			out = append(out, r)
		}
	}
	return out
}

// ruleIdxFor returns the indices into grammarRules of every production
// with the given left-hand side, in table order. The chart parser
// (chart.go) addresses rules by index rather than by value because a
// rule's RHS is a slice, which would make a rule — and anything built
// from one, like an Earley item — unusable as a map key.
func ruleIdxFor(lhs Symbol) []int {
	var out []int
	for i, r := range grammarRules {
		if r.LHS == lhs {
			out = append(out, i)
		}
	}
	return out
}

func isTerminal(s Symbol) bool {
	for _, cat := range orderedCategories {
		if Symbol(cat) == s {
			return true
		}
	}
	return false
}
