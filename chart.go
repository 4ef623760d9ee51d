// chart.go — general Earley recognizer and parse-forest extraction over
// the grammar declared in grammar.go.
//
// WHAT THIS MODULE DOES
// ======================
// parseAll(tokens) returns a set of derivation trees for the tokens'
// category sequence, not just one (see below for which). A conventional
// recursive-descent or LL/LR parser can't do this directly: this grammar
// is ambiguous on purpose (a bare name before a number can be read as a
// street name or as the tail of a longer name, a connector can join
// streets under more than one production) and the disambiguator
// (rank.go) needs to see every reading to pick the right one. Earley's
// algorithm handles arbitrary — including left-recursive, including
// ambiguous — context-free grammars in a single left-to-right pass and
// naturally supports forest extraction from its completed-item chart.
//
// The implementation follows the textbook three-operation chart
// algorithm — predict, scan, complete — over one column of items per
// token position. Every way a completed item was derived is recorded as
// a separate alternative. parseAll builds one tree per recorded
// alternative of a completed start-symbol item, which gives one tree per
// production of each address kind that spans the whole input. Below that
// level the full forest is not enumerated: when a nested item has several
// recorded alternatives (for example, where a street name ends and a
// trailing location begins), buildTree and appendChild use only the first
// one. Column order and within-column
// rule order both follow grammar.go's table order, so two calls over the
// same category sequence always enumerate trees in the same order —
// required both for the cache (cache.go) and for the disambiguator's
// documented tie-break (rank.go).
//
// Items are addressed by rule *index* into grammarRules rather than by
// value: a rule holds a slice (its RHS), so a struct built from one
// could never be used as a map key. Indexing keeps every chart entry a
// small, fully comparable value.
package addrparse

// item is one Earley chart entry: "grammarRules[ruleIdx], having
// matched RHS[:dot], starting at column origin".
type item struct {
	ruleIdx int
	dot     int
	origin  int
}

func (it item) rule() rule        { return grammarRules[it.ruleIdx] }
func (it item) complete() bool    { return it.dot == len(it.rule().RHS) }
func (it item) next() Symbol {
	r := it.rule()
	if it.dot == len(r.RHS) {
		return ""
	}
	return r.RHS[it.dot]
}

// childRef addresses one symbol's worth of a derivation: either the
// terminal token at column `col`, or the nonterminal completed as `sub`
// ending at column `col`.
type childRef struct {
	isTerminal bool
	col        int
	sub        item
}

// chart holds, for every column, the set of items present (in
// insertion order, for deterministic enumeration) and, for completed
// items, every distinct way they were derived.
type chart struct {
	n     int
	items []map[item]bool
	order [][]item
	alts  []map[item][][]childRef
}

func newChart(n int) *chart {
	c := &chart{n: n}
	c.items = make([]map[item]bool, n+1)
	c.order = make([][]item, n+1)
	c.alts = make([]map[item][][]childRef, n+1)
	for i := 0; i <= n; i++ {
		c.items[i] = map[item]bool{}
		c.alts[i] = map[item][][]childRef{}
	}
	return c
}

func (c *chart) add(col int, it item) {
	if !c.items[col][it] {
		c.items[col][it] = true
		c.order[col] = append(c.order[col], it)
	}
}

func (c *chart) addAlt(col int, it item, children []childRef) {
	c.add(col, it)
	c.alts[col][it] = append(c.alts[col][it], children)
}

// predict adds ruleIdx's initial item (dot at 0) to column col. A rule
// with an empty right-hand side is complete the moment it's predicted,
// so it needs an (empty) alternative recorded immediately — otherwise
// nothing waiting on it would ever see it as satisfied.
func predict(c *chart, col int, ruleIdx int) {
	it := item{ruleIdx: ruleIdx, dot: 0, origin: col}
	if len(grammarRules[ruleIdx].RHS) == 0 {
		c.addAlt(col, it, []childRef{})
		return
	}
	c.add(col, it)
}

// parseAll returns the parse trees for the full category sequence,
// rooted at the grammar's start symbol: one per recorded alternative of
// a completed start-symbol item, with nested subtrees built from their
// first recorded alternative. An empty result means the sequence is not
// in the language.
func parseAll(tokens []Token) []*TreeNode {
	cats := categories(tokens)
	n := len(cats)
	c := newChart(n)

	for _, idx := range ruleIdxFor(startSymbol) {
		predict(c, 0, idx)
	}

	for col := 0; col <= n; col++ {
		for i := 0; i < len(c.order[col]); i++ {
			it := c.order[col][i]
			switch {
			case it.complete():
				completeAt(c, col, it)
			case isTerminal(it.next()):
				// handled by the scanner below, once per column
			default:
				for _, idx := range ruleIdxFor(it.next()) {
					predict(c, col, idx)
				}
			}
		}

		if col == n {
			break
		}
		tok := Symbol(cats[col])
		for _, it := range c.order[col] {
			if !it.complete() && isTerminal(it.next()) && it.next() == tok {
				advanced := item{ruleIdx: it.ruleIdx, dot: it.dot + 1, origin: it.origin}
				c.addAlt(col+1, advanced, appendChild(c, col, it, childRef{isTerminal: true, col: col}))
			}
		}
	}

	var trees []*TreeNode
	for _, it := range c.order[n] {
		if it.origin == 0 && it.complete() && it.rule().LHS == startSymbol {
			for _, alt := range c.alts[n][it] {
				trees = append(trees, buildTree(it.rule(), alt, tokens, c))
			}
		}
	}
	return trees
}

// completeAt advances every item waiting on `completed.rule().LHS` from
// `completed.origin`'s column, for every alternative derivation of
// `completed` recorded at `col`.
func completeAt(c *chart, col int, completed item) {
	lhs := completed.rule().LHS
	for _, waiting := range c.order[completed.origin] {
		if waiting.complete() || waiting.next() != lhs {
			continue
		}
		// completed may itself have several recorded alternatives, but
		// each one advances `waiting` into the same resulting item, so
		// it is only processed once here (buildTree resolves which of
		// completed's alternatives to use when it descends into sub).
		advanced := item{ruleIdx: waiting.ruleIdx, dot: waiting.dot + 1, origin: waiting.origin}
		c.addAlt(col, advanced, appendChild(c, completed.origin, waiting, childRef{isTerminal: false, col: col, sub: completed}))
	}
}

// appendChild returns the child-ref list for the item produced by
// advancing `prev` past `ref`, by extending one of `prev`'s own
// recorded alternatives. `prev` with dot == 0 has no prior alternatives
// and starts a fresh single-element list.
//
// `prev` may itself be ambiguous; this always extends its first
// recorded alternative, so when a nested subtree is itself ambiguous only
// one of its derivations is attached (see the package doc comment above).
func appendChild(c *chart, prevCol int, prev item, ref childRef) []childRef {
	if prev.dot == 0 {
		return []childRef{ref}
	}
	alts := c.alts[prevCol][prev]
	if len(alts) == 0 {
		return []childRef{ref}
	}
	base := alts[0]
	out := make([]childRef, len(base)+1)
	copy(out, base)
	out[len(base)] = ref
	return out
}

// buildTree reconstructs one concrete derivation tree from a rule and
// its resolved list of child references.
func buildTree(r rule, children []childRef, tokens []Token, c *chart) *TreeNode {
	node := &TreeNode{Symbol: r.LHS, Role: r.Role}
	for i, ref := range children {
		if ref.isTerminal {
			node.Children = append(node.Children, &TreeNode{
				Symbol: r.RHS[i],
				Tok:    &tokens[ref.col],
			})
			continue
		}
		var sub *TreeNode
		if alts := c.alts[ref.col][ref.sub]; len(alts) > 0 {
			sub = buildTree(ref.sub.rule(), alts[0], tokens, c)
		} else {
			sub = &TreeNode{Symbol: ref.sub.rule().LHS, Role: ref.sub.rule().Role}
		}
		node.Children = append(node.Children, sub)
	}
	return node
}
