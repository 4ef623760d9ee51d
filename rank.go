// rank.go — disambiguation between competing parse trees.
//
// WHAT THIS MODULE DOES
// ======================
// A category sequence is often ambiguous: the grammar can assign more
// than one reading to it (is "de la Cruz" inside the street name or
// after it, is a lone connector an intersection or a between). pickBest
// ranks every candidate tree by a fixed three-part key and returns the
// highest-ranked one — unless the top two tie on every component, in
// which case no reading is trustworthy enough to commit to and the
// caller reports KindUnknown.
//
// The ranking key, from most to least significant:
//  1. Fewer unnamed streets (an explicit "no name given" marker) beats
//     more.
//  2. Having a door number beats not having one.
//  3. A fixed preference among the three address kinds, conditioned on
//     whether the tree carries a door number at all.
//
// pickBest sorts candidates by this key (stable, so ties preserve the
// order the chart enumerated them in) and compares only the top two: if
// they're equal, the sequence is genuinely ambiguous and pickBest
// returns ok == false.
package addrparse

import "sort"

// rankKey is a tree's score; higher is better, compared component by
// component in order.
type rankKey struct {
	unnamedStreets int
	hasDoorNumber  int
	kindRank       int
}

func less(a, b rankKey) bool {
	if a.unnamedStreets != b.unnamedStreets {
		return a.unnamedStreets < b.unnamedStreets
	}
	if a.hasDoorNumber != b.hasDoorNumber {
		return a.hasDoorNumber < b.hasDoorNumber
	}
	return a.kindRank < b.kindRank
}

func equalKey(a, b rankKey) bool {
	return a.unnamedStreets == b.unnamedStreets &&
		a.hasDoorNumber == b.hasDoorNumber &&
		a.kindRank == b.kindRank
}

// kindRanksWithDoorNumber / kindRanksWithoutDoorNumber list the three
// address kinds from worst to best, conditioned on whether the
// candidate tree carries a door number. With a door number, "simple"
// outranks "intersection"; without one, "intersection" outranks
// "simple". "between" ranks highest either way.
var kindRanksWithDoorNumber = []string{"intersection", "simple", "between"}
var kindRanksWithoutDoorNumber = []string{"simple", "intersection", "between"}

func kindRank(kind string, hasDoorNumber bool) int {
	ranks := kindRanksWithoutDoorNumber
	if hasDoorNumber {
		ranks = kindRanksWithDoorNumber
	}
	for i, k := range ranks {
		if k == kind {
			return i
		}
	}
	return -1
}

// computeRankKey walks n looking for a "door_number" subtree (present
// under street_with_num in a "simple" reading, or under intersection's or
// between's own door_number_opt) and "unnamed_street" leaves (counting how
// many sides of the address have no name at all).
func computeRankKey(n *TreeNode) rankKey {
	hasDoorNumber := false
	unnamed := 0
	var walk func(*TreeNode)
	walk = func(x *TreeNode) {
		switch x.Symbol {
		case "door_number":
			hasDoorNumber = true
		case "unnamed_street":
			unnamed++
		}
		for _, c := range x.Children {
			walk(c)
		}
	}
	walk(n)
	// Trees from parseAll are rooted at the start symbol, whose single
	// child names the address kind.
	kind := n.Symbol
	if kind == startSymbol && len(n.Children) == 1 {
		kind = n.Children[0].Symbol
	}
	return rankKey{
		unnamedStreets: -unnamed, // fewer unnamed streets must rank higher
		hasDoorNumber:  boolInt(hasDoorNumber),
		kindRank:       kindRank(string(kind), hasDoorNumber),
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// pickBest ranks every candidate and returns the best one, or
// ok == false if the top two candidates tie on every component of the
// key (or if there are no candidates at all).
func pickBest(trees []*TreeNode) (best *TreeNode, ok bool) {
	if len(trees) == 0 {
		return nil, false
	}
	if len(trees) == 1 {
		return trees[0], true
	}

	keys := make([]rankKey, len(trees))
	for i, t := range trees {
		keys[i] = computeRankKey(t)
	}
	idx := make([]int, len(trees))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return less(keys[idx[b]], keys[idx[a]]) // descending
	})

	if equalKey(keys[idx[0]], keys[idx[1]]) {
		return nil, false
	}
	return trees[idx[0]], true
}
