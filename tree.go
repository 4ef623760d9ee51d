// tree.go — parse trees and their cacheable skeletons.
//
// WHAT THIS MODULE DOES
// ======================
// TreeNode is the concrete output of chart.go: a derivation tree whose
// leaves carry a *Token (so the projector can read surface text) and
// whose internal nodes carry the grammar Symbol and Role that produced
// them. A tree is specific to one address string.
//
// treeSkeleton is the address-agnostic shadow of a TreeNode that the
// cache (cache.go) actually stores: same shape, same Role labels, but
// leaves carry only the *position* of the token they came from, never
// its text. Two different addresses that tokenize to the same category
// sequence ("Tucumán 1000" and "Córdoba 2000" both being
// [WORD, NUM]) produce numerically identical skeletons, so caching by
// category sequence and re-binding a skeleton's leaf positions to a
// fresh token slice on every lookup reuses the expensive parse/rank work
// while never leaking one address's text into another's result.
//
// This is the same idea as a sidecar index keyed by structural position
// rather than by content, generalized from binding byte spans onto an
// already-built tree to treating the *position-keyed shape itself* as
// the cached artifact.
package addrparse

// TreeNode is one node of a concrete parse tree. Leaves have Tok;
// internal nodes have Children and no Tok. A node for a production with an
// empty right-hand side has neither.
type TreeNode struct {
	Symbol   Symbol
	Role     string
	Children []*TreeNode
	Tok      *Token
}

func (n *TreeNode) isLeaf() bool { return n.Tok != nil }

// leafText concatenates the surface text of every leaf under n, in
// order, space-separated — the tree equivalent of joining a subtree's
// tokens back into the substring of the address it came from.
func (n *TreeNode) leafText() string {
	var parts []string
	var walk func(*TreeNode)
	walk = func(x *TreeNode) {
		if x.isLeaf() {
			parts = append(parts, x.Tok.Text)
			return
		}
		for _, c := range x.Children {
			walk(c)
		}
	}
	walk(n)
	return joinSpace(parts)
}

func joinSpace(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	total := len(parts) - 1
	for _, p := range parts {
		total += len(p)
	}
	buf := make([]byte, 0, total)
	for i, p := range parts {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, p...)
	}
	return string(buf)
}

// treeSkeleton is the surface-text-free shadow of a TreeNode, the value
// actually stored by a Cache.
type treeSkeleton struct {
	Symbol   Symbol
	Role     string
	Children []*treeSkeleton
	LeafPos  int // -1 for internal nodes
}

// skeletonOf strips a concrete tree down to its cacheable shadow.
func skeletonOf(n *TreeNode, tokens []Token) *treeSkeleton {
	if n.isLeaf() {
		pos := -1
		for i := range tokens {
			if &tokens[i] == n.Tok {
				pos = i
				break
			}
		}
		return &treeSkeleton{Symbol: n.Symbol, Role: n.Role, LeafPos: pos}
	}
	sk := &treeSkeleton{Symbol: n.Symbol, Role: n.Role, LeafPos: -1}
	for _, c := range n.Children {
		sk.Children = append(sk.Children, skeletonOf(c, tokens))
	}
	return sk
}

// project rebinds a skeleton's leaf positions to a fresh token slice,
// producing a concrete tree again. tokens must have the same length and
// category sequence as the tokens the skeleton was built from — true by
// construction, since the cache only ever serves a skeleton back for an
// identical category-sequence key.
func (sk *treeSkeleton) project(tokens []Token) *TreeNode {
	if sk.LeafPos >= 0 {
		return &TreeNode{Symbol: sk.Symbol, Role: sk.Role, Tok: &tokens[sk.LeafPos]}
	}
	n := &TreeNode{Symbol: sk.Symbol, Role: sk.Role}
	for _, c := range sk.Children {
		n.Children = append(n.Children, c.project(tokens))
	}
	return n
}

// skeletonKey joins a category sequence into the string key used by
// Cache implementations. Category names never contain the separator, so
// this is collision-free.
func skeletonKey(cats []Category) string {
	var parts []string
	for _, c := range cats {
		parts = append(parts, string(c))
	}
	return joinSep(parts, "\x1f")
}

func joinSep(parts []string, sep string) string {
	if len(parts) == 0 {
		return ""
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += sep + p
	}
	return out
}
