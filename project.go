// project.go — turning a chosen parse tree into an AddressResult.
//
// WHAT THIS MODULE DOES
// ======================
// project walks a tree depth-first, collecting the leaf text under every
// node whose grammar Role (grammar.go) marks it as carrying an address
// component: "street" subtrees become entries of StreetNames in the
// order they're visited, "door_number_value"/"door_number_unit" fill
// DoorNumber, and "floor" fills Floor. Nodes with no Role (the
// structural connectors) or with Role "location" (the optional trailing
// location phrase) are walked through but contribute nothing.
package addrparse

// project turns the winning parse tree plus the Kind implied by its
// address-kind child into the caller-facing result.
func project(top *TreeNode) AddressResult {
	if len(top.Children) != 1 {
		return Unknown
	}
	kindNode := top.Children[0]

	var kind Kind
	switch kindNode.Symbol {
	case "simple":
		kind = KindSimple
	case "intersection":
		kind = KindIntersection
	case "between":
		kind = KindBetween
	default:
		return Unknown
	}

	res := AddressResult{Kind: kind}
	var walk func(*TreeNode)
	walk = func(n *TreeNode) {
		switch n.Role {
		case "street":
			res.StreetNames = append(res.StreetNames, n.leafText())
			return // a street's own interior is never itself of interest
		case "door_number_value":
			res.DoorNumber.Value = n.leafText()
		case "door_number_unit":
			res.DoorNumber.Unit = n.leafText()
		case "floor":
			res.Floor = n.leafText()
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(kindNode)

	return res
}
