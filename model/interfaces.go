package model

// Visitor is driven through a tree by Node.Accept.
//
// For every node the calls are strictly nested:
//
//	PreVisit -> VisitStart -> Visit -> (children) -> VisitEnd -> PostVisit
//
// If PreVisit returns false nothing else is called for the node or its subtree.
// If Visit returns false the children are skipped, but VisitEnd and PostVisit are still called.
//
// Singleton fields are visited with index -1. A non-empty list field is wrapped in
// VisitStartList and VisitEndList, its entries are visited with their position as index.
// The slices and the field definition handed to the list hooks are shared with the tree
// and must not be modified.
type Visitor interface {
	PreVisit(n *Node) bool
	VisitStart(name string, index int, n *Node)
	Visit(name string, index int, n *Node) bool
	VisitEnd(name string, index int, n *Node)
	PostVisit(n *Node)
	VisitStartList(name string, nodes []*Node, field FieldDef)
	VisitEndList(name string, nodes []*Node, field FieldDef)
}

// Visitable is anything that can drive a Visitor.
type Visitable interface {
	Accept(name string, index int, v Visitor)
}

var _ Visitable = (*Node)(nil)
