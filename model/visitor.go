package model

// Accept drives v through n and its subtree, n being the entry index of the field name
// (-1 for singletons and roots). A nil node is not visited.
//
// Children are visited in the effective field order of the node's type, e.g. for a domain
// resource id, meta, implicitRules, language, text, contained, extension, modifierExtension
// and then the fields of the resource itself. Each child is dispatched on its own type,
// so contained resources are visited as what they are.
func (n *Node) Accept(name string, index int, v Visitor) {
	if n == nil {
		return
	}
	if !v.PreVisit(n) {
		return
	}
	v.VisitStart(name, index, n)
	if v.Visit(name, index, n) {
		for i, f := range n.def.all {
			children := n.fields[i]
			switch {
			case len(children) == 0:
			case f.Repeating():
				v.VisitStartList(f.Name, children, f)
				for j, c := range children {
					c.Accept(f.Name, j, v)
				}
				v.VisitEndList(f.Name, children, f)
			default:
				children[0].Accept(f.Name, -1, v)
			}
		}
	}
	v.VisitEnd(name, index, n)
	v.PostVisit(n)
}

// Walk drives v through the tree rooted at root, naming the root after its type.
func Walk(root *Node, v Visitor) {
	root.Accept(root.TypeName(), -1, v)
}
