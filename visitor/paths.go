package visitor

import (
	"fmt"
	"strings"

	"github.com/damedic/fhir-tree-go/model"
)

// WalkFunc is called for every node with its path, e.g. "NutritionOrder.supplement[1].type".
// Returning false skips the children of the node.
type WalkFunc func(path string, n *model.Node) bool

// Walk calls fn for every node of the tree rooted at root, in traversal order.
func Walk(root *model.Node, fn WalkFunc) {
	model.Walk(root, &pathVisitor{fn: fn})
}

type pathVisitor struct {
	Base
	fn       WalkFunc
	segments []string
}

func (p *pathVisitor) VisitStart(name string, index int, _ *model.Node) {
	segment := name
	if index >= 0 {
		segment = fmt.Sprintf("%s[%d]", name, index)
	}
	p.segments = append(p.segments, segment)
}

func (p *pathVisitor) Visit(_ string, _ int, n *model.Node) bool {
	return p.fn(strings.Join(p.segments, "."), n)
}

func (p *pathVisitor) VisitEnd(string, int, *model.Node) {
	p.segments = p.segments[:len(p.segments)-1]
}

// Collect returns the nodes of the given type, or of a type derived from it, in traversal order.
func Collect(root *model.Node, typeName string) []*model.Node {
	var nodes []*model.Node
	Walk(root, func(_ string, n *model.Node) bool {
		if n.Type().IsA(typeName) {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

// IndexBy maps the value of keyField to the nodes of the given type.
// If several nodes share a key the first one in traversal order wins.
//
// It is the lookup a resolver needs for name based references,
// e.g. IndexBy(structureMap, "StructureMap.Group", "name") resolves Rule.Dependent.name.
func IndexBy(root *model.Node, typeName, keyField string) map[string]*model.Node {
	index := map[string]*model.Node{}
	for _, n := range Collect(root, typeName) {
		key := n.Get(keyField)
		if !key.HasValue() {
			continue
		}
		if _, ok := index[key.Value().String()]; !ok {
			index[key.Value().String()] = n
		}
	}
	return index
}
