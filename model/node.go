package model

import (
	"reflect"
	"slices"

	"github.com/goccy/go-json"
)

// Node is an immutable member of a resource tree.
//
// A Node is created by a Builder and never changes afterwards,
// so it may be shared freely between goroutines.
// All accessors are safe to call on a nil *Node and return zero values.
type Node struct {
	def    *TypeDef
	value  Value
	fields [][]*Node
	hash   func() uint64
}

// Type returns the definition of the node.
func (n *Node) Type() *TypeDef {
	if n == nil {
		return nil
	}
	return n.def
}

// TypeName returns the name of the node's type.
func (n *Node) TypeName() string {
	if n == nil {
		return ""
	}
	return n.def.Name
}

// Kind returns the kind of the node's type.
func (n *Node) Kind() Kind {
	if n == nil {
		return 0
	}
	return n.def.Kind
}

// Value returns the primitive value, or nil.
func (n *Node) Value() Value {
	if n == nil {
		return nil
	}
	return n.value
}

// HasValue reports whether the node carries a primitive value.
func (n *Node) HasValue() bool {
	return n != nil && n.value != nil
}

// HasChildren reports whether any field other than id is set.
func (n *Node) HasChildren() bool {
	if n == nil {
		return false
	}
	for i, f := range n.def.all {
		if f.Name == "id" {
			continue
		}
		if len(n.fields[i]) > 0 {
			return true
		}
	}
	return false
}

// Get returns the node held by a singleton field, or nil if the field is absent or unknown.
// For a list field it returns the first entry.
func (n *Node) Get(field string) *Node {
	if n == nil {
		return nil
	}
	i, ok := n.def.index[field]
	if !ok || len(n.fields[i]) == 0 {
		return nil
	}
	return n.fields[i][0]
}

// List returns a copy of the entries of a field.
// It is empty (but not nil) for a known field without entries and nil for an unknown field.
func (n *Node) List(field string) []*Node {
	if n == nil {
		return nil
	}
	i, ok := n.def.index[field]
	if !ok {
		return nil
	}
	return append([]*Node{}, n.fields[i]...)
}

// Has reports whether the field holds at least one entry.
func (n *Node) Has(field string) bool {
	if n == nil {
		return false
	}
	i, ok := n.def.index[field]
	return ok && len(n.fields[i]) > 0
}

// Children returns the child nodes of the named fields, or of all fields if no name is given,
// in traversal order.
func (n *Node) Children(name ...string) []*Node {
	if n == nil {
		return nil
	}
	var children []*Node
	for i, f := range n.def.all {
		if len(name) > 0 && !slices.Contains(name, f.Name) {
			continue
		}
		children = append(children, n.fields[i]...)
	}
	return children
}

// ID returns the element or resource id.
func (n *Node) ID() (string, bool) {
	id := n.Get("id")
	if id == nil || id.value == nil {
		return "", false
	}
	return id.value.String(), true
}

// Extensions returns the extensions of the node.
func (n *Node) Extensions() []*Node {
	return n.List("extension")
}

// ModifierExtensions returns the modifier extensions of the node.
func (n *Node) ModifierExtensions() []*Node {
	return n.List("modifierExtension")
}

// Contained returns the contained resources of a domain resource.
func (n *Node) Contained() []*Node {
	return n.List("contained")
}

// IsResource reports whether the node is a resource.
func (n *Node) IsResource() bool {
	return n != nil && n.def.IsResource()
}

// ResourceType returns the resource type name, or "" if the node is not a resource.
func (n *Node) ResourceType() string {
	if !n.IsResource() {
		return ""
	}
	return n.def.Name
}

// ResourceId returns the resource id, if the node is a resource and has one.
func (n *Node) ResourceId() (string, bool) {
	if !n.IsResource() {
		return "", false
	}
	return n.ID()
}

var (
	nodeSize    = int(reflect.TypeOf(Node{}).Size())
	sliceSize   = int(reflect.TypeOf([]*Node{}).Size())
	pointerSize = int(reflect.TypeOf(&Node{}).Size())
	stringSize  = int(reflect.TypeOf("").Size())
)

// MemSize returns an approximation of the memory retained by the node and its subtree.
// Unused slice capacity is counted as well.
func (n *Node) MemSize() int {
	if n == nil {
		return 0
	}
	s := nodeSize + cap(n.fields)*sliceSize
	for _, f := range n.fields {
		s += cap(f) * pointerSize
		for _, c := range f {
			s += c.MemSize()
		}
	}
	switch v := n.value.(type) {
	case StringValue:
		s += stringSize + len(v)
	case DecimalValue:
		if v.d != nil {
			s += int(reflect.TypeOf(*v.d).Size())
		}
	case BooleanValue, IntegerValue:
		s += int(reflect.TypeOf(v).Size())
	}
	return s
}

// String renders the node as indented JSON for debugging.
// This is not the FHIR JSON format.
func (n *Node) String() string {
	buf, err := json.MarshalIndent(n.debug(), "", "  ")
	if err != nil {
		return "null"
	}
	return string(buf)
}

func (n *Node) debug() any {
	if n == nil {
		return nil
	}
	m := map[string]any{"@type": n.def.Name}
	if n.value != nil {
		m["@value"] = n.value.String()
	}
	for i, f := range n.def.all {
		children := n.fields[i]
		if len(children) == 0 {
			continue
		}
		if f.Repeating() {
			list := make([]any, len(children))
			for j, c := range children {
				list[j] = c.debug()
			}
			m[f.Name] = list
		} else {
			m[f.Name] = children[0].debug()
		}
	}
	return m
}
