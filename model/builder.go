package model

import (
	"fmt"
	"sync"
)

// Arg is a positional argument of NewBuilder: a *Node for a singleton field or Nodes for a list.
type Arg interface {
	nodes() []*Node
}

// Nodes is the argument form of a list field.
type Nodes []*Node

func (n *Node) nodes() []*Node {
	if n == nil {
		return nil
	}
	return []*Node{n}
}

func (n Nodes) nodes() []*Node { return n }

// Builder stages the construction of a Node.
//
// A Builder is meant to be used by a single goroutine. Misuse of a setter (unknown field,
// wrong cardinality) is recorded and reported by Build.
type Builder struct {
	def   *TypeDef
	value Value
	lists [][]*Node
	err   error
}

// NewBuilder returns a builder for def. The required arguments fill the required fields
// of def in declaration order, see TypeDef.RequiredFields.
func NewBuilder(def *TypeDef, required ...Arg) *Builder {
	b := &Builder{def: def, lists: make([][]*Node, len(def.all))}
	for i := range b.lists {
		b.lists[i] = []*Node{}
	}
	if len(required) > len(def.required) {
		b.fail(&ValidationError{
			Err:    ErrInvalidField,
			Type:   def.Name,
			Detail: fmt.Sprintf("got %d required arguments, want %d", len(required), len(def.required)),
		})
		return b
	}
	for i, arg := range required {
		if arg == nil {
			continue
		}
		f := def.all[def.required[i]]
		if f.Repeating() {
			b.Replace(f.Name, arg.nodes())
		} else {
			ns := arg.nodes()
			if _, isList := arg.(Nodes); isList && len(ns) > 1 {
				b.fail(&ValidationError{Err: ErrInvalidField, Type: def.Name, Field: f.Name, Detail: "field does not repeat"})
				continue
			}
			if len(ns) > 0 {
				b.Set(f.Name, ns[0])
			}
		}
	}
	return b
}

// ToBuilder returns a builder seeded with the contents of n.
// The builder owns fresh copies of all lists, so changes to it never affect n.
func (n *Node) ToBuilder() *Builder {
	b := NewBuilder(n.def)
	b.value = n.value
	for i, f := range n.fields {
		b.lists[i] = append(b.lists[i], f...)
	}
	return b
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Builder) field(name string, repeating bool) (int, bool) {
	i, ok := b.def.index[name]
	if !ok {
		b.fail(&ValidationError{Err: ErrInvalidField, Type: b.def.Name, Field: name, Detail: "unknown field"})
		return 0, false
	}
	if f := b.def.all[i]; f.Repeating() != repeating {
		detail := "field does not repeat"
		if f.Repeating() {
			detail = "field repeats, use Add or Replace"
		}
		b.fail(&ValidationError{Err: ErrInvalidField, Type: b.def.Name, Field: name, Detail: detail})
		return 0, false
	}
	return i, true
}

// Set sets a singleton field. A nil node clears it.
func (b *Builder) Set(field string, n *Node) *Builder {
	i, ok := b.field(field, false)
	if !ok {
		return b
	}
	if n == nil {
		b.lists[i] = []*Node{}
	} else {
		b.lists[i] = []*Node{n}
	}
	return b
}

// Add appends nodes to a list field, keeping what was added before.
func (b *Builder) Add(field string, nodes ...*Node) *Builder {
	i, ok := b.field(field, true)
	if !ok {
		return b
	}
	for _, n := range nodes {
		if n == nil {
			b.fail(&ValidationError{Err: ErrInvalidField, Type: b.def.Name, Field: field, Detail: "list entries must not be nil"})
			return b
		}
	}
	b.lists[i] = append(b.lists[i], nodes...)
	return b
}

// Replace discards the entries of a list field and replaces them with nodes.
func (b *Builder) Replace(field string, nodes []*Node) *Builder {
	i, ok := b.field(field, true)
	if !ok {
		return b
	}
	b.lists[i] = []*Node{}
	return b.Add(field, nodes...)
}

// Value sets the value of a primitive.
func (b *Builder) Value(v Value) *Builder {
	if b.def.Kind != KindPrimitive {
		b.fail(&ValidationError{Err: ErrInvalidValue, Type: b.def.Name, Detail: "only primitives carry a value"})
		return b
	}
	b.value = v
	return b
}

// Build validates the staged fields and returns the immutable node.
//
// The checks run in this order: required fields and required lists in declaration order,
// the upper bound of bounded lists, the type of every child, the lexical form of a primitive value, and finally that an element
// has a value or at least one child. The first failure is returned and no node is produced.
func (b *Builder) Build() (*Node, error) {
	if b.err != nil {
		return nil, b.err
	}
	def := b.def
	if def.Abstract {
		return nil, &ValidationError{Err: ErrAbstractType, Type: def.Name}
	}

	n := &Node{def: def, value: b.value, fields: make([][]*Node, len(def.all))}
	for i, l := range b.lists {
		if len(l) > 0 {
			n.fields[i] = append(make([]*Node, 0, len(l)), l...)
		}
	}

	for _, i := range def.required {
		f := def.all[i]
		var err error
		if f.Repeating() {
			_, err = RequireNonEmpty(def.Name, f.Name, n.fields[i])
		} else {
			_, err = RequireNonNull(def.Name, f.Name, first(n.fields[i]))
		}
		if err != nil {
			return nil, err
		}
	}

	for i, f := range def.all {
		if f.Repeating() && f.Max != Unbounded && len(n.fields[i]) > f.Max {
			return nil, &ValidationError{
				Err:    ErrTooManyElements,
				Type:   def.Name,
				Field:  f.Name,
				Detail: fmt.Sprintf("%d elements, at most %d allowed", len(n.fields[i]), f.Max),
			}
		}
	}

	for i, f := range def.all {
		for _, c := range n.fields[i] {
			if f.Choice() {
				if _, err := ChoiceElement(def.Name, f.Name, c, f.Types...); err != nil {
					return nil, err
				}
			} else if !c.def.assignable(f.Types) {
				return nil, &ValidationError{
					Err:     ErrInvalidField,
					Type:    def.Name,
					Field:   f.Name,
					Actual:  c.def.Name,
					Allowed: f.Types,
				}
			}
		}
	}

	if n.value != nil && def.Lexical != nil {
		if err := def.Lexical(n.value); err != nil {
			return nil, &ValidationError{Err: ErrInvalidValue, Type: def.Name, Detail: err.Error()}
		}
	}

	if !def.IsResource() {
		if err := RequireValueOrChildren(n); err != nil {
			return nil, err
		}
	}

	n.hash = sync.OnceValue(n.computeHash)
	return n, nil
}

func first(nodes []*Node) *Node {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}
