package model

import (
	"fmt"
	"slices"
)

// Unbounded is the Max of a field that repeats without limit ("*").
const Unbounded = -1

// Kind classifies a TypeDef.
type Kind uint8

const (
	KindPrimitive Kind = iota + 1
	KindComplex
	KindBackbone
	KindResource
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindComplex:
		return "complex"
	case KindBackbone:
		return "backbone"
	case KindResource:
		return "resource"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// BindingStrength is the strength of a terminology binding.
type BindingStrength string

const (
	BindingRequired   BindingStrength = "required"
	BindingExtensible BindingStrength = "extensible"
	BindingPreferred  BindingStrength = "preferred"
	BindingExample    BindingStrength = "example"
)

// Binding names the value set a coded field is bound to.
// It is metadata only, codes are never checked against it.
type Binding struct {
	Strength BindingStrength
	ValueSet string
}

// Constraint is an invariant declared on a type, e.g. "nor-1".
// The expression is carried for external evaluators and never evaluated here.
type Constraint struct {
	Key        string
	Severity   string
	Human      string
	Expression string
}

// FieldDef describes one field of a type.
type FieldDef struct {
	Name string
	// Types lists the allowed type names. More than one makes this a choice field.
	Types []string
	Min   int
	// Max is 1 for singletons, Unbounded for lists, or a bound above 1 enforced by Build.
	Max     int
	Binding *Binding
	// Targets lists the resource types a Reference field may point to.
	Targets []string
	Summary bool
}

// Required reports whether the field has a minimum cardinality of at least one.
func (f FieldDef) Required() bool { return f.Min > 0 }

// Repeating reports whether the field holds a list.
func (f FieldDef) Repeating() bool { return f.Max != 1 }

// Choice reports whether the field accepts one of several types.
func (f FieldDef) Choice() bool { return len(f.Types) > 1 }

// Cardinality renders the field cardinality as "min..max".
func (f FieldDef) Cardinality() string {
	if f.Max == Unbounded {
		return fmt.Sprintf("%d..*", f.Min)
	}
	return fmt.Sprintf("%d..%d", f.Min, f.Max)
}

// Bind returns a copy of f bound to the given value set.
func (f FieldDef) Bind(strength BindingStrength, valueSet string) FieldDef {
	f.Binding = &Binding{Strength: strength, ValueSet: valueSet}
	return f
}

// Refer returns a copy of f restricted to references of the given resource types.
func (f FieldDef) Refer(targets ...string) FieldDef {
	f.Targets = targets
	return f
}

// InSummary returns a copy of f flagged as part of the summary view.
func (f FieldDef) InSummary() FieldDef {
	f.Summary = true
	return f
}

// Optional declares a 0..1 field.
func Optional(name string, typ string) FieldDef {
	return FieldDef{Name: name, Types: []string{typ}, Min: 0, Max: 1}
}

// Required declares a 1..1 field.
func Required(name string, typ string) FieldDef {
	return FieldDef{Name: name, Types: []string{typ}, Min: 1, Max: 1}
}

// List declares a 0..* field.
func List(name string, typ string) FieldDef {
	return FieldDef{Name: name, Types: []string{typ}, Min: 0, Max: Unbounded}
}

// RequiredList declares a 1..* field.
func RequiredList(name string, typ string) FieldDef {
	return FieldDef{Name: name, Types: []string{typ}, Min: 1, Max: Unbounded}
}

// Choice declares a singleton field that accepts any one of types.
// min is 0 for an optional choice and 1 for a required one.
func Choice(name string, min int, types ...string) FieldDef {
	return FieldDef{Name: name, Types: types, Min: min, Max: 1}
}

// TypeDef is the schema of a primitive, complex, backbone or resource type.
//
// The effective field list of a type is the effective list of its Base followed by its own Fields.
// It determines both the builder's positional required arguments and the traversal order.
type TypeDef struct {
	Name        string
	Kind        Kind
	Abstract    bool
	Base        *TypeDef
	Fields      []FieldDef
	Constraints []Constraint
	// Lexical checks the value of a primitive. It is inherited from Base when nil.
	Lexical func(Value) error

	all      []FieldDef
	index    map[string]int
	required []int
}

// Define finalizes a type definition by computing its effective field table.
// It panics if a field name is declared twice along the Base chain.
func Define(t TypeDef) *TypeDef {
	def := &t
	if def.Base != nil {
		def.all = slices.Clone(def.Base.all)
		if def.Lexical == nil {
			def.Lexical = def.Base.Lexical
		}
	}
	def.all = append(def.all, def.Fields...)
	def.index = make(map[string]int, len(def.all))
	for i, f := range def.all {
		if _, dup := def.index[f.Name]; dup {
			panic(fmt.Sprintf("model: %s declares field %q twice", def.Name, f.Name))
		}
		def.index[f.Name] = i
		if f.Required() {
			def.required = append(def.required, i)
		}
	}
	return def
}

// AllFields returns the effective fields in traversal order.
func (t *TypeDef) AllFields() []FieldDef {
	return slices.Clone(t.all)
}

// Field looks up an effective field by name.
func (t *TypeDef) Field(name string) (FieldDef, bool) {
	i, ok := t.index[name]
	if !ok {
		return FieldDef{}, false
	}
	return t.all[i], true
}

// RequiredFields returns the required fields in the order NewBuilder expects them.
func (t *TypeDef) RequiredFields() []FieldDef {
	fields := make([]FieldDef, len(t.required))
	for i, idx := range t.required {
		fields[i] = t.all[idx]
	}
	return fields
}

// IsA reports whether t is the named type or derives from it.
func (t *TypeDef) IsA(name string) bool {
	for d := t; d != nil; d = d.Base {
		if d.Name == name {
			return true
		}
	}
	return false
}

// IsResource reports whether t is a resource type.
func (t *TypeDef) IsResource() bool {
	return t.Kind == KindResource
}

func (t *TypeDef) String() string {
	return t.Name
}

// assignable reports whether a node of type t may fill a slot declaring one of types.
func (t *TypeDef) assignable(types []string) bool {
	for _, name := range types {
		if t.IsA(name) {
			return true
		}
	}
	return false
}
