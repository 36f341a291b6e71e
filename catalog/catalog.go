// Package catalog provides the type definitions of the FHIR datatypes and of the
// NutritionOrder, StructureMap and ValueSet resource families.
package catalog

import (
	"slices"

	"github.com/damedic/fhir-tree-go/model"
)

// Default holds every built-in definition: primitives, abstract bases, datatypes and resources.
var Default = newDefault()

func newDefault() *model.Registry {
	r := model.NewRegistry(All()...)
	if err := r.Verify(); err != nil {
		panic(err)
	}
	return r
}

// All returns every built-in definition.
func All() []*model.TypeDef {
	return slices.Concat(
		model.PrimitiveTypes(),
		model.BaseTypes(),
		Datatypes(),
		NutritionOrderTypes(),
		StructureMapTypes(),
		ValueSetTypes(),
	)
}

// Lookup returns the built-in definition with the given name.
func Lookup(name string) (*model.TypeDef, bool) {
	return Default.Lookup(name)
}
