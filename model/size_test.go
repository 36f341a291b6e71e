package model_test

import (
	"reflect"
	"testing"

	"github.com/damedic/fhir-tree-go/catalog"
	"github.com/damedic/fhir-tree-go/model"
)

var (
	nodeSize    = int(reflect.TypeOf(model.Node{}).Size())
	sliceSize   = int(reflect.TypeOf([]*model.Node{}).Size())
	pointerSize = int(reflect.TypeOf(&model.Node{}).Size())
	stringSize  = int(reflect.TypeOf("").Size())
)

// primitiveSize is the size of a primitive node without id or extensions.
func primitiveSize(def *model.TypeDef) int {
	return nodeSize + len(def.AllFields())*sliceSize
}

func TestMemSize(t *testing.T) {
	tests := []struct {
		name string
		node *model.Node
		want int
	}{
		{
			name: "nil",
			node: nil,
			want: 0,
		},
		{
			name: "string",
			node: str("1"),
			want: primitiveSize(model.StringDef) + stringSize + len("1"),
		},
		{
			name: "boolean",
			node: model.Must(model.NewBoolean(true)),
			want: primitiveSize(model.BooleanDef) + int(reflect.TypeOf(model.BooleanValue(true)).Size()),
		},
		{
			name: "integer",
			node: model.Must(model.NewInteger(7)),
			want: primitiveSize(model.IntegerDef) + int(reflect.TypeOf(model.IntegerValue(7)).Size()),
		},
		{
			name: "coding with code",
			node: model.Must(model.NewBuilder(catalog.Coding).Set("code", code("x")).Build()),
			want: nodeSize + len(catalog.Coding.AllFields())*sliceSize +
				pointerSize + primitiveSize(model.CodeDef) + stringSize + len("x"),
		},
		{
			name: "dependent with variables",
			node: model.Must(model.NewBuilder(catalog.StructureMapGroupRuleDependent, id("g"), model.Nodes{str("a"), str("bc")}).Build()),
			want: nodeSize + len(catalog.StructureMapGroupRuleDependent.AllFields())*sliceSize +
				pointerSize + primitiveSize(model.IdDef) + stringSize + len("g") +
				2*pointerSize + 2*(primitiveSize(model.StringDef)+stringSize) + len("a") + len("bc"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.MemSize(); got != tt.want {
				t.Errorf("MemSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMemSizeGrowsWithContent(t *testing.T) {
	order := catalog.SampleNutritionOrder()
	supplement := order.Get("supplement")

	if supplement.MemSize() >= order.MemSize() {
		t.Errorf("child size %d is not smaller than the order size %d", supplement.MemSize(), order.MemSize())
	}

	bigger := model.Must(order.ToBuilder().Add("supplement", supplement).Build())
	if got, want := bigger.MemSize(), order.MemSize()+supplement.MemSize(); got < want {
		t.Errorf("MemSize() = %d after adding a supplement, want at least %d", got, want)
	}
}
