package model_test

import (
	"sync"
	"testing"

	"github.com/cockroachdb/apd/v3"

	"github.com/damedic/fhir-tree-go/catalog"
	"github.com/damedic/fhir-tree-go/model"
)

func TestEqual(t *testing.T) {
	dec := func(s string) *model.Node { return model.Must(model.NewDecimal(s)) }
	quantity := func(value string) *model.Node {
		return model.Must(model.NewBuilder(catalog.Quantity).Set("value", dec(value)).Build())
	}

	tests := []struct {
		name string
		a, b *model.Node
		want bool
	}{
		{name: "same strings", a: str("a"), b: str("a"), want: true},
		{name: "different strings", a: str("a"), b: str("b"), want: false},
		{name: "same text different type", a: str("a"), b: code("a"), want: false},
		{name: "same decimal", a: dec("1.0"), b: dec("1.0"), want: true},
		{name: "decimal precision", a: dec("1.0"), b: dec("1.00"), want: false},
		{name: "decimal exponent notation", a: dec("100"), b: dec("1E+2"), want: false},
		{name: "negative zero", a: dec("-0"), b: dec("0"), want: true},
		{name: "nested decimal precision", a: quantity("2"), b: quantity("2.0"), want: false},
		{name: "nested equal", a: quantity("2"), b: quantity("2"), want: true},
		{name: "boolean and string", a: model.Must(model.NewBoolean(true)), b: str("true"), want: false},
		{name: "integer and positiveInt", a: model.Must(model.NewInteger(1)), b: model.Must(model.NewPositiveInt(1)), want: false},
		{name: "nil and node", a: nil, b: str("a"), want: false},
		{name: "nil and nil", a: nil, b: nil, want: true},
		{name: "rebuilt samples", a: catalog.SampleStructureMap(), b: catalog.SampleStructureMap(), want: true},
		{name: "different samples", a: catalog.SampleValueSet(), b: catalog.SampleStructureMap(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("a.Equal(b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("b.Equal(a) = %v, want %v", got, tt.want)
			}
			if tt.want && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal nodes hash differently: %x != %x", tt.a.Hash(), tt.b.Hash())
			}
		})
	}
}

func TestListOrderMatters(t *testing.T) {
	a := model.Must(model.NewBuilder(catalog.StructureMapGroupRuleDependent, id("g"), model.Nodes{str("x"), str("y")}).Build())
	b := model.Must(model.NewBuilder(catalog.StructureMapGroupRuleDependent, id("g"), model.Nodes{str("y"), str("x")}).Build())
	if a.Equal(b) {
		t.Errorf("lists in different order are equal")
	}
}

func TestDecimalValue(t *testing.T) {
	v, err := model.ParseDecimal("12.50")
	if err != nil {
		t.Fatal(err)
	}
	if got := v.String(); got != "12.50" {
		t.Errorf("String() = %q, want 12.50", got)
	}

	d := v.Decimal()
	d.Set(apd.New(1, 0))
	if got := v.String(); got != "12.50" {
		t.Errorf("modifying Decimal() changed the value to %s", got)
	}

	src := apd.New(125, -1)
	w := model.DecimalOf(src)
	src.Set(apd.New(0, 0))
	if got := w.String(); got != "12.5" {
		t.Errorf("DecimalOf() = %s after modifying the source, want 12.5", got)
	}
}

func TestHashConcurrent(t *testing.T) {
	order := catalog.SampleNutritionOrder()
	want := catalog.SampleNutritionOrder().Hash()

	var wg sync.WaitGroup
	hashes := make([]uint64, 16)
	for i := range hashes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hashes[i] = order.Hash()
		}()
	}
	wg.Wait()

	for i, h := range hashes {
		if h != want {
			t.Errorf("goroutine %d: Hash() = %x, want %x", i, h, want)
		}
	}
}
