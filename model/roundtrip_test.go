package model_test

import (
	"testing"

	"github.com/damedic/fhir-tree-go/catalog"
	"github.com/damedic/fhir-tree-go/model"
	"github.com/damedic/fhir-tree-go/testdata"
	"github.com/damedic/fhir-tree-go/testdata/assert"
)

func TestRoundtripBuilder(t *testing.T) {
	for name, example := range testdata.GetExamples() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rebuilt, err := example.ToBuilder().Build()
			if err != nil {
				t.Fatalf("ToBuilder().Build() error = %v", err)
			}

			assert.NodesEqual(t, example, rebuilt)
			if example.Hash() != rebuilt.Hash() {
				t.Errorf("hash changed: %x != %x", example.Hash(), rebuilt.Hash())
			}
		})
	}
}

func TestRoundtripNestedRules(t *testing.T) {
	sm := catalog.SampleStructureMap()
	rule := sm.Get("group").Get("rule")

	rebuilt := model.Must(rule.ToBuilder().Build())
	assert.NodesEqual(t, rule, rebuilt)

	inner := rebuilt.Get("rule")
	if got := inner.Get("name").Value(); got != model.StringValue("rule_aa") {
		t.Errorf("nested rule name = %v, want rule_aa", got)
	}
}

func TestToBuilderIsolated(t *testing.T) {
	order := catalog.SampleNutritionOrder()
	before := order.String()

	extra := model.Must(model.NewBuilder(catalog.NutritionOrderSupplement).Set("productName", str("Nepro")).Build())
	b := order.ToBuilder().
		Add("supplement", extra).
		Set("status", code("revoked")).
		Replace("note", nil)

	changed, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := len(changed.List("supplement")); got != 3 {
		t.Errorf("changed order has %d supplements, want 3", got)
	}
	if changed.Has("note") {
		t.Errorf("changed order still has notes")
	}
	if order.String() != before {
		t.Errorf("original order changed:\n%s", order.String())
	}
	if order.Equal(changed) {
		t.Errorf("changed order equals the original")
	}

	// building twice from the same builder yields equal, independent nodes
	again := model.Must(b.Build())
	assert.NodesEqual(t, changed, again)
}
