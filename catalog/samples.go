package catalog

import (
	"github.com/damedic/fhir-tree-go/model"
)

// Samples returns the sample resources keyed by resource type.
func Samples() map[string]*model.Node {
	return map[string]*model.Node{
		NutritionOrder.Name: SampleNutritionOrder(),
		StructureMap.Name:   SampleStructureMap(),
		ValueSet.Name:       SampleValueSet(),
	}
}

// SampleNutritionOrder returns a cardiac diet order with an oral diet, two supplements and a note.
func SampleNutritionOrder() *model.Node {
	sodium := build(model.NewBuilder(NutritionOrderOralDietNutrient).
		Set("modifier", codeable("http://snomed.info/sct", "39972003", "Sodium")).
		Set("amount", quantity(SimpleQuantity, "2", "grams", "g")))

	oralDiet := build(model.NewBuilder(NutritionOrderOralDiet).
		Add("type", codeable("http://snomed.info/sct", "386619000", "Low sodium diet")).
		Add("nutrient", sodium).
		Set("instruction", str("Starting on 2/10 breakfast, maximum 400 ml fluids per meal")))

	supplement1 := build(model.NewBuilder(NutritionOrderSupplement).
		Set("type", codeable("http://snomed.info/sct", "442971000124100", "Adult high energy formula")).
		Set("productName", str("Ensure")).
		Set("quantity", quantity(SimpleQuantity, "1", "8 oz bottle", "")))

	supplement2 := build(model.NewBuilder(NutritionOrderSupplement).
		Set("productName", str("Boost")).
		Set("instruction", str("Offer with lunch")))

	priority := build(model.NewBuilder(Extension, model.Must(model.NewUri("http://example.org/fhir/StructureDefinition/note-priority"))).
		Set("value", code("high")))

	note := build(model.NewBuilder(Annotation, model.Must(model.NewMarkdown("Patient prefers small portions"))).
		Set("id", str("note1")).
		Add("extension", priority))

	return build(model.NewBuilder(NutritionOrder,
		code("active"),
		code("order"),
		reference("Patient/example", "Peter Chalmers"),
		model.Must(model.NewDateTime("2014-09-17")),
	).
		Set("id", model.Must(model.NewId("cardiacdiet"))).
		Set("text", build(model.NewBuilder(Narrative,
			code("generated"),
			model.Must(model.NewXhtml(`<div xmlns="http://www.w3.org/1999/xhtml">Cardiac diet</div>`)),
		))).
		Add("identifier", build(model.NewBuilder(Identifier).
			Set("system", model.Must(model.NewUri("http://goodhealthhospital.org/nutrition-requests"))).
			Set("value", str("123")))).
		Set("orderer", reference("Practitioner/example", "Dr Adam Careful")).
		Add("allergyIntolerance", reference("AllergyIntolerance/example", "Cashew Nuts")).
		Add("foodPreferenceModifier", codeable("http://terminology.hl7.org/CodeSystem/diet", "dairy-free", "Dairy Free")).
		Set("oralDiet", oralDiet).
		Add("supplement", supplement1, supplement2).
		Add("note", note))
}

// SampleStructureMap returns a two group map whose first rule depends on the second group.
func SampleStructureMap() *model.Node {
	input := func(name, typ, mode string) *model.Node {
		return build(model.NewBuilder(StructureMapGroupInput, id(name), code(mode)).
			Set("type", str(typ)))
	}
	source := func(context, element, variable string) *model.Node {
		b := model.NewBuilder(StructureMapGroupRuleSource, id(context)).Set("variable", id(variable))
		if element != "" {
			b.Set("element", str(element))
		}
		return build(b)
	}
	copyTarget := func(context, element, from string) *model.Node {
		parameter := build(model.NewBuilder(StructureMapGroupRuleTargetParameter, id(from)))
		return build(model.NewBuilder(StructureMapGroupRuleTarget).
			Set("context", id(context)).
			Set("contextType", code("variable")).
			Set("element", str(element)).
			Set("transform", code("copy")).
			Add("parameter", parameter))
	}

	inner := build(model.NewBuilder(StructureMapGroupRule, id("rule_aa"), model.Nodes{source("a", "", "aa")}).
		Add("target", copyTarget("tgt", "aa", "aa")))

	dependent := build(model.NewBuilder(StructureMapGroupRuleDependent,
		id("tutorial_inner"),
		model.Nodes{str("a"), str("tgt")},
	))

	ruleA := build(model.NewBuilder(StructureMapGroupRule, id("rule_a"), model.Nodes{source("src", "a", "a")}).
		Add("target", copyTarget("tgt", "a", "a")).
		Add("rule", inner).
		Add("dependent", dependent).
		Set("documentation", str("copy a, then map its children in tutorial_inner")))

	ruleB := build(model.NewBuilder(StructureMapGroupRule, id("rule_b"), model.Nodes{source("src", "b", "b")}).
		Add("target", copyTarget("tgt", "b", "b")))

	outer := build(model.NewBuilder(StructureMapGroup,
		id("tutorial"),
		code("none"),
		model.Nodes{input("src", "TLeft", "source"), input("tgt", "TRight", "target")},
		model.Nodes{ruleA},
	))

	innerGroup := build(model.NewBuilder(StructureMapGroup,
		id("tutorial_inner"),
		code("none"),
		model.Nodes{input("a", "TLeftInner", "source"), input("tgt", "TRight", "target")},
		model.Nodes{ruleB},
	))

	structure := func(url, mode, alias string) *model.Node {
		return build(model.NewBuilder(StructureMapStructure, model.Must(model.NewCanonical(url)), code(mode)).
			Set("alias", str(alias)))
	}

	return build(model.NewBuilder(StructureMap,
		model.Must(model.NewUri("http://hl7.org/fhir/StructureMap/tutorial")),
		str("Tutorial"),
		code("draft"),
		model.Nodes{outer, innerGroup},
	).
		Set("id", model.Must(model.NewId("tutorial"))).
		Set("experimental", model.Must(model.NewBoolean(true))).
		Add("structure",
			structure("http://hl7.org/fhir/StructureDefinition/tutorial-left", "source", "TLeft"),
			structure("http://hl7.org/fhir/StructureDefinition/tutorial-right", "target", "TRight"),
		))
}

// SampleValueSet returns an extensional LOINC value set with a nested expansion.
func SampleValueSet() *model.Node {
	concept := func(c, display string) *model.Node {
		return build(model.NewBuilder(ValueSetComposeIncludeConcept, code(c)).
			Set("display", str(display)))
	}
	designation := build(model.NewBuilder(ValueSetComposeIncludeConceptDesignation, str("Cholesterol [Moles/Volume]")).
		Set("language", code("en")))
	cholesterol := build(concept("14647-2", "Cholesterol [Moles/Volume]").ToBuilder().
		Add("designation", designation))

	include := build(model.NewBuilder(ValueSetComposeInclude).
		Set("system", model.Must(model.NewUri("http://loinc.org"))).
		Set("version", str("2.36")).
		Add("concept",
			cholesterol,
			concept("2093-3", "Cholesterol [Mass/volume] in Serum or Plasma"),
			concept("35200-5", "Cholesterol [Mass Or Moles/volume] in Serum or Plasma"),
		))

	contains := func(c, display string, children ...*model.Node) *model.Node {
		return build(model.NewBuilder(ValueSetExpansionContains).
			Set("system", model.Must(model.NewUri("http://loinc.org"))).
			Set("code", code(c)).
			Set("display", str(display)).
			Add("contains", children...))
	}
	expansion := build(model.NewBuilder(ValueSetExpansion, model.Must(model.NewDateTime("2015-06-22T13:56:07Z"))).
		Set("total", model.Must(model.NewInteger(2))).
		Add("parameter", build(model.NewBuilder(ValueSetExpansionParameter, str("version")).
			Set("value", str("2.50")))).
		Add("contains", contains("LP43571-6", "Cholesterol",
			contains("14647-2", "Cholesterol [Moles/Volume]"),
			contains("2093-3", "Cholesterol [Mass/volume] in Serum or Plasma"),
		)))

	return build(model.NewBuilder(ValueSet, code("draft")).
		Set("id", model.Must(model.NewId("example-extensional"))).
		Set("url", model.Must(model.NewUri("http://hl7.org/fhir/ValueSet/example-extensional"))).
		Set("name", str("LOINCCodesForCholesterolInSerumPlasma")).
		Set("immutable", model.Must(model.NewBoolean(true))).
		Set("compose", build(model.NewBuilder(ValueSetCompose, model.Nodes{include}).
			Set("lockedDate", model.Must(model.NewDate("2012-06-13"))))).
		Set("expansion", expansion))
}

func build(b *model.Builder) *model.Node {
	return model.Must(b.Build())
}

func str(s string) *model.Node  { return model.Must(model.NewString(s)) }
func code(s string) *model.Node { return model.Must(model.NewCode(s)) }
func id(s string) *model.Node   { return model.Must(model.NewId(s)) }

func codeable(system, c, display string) *model.Node {
	coding := build(model.NewBuilder(Coding).
		Set("system", model.Must(model.NewUri(system))).
		Set("code", code(c)).
		Set("display", str(display)))
	return build(model.NewBuilder(CodeableConcept).Add("coding", coding))
}

func reference(ref, display string) *model.Node {
	return build(model.NewBuilder(Reference).
		Set("reference", str(ref)).
		Set("display", str(display)))
}

func quantity(def *model.TypeDef, value, unit, ucum string) *model.Node {
	b := model.NewBuilder(def).
		Set("value", model.Must(model.NewDecimal(value))).
		Set("unit", str(unit))
	if ucum != "" {
		b.Set("system", model.Must(model.NewUri("http://unitsofmeasure.org"))).
			Set("code", code(ucum))
	}
	return build(b)
}
