package testdata

import (
	"maps"

	"github.com/damedic/fhir-tree-go/catalog"
	"github.com/damedic/fhir-tree-go/model"
)

// ModifierURL is the modifier extension carried by the "NutritionOrder-enteral" example.
const ModifierURL = "http://example.org/fhir/StructureDefinition/hold-until-surgery"

// GetExamples returns the catalog samples, keyed by resource type,
// plus the examples below, keyed by resource type and name.
//
//   - "NutritionOrder-enteral": an enteral formula order with a Ratio rate,
//     a contained ValueSet and a modifier extension
func GetExamples() map[string]*model.Node {
	examples := catalog.Samples()
	maps.Copy(examples, map[string]*model.Node{
		"NutritionOrder-enteral": enteralOrder(),
	})
	return examples
}

func enteralOrder() *model.Node {
	quantity := func(value, unit string) *model.Node {
		return build(model.NewBuilder(catalog.SimpleQuantity).
			Set("value", model.Must(model.NewDecimal(value))).
			Set("unit", model.Must(model.NewString(unit))))
	}

	rate := build(model.NewBuilder(catalog.Ratio).
		Set("numerator", quantity("60", "mL")).
		Set("denominator", quantity("1", "h")))

	schedule := build(model.NewBuilder(catalog.Timing).
		Set("repeat", build(model.NewBuilder(catalog.TimingRepeat).
			Set("frequency", model.Must(model.NewPositiveInt(1))).
			Set("period", model.Must(model.NewDecimal("1"))).
			Set("periodUnit", model.Must(model.NewCode("d"))))))

	administration := build(model.NewBuilder(catalog.NutritionOrderEnteralFormulaAdministration).
		Set("schedule", schedule).
		Set("rate", rate))

	formula := build(model.NewBuilder(catalog.NutritionOrderEnteralFormula).
		Set("baseFormulaProductName", model.Must(model.NewString("Acme High Protein Formula"))).
		Set("caloricDensity", quantity("1.5", "calories per milliliter")).
		Add("administration", administration).
		Set("maxVolumeToDeliver", quantity("880", "milliliter/day")))

	hold := build(model.NewBuilder(catalog.Extension, model.Must(model.NewUri(ModifierURL))).
		Set("value", model.Must(model.NewBoolean(true))))

	return build(model.NewBuilder(catalog.NutritionOrder,
		model.Must(model.NewCode("active")),
		model.Must(model.NewCode("order")),
		build(model.NewBuilder(catalog.Reference).Set("reference", model.Must(model.NewString("Patient/example")))),
		model.Must(model.NewDateTime("2014-09-17T16:00:00Z")),
	).
		Set("id", model.Must(model.NewId("enteralbolus"))).
		Add("contained", catalog.SampleValueSet()).
		Add("modifierExtension", hold).
		Set("enteralFormula", formula))
}

func build(b *model.Builder) *model.Node {
	return model.Must(b.Build())
}
