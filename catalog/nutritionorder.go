package catalog

import (
	"github.com/damedic/fhir-tree-go/model"
)

var (
	// NutritionOrder is a request to supply a diet, formula feeding or oral nutritional supplement to a patient.
	NutritionOrder = model.Define(model.TypeDef{
		Name: "NutritionOrder",
		Kind: model.KindResource,
		Base: model.DomainResourceDef,
		Fields: []model.FieldDef{
			model.List("identifier", "Identifier").InSummary(),
			model.List("instantiatesCanonical", "canonical").InSummary(),
			model.List("instantiatesUri", "uri").InSummary(),
			model.List("instantiates", "uri").InSummary(),
			model.Required("status", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/request-status").InSummary(),
			model.Required("intent", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/request-intent").InSummary(),
			model.Required("patient", "Reference").Refer("Patient").InSummary(),
			model.Optional("encounter", "Reference").Refer("Encounter"),
			model.Required("dateTime", "dateTime").InSummary(),
			model.Optional("orderer", "Reference").Refer("Practitioner", "PractitionerRole").InSummary(),
			model.List("allergyIntolerance", "Reference").Refer("AllergyIntolerance"),
			model.List("foodPreferenceModifier", "CodeableConcept").Bind(model.BindingExample, "http://hl7.org/fhir/ValueSet/encounter-diet"),
			model.List("excludeFoodModifier", "CodeableConcept").Bind(model.BindingExample, "http://hl7.org/fhir/ValueSet/food-type"),
			model.Optional("oralDiet", "NutritionOrder.OralDiet"),
			model.List("supplement", "NutritionOrder.Supplement"),
			model.Optional("enteralFormula", "NutritionOrder.EnteralFormula"),
			model.List("note", "Annotation"),
		},
		Constraints: []model.Constraint{{
			Key:        "nor-1",
			Severity:   "warning",
			Human:      "Nutrition Order SHALL contain either Oral Diet , Supplement, or Enteral Formula class",
			Expression: "oralDiet.exists() or supplement.exists() or enteralFormula.exists()",
		}},
	})

	NutritionOrderOralDiet = model.Define(model.TypeDef{
		Name: "NutritionOrder.OralDiet",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.List("type", "CodeableConcept").Bind(model.BindingExample, "http://hl7.org/fhir/ValueSet/diet-type").InSummary(),
			model.List("schedule", "Timing").InSummary(),
			model.List("nutrient", "NutritionOrder.OralDiet.Nutrient"),
			model.List("texture", "NutritionOrder.OralDiet.Texture"),
			model.List("fluidConsistencyType", "CodeableConcept").Bind(model.BindingExample, "http://hl7.org/fhir/ValueSet/consistency-type"),
			model.Optional("instruction", "string").InSummary(),
		},
	})

	NutritionOrderOralDietNutrient = model.Define(model.TypeDef{
		Name: "NutritionOrder.OralDiet.Nutrient",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Optional("modifier", "CodeableConcept").Bind(model.BindingExample, "http://hl7.org/fhir/ValueSet/nutrient-code"),
			model.Optional("amount", "Quantity"),
		},
	})

	NutritionOrderOralDietTexture = model.Define(model.TypeDef{
		Name: "NutritionOrder.OralDiet.Texture",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Optional("modifier", "CodeableConcept").Bind(model.BindingExample, "http://hl7.org/fhir/ValueSet/texture-code"),
			model.Optional("foodType", "CodeableConcept").Bind(model.BindingExample, "http://hl7.org/fhir/ValueSet/modified-foodtype"),
		},
	})

	NutritionOrderSupplement = model.Define(model.TypeDef{
		Name: "NutritionOrder.Supplement",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Optional("type", "CodeableConcept").Bind(model.BindingExample, "http://hl7.org/fhir/ValueSet/supplement-type").InSummary(),
			model.Optional("productName", "string"),
			model.List("schedule", "Timing"),
			model.Optional("quantity", "Quantity"),
			model.Optional("instruction", "string").InSummary(),
		},
	})

	NutritionOrderEnteralFormula = model.Define(model.TypeDef{
		Name: "NutritionOrder.EnteralFormula",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Optional("baseFormulaType", "CodeableConcept").Bind(model.BindingExample, "http://hl7.org/fhir/ValueSet/entformula-type").InSummary(),
			model.Optional("baseFormulaProductName", "string").InSummary(),
			model.Optional("additiveType", "CodeableConcept").Bind(model.BindingExample, "http://hl7.org/fhir/ValueSet/entformula-additive"),
			model.Optional("additiveProductName", "string"),
			model.Optional("caloricDensity", "Quantity").InSummary(),
			model.Optional("routeofAdministration", "CodeableConcept").Bind(model.BindingExtensible, "http://hl7.org/fhir/ValueSet/enteral-route"),
			model.List("administration", "NutritionOrder.EnteralFormula.Administration"),
			model.Optional("maxVolumeToDeliver", "Quantity"),
			model.Optional("administrationInstruction", "string").InSummary(),
		},
	})

	NutritionOrderEnteralFormulaAdministration = model.Define(model.TypeDef{
		Name: "NutritionOrder.EnteralFormula.Administration",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Optional("schedule", "Timing"),
			model.Optional("quantity", "Quantity"),
			model.Choice("rate", 0, "Quantity", "Ratio"),
		},
	})
)

// NutritionOrderTypes returns NutritionOrder and its backbone elements.
func NutritionOrderTypes() []*model.TypeDef {
	return []*model.TypeDef{
		NutritionOrder,
		NutritionOrderOralDiet,
		NutritionOrderOralDietNutrient,
		NutritionOrderOralDietTexture,
		NutritionOrderSupplement,
		NutritionOrderEnteralFormula,
		NutritionOrderEnteralFormulaAdministration,
	}
}
