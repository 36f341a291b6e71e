package catalog

import (
	"slices"

	"github.com/damedic/fhir-tree-go/model"
)

// datatypeNames are the complex datatypes an open value[x] may hold.
var datatypeNames = []string{
	"Annotation", "CodeableConcept", "Coding", "ContactDetail", "ContactPoint", "Identifier",
	"Meta", "Period", "Quantity", "Range", "Ratio", "Reference", "Timing", "UsageContext",
}

// openTypes lists every type allowed in Extension.value[x] and StructureMap default values.
// xhtml is only valid in Narrative.div.
var openTypes = slices.Concat(
	slices.DeleteFunc(model.PrimitiveTypeNames(), func(name string) bool { return name == "xhtml" }),
	datatypeNames,
)

var (
	Extension = model.Define(model.TypeDef{
		Name: "Extension",
		Kind: model.KindComplex,
		Base: model.ElementDef,
		Fields: []model.FieldDef{
			model.Required("url", "uri"),
			model.Choice("value", 0, openTypes...),
		},
		Constraints: []model.Constraint{{
			Key:        "ext-1",
			Severity:   "error",
			Human:      "Must have either extensions or value[x], not both",
			Expression: "extension.exists() != value.exists()",
		}},
	})

	Meta = model.Define(model.TypeDef{
		Name: "Meta",
		Kind: model.KindComplex,
		Base: model.ElementDef,
		Fields: []model.FieldDef{
			model.Optional("versionId", "id").InSummary(),
			model.Optional("lastUpdated", "instant").InSummary(),
			model.Optional("source", "uri").InSummary(),
			model.List("profile", "canonical").InSummary(),
			model.List("security", "Coding").Bind(model.BindingExtensible, "http://hl7.org/fhir/ValueSet/security-labels").InSummary(),
			model.List("tag", "Coding").Bind(model.BindingExample, "http://hl7.org/fhir/ValueSet/common-tags").InSummary(),
		},
	})

	Narrative = model.Define(model.TypeDef{
		Name: "Narrative",
		Kind: model.KindComplex,
		Base: model.ElementDef,
		Fields: []model.FieldDef{
			model.Required("status", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/narrative-status"),
			model.Required("div", "xhtml"),
		},
	})

	Coding = model.Define(model.TypeDef{
		Name: "Coding",
		Kind: model.KindComplex,
		Base: model.ElementDef,
		Fields: []model.FieldDef{
			model.Optional("system", "uri").InSummary(),
			model.Optional("version", "string").InSummary(),
			model.Optional("code", "code").InSummary(),
			model.Optional("display", "string").InSummary(),
			model.Optional("userSelected", "boolean").InSummary(),
		},
	})

	CodeableConcept = model.Define(model.TypeDef{
		Name: "CodeableConcept",
		Kind: model.KindComplex,
		Base: model.ElementDef,
		Fields: []model.FieldDef{
			model.List("coding", "Coding").InSummary(),
			model.Optional("text", "string").InSummary(),
		},
	})

	Identifier = model.Define(model.TypeDef{
		Name: "Identifier",
		Kind: model.KindComplex,
		Base: model.ElementDef,
		Fields: []model.FieldDef{
			model.Optional("use", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/identifier-use").InSummary(),
			model.Optional("type", "CodeableConcept").Bind(model.BindingExtensible, "http://hl7.org/fhir/ValueSet/identifier-type").InSummary(),
			model.Optional("system", "uri").InSummary(),
			model.Optional("value", "string").InSummary(),
			model.Optional("period", "Period").InSummary(),
			model.Optional("assigner", "Reference").Refer("Organization").InSummary(),
		},
	})

	Reference = model.Define(model.TypeDef{
		Name: "Reference",
		Kind: model.KindComplex,
		Base: model.ElementDef,
		Fields: []model.FieldDef{
			model.Optional("reference", "string").InSummary(),
			model.Optional("type", "uri").Bind(model.BindingExtensible, "http://hl7.org/fhir/ValueSet/resource-types").InSummary(),
			model.Optional("identifier", "Identifier").InSummary(),
			model.Optional("display", "string").InSummary(),
		},
		Constraints: []model.Constraint{{
			Key:        "ref-1",
			Severity:   "error",
			Human:      "SHALL have a contained resource if a local reference is provided",
			Expression: "reference.startsWith('#').not() or (reference.substring(1).trace('url') in %rootResource.contained.id.trace('ids'))",
		}},
	})

	Period = model.Define(model.TypeDef{
		Name: "Period",
		Kind: model.KindComplex,
		Base: model.ElementDef,
		Fields: []model.FieldDef{
			model.Optional("start", "dateTime").InSummary(),
			model.Optional("end", "dateTime").InSummary(),
		},
		Constraints: []model.Constraint{{
			Key:        "per-1",
			Severity:   "error",
			Human:      "If present, start SHALL have a lower value than end",
			Expression: "start.hasValue().not() or end.hasValue().not() or (start <= end)",
		}},
	})

	Quantity = model.Define(model.TypeDef{
		Name: "Quantity",
		Kind: model.KindComplex,
		Base: model.ElementDef,
		Fields: []model.FieldDef{
			model.Optional("value", "decimal").InSummary(),
			model.Optional("comparator", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/quantity-comparator").InSummary(),
			model.Optional("unit", "string").InSummary(),
			model.Optional("system", "uri").InSummary(),
			model.Optional("code", "code").InSummary(),
		},
		Constraints: []model.Constraint{{
			Key:        "qty-3",
			Severity:   "error",
			Human:      "If a code for the unit is present, the system SHALL also be present",
			Expression: "code.empty() or system.exists()",
		}},
	})

	// SimpleQuantity is a Quantity without a comparator.
	SimpleQuantity = model.Define(model.TypeDef{
		Name: "SimpleQuantity",
		Kind: model.KindComplex,
		Base: Quantity,
		Constraints: []model.Constraint{{
			Key:        "sqty-1",
			Severity:   "error",
			Human:      "The comparator is not used on a SimpleQuantity",
			Expression: "comparator.empty()",
		}},
	})

	Ratio = model.Define(model.TypeDef{
		Name: "Ratio",
		Kind: model.KindComplex,
		Base: model.ElementDef,
		Fields: []model.FieldDef{
			model.Optional("numerator", "Quantity").InSummary(),
			model.Optional("denominator", "Quantity").InSummary(),
		},
	})

	Range = model.Define(model.TypeDef{
		Name: "Range",
		Kind: model.KindComplex,
		Base: model.ElementDef,
		Fields: []model.FieldDef{
			model.Optional("low", "SimpleQuantity").InSummary(),
			model.Optional("high", "SimpleQuantity").InSummary(),
		},
	})

	Annotation = model.Define(model.TypeDef{
		Name: "Annotation",
		Kind: model.KindComplex,
		Base: model.ElementDef,
		Fields: []model.FieldDef{
			model.Choice("author", 0, "Reference", "string").Refer("Practitioner", "Patient", "RelatedPerson", "Organization").InSummary(),
			model.Optional("time", "dateTime").InSummary(),
			model.Required("text", "markdown").InSummary(),
		},
	})

	Timing = model.Define(model.TypeDef{
		Name: "Timing",
		Kind: model.KindComplex,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.List("event", "dateTime").InSummary(),
			model.Optional("repeat", "Timing.Repeat").InSummary(),
			model.Optional("code", "CodeableConcept").Bind(model.BindingPreferred, "http://hl7.org/fhir/ValueSet/timing-abbreviation").InSummary(),
		},
	})

	TimingRepeat = model.Define(model.TypeDef{
		Name: "Timing.Repeat",
		Kind: model.KindComplex,
		Base: model.ElementDef,
		Fields: []model.FieldDef{
			model.Choice("bounds", 0, "Range", "Period").InSummary(),
			model.Optional("count", "positiveInt").InSummary(),
			model.Optional("countMax", "positiveInt").InSummary(),
			model.Optional("duration", "decimal").InSummary(),
			model.Optional("durationMax", "decimal").InSummary(),
			model.Optional("durationUnit", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/units-of-time").InSummary(),
			model.Optional("frequency", "positiveInt").InSummary(),
			model.Optional("frequencyMax", "positiveInt").InSummary(),
			model.Optional("period", "decimal").InSummary(),
			model.Optional("periodMax", "decimal").InSummary(),
			model.Optional("periodUnit", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/units-of-time").InSummary(),
			model.List("dayOfWeek", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/days-of-week").InSummary(),
			model.List("timeOfDay", "time").InSummary(),
			model.List("when", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/event-timing").InSummary(),
			model.Optional("offset", "unsignedInt").InSummary(),
		},
	})

	ContactPoint = model.Define(model.TypeDef{
		Name: "ContactPoint",
		Kind: model.KindComplex,
		Base: model.ElementDef,
		Fields: []model.FieldDef{
			model.Optional("system", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/contact-point-system").InSummary(),
			model.Optional("value", "string").InSummary(),
			model.Optional("use", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/contact-point-use").InSummary(),
			model.Optional("rank", "positiveInt").InSummary(),
			model.Optional("period", "Period").InSummary(),
		},
		Constraints: []model.Constraint{{
			Key:        "cpt-2",
			Severity:   "error",
			Human:      "A system is required if a value is provided.",
			Expression: "value.empty() or system.exists()",
		}},
	})

	ContactDetail = model.Define(model.TypeDef{
		Name: "ContactDetail",
		Kind: model.KindComplex,
		Base: model.ElementDef,
		Fields: []model.FieldDef{
			model.Optional("name", "string").InSummary(),
			model.List("telecom", "ContactPoint").InSummary(),
		},
	})

	UsageContext = model.Define(model.TypeDef{
		Name: "UsageContext",
		Kind: model.KindComplex,
		Base: model.ElementDef,
		Fields: []model.FieldDef{
			model.Required("code", "Coding").Bind(model.BindingExtensible, "http://hl7.org/fhir/ValueSet/usage-context-type").InSummary(),
			model.Choice("value", 1, "CodeableConcept", "Quantity", "Range", "Reference").
				Refer("PlanDefinition", "ResearchStudy", "InsurancePlan", "HealthcareService", "Group", "Location", "Organization").
				InSummary(),
		},
	})
)

// Datatypes returns the complex datatype definitions.
func Datatypes() []*model.TypeDef {
	return []*model.TypeDef{
		Extension, Meta, Narrative, Coding, CodeableConcept, Identifier, Reference, Period,
		Quantity, SimpleQuantity, Ratio, Range, Annotation, Timing, TimingRepeat,
		ContactPoint, ContactDetail, UsageContext,
	}
}
