package catalog

import (
	"github.com/damedic/fhir-tree-go/model"
)

var (
	ValueSet = model.Define(model.TypeDef{
		Name: "ValueSet",
		Kind: model.KindResource,
		Base: model.DomainResourceDef,
		Fields: []model.FieldDef{
			model.Optional("url", "uri").InSummary(),
			model.List("identifier", "Identifier").InSummary(),
			model.Optional("version", "string").InSummary(),
			model.Optional("name", "string").InSummary(),
			model.Optional("title", "string").InSummary(),
			model.Required("status", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/publication-status").InSummary(),
			model.Optional("experimental", "boolean").InSummary(),
			model.Optional("date", "dateTime").InSummary(),
			model.Optional("publisher", "string").InSummary(),
			model.List("contact", "ContactDetail").InSummary(),
			model.Optional("description", "markdown"),
			model.List("useContext", "UsageContext").InSummary(),
			model.List("jurisdiction", "CodeableConcept").Bind(model.BindingExtensible, "http://hl7.org/fhir/ValueSet/jurisdiction").InSummary(),
			model.Optional("immutable", "boolean").InSummary(),
			model.Optional("purpose", "markdown"),
			model.Optional("copyright", "markdown"),
			model.Optional("compose", "ValueSet.Compose"),
			model.Optional("expansion", "ValueSet.Expansion"),
		},
		Constraints: []model.Constraint{{
			Key:        "vsd-0",
			Severity:   "warning",
			Human:      "Name should be usable as an identifier for the module by machine processing applications such as code generation",
			Expression: "name.matches('[A-Z]([A-Za-z0-9_]){0,254}')",
		}},
	})

	ValueSetCompose = model.Define(model.TypeDef{
		Name: "ValueSet.Compose",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Optional("lockedDate", "date").InSummary(),
			model.Optional("inactive", "boolean").InSummary(),
			model.RequiredList("include", "ValueSet.Compose.Include").InSummary(),
			model.List("exclude", "ValueSet.Compose.Include").InSummary(),
		},
	})

	ValueSetComposeInclude = model.Define(model.TypeDef{
		Name: "ValueSet.Compose.Include",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Optional("system", "uri").InSummary(),
			model.Optional("version", "string").InSummary(),
			model.List("concept", "ValueSet.Compose.Include.Concept"),
			model.List("filter", "ValueSet.Compose.Include.Filter").InSummary(),
			model.List("valueSet", "canonical").InSummary(),
		},
		Constraints: []model.Constraint{
			{
				Key:        "vsd-1",
				Severity:   "error",
				Human:      "A value set include/exclude SHALL have a value set or a system",
				Expression: "valueSet.exists() or system.exists()",
			},
			{
				Key:        "vsd-2",
				Severity:   "error",
				Human:      "A value set with concepts or filters SHALL include a system",
				Expression: "(concept.exists() or filter.exists()) implies system.exists()",
			},
			{
				Key:        "vsd-3",
				Severity:   "error",
				Human:      "Cannot have both concept and filter",
				Expression: "concept.empty() or filter.empty()",
			},
		},
	})

	ValueSetComposeIncludeConcept = model.Define(model.TypeDef{
		Name: "ValueSet.Compose.Include.Concept",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Required("code", "code"),
			model.Optional("display", "string"),
			model.List("designation", "ValueSet.Compose.Include.Concept.Designation"),
		},
	})

	ValueSetComposeIncludeConceptDesignation = model.Define(model.TypeDef{
		Name: "ValueSet.Compose.Include.Concept.Designation",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Optional("language", "code").Bind(model.BindingPreferred, "http://hl7.org/fhir/ValueSet/languages"),
			model.Optional("use", "Coding").Bind(model.BindingExtensible, "http://hl7.org/fhir/ValueSet/designation-use"),
			model.Required("value", "string"),
		},
	})

	ValueSetComposeIncludeFilter = model.Define(model.TypeDef{
		Name: "ValueSet.Compose.Include.Filter",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Required("property", "code").InSummary(),
			model.Required("op", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/filter-operator").InSummary(),
			model.Required("value", "string").InSummary(),
		},
	})

	ValueSetExpansion = model.Define(model.TypeDef{
		Name: "ValueSet.Expansion",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Optional("identifier", "uri"),
			model.Required("timestamp", "dateTime"),
			model.Optional("total", "integer"),
			model.Optional("offset", "integer"),
			model.List("parameter", "ValueSet.Expansion.Parameter"),
			model.List("contains", "ValueSet.Expansion.Contains"),
		},
	})

	ValueSetExpansionParameter = model.Define(model.TypeDef{
		Name: "ValueSet.Expansion.Parameter",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Required("name", "string"),
			model.Choice("value", 0, "string", "boolean", "integer", "decimal", "uri", "code", "dateTime"),
		},
	})

	ValueSetExpansionContains = model.Define(model.TypeDef{
		Name: "ValueSet.Expansion.Contains",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Optional("system", "uri"),
			model.Optional("abstract", "boolean"),
			model.Optional("inactive", "boolean"),
			model.Optional("version", "string"),
			model.Optional("code", "code"),
			model.Optional("display", "string"),
			model.List("designation", "ValueSet.Compose.Include.Concept.Designation"),
			model.List("contains", "ValueSet.Expansion.Contains"),
		},
		Constraints: []model.Constraint{{
			Key:        "vsd-9",
			Severity:   "error",
			Human:      "SHALL have a code or a display",
			Expression: "code.exists() or display.exists()",
		}},
	})
)

// ValueSetTypes returns ValueSet and its backbone elements.
func ValueSetTypes() []*model.TypeDef {
	return []*model.TypeDef{
		ValueSet,
		ValueSetCompose,
		ValueSetComposeInclude,
		ValueSetComposeIncludeConcept,
		ValueSetComposeIncludeConceptDesignation,
		ValueSetComposeIncludeFilter,
		ValueSetExpansion,
		ValueSetExpansionParameter,
		ValueSetExpansionContains,
	}
}
