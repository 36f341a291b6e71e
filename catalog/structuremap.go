package catalog

import (
	"github.com/damedic/fhir-tree-go/model"
)

// The StructureMap family describes a transform program as data.
// Names in Dependent and Group.extends refer to groups and rules by name and are not resolved here.
var (
	StructureMap = model.Define(model.TypeDef{
		Name: "StructureMap",
		Kind: model.KindResource,
		Base: model.DomainResourceDef,
		Fields: []model.FieldDef{
			model.Required("url", "uri").InSummary(),
			model.List("identifier", "Identifier").InSummary(),
			model.Optional("version", "string").InSummary(),
			model.Required("name", "string").InSummary(),
			model.Optional("title", "string").InSummary(),
			model.Required("status", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/publication-status").InSummary(),
			model.Optional("experimental", "boolean").InSummary(),
			model.Optional("date", "dateTime").InSummary(),
			model.Optional("publisher", "string").InSummary(),
			model.List("contact", "ContactDetail").InSummary(),
			model.Optional("description", "markdown"),
			model.List("useContext", "UsageContext").InSummary(),
			model.List("jurisdiction", "CodeableConcept").Bind(model.BindingExtensible, "http://hl7.org/fhir/ValueSet/jurisdiction").InSummary(),
			model.Optional("purpose", "markdown"),
			model.Optional("copyright", "markdown"),
			model.List("structure", "StructureMap.Structure").InSummary(),
			model.List("import", "canonical").InSummary(),
			model.RequiredList("group", "StructureMap.Group"),
		},
		Constraints: []model.Constraint{{
			Key:        "smp-0",
			Severity:   "warning",
			Human:      "Name should be usable as an identifier for the module by machine processing applications such as code generation",
			Expression: "name.matches('[A-Z]([A-Za-z0-9_]){0,254}')",
		}},
	})

	StructureMapStructure = model.Define(model.TypeDef{
		Name: "StructureMap.Structure",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Required("url", "canonical").InSummary(),
			model.Required("mode", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/map-model-mode").InSummary(),
			model.Optional("alias", "string").InSummary(),
			model.Optional("documentation", "string"),
		},
	})

	StructureMapGroup = model.Define(model.TypeDef{
		Name: "StructureMap.Group",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Required("name", "id").InSummary(),
			model.Optional("extends", "id").InSummary(),
			model.Required("typeMode", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/map-group-type-mode").InSummary(),
			model.Optional("documentation", "string").InSummary(),
			model.RequiredList("input", "StructureMap.Group.Input").InSummary(),
			model.RequiredList("rule", "StructureMap.Group.Rule").InSummary(),
		},
	})

	StructureMapGroupInput = model.Define(model.TypeDef{
		Name: "StructureMap.Group.Input",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Required("name", "id").InSummary(),
			model.Optional("type", "string").InSummary(),
			model.Required("mode", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/map-input-mode").InSummary(),
			model.Optional("documentation", "string"),
		},
	})

	StructureMapGroupRule = model.Define(model.TypeDef{
		Name: "StructureMap.Group.Rule",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Required("name", "id").InSummary(),
			model.RequiredList("source", "StructureMap.Group.Rule.Source").InSummary(),
			model.List("target", "StructureMap.Group.Rule.Target").InSummary(),
			model.List("rule", "StructureMap.Group.Rule").InSummary(),
			model.List("dependent", "StructureMap.Group.Rule.Dependent").InSummary(),
			model.Optional("documentation", "string"),
		},
	})

	StructureMapGroupRuleSource = model.Define(model.TypeDef{
		Name: "StructureMap.Group.Rule.Source",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Required("context", "id").InSummary(),
			model.Optional("min", "integer").InSummary(),
			model.Optional("max", "string").InSummary(),
			model.Optional("type", "string").InSummary(),
			model.Choice("defaultValue", 0, openTypes...).InSummary(),
			model.Optional("element", "string").InSummary(),
			model.Optional("listMode", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/map-source-list-mode").InSummary(),
			model.Optional("variable", "id").InSummary(),
			model.Optional("condition", "string").InSummary(),
			model.Optional("check", "string").InSummary(),
			model.Optional("logMessage", "string").InSummary(),
		},
	})

	StructureMapGroupRuleTarget = model.Define(model.TypeDef{
		Name: "StructureMap.Group.Rule.Target",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Optional("context", "id").InSummary(),
			model.Optional("contextType", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/map-context-type").InSummary(),
			model.Optional("element", "string").InSummary(),
			model.Optional("variable", "id").InSummary(),
			model.List("listMode", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/map-target-list-mode").InSummary(),
			model.Optional("listRuleId", "id").InSummary(),
			model.Optional("transform", "code").Bind(model.BindingRequired, "http://hl7.org/fhir/ValueSet/map-transform").InSummary(),
			model.List("parameter", "StructureMap.Group.Rule.Target.Parameter").InSummary(),
		},
		Constraints: []model.Constraint{
			{
				Key:        "smp-1",
				Severity:   "error",
				Human:      "Must have a contextType if you have a context",
				Expression: "context.exists() implies contextType.exists()",
			},
			{
				Key:        "smp-2",
				Severity:   "error",
				Human:      "Can only have an element if you have a context",
				Expression: "element.exists() implies context.exists()",
			},
		},
	})

	StructureMapGroupRuleTargetParameter = model.Define(model.TypeDef{
		Name: "StructureMap.Group.Rule.Target.Parameter",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Choice("value", 1, "id", "string", "boolean", "integer", "decimal").InSummary(),
		},
	})

	StructureMapGroupRuleDependent = model.Define(model.TypeDef{
		Name: "StructureMap.Group.Rule.Dependent",
		Kind: model.KindBackbone,
		Base: model.BackboneElementDef,
		Fields: []model.FieldDef{
			model.Required("name", "id").InSummary(),
			model.RequiredList("variable", "string").InSummary(),
		},
	})
)

// StructureMapTypes returns StructureMap and its backbone elements.
func StructureMapTypes() []*model.TypeDef {
	return []*model.TypeDef{
		StructureMap,
		StructureMapStructure,
		StructureMapGroup,
		StructureMapGroupInput,
		StructureMapGroupRule,
		StructureMapGroupRuleSource,
		StructureMapGroupRuleTarget,
		StructureMapGroupRuleTargetParameter,
		StructureMapGroupRuleDependent,
	}
}
