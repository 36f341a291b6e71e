package model

// Abstract base definitions every concrete type derives from.
var (
	// ElementDef is the root of all datatypes and backbone elements.
	ElementDef = Define(TypeDef{
		Name:     "Element",
		Kind:     KindComplex,
		Abstract: true,
		Fields: []FieldDef{
			Optional("id", "string"),
			List("extension", "Extension"),
		},
		Constraints: []Constraint{{
			Key:        "ele-1",
			Severity:   "error",
			Human:      "All FHIR elements must have a @value or children",
			Expression: "hasValue() or (children().count() > id.count())",
		}},
	})

	// BackboneElementDef adds modifier extensions.
	BackboneElementDef = Define(TypeDef{
		Name:     "BackboneElement",
		Kind:     KindBackbone,
		Abstract: true,
		Base:     ElementDef,
		Fields: []FieldDef{
			List("modifierExtension", "Extension").InSummary(),
		},
	})

	// ResourceDef is the root of all resources.
	ResourceDef = Define(TypeDef{
		Name:     "Resource",
		Kind:     KindResource,
		Abstract: true,
		Fields: []FieldDef{
			Optional("id", "id").InSummary(),
			Optional("meta", "Meta").InSummary(),
			Optional("implicitRules", "uri").InSummary(),
			Optional("language", "code").Bind(BindingPreferred, "http://hl7.org/fhir/ValueSet/languages"),
		},
	})

	// DomainResourceDef adds narrative, contained resources and extensions.
	DomainResourceDef = Define(TypeDef{
		Name:     "DomainResource",
		Kind:     KindResource,
		Abstract: true,
		Base:     ResourceDef,
		Fields: []FieldDef{
			Optional("text", "Narrative"),
			List("contained", "Resource"),
			List("extension", "Extension"),
			List("modifierExtension", "Extension"),
		},
		Constraints: []Constraint{
			{
				Key:        "dom-2",
				Severity:   "error",
				Human:      "If the resource is contained in another resource, it SHALL NOT contain nested Resources",
				Expression: "contained.contained.empty()",
			},
			{
				Key:        "dom-3",
				Severity:   "error",
				Human:      "If the resource is contained in another resource, it SHALL be referred to from elsewhere in the resource or SHALL refer to the containing resource",
				Expression: "contained.where((('#'+id in (%resource.descendants().reference | %resource.descendants().as(canonical) | %resource.descendants().as(uri) | %resource.descendants().as(url))) or descendants().where(reference = '#').exists() or descendants().where(as(canonical) = '#').exists() or descendants().where(as(canonical) = '#').exists()).not()).trace('unmatched', id).empty()",
			},
			{
				Key:        "dom-6",
				Severity:   "warning",
				Human:      "A resource should have narrative for robust management",
				Expression: "text.`div`.exists()",
			},
		},
	})
)

// BaseTypes returns the abstract base definitions.
func BaseTypes() []*TypeDef {
	return []*TypeDef{ElementDef, BackboneElementDef, ResourceDef, DomainResourceDef}
}
