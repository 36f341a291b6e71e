package structuredef

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/damedic/fhir-tree-go/model"
)

// Parse converts a StructureDefinition into type definitions: the type itself followed by
// its backbone elements. The base type must already be registered in reg.
//
// Elements inherited from the base type are skipped, so only the fields the type declares
// itself end up in its definition. A profile (derivation "constraint") becomes a type without
// own fields deriving from the constrained type.
func Parse(reg *model.Registry, sd StructureDefinition) ([]*model.TypeDef, error) {
	var kind model.Kind
	switch sd.Kind {
	case "resource":
		kind = model.KindResource
	case "complex-type":
		kind = model.KindComplex
	default:
		return nil, fmt.Errorf("%s: unsupported kind %q", sd.Name, sd.Kind)
	}

	baseName := sd.BaseDefinition[strings.LastIndex(sd.BaseDefinition, "/")+1:]
	if sd.Derivation == "constraint" {
		baseName = sd.Type
	}
	base, ok := reg.Lookup(baseName)
	if !ok {
		return nil, fmt.Errorf("%s: unknown base type %q", sd.Name, baseName)
	}

	if sd.Derivation == "constraint" {
		return []*model.TypeDef{model.Define(model.TypeDef{
			Name:     sd.Name,
			Kind:     kind,
			Abstract: sd.Abstract,
			Base:     base,
		})}, nil
	}

	return parseTypes(sd.Name, kind, sd.Abstract, base, sd.Snapshot.Element, sd.Type)
}

func parseTypes(
	name string,
	kind model.Kind,
	abstract bool,
	base *model.TypeDef,
	elementDefinitions []ElementDefinition,
	elementPathStripPrefix string,
) ([]*model.TypeDef, error) {
	var (
		fields      []model.FieldDef
		constraints []model.Constraint
		nested      []*model.TypeDef
	)

	for _, d := range elementDefinitions {
		if d.Path == elementPathStripPrefix {
			constraints = ownConstraints(base, d.Constraint)
			break
		}
	}

	for _, g := range groupElementDefinitionsByPrefix(elementDefinitions, elementPathStripPrefix) {
		first := g.definitions[0]
		if first.Max == "0" {
			continue
		}
		fieldName := strings.TrimSuffix(g.fieldName, "[x]")
		if _, inherited := base.Field(fieldName); inherited {
			continue
		}

		typeName := name + "." + strcase.ToCamel(fieldName)
		if len(g.definitions) > 1 {
			nestedBase, nestedKind := model.BackboneElementDef, model.KindBackbone
			if len(first.Type) > 0 && first.Type[0].Code == "Element" {
				nestedBase, nestedKind = model.ElementDef, model.KindComplex
			}
			types, err := parseTypes(typeName, nestedKind, false, nestedBase, g.definitions, first.Path)
			if err != nil {
				return nil, err
			}
			nested = append(nested, types...)
		}

		f, err := parseField(typeName, first, elementPathStripPrefix)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	def := model.Define(model.TypeDef{
		Name:        name,
		Kind:        kind,
		Abstract:    abstract,
		Base:        base,
		Fields:      fields,
		Constraints: constraints,
	})
	return append([]*model.TypeDef{def}, nested...), nil
}

type definitionsGroup struct {
	fieldName   string
	definitions []ElementDefinition
}

func groupElementDefinitionsByPrefix(elementDefinitions []ElementDefinition, stripPrefix string) []definitionsGroup {
	var grouped []definitionsGroup

	for _, d := range elementDefinitions {
		if d.Path == stripPrefix || !strings.HasPrefix(d.Path, stripPrefix+".") {
			continue
		}

		fieldName := strings.SplitN(d.Path[len(stripPrefix)+1:], ".", 2)[0]

		if len(grouped) == 0 || grouped[len(grouped)-1].fieldName != fieldName {
			grouped = append(grouped, definitionsGroup{
				fieldName: fieldName,
			})
		}

		grouped[len(grouped)-1].definitions = append(grouped[len(grouped)-1].definitions, d)
	}

	return grouped
}

func parseField(nestedTypeName string, d ElementDefinition, elementPathStripPrefix string) (model.FieldDef, error) {
	fieldName := d.Path[len(elementPathStripPrefix)+1:]
	fieldName, polymorph := strings.CutSuffix(fieldName, "[x]")

	var types, targets []string
	switch {
	case polymorph:
		for _, t := range d.Type {
			types = append(types, matchType(t.Code))
		}
	case len(d.Type) > 0:
		switch code := d.Type[0].Code; code {
		case "BackboneElement", "Element":
			types = append(types, nestedTypeName)
		default:
			types = append(types, matchType(code))
		}
	case d.ContentReference != "":
		types = append(types, contentReferenceType(d.ContentReference))
	default:
		return model.FieldDef{}, fmt.Errorf("%s: element has neither type nor content reference", d.Path)
	}

	for _, t := range d.Type {
		for _, p := range t.TargetProfile {
			target := p[strings.LastIndex(p, "/")+1:]
			if !slices.Contains(targets, target) {
				targets = append(targets, target)
			}
		}
	}

	max, err := parseMax(d.Max)
	if err != nil {
		return model.FieldDef{}, fmt.Errorf("%s: %w", d.Path, err)
	}

	f := model.FieldDef{
		Name:    fieldName,
		Types:   types,
		Min:     d.Min,
		Max:     max,
		Targets: targets,
		Summary: d.IsSummary,
	}
	if d.Binding != nil && d.Binding.ValueSet != "" {
		f = f.Bind(model.BindingStrength(d.Binding.Strength), d.Binding.ValueSet)
	}
	return f, nil
}

// matchType maps a type code to a type name,
// e.g. http://hl7.org/fhirpath/System.String becomes "string".
func matchType(code string) string {
	switch t := code[strings.LastIndex(code, "/")+1:]; t {
	case "System.Boolean":
		return "boolean"
	case "System.Integer":
		return "integer"
	case "System.String":
		return "string"
	case "System.Decimal":
		return "decimal"
	case "System.Date":
		return "date"
	case "System.DateTime":
		return "dateTime"
	case "System.Time":
		return "time"
	default:
		return t
	}
}

// contentReferenceType turns "#StructureMap.group.rule" into "StructureMap.Group.Rule".
func contentReferenceType(ref string) string {
	path := ref[strings.Index(ref, "#")+1:]
	segments := strings.Split(path, ".")
	for i := 1; i < len(segments); i++ {
		segments[i] = strcase.ToCamel(segments[i])
	}
	return strings.Join(segments, ".")
}

func parseMax(max string) (int, error) {
	switch max {
	case "*":
		return model.Unbounded, nil
	case "", "1":
		return 1, nil
	}
	n, err := strconv.Atoi(max)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid max cardinality %q", max)
	}
	return n, nil
}

func ownConstraints(base *model.TypeDef, declared []ElementConstraint) []model.Constraint {
	inherited := map[string]bool{}
	for b := base; b != nil; b = b.Base {
		for _, c := range b.Constraints {
			inherited[c.Key] = true
		}
	}
	var constraints []model.Constraint
	for _, c := range declared {
		if inherited[c.Key] {
			continue
		}
		constraints = append(constraints, model.Constraint{
			Key:        c.Key,
			Severity:   c.Severity,
			Human:      c.Human,
			Expression: c.Expression,
		})
	}
	return constraints
}

// Load parses the definitions and registers the resulting types in reg.
//
// Definitions are processed in dependency order of their base types. Primitive types, logical
// models and names already present in reg are skipped. The returned error joins the definitions
// that could not be parsed and any type references left unresolved in reg.
func Load(reg *model.Registry, sds ...StructureDefinition) ([]*model.TypeDef, error) {
	var pending []StructureDefinition
	for _, sd := range sds {
		if sd.Kind == "primitive-type" || sd.Kind == "logical" {
			continue
		}
		if _, exists := reg.Lookup(sd.Name); exists {
			continue
		}
		pending = append(pending, sd)
	}

	var (
		loaded []*model.TypeDef
		errs   []error
	)
	for len(pending) > 0 {
		var next []StructureDefinition
		for _, sd := range pending {
			if _, ok := reg.Lookup(baseOf(sd)); !ok {
				next = append(next, sd)
				continue
			}
			types, err := Parse(reg, sd)
			if err == nil {
				err = reg.Register(types...)
			}
			if err != nil {
				errs = append(errs, err)
				continue
			}
			loaded = append(loaded, types...)
		}
		if len(next) == len(pending) {
			for _, sd := range next {
				errs = append(errs, fmt.Errorf("%s: unknown base type %q", sd.Name, baseOf(sd)))
			}
			break
		}
		pending = next
	}

	if err := reg.Verify(); err != nil {
		errs = append(errs, err)
	}
	return loaded, errors.Join(errs...)
}

func baseOf(sd StructureDefinition) string {
	if sd.Derivation == "constraint" {
		return sd.Type
	}
	return sd.BaseDefinition[strings.LastIndex(sd.BaseDefinition, "/")+1:]
}
