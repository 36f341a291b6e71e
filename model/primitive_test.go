package model_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/damedic/fhir-tree-go/model"
)

func TestPrimitiveLexicalForms(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (*model.Node, error)
		wantErr bool
	}{
		{name: "integer", build: func() (*model.Node, error) { return model.NewInteger(-42) }},
		{name: "integer out of range", build: func() (*model.Node, error) { return model.NewInteger(1 << 40) }, wantErr: true},
		{name: "positiveInt", build: func() (*model.Node, error) { return model.NewPositiveInt(1) }},
		{name: "positiveInt zero", build: func() (*model.Node, error) { return model.NewPositiveInt(0) }, wantErr: true},
		{name: "unsignedInt zero", build: func() (*model.Node, error) { return model.NewUnsignedInt(0) }},
		{name: "unsignedInt negative", build: func() (*model.Node, error) { return model.NewUnsignedInt(-1) }, wantErr: true},
		{name: "decimal", build: func() (*model.Node, error) { return model.NewDecimal("3.1400") }},
		{name: "decimal exponent", build: func() (*model.Node, error) { return model.NewDecimal("1e-3") }},
		{name: "decimal garbage", build: func() (*model.Node, error) { return model.NewDecimal("1,5") }, wantErr: true},
		{name: "decimal infinity", build: func() (*model.Node, error) { return model.NewDecimal("Infinity") }, wantErr: true},
		{name: "string", build: func() (*model.Node, error) { return model.NewString(" padded ") }},
		{name: "string blank", build: func() (*model.Node, error) { return model.NewString(" \t") }, wantErr: true},
		{name: "string empty", build: func() (*model.Node, error) { return model.NewString("") }, wantErr: true},
		{name: "string invalid UTF-8", build: func() (*model.Node, error) { return model.NewString("a\xff") }, wantErr: true},
		{name: "markdown invalid UTF-8", build: func() (*model.Node, error) { return model.NewMarkdown("**\xc3**") }, wantErr: true},
		{name: "string multibyte", build: func() (*model.Node, error) { return model.NewString("Müsli 🥣") }},
		{name: "code with inner space", build: func() (*model.Node, error) { return model.NewCode("in progress") }},
		{name: "code with double space", build: func() (*model.Node, error) { return model.NewCode("in  progress") }, wantErr: true},
		{name: "code with leading space", build: func() (*model.Node, error) { return model.NewCode(" active") }, wantErr: true},
		{name: "id", build: func() (*model.Node, error) { return model.NewId("cardiac-diet.1") }},
		{name: "id too long", build: func() (*model.Node, error) { return model.NewId(strings.Repeat("a", 65)) }, wantErr: true},
		{name: "id with underscore", build: func() (*model.Node, error) { return model.NewId("rule_a") }, wantErr: true},
		{name: "uri", build: func() (*model.Node, error) { return model.NewUri("http://loinc.org") }},
		{name: "uri with space", build: func() (*model.Node, error) { return model.NewUri("http://loinc .org") }, wantErr: true},
		{name: "canonical with version", build: func() (*model.Node, error) { return model.NewCanonical("http://hl7.org/fhir/ValueSet/x|4.0.1") }},
		{name: "oid", build: func() (*model.Node, error) { return model.NewOid("urn:oid:2.16.840.1.113883") }},
		{name: "oid without prefix", build: func() (*model.Node, error) { return model.NewOid("2.16.840") }, wantErr: true},
		{name: "uuid", build: func() (*model.Node, error) { return model.NewUuid("urn:uuid:c757873d-ec9a-4326-a141-556f43239520") }},
		{name: "uuid without prefix", build: func() (*model.Node, error) { return model.NewUuid("c757873d-ec9a-4326-a141-556f43239520") }, wantErr: true},
		{name: "uuid braces", build: func() (*model.Node, error) { return model.NewUuid("urn:uuid:{c757873d-ec9a-4326-a141-556f43239520}") }, wantErr: true},
		{name: "base64Binary", build: func() (*model.Node, error) { return model.NewBase64Binary("aGVsbG8=") }},
		{name: "base64Binary invalid", build: func() (*model.Node, error) { return model.NewBase64Binary("aGVsbG8") }, wantErr: true},
		{name: "date year", build: func() (*model.Node, error) { return model.NewDate("2012") }},
		{name: "date full", build: func() (*model.Node, error) { return model.NewDate("2012-06-13") }},
		{name: "date invalid month", build: func() (*model.Node, error) { return model.NewDate("2012-13") }, wantErr: true},
		{name: "dateTime with zone", build: func() (*model.Node, error) { return model.NewDateTime("2015-06-22T13:56:07Z") }},
		{name: "dateTime with offset", build: func() (*model.Node, error) { return model.NewDateTime("2015-06-22T13:56:07.123+01:00") }},
		{name: "dateTime hour only", build: func() (*model.Node, error) { return model.NewDateTime("2015-06-22T13") }, wantErr: true},
		{name: "instant", build: func() (*model.Node, error) { return model.NewInstant("2015-02-07T13:28:17.239+02:00") }},
		{name: "instant without zone", build: func() (*model.Node, error) { return model.NewInstant("2015-02-07T13:28:17") }, wantErr: true},
		{name: "time", build: func() (*model.Node, error) { return model.NewTime("08:30:00") }},
		{name: "time without seconds", build: func() (*model.Node, error) { return model.NewTime("08:30") }, wantErr: true},
		{name: "xhtml", build: func() (*model.Node, error) { return model.NewXhtml(`<div xmlns="http://www.w3.org/1999/xhtml"/>`) }},
		{name: "xhtml paragraph", build: func() (*model.Node, error) { return model.NewXhtml("<p>text</p>") }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.build()
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, model.ErrInvalidValue) {
					t.Errorf("error = %v, want %v", err, model.ErrInvalidValue)
				}
				return
			}
			if !n.HasValue() {
				t.Errorf("node has no value")
			}
		})
	}
}

func TestPrimitiveValueKind(t *testing.T) {
	_, err := model.NewPrimitive(model.BooleanDef, model.StringValue("true"))
	if !errors.Is(err, model.ErrInvalidValue) {
		t.Errorf("boolean with string value: error = %v, want %v", err, model.ErrInvalidValue)
	}

	_, err = model.NewPrimitive(model.BooleanDef, nil)
	if !errors.Is(err, model.ErrEmptyElement) {
		t.Errorf("boolean without value: error = %v, want %v", err, model.ErrEmptyElement)
	}
}

func TestPrimitiveHierarchy(t *testing.T) {
	tests := []struct {
		def  *model.TypeDef
		base string
	}{
		{def: model.CodeDef, base: "string"},
		{def: model.IdDef, base: "string"},
		{def: model.MarkdownDef, base: "string"},
		{def: model.UrlDef, base: "uri"},
		{def: model.CanonicalDef, base: "uri"},
		{def: model.OidDef, base: "uri"},
		{def: model.UuidDef, base: "uri"},
		{def: model.PositiveIntDef, base: "integer"},
		{def: model.UnsignedIntDef, base: "integer"},
		{def: model.DateTimeDef, base: "Element"},
	}

	for _, tt := range tests {
		t.Run(tt.def.Name, func(t *testing.T) {
			if !tt.def.IsA(tt.base) {
				t.Errorf("%s is not a %s", tt.def.Name, tt.base)
			}
			if tt.def.IsA("Resource") {
				t.Errorf("%s is a Resource", tt.def.Name)
			}
		})
	}
}

func TestRandomUuid(t *testing.T) {
	a, b := model.RandomUuid(), model.RandomUuid()
	if !strings.HasPrefix(a.Value().String(), "urn:uuid:") {
		t.Errorf("RandomUuid() = %s, want urn:uuid: prefix", a.Value())
	}
	if a.Equal(b) {
		t.Errorf("RandomUuid() returned %s twice", a.Value())
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Must() did not panic")
		}
	}()
	model.Must(model.NewCode(""))
}
