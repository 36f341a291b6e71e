// Package structuredef loads type definitions from FHIR StructureDefinition resources.
//
// Only the parts of a StructureDefinition that shape the tree are read:
// the snapshot element paths, cardinalities, types, content references, bindings,
// summary flags and constraints.
package structuredef

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// StructureDefinition is the subset of the FHIR StructureDefinition resource used here.
type StructureDefinition struct {
	ResourceType   string `json:"resourceType"`
	Url            string `json:"url"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	Kind           string `json:"kind"`
	Abstract       bool   `json:"abstract"`
	BaseDefinition string `json:"baseDefinition"`
	Derivation     string `json:"derivation"`
	Snapshot       struct {
		Element []ElementDefinition `json:"element"`
	} `json:"snapshot"`
}

// ElementDefinition is the subset of the FHIR ElementDefinition datatype used here.
type ElementDefinition struct {
	Path             string              `json:"path"`
	Min              int                 `json:"min"`
	Max              string              `json:"max"`
	Type             []TypeRef           `json:"type"`
	ContentReference string              `json:"contentReference"`
	IsSummary        bool                `json:"isSummary"`
	Binding          *ElementBinding     `json:"binding"`
	Constraint       []ElementConstraint `json:"constraint"`
}

type TypeRef struct {
	Code          string   `json:"code"`
	TargetProfile []string `json:"targetProfile"`
}

type ElementBinding struct {
	Strength string `json:"strength"`
	ValueSet string `json:"valueSet"`
}

type ElementConstraint struct {
	Key        string `json:"key"`
	Severity   string `json:"severity"`
	Human      string `json:"human"`
	Expression string `json:"expression"`
}

type bundle struct {
	ResourceType string `json:"resourceType"`
	Entry        []struct {
		Resource json.RawMessage `json:"resource"`
	} `json:"entry"`
}

// Decode reads a single StructureDefinition or a Bundle of them.
// Bundle entries that are not StructureDefinitions are ignored.
func Decode(r io.Reader) ([]StructureDefinition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read definitions: %w", err)
	}

	var b bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode definitions: %w", err)
	}

	switch b.ResourceType {
	case "Bundle":
		var sds []StructureDefinition
		for i, e := range b.Entry {
			var sd StructureDefinition
			if err := json.Unmarshal(e.Resource, &sd); err != nil {
				return nil, fmt.Errorf("decode bundle entry %d: %w", i, err)
			}
			if sd.ResourceType == "StructureDefinition" {
				sds = append(sds, sd)
			}
		}
		return sds, nil
	case "StructureDefinition":
		var sd StructureDefinition
		if err := json.Unmarshal(data, &sd); err != nil {
			return nil, fmt.Errorf("decode structure definition: %w", err)
		}
		return []StructureDefinition{sd}, nil
	default:
		return nil, fmt.Errorf("expected Bundle or StructureDefinition, got %q", b.ResourceType)
	}
}

// ReadZIP reads the type and resource profiles from a FHIR definitions archive
// (definitions.json.zip as published with every FHIR release).
func ReadZIP(path string) ([]StructureDefinition, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer archive.Close()

	var sds []StructureDefinition
	for _, name := range []string{"profiles-types.json", "profiles-resources.json"} {
		defs, err := readFromZIP(&archive.Reader, name)
		if err != nil {
			return nil, err
		}
		sds = append(sds, defs...)
	}
	return sds, nil
}

func readFromZIP(archive *zip.Reader, name string) ([]StructureDefinition, error) {
	file, err := archive.Open(name)
	if err != nil {
		file, err = archive.Open("definitions.json/" + name)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	sds, err := Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return sds, nil
}
