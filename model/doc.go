// Package model provides a generic, schema driven tree model for FHIR resources.
//
// Every resource, datatype and backbone element is a *Node whose shape is described by a
// *TypeDef. Nodes are created with a Builder, which checks cardinality, choice types,
// primitive values and that every element has a value or children. Once built a node is
// immutable and may be traversed concurrently with a Visitor.
//
// The concrete type definitions live in the catalog package.
package model
