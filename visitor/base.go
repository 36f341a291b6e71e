// Package visitor provides ready-made implementations of model.Visitor.
//
// All of them only rely on what the traversal protocol hands them.
// A visitor value keeps per-traversal state and must not be shared between concurrent traversals;
// the tree itself may be.
package visitor

import (
	"github.com/damedic/fhir-tree-go/model"
)

// Base implements every hook as a no-op that continues the traversal.
// Embed it to implement only the hooks you need.
type Base struct{}

func (Base) PreVisit(*model.Node) bool { return true }
func (Base) VisitStart(string, int, *model.Node) {}
func (Base) Visit(string, int, *model.Node) bool { return true }
func (Base) VisitEnd(string, int, *model.Node) {}
func (Base) PostVisit(*model.Node) {}
func (Base) VisitStartList(string, []*model.Node, model.FieldDef) {}
func (Base) VisitEndList(string, []*model.Node, model.FieldDef) {}

var _ model.Visitor = Base{}
