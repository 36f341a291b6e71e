package visitor

import (
	"fmt"
	"strings"

	"github.com/damedic/fhir-tree-go/model"
)

// Hook names a callback of the traversal protocol.
type Hook string

const (
	HookPreVisit       Hook = "preVisit"
	HookVisitStart     Hook = "visitStart"
	HookVisit          Hook = "visit"
	HookVisitEnd       Hook = "visitEnd"
	HookPostVisit      Hook = "postVisit"
	HookVisitStartList Hook = "visitStartList"
	HookVisitEndList   Hook = "visitEndList"
)

// Event is one recorded callback.
// PreVisit and PostVisit carry no name and index -1.
type Event struct {
	Hook  Hook
	Name  string
	Index int
	Type  string
}

func (e Event) String() string {
	switch e.Hook {
	case HookPreVisit, HookPostVisit:
		return fmt.Sprintf("%s(%s)", e.Hook, e.Type)
	case HookVisitStartList, HookVisitEndList:
		return fmt.Sprintf("%s(%s:%s)", e.Hook, e.Name, e.Type)
	}
	if e.Index >= 0 {
		return fmt.Sprintf("%s(%s[%d]:%s)", e.Hook, e.Name, e.Index, e.Type)
	}
	return fmt.Sprintf("%s(%s:%s)", e.Hook, e.Name, e.Type)
}

// Recorder logs every callback it receives.
//
// Enter and Descend, when set, decide the results of PreVisit and Visit.
type Recorder struct {
	Events  []Event
	Enter   func(n *model.Node) bool
	Descend func(name string, index int, n *model.Node) bool
}

func (r *Recorder) record(hook Hook, name string, index int, typ string) {
	r.Events = append(r.Events, Event{Hook: hook, Name: name, Index: index, Type: typ})
}

func (r *Recorder) PreVisit(n *model.Node) bool {
	r.record(HookPreVisit, "", -1, n.TypeName())
	return r.Enter == nil || r.Enter(n)
}

func (r *Recorder) VisitStart(name string, index int, n *model.Node) {
	r.record(HookVisitStart, name, index, n.TypeName())
}

func (r *Recorder) Visit(name string, index int, n *model.Node) bool {
	r.record(HookVisit, name, index, n.TypeName())
	return r.Descend == nil || r.Descend(name, index, n)
}

func (r *Recorder) VisitEnd(name string, index int, n *model.Node) {
	r.record(HookVisitEnd, name, index, n.TypeName())
}

func (r *Recorder) PostVisit(n *model.Node) {
	r.record(HookPostVisit, "", -1, n.TypeName())
}

// VisitStartList records the declared types of the field, joined by "|".
func (r *Recorder) VisitStartList(name string, nodes []*model.Node, field model.FieldDef) {
	r.record(HookVisitStartList, name, -1, declared(field))
}

func (r *Recorder) VisitEndList(name string, nodes []*model.Node, field model.FieldDef) {
	r.record(HookVisitEndList, name, -1, declared(field))
}

func declared(f model.FieldDef) string {
	return strings.Join(f.Types, "|")
}
