package visitor

import (
	"context"
	"log/slog"

	"github.com/damedic/fhir-tree-go/model"
)

// Logger emits one log record per traversal callback.
type Logger struct {
	log   *slog.Logger
	level slog.Level
	depth int
}

// NewLogger returns a Logger writing to l at the given level. A nil l uses slog.Default().
func NewLogger(l *slog.Logger, level slog.Level) *Logger {
	if l == nil {
		l = slog.Default()
	}
	return &Logger{log: l, level: level}
}

func (l *Logger) emit(msg string, args ...any) {
	l.log.Log(context.Background(), l.level, msg, append(args, "depth", l.depth)...)
}

func (l *Logger) PreVisit(n *model.Node) bool {
	l.emit("preVisit", "type", n.TypeName())
	return true
}

func (l *Logger) VisitStart(name string, index int, n *model.Node) {
	l.emit("visitStart", "name", name, "index", index, "type", n.TypeName())
	l.depth++
}

func (l *Logger) Visit(name string, index int, n *model.Node) bool {
	args := []any{"name", name, "index", index, "type", n.TypeName()}
	if n.HasValue() {
		args = append(args, "value", n.Value().String())
	}
	l.emit("visit", args...)
	return true
}

func (l *Logger) VisitEnd(name string, index int, n *model.Node) {
	l.depth--
	l.emit("visitEnd", "name", name, "index", index, "type", n.TypeName())
}

func (l *Logger) PostVisit(n *model.Node) {
	l.emit("postVisit", "type", n.TypeName())
}

func (l *Logger) VisitStartList(name string, nodes []*model.Node, field model.FieldDef) {
	l.emit("visitStartList", "name", name, "size", len(nodes), "types", field.Types)
}

func (l *Logger) VisitEndList(name string, nodes []*model.Node, field model.FieldDef) {
	l.emit("visitEndList", "name", name, "size", len(nodes), "types", field.Types)
}
