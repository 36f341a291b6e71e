package visitor

import (
	"fmt"
	"io"
	"strings"

	"github.com/damedic/fhir-tree-go/model"
)

// Printer writes an indented outline of a tree while it is traversed.
// Nodes with children open a block in VisitStart that is closed in VisitEnd.
//
// After the first write error the remaining nodes are skipped and Err reports the error.
type Printer struct {
	Base
	w      io.Writer
	indent string
	depth  int
	open   []bool
	err    error
}

// NewPrinter returns a printer writing to w, indenting each level by the given number of spaces.
func NewPrinter(w io.Writer, indent int) *Printer {
	return &Printer{w: w, indent: strings.Repeat(" ", indent)}
}

// Err returns the first write error.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) PreVisit(*model.Node) bool {
	return p.err == nil
}

func (p *Printer) VisitStart(name string, index int, n *model.Node) {
	label := name
	if index >= 0 {
		label = fmt.Sprintf("%s[%d]", name, index)
	}
	line := fmt.Sprintf("%s: %s", label, n.TypeName())
	if n.HasValue() {
		line += " = " + formatValue(n.Value())
	}
	block := n.HasChildren()
	if block {
		line += " {"
	}
	p.println(line)
	p.open = append(p.open, block)
	p.depth++
}

func (p *Printer) VisitEnd(string, int, *model.Node) {
	p.depth--
	block := p.open[len(p.open)-1]
	p.open = p.open[:len(p.open)-1]
	if block {
		p.println("}")
	}
}

func (p *Printer) println(line string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(p.indent, p.depth), line)
}

func formatValue(v model.Value) string {
	if s, ok := v.(model.StringValue); ok {
		return fmt.Sprintf("%q", string(s))
	}
	return v.String()
}
