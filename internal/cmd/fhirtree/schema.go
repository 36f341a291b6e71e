package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/damedic/fhir-tree-go/catalog"
	"github.com/damedic/fhir-tree-go/model"
)

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [TYPE...]",
		Short: "List the built-in types or show the fields of the given types",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				printTypes(w, catalog.Default.Types())
				return nil
			}
			for _, name := range args {
				def, ok := catalog.Lookup(name)
				if !ok {
					return fmt.Errorf("unknown type %q", name)
				}
				printFields(w, def)
			}
			return nil
		},
	}
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func printTypes(w io.Writer, types []*model.TypeDef) {
	table := newTable(w, "Type", "Kind", "Base", "Fields")
	for _, d := range types {
		base := ""
		if d.Base != nil {
			base = d.Base.Name
		}
		kind := d.Kind.String()
		if d.Abstract {
			kind += " (abstract)"
		}
		table.Append([]string{d.Name, kind, base, strconv.Itoa(len(d.AllFields()))})
	}
	table.Render()
}

func printFields(w io.Writer, def *model.TypeDef) {
	fmt.Fprintf(w, "%s (%s)", def.Name, def.Kind)
	for b := def.Base; b != nil; b = b.Base {
		fmt.Fprintf(w, " < %s", b.Name)
	}
	fmt.Fprintln(w)

	table := newTable(w, "Field", "Type", "Card.", "Binding", "Summary")
	for _, f := range def.AllFields() {
		types := strings.Join(f.Types, " | ")
		if len(f.Targets) > 0 {
			types += "(" + strings.Join(f.Targets, " | ") + ")"
		}
		binding := ""
		if f.Binding != nil {
			binding = fmt.Sprintf("%s %s", f.Binding.Strength, f.Binding.ValueSet)
		}
		summary := ""
		if f.Summary {
			summary = "Σ"
		}
		name := f.Name
		if f.Choice() {
			name += "[x]"
		}
		table.Append([]string{name, types, f.Cardinality(), binding, summary})
	}
	table.Render()

	for _, c := range def.Constraints {
		fmt.Fprintf(w, "%s (%s): %s\n", c.Key, c.Severity, c.Human)
	}
}
