package main

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/damedic/fhir-tree-go/catalog"
	"github.com/damedic/fhir-tree-go/model"
	"github.com/damedic/fhir-tree-go/visitor"
)

func walkCmd(cfg *Config) *cobra.Command {
	var (
		trace bool
		paths bool
	)

	cmd := &cobra.Command{
		Use:   "walk SAMPLE",
		Short: "Print a sample resource by traversing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			samples := catalog.Samples()
			root, ok := samples[args[0]]
			if !ok {
				names := slices.Sorted(maps.Keys(samples))
				return fmt.Errorf("unknown sample %q, choose one of: %s", args[0], strings.Join(names, ", "))
			}

			w := cmd.OutOrStdout()
			switch {
			case trace:
				model.Walk(root, visitor.NewLogger(slog.Default(), slog.LevelInfo))
			case paths:
				visitor.Walk(root, func(path string, n *model.Node) bool {
					if n.HasValue() {
						fmt.Fprintf(w, "%s = %s\n", path, n.Value())
					}
					return true
				})
			default:
				p := visitor.NewPrinter(w, cfg.Indent)
				model.Walk(root, p)
				if err := p.Err(); err != nil {
					return fmt.Errorf("print %s: %w", args[0], err)
				}
			}

			slog.Debug("walked sample", "sample", args[0], "hash", fmt.Sprintf("%016x", root.Hash()), "size", root.MemSize())
			return nil
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "log every traversal callback instead of printing")
	cmd.Flags().BoolVar(&paths, "paths", false, "print the path and value of every primitive")
	cmd.Flags().Int("indent", 2, "spaces per indentation level")
	cmd.MarkFlagsMutuallyExclusive("trace", "paths")

	return cmd
}
