package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/damedic/fhir-tree-go/catalog"
	"github.com/damedic/fhir-tree-go/catalog/structuredef"
	"github.com/damedic/fhir-tree-go/model"
)

func loadCmd() *cobra.Command {
	var bare bool

	cmd := &cobra.Command{
		Use:   "load FILE",
		Short: "Load type definitions from a StructureDefinition, a Bundle or a definitions.json.zip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			sds, err := readDefinitions(path)
			if err != nil {
				return err
			}

			seed := catalog.All()
			if bare {
				seed = slices.Concat(model.PrimitiveTypes(), model.BaseTypes())
			}
			reg := model.NewRegistry(seed...)

			loaded, err := structuredef.Load(reg, sds...)
			slog.Info("loaded definitions", "file", path, "definitions", len(sds), "types", len(loaded))
			printTypes(cmd.OutOrStdout(), loaded)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&bare, "bare", false, "start from the primitives and abstract bases only")

	return cmd
}

func readDefinitions(path string) ([]structuredef.StructureDefinition, error) {
	if strings.HasSuffix(path, ".zip") {
		return structuredef.ReadZIP(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return structuredef.Decode(f)
}
