package assert

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-tree-go/model"
)

// NodesEqual fails the test with a diff of the debug renderings if the trees differ.
func NodesEqual(t *testing.T, expected, actual *model.Node) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("nodes differ (-expected +actual):\n%s", cmp.Diff(expected.String(), actual.String()))
	}
}
