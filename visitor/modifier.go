package visitor

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/damedic/fhir-tree-go/model"
)

// ErrNotUnderstood is returned by RequireUnderstood.
var ErrNotUnderstood = errors.New("resource carries modifier extensions that are not understood")

// UnknownModifier is a modifier extension the consumer does not know.
type UnknownModifier struct {
	Path string
	URL  string
}

// UnknownModifierExtensions returns the modifier extensions in the tree whose URL is not in known.
// Contained resources are searched as well.
func UnknownModifierExtensions(root *model.Node, known ...string) []UnknownModifier {
	var unknown []UnknownModifier
	Walk(root, func(path string, n *model.Node) bool {
		for i, ext := range n.ModifierExtensions() {
			url := ext.Get("url").Value()
			if url != nil && slices.Contains(known, url.String()) {
				continue
			}
			u := UnknownModifier{Path: fmt.Sprintf("%s.modifierExtension[%d]", path, i)}
			if url != nil {
				u.URL = url.String()
			}
			unknown = append(unknown, u)
		}
		return true
	})
	return unknown
}

// RequireUnderstood fails with ErrNotUnderstood if the tree carries a modifier extension whose URL
// is not in known. A consumer must not process such a resource.
func RequireUnderstood(root *model.Node, known ...string) error {
	unknown := UnknownModifierExtensions(root, known...)
	if len(unknown) == 0 {
		return nil
	}
	var urls []string
	for _, u := range unknown {
		urls = append(urls, fmt.Sprintf("%s (%s)", u.URL, u.Path))
	}
	return fmt.Errorf("%w: %s", ErrNotUnderstood, strings.Join(urls, ", "))
}
