// Package semantic turns syntax subtrees into digests that are equal exactly
// when the subtrees cannot behave differently.
package semantic

import (
	"strings"

	m "semaudit.dev/pkg/semaudit/internal/model"
)

const (
	commentKind        = "comment"
	attributeKind      = "attribute"
	attributeGroupKind = "attribute_group"
	attributeListKind  = "attribute_list"

	// overrideAttribute only tells tooling that a member overrides a parent
	// member; it has no runtime effect.
	overrideAttribute = "override"
)

// Normalizer strips comments and #[Override] markers from a subtree.
type Normalizer interface {
	Normalize(node *m.Node) *m.Node
	NormalizeAll(nodes []*m.Node) []*m.Node
}

type normalizer struct{}

// NewNormalizer returns a stateless Normalizer.
func NewNormalizer() Normalizer {
	return normalizer{}
}

// Normalize returns a copy of node without comments and #[Override]
// attributes. Attribute groups and lists emptied by the removal are dropped.
// Every other node is kept in order and unchanged. A node that is itself
// removed normalizes to nil.
func (n normalizer) Normalize(node *m.Node) *m.Node {
	if node == nil || node.Kind == commentKind {
		return nil
	}

	if node.IsLeaf() {
		clone := *node
		return &clone
	}

	out := &m.Node{Kind: node.Kind, Field: node.Field, Named: node.Named, Text: node.Text}

	children := node.Children
	if node.Kind == attributeGroupKind {
		children = withoutOverride(children)
	}

	for _, child := range children {
		if normalized := n.Normalize(child); normalized != nil {
			out.Children = append(out.Children, normalized)
		}
	}

	switch node.Kind {
	case attributeGroupKind:
		if out.ChildOfKind(attributeKind) == nil {
			return nil
		}
	case attributeListKind:
		if out.ChildOfKind(attributeGroupKind) == nil {
			return nil
		}
	}

	return out
}

// NormalizeAll normalizes every node and drops the ones removed entirely.
func (n normalizer) NormalizeAll(nodes []*m.Node) []*m.Node {
	out := make([]*m.Node, 0, len(nodes))

	for _, node := range nodes {
		if normalized := n.Normalize(node); normalized != nil {
			out = append(out, normalized)
		}
	}

	return out
}

// withoutOverride drops Override attributes together with one adjacent
// separator comma so the remaining group reads as if written without it.
func withoutOverride(children []*m.Node) []*m.Node {
	removed := make([]bool, len(children))
	found := false

	for i, child := range children {
		if child.Kind != attributeKind || !isOverride(child) {
			continue
		}

		removed[i] = true
		found = true

		if j := nextSignificant(children, i); j >= 0 && isComma(children[j]) && !removed[j] {
			removed[j] = true
			continue
		}

		if j := prevSignificant(children, i); j >= 0 && isComma(children[j]) && !removed[j] {
			removed[j] = true
		}
	}

	if !found {
		return children
	}

	kept := make([]*m.Node, 0, len(children))

	for i, child := range children {
		if !removed[i] {
			kept = append(kept, child)
		}
	}

	return kept
}

func isOverride(attribute *m.Node) bool {
	name := attribute.ChildOfKind("name", "qualified_name")
	if name == nil {
		return false
	}

	return strings.ToLower(m.TrimNamespace(name.Flatten())) == overrideAttribute
}

func isComma(node *m.Node) bool {
	return !node.Named && node.Kind == ","
}

func nextSignificant(children []*m.Node, i int) int {
	for j := i + 1; j < len(children); j++ {
		if children[j].Kind != commentKind {
			return j
		}
	}

	return -1
}

func prevSignificant(children []*m.Node, i int) int {
	for j := i - 1; j >= 0; j-- {
		if children[j].Kind != commentKind {
			return j
		}
	}

	return -1
}
