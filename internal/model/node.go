package model

import "strings"

// Node is a position-free syntax tree node. Leaves (and a few atomic kinds
// such as qualified names) carry their source text; inner nodes carry children.
type Node struct {
	Kind     string
	Field    string
	Named    bool
	Text     string
	Children []*Node
}

// ParsedFile is the result of parsing one source file.
type ParsedFile struct {
	Root   *Node
	Errors []string
}

// HasErrors reports whether the parser flagged the file as malformed.
func (f *ParsedFile) HasErrors() bool {
	return f == nil || f.Root == nil || len(f.Errors) > 0
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// ChildByField returns the first child attached to the given grammar field.
func (n *Node) ChildByField(field string) *Node {
	if n == nil {
		return nil
	}

	for _, child := range n.Children {
		if child.Field == field {
			return child
		}
	}

	return nil
}

// ChildOfKind returns the first direct child with one of the given kinds.
func (n *Node) ChildOfKind(kinds ...string) *Node {
	if n == nil {
		return nil
	}

	for _, child := range n.Children {
		for _, kind := range kinds {
			if child.Kind == kind {
				return child
			}
		}
	}

	return nil
}

// ChildrenOfKind returns every direct child with the given kind.
func (n *Node) ChildrenOfKind(kind string) []*Node {
	if n == nil {
		return nil
	}

	var out []*Node

	for _, child := range n.Children {
		if child.Kind == kind {
			out = append(out, child)
		}
	}

	return out
}

// NamedChildAfter returns the first named child following an anonymous token
// with the given text, e.g. the expression after "=" or the type after ":".
func (n *Node) NamedChildAfter(token string) *Node {
	if n == nil {
		return nil
	}

	seen := false

	for _, child := range n.Children {
		if !child.Named && child.Kind == token {
			seen = true
			continue
		}

		if seen && child.Named && child.Kind != "comment" {
			return child
		}
	}

	return nil
}

// Flatten concatenates the text of every leaf below the node without separators.
func (n *Node) Flatten() string {
	if n == nil {
		return ""
	}

	var sb strings.Builder

	n.flattenInto(&sb)

	return sb.String()
}

func (n *Node) flattenInto(sb *strings.Builder) {
	if n.IsLeaf() {
		sb.WriteString(n.Text)
		return
	}

	for _, child := range n.Children {
		if child.Kind == "comment" {
			continue
		}

		child.flattenInto(sb)
	}
}
