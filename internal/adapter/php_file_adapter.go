package adapter

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/php"

	m "semaudit.dev/pkg/semaudit/internal/model"
)

// PHPFileAdapter hides the concrete PHP parser from the domain layer. It
// returns position-free syntax trees so the domain never depends on spans.
type PHPFileAdapter interface {
	// Parse builds a syntax tree for src. Syntax errors are reported on the
	// returned file rather than as an error; the error return is reserved for
	// parser failures such as cancellation.
	Parse(ctx context.Context, src []byte) (*m.ParsedFile, error)
}

// atomicKinds are captured as a single leaf holding their full source text.
var atomicKinds = map[string]bool{
	"qualified_name":  true,
	"namespace_name":  true,
	"relative_name":   true,
	"string_content":  true,
	"string_value":    true,
	"heredoc_body":    true,
	"nowdoc_body":     true,
	"nowdoc_string":   true,
	"escape_sequence": true,
}

// LocalPHPFileAdapter parses PHP with tree-sitter.
type LocalPHPFileAdapter struct{}

// NewLocalPHPFileAdapter constructs a LocalPHPFileAdapter.
func NewLocalPHPFileAdapter() *LocalPHPFileAdapter {
	return &LocalPHPFileAdapter{}
}

// Parse builds a syntax tree for src. A tree-sitter parser is not safe for
// concurrent use, so one is created per call.
func (a *LocalPHPFileAdapter) Parse(ctx context.Context, src []byte) (*m.ParsedFile, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(php.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse php: %w", err)
	}

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parse php: empty tree")
	}

	file := &m.ParsedFile{}
	if root.HasError() {
		file.Errors = collectSyntaxErrors(root)
	}

	file.Root = convertNode(sitter.NewTreeCursor(root), src)

	return file, nil
}

func convertNode(cursor *sitter.TreeCursor, src []byte) *m.Node {
	node := cursor.CurrentNode()
	out := &m.Node{
		Kind:  node.Type(),
		Field: cursor.CurrentFieldName(),
		Named: node.IsNamed(),
	}

	if node.ChildCount() == 0 || atomicKinds[out.Kind] {
		out.Text = node.Content(src)
		return out
	}

	if cursor.GoToFirstChild() {
		out.Children = make([]*m.Node, 0, node.ChildCount())

		for {
			out.Children = append(out.Children, convertNode(cursor, src))
			if !cursor.GoToNextSibling() {
				break
			}
		}

		cursor.GoToParent()
	}

	return out
}

const maxSyntaxErrors = 20

func collectSyntaxErrors(root *sitter.Node) []string {
	var errs []string

	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		if len(errs) >= maxSyntaxErrors {
			return
		}

		if node.IsError() || node.IsMissing() {
			point := node.StartPoint()

			msg := fmt.Sprintf("syntax error at line %d, column %d", point.Row+1, point.Column+1)
			if node.IsMissing() {
				msg = fmt.Sprintf("missing %q at line %d, column %d", node.Type(), point.Row+1, point.Column+1)
			}

			errs = append(errs, msg)

			return
		}

		if !node.HasError() {
			return
		}

		for i := 0; i < int(node.ChildCount()); i++ {
			walk(node.Child(i))
		}
	}

	walk(root)

	if len(errs) == 0 {
		errs = append(errs, "syntax error")
	}

	return errs
}
