package semantic

import (
	"encoding/binary"
	"encoding/hex"
	"io"
	"strings"

	"lukechampine.com/blake3"

	m "semaudit.dev/pkg/semaudit/internal/model"
)

const digestSize = 32

// Encoding tags keep nil, lists and nodes from colliding.
const (
	tagNil byte = iota + 1
	tagList
	tagNode
)

// nameKinds all hash as one kind so a fully qualified reference equals the
// unqualified one.
var nameKinds = map[string]bool{
	"name":           true,
	"qualified_name": true,
	"namespace_name": true,
}

// Hasher computes semantic digests of syntax subtrees.
type Hasher interface {
	// Hash digests one subtree. A nil node has its own stable digest.
	Hash(node *m.Node) string
	// HashList digests an ordered list of subtrees. An empty list has its own
	// stable digest distinct from Hash(nil).
	HashList(nodes []*m.Node) string
}

type hasher struct{}

// NewHasher returns a stateless Hasher.
func NewHasher() Hasher {
	return hasher{}
}

func (hasher) Hash(node *m.Node) string {
	enc := newEncoder()
	enc.node(node)

	return enc.sum()
}

func (hasher) HashList(nodes []*m.Node) string {
	enc := newEncoder()
	enc.tag(tagList)
	enc.uvarint(uint64(len(nodes)))

	for _, node := range nodes {
		enc.node(node)
	}

	return enc.sum()
}

type encoder struct {
	h   *blake3.Hasher
	buf [binary.MaxVarintLen64]byte
}

func newEncoder() *encoder {
	return &encoder{h: blake3.New(digestSize, nil)}
}

func (e *encoder) sum() string {
	return hex.EncodeToString(e.h.Sum(nil))
}

func (e *encoder) tag(t byte) {
	e.buf[0] = t
	_, _ = e.h.Write(e.buf[:1])
}

func (e *encoder) uvarint(v uint64) {
	n := binary.PutUvarint(e.buf[:], v)
	_, _ = e.h.Write(e.buf[:n])
}

func (e *encoder) str(s string) {
	e.uvarint(uint64(len(s)))
	_, _ = io.WriteString(e.h, s)
}

// node writes a preorder, length-prefixed encoding: kind, canonical text,
// child count, then each child.
func (e *encoder) node(node *m.Node) {
	if node == nil {
		e.tag(tagNil)
		return
	}

	kind, text, atomic := canonical(node)

	e.tag(tagNode)
	e.str(kind)
	e.str(text)

	if atomic {
		e.uvarint(0)
		return
	}

	children := significantChildren(node.Children)
	e.uvarint(uint64(len(children)))

	for _, child := range children {
		e.node(child)
	}
}

// canonical returns the kind and text entering the hash. Atomic results hash
// without their children.
func canonical(node *m.Node) (string, string, bool) {
	switch {
	case nameKinds[node.Kind]:
		return "name", m.TrimNamespace(node.Flatten()), true
	case node.Kind == "string" || node.Kind == "encapsed_string":
		if value, ok := literalString(node); ok {
			return "string_literal", value, true
		}
	case node.Kind == "boolean" || node.Kind == "null":
		return node.Kind, strings.ToLower(node.Flatten()), true
	case !node.Named && node.IsLeaf():
		// Keywords are case-insensitive; operators are unaffected.
		return node.Kind, strings.ToLower(node.Text), true
	}

	return node.Kind, node.Text, node.IsLeaf()
}

// literalString returns the value of a quoted string whose meaning does not
// depend on the quote style: no escapes and no interpolation.
func literalString(node *m.Node) (string, bool) {
	text := node.Flatten()
	if len(text) < 2 {
		return "", false
	}

	inner := text[1 : len(text)-1]

	switch {
	case text[0] == '\'' && text[len(text)-1] == '\'':
		return inner, !strings.Contains(inner, `\`)
	case text[0] == '"' && text[len(text)-1] == '"':
		return inner, !strings.ContainsAny(inner, `\$`)
	}

	return "", false
}

// significantChildren drops a trailing comma directly before a closing
// parenthesis or bracket.
func significantChildren(children []*m.Node) []*m.Node {
	trailing := -1

	for i := 0; i+1 < len(children); i++ {
		if isComma(children[i]) && isClosing(children[i+1]) {
			trailing = i
			break
		}
	}

	if trailing < 0 {
		return children
	}

	out := make([]*m.Node, 0, len(children)-1)
	out = append(out, children[:trailing]...)

	return append(out, children[trailing+1:]...)
}

func isClosing(node *m.Node) bool {
	return !node.Named && (node.Kind == ")" || node.Kind == "]")
}
