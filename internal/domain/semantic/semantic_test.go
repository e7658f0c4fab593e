package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "semaudit.dev/pkg/semaudit/internal/model"
)

func leaf(kind, text string) *m.Node {
	return &m.Node{Kind: kind, Named: true, Text: text}
}

func tok(text string) *m.Node {
	return &m.Node{Kind: text, Text: text}
}

func inner(kind string, children ...*m.Node) *m.Node {
	return &m.Node{Kind: kind, Named: true, Children: children}
}

// memberCall builds `$receiver->method()`.
func memberCall(receiver, method string) *m.Node {
	return inner("member_call_expression",
		inner("variable_name", tok("$"), leaf("name", receiver)),
		tok("->"),
		leaf("name", method),
		inner("arguments", tok("("), tok(")")),
	)
}

func attributeList(names ...string) *m.Node {
	group := []*m.Node{tok("#[")}
	for i, name := range names {
		if i > 0 {
			group = append(group, tok(","))
		}

		kind := "name"
		if len(name) > 0 && name[0] == '\\' {
			kind = "qualified_name"
		}

		group = append(group, inner("attribute", leaf(kind, name)))
	}

	group = append(group, tok("]"))

	return inner("attribute_list", inner("attribute_group", group...))
}

func TestHasher_Idempotent(t *testing.T) {
	h := NewHasher()
	node := memberCall("user", "getId")

	first := h.Hash(node)
	second := h.Hash(node)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestHasher_NameSensitivity(t *testing.T) {
	h := NewHasher()

	tests := []struct {
		name  string
		a, b  *m.Node
		equal bool
	}{
		{
			name:  "same call",
			a:     memberCall("user", "getId"),
			b:     memberCall("user", "getId"),
			equal: true,
		},
		{
			name: "renamed method",
			a:    memberCall("user", "getId"),
			b:    memberCall("user", "getInternalId"),
		},
		{
			name: "renamed receiver",
			a:    memberCall("user", "getId"),
			b:    memberCall("account", "getId"),
		},
		{
			name: "class constant class name",
			a:    inner("class_constant_access_expression", leaf("name", "Status"), tok("::"), leaf("name", "OPEN")),
			b:    inner("class_constant_access_expression", leaf("name", "State"), tok("::"), leaf("name", "OPEN")),
		},
		{
			name: "class constant member name",
			a:    inner("class_constant_access_expression", leaf("name", "Status"), tok("::"), leaf("name", "OPEN")),
			b:    inner("class_constant_access_expression", leaf("name", "Status"), tok("::"), leaf("name", "CLOSED")),
		},
		{
			name:  "qualified and unqualified function",
			a:     inner("function_call_expression", leaf("qualified_name", `\strlen`), inner("arguments", tok("("), tok(")"))),
			b:     inner("function_call_expression", leaf("name", "strlen"), inner("arguments", tok("("), tok(")"))),
			equal: true,
		},
		{
			name: "different functions",
			a:    inner("function_call_expression", leaf("qualified_name", `\strlen`), inner("arguments", tok("("), tok(")"))),
			b:    inner("function_call_expression", leaf("name", "count"), inner("arguments", tok("("), tok(")"))),
		},
		{
			name: "integer literal",
			a:    leaf("integer", "1"),
			b:    leaf("integer", "2"),
		},
		{
			name: "boolean literal",
			a:    leaf("boolean", "true"),
			b:    leaf("boolean", "false"),
		},
		{
			name:  "boolean case",
			a:     leaf("boolean", "TRUE"),
			b:     leaf("boolean", "true"),
			equal: true,
		},
		{
			name:  "keyword case",
			a:     inner("object_creation_expression", &m.Node{Kind: "new", Text: "NEW"}, leaf("name", "Foo")),
			b:     inner("object_creation_expression", &m.Node{Kind: "new", Text: "new"}, leaf("name", "Foo")),
			equal: true,
		},
		{
			name:  "quote style",
			a:     inner("string", tok("'"), leaf("string_content", "abc"), tok("'")),
			b:     inner("encapsed_string", tok(`"`), leaf("string_content", "abc"), tok(`"`)),
			equal: true,
		},
		{
			name: "escape keeps quote style",
			a:    inner("string", tok("'"), leaf("string_content", `a\n`), tok("'")),
			b:    inner("encapsed_string", tok(`"`), leaf("string_content", "a"), leaf("escape_sequence", `\n`), tok(`"`)),
		},
		{
			name: "string value",
			a:    inner("string", tok("'"), leaf("string_content", "abc"), tok("'")),
			b:    inner("string", tok("'"), leaf("string_content", "abd"), tok("'")),
		},
		{
			name:  "trailing comma",
			a:     inner("arguments", tok("("), inner("argument", leaf("integer", "1")), tok(","), tok(")")),
			b:     inner("arguments", tok("("), inner("argument", leaf("integer", "1")), tok(")")),
			equal: true,
		},
		{
			name: "operator",
			a:    inner("binary_expression", leaf("integer", "1"), tok("+"), leaf("integer", "2")),
			b:    inner("binary_expression", leaf("integer", "1"), tok("-"), leaf("integer", "2")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.equal {
				assert.Equal(t, h.Hash(tt.a), h.Hash(tt.b))
				return
			}

			assert.NotEqual(t, h.Hash(tt.a), h.Hash(tt.b))
		})
	}
}

func TestHasher_NilAndEmpty(t *testing.T) {
	h := NewHasher()

	nilDigest := h.Hash(nil)
	emptyDigest := h.HashList(nil)

	assert.NotEmpty(t, nilDigest)
	assert.NotEmpty(t, emptyDigest)
	assert.Equal(t, nilDigest, h.Hash(nil))
	assert.Equal(t, emptyDigest, h.HashList([]*m.Node{}))
	assert.NotEqual(t, nilDigest, emptyDigest)
	assert.NotEqual(t, emptyDigest, h.HashList([]*m.Node{nil}))
}

func TestNormalizer_StripsComments(t *testing.T) {
	n := NewNormalizer()
	h := NewHasher()

	withComment := inner("compound_statement",
		tok("{"),
		leaf("comment", "// explain"),
		inner("return_statement", tok("return"), leaf("integer", "1"), tok(";")),
		leaf("comment", "/* trailing */"),
		tok("}"),
	)
	plain := inner("compound_statement",
		tok("{"),
		inner("return_statement", tok("return"), leaf("integer", "1"), tok(";")),
		tok("}"),
	)

	normalized := n.Normalize(withComment)
	require.NotNil(t, normalized)
	assert.Len(t, normalized.Children, 3)
	assert.Equal(t, h.Hash(plain), h.Hash(normalized))
	assert.Len(t, withComment.Children, 5, "input must not be modified")
	assert.Nil(t, n.Normalize(leaf("comment", "# gone")))
}

func TestNormalizer_Override(t *testing.T) {
	n := NewNormalizer()
	h := NewHasher()

	tests := []struct {
		name   string
		input  *m.Node
		want   *m.Node
		isNone bool
	}{
		{name: "override only", input: attributeList("Override"), isNone: true},
		{name: "fully qualified override", input: attributeList(`\Override`), isNone: true},
		{name: "override first", input: attributeList(`\Override`, "Route"), want: attributeList("Route")},
		{name: "override last", input: attributeList("Route", "Override"), want: attributeList("Route")},
		{name: "other attributes kept", input: attributeList("Route", "Deprecated"), want: attributeList("Route", "Deprecated")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.input)
			if tt.isNone {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, h.Hash(tt.want), h.Hash(got))
		})
	}
}

func TestNormalizer_KeepsOtherAttributes(t *testing.T) {
	n := NewNormalizer()
	h := NewHasher()

	assert.NotEqual(t,
		h.HashList(n.NormalizeAll([]*m.Node{attributeList("Route")})),
		h.HashList(n.NormalizeAll(nil)),
	)
	assert.Equal(t,
		h.HashList(n.NormalizeAll([]*m.Node{attributeList("Override")})),
		h.HashList(n.NormalizeAll(nil)),
	)
}
