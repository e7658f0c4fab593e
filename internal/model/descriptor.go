package model

import "fmt"

// FunctionsTypeName is the reserved descriptor name grouping the free
// functions declared in one file.
const FunctionsTypeName = "{functions}"

// TypeKind identifies the declaration form of a type.
type TypeKind string

// Available TypeKind values.
const (
	KindClass     TypeKind = "class"
	KindInterface TypeKind = "interface"
	KindTrait     TypeKind = "trait"
	KindEnum      TypeKind = "enum"
	KindFunctions TypeKind = "functions"
)

// Visibility is ordered so that a larger value is more visible.
type Visibility int

// Available Visibility values, from the most restrictive.
const (
	Private Visibility = iota
	Protected
	Public
)

// ParseVisibility maps a PHP visibility keyword to Visibility. Anything
// unrecognised, including the empty string and "var", is public.
func ParseVisibility(keyword string) Visibility {
	switch keyword {
	case "private":
		return Private
	case "protected":
		return Protected
	default:
		return Public
	}
}

func (v Visibility) String() string {
	switch v {
	case Private:
		return "private"
	case Protected:
		return "protected"
	case Public:
		return "public"
	default:
		return fmt.Sprintf("visibility(%d)", int(v))
	}
}

// BodyDigest is either NoBody or the semantic hash of a body or value.
type BodyDigest struct {
	present bool
	hash    string
}

// NoBody is the digest of a declaration without a body.
func NoBody() BodyDigest {
	return BodyDigest{}
}

// BodyHash wraps a semantic hash.
func BodyHash(hash string) BodyDigest {
	return BodyDigest{present: true, hash: hash}
}

// HasBody reports whether the digest carries a hash.
func (d BodyDigest) HasBody() bool {
	return d.present
}

// Hash returns the wrapped hash and whether one is present.
func (d BodyDigest) Hash() (string, bool) {
	return d.hash, d.present
}

// Equal treats two NoBody digests as equal and NoBody as never equal to a hash.
func (d BodyDigest) Equal(other BodyDigest) bool {
	if d.present != other.present {
		return false
	}

	return !d.present || d.hash == other.hash
}

func (d BodyDigest) String() string {
	if !d.present {
		return "<no body>"
	}

	return d.hash
}

// Parameter is one declared function parameter.
type Parameter struct {
	Name       string
	Type       string
	HasDefault bool
	IsVariadic bool
	IsByRef    bool
}

// MethodDescriptor describes a method or a free function.
type MethodDescriptor struct {
	Name       string
	Visibility Visibility
	IsStatic   bool
	IsAbstract bool
	IsFinal    bool
	ReturnsRef bool
	Params     []Parameter
	ReturnType string
	Body       BodyDigest
	// AttributeHash covers the method and parameter attributes after normalization.
	AttributeHash string
}

// SignatureEquals compares every declared facet except the body.
func (m MethodDescriptor) SignatureEquals(other MethodDescriptor) bool {
	if m.Visibility != other.Visibility ||
		m.IsStatic != other.IsStatic ||
		m.IsAbstract != other.IsAbstract ||
		m.IsFinal != other.IsFinal ||
		m.ReturnsRef != other.ReturnsRef ||
		!SameType(m.ReturnType, other.ReturnType) ||
		len(m.Params) != len(other.Params) {
		return false
	}

	for i := range m.Params {
		if !m.Params[i].Equal(other.Params[i]) {
			return false
		}
	}

	return true
}

// BodyEquals compares only the body digests.
func (m MethodDescriptor) BodyEquals(other MethodDescriptor) bool {
	return m.Body.Equal(other.Body)
}

// Equal compares parameters by name, type and flags.
func (p Parameter) Equal(other Parameter) bool {
	return p.Name == other.Name &&
		SameType(p.Type, other.Type) &&
		p.HasDefault == other.HasDefault &&
		p.IsVariadic == other.IsVariadic &&
		p.IsByRef == other.IsByRef
}

// PropertyDescriptor describes a declared or constructor-promoted property.
type PropertyDescriptor struct {
	Name          string
	Visibility    Visibility
	IsStatic      bool
	IsReadonly    bool
	IsPromoted    bool
	Type          string
	Default       BodyDigest
	AttributeHash string
}

// SignatureEquals compares type, visibility, readonly and static.
func (p PropertyDescriptor) SignatureEquals(other PropertyDescriptor) bool {
	return p.Visibility == other.Visibility &&
		p.IsStatic == other.IsStatic &&
		p.IsReadonly == other.IsReadonly &&
		SameType(p.Type, other.Type)
}

// ValueEquals compares the default value digests.
func (p PropertyDescriptor) ValueEquals(other PropertyDescriptor) bool {
	return p.Default.Equal(other.Default)
}

// ConstantDescriptor describes a class constant or an enum case.
type ConstantDescriptor struct {
	Name       string
	Type       string
	Value      BodyDigest
	Visibility Visibility
	IsFinal    bool
	IsEnumCase bool
}

// SignatureEquals compares type, visibility and final.
func (c ConstantDescriptor) SignatureEquals(other ConstantDescriptor) bool {
	return c.Visibility == other.Visibility &&
		c.IsFinal == other.IsFinal &&
		SameType(c.Type, other.Type)
}

// ValueEquals compares the value digests.
func (c ConstantDescriptor) ValueEquals(other ConstantDescriptor) bool {
	return c.Value.Equal(other.Value)
}

// TypeDescriptor is the structural summary of one declared type.
type TypeDescriptor struct {
	Name       string
	Namespace  string
	Kind       TypeKind
	IsFinal    bool
	IsAbstract bool
	IsReadonly bool
	Extends    []string
	Implements []string
	UsedTraits []string
	// BackingType is the scalar type of a backed enum.
	BackingType    string
	AttributeHash  string
	TraitRulesHash string
	Methods        map[string]MethodDescriptor
	Properties     map[string]PropertyDescriptor
	Constants      map[string]ConstantDescriptor
}

// NewTypeDescriptor returns a descriptor with initialised member maps.
func NewTypeDescriptor(name string, kind TypeKind) TypeDescriptor {
	return TypeDescriptor{
		Name:       name,
		Kind:       kind,
		Methods:    map[string]MethodDescriptor{},
		Properties: map[string]PropertyDescriptor{},
		Constants:  map[string]ConstantDescriptor{},
	}
}

// FQN returns the namespace-qualified type name.
func (t TypeDescriptor) FQN() string {
	if t.Namespace == "" {
		return t.Name
	}

	return t.Namespace + `\` + t.Name
}
