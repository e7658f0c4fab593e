package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"semaudit.dev/pkg/semaudit/internal/adapter"
	"semaudit.dev/pkg/semaudit/internal/domain/semantic"
	m "semaudit.dev/pkg/semaudit/internal/model"
)

// ErrSyntax marks source text the parser could not read cleanly.
var ErrSyntax = errors.New("syntax error")

const parseErrorPrefix = "parse error: "

var typeDeclarationKinds = map[string]m.TypeKind{
	"class_declaration":     m.KindClass,
	"interface_declaration": m.KindInterface,
	"trait_declaration":     m.KindTrait,
	"enum_declaration":      m.KindEnum,
}

var typeKinds = []string{
	"named_type",
	"optional_type",
	"primitive_type",
	"union_type",
	"intersection_type",
	"disjunctive_normal_form_type",
	"bottom_type",
}

var parameterKinds = map[string]bool{
	"simple_parameter":             true,
	"variadic_parameter":           true,
	"property_promotion_parameter": true,
}

// StructureExtractor turns PHP source into per-type structural descriptors.
type StructureExtractor interface {
	// Extract parses src and describes every declared type. Free functions
	// are grouped under m.FunctionsTypeName. Malformed input yields ErrSyntax.
	Extract(ctx context.Context, src []byte) ([]m.TypeDescriptor, error)

	// ExtractWithErrors never fails: malformed input yields no descriptors
	// and the parse error messages.
	ExtractWithErrors(ctx context.Context, src []byte) ([]m.TypeDescriptor, []string)

	// ExtractFromTree is ExtractWithErrors for an already parsed file.
	ExtractFromTree(file *m.ParsedFile) ([]m.TypeDescriptor, []string)

	// ExtractFQCNs lists the fully qualified name of every declared type.
	ExtractFQCNs(ctx context.Context, src []byte) ([]string, error)
}

type structureExtractor struct {
	adapter.PHPFileAdapter
	normalizer semantic.Normalizer
	hasher     semantic.Hasher
}

// NewStructureExtractor creates a StructureExtractor backed by the given parser.
func NewStructureExtractor(phpAdapter adapter.PHPFileAdapter) StructureExtractor {
	return &structureExtractor{
		PHPFileAdapter: phpAdapter,
		normalizer:     semantic.NewNormalizer(),
		hasher:         semantic.NewHasher(),
	}
}

func (e *structureExtractor) Extract(ctx context.Context, src []byte) ([]m.TypeDescriptor, error) {
	file, err := e.Parse(ctx, src)
	if err != nil {
		return nil, err
	}

	if file.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrSyntax, strings.Join(file.Errors, "; "))
	}

	return e.collect(file.Root).descriptors(), nil
}

func (e *structureExtractor) ExtractWithErrors(ctx context.Context, src []byte) ([]m.TypeDescriptor, []string) {
	file, err := e.Parse(ctx, src)
	if err != nil {
		slog.Error("Failed to parse source", "error", err)
		return nil, []string{parseErrorPrefix + err.Error()}
	}

	return e.ExtractFromTree(file)
}

func (e *structureExtractor) ExtractFromTree(file *m.ParsedFile) ([]m.TypeDescriptor, []string) {
	if file == nil || file.Root == nil {
		return nil, []string{parseErrorPrefix + "no syntax tree"}
	}

	if file.HasErrors() {
		msgs := make([]string, 0, len(file.Errors))
		for _, msg := range file.Errors {
			msgs = append(msgs, parseErrorPrefix+msg)
		}

		return nil, msgs
	}

	return e.collect(file.Root).descriptors(), nil
}

func (e *structureExtractor) ExtractFQCNs(ctx context.Context, src []byte) ([]string, error) {
	descriptors, err := e.Extract(ctx, src)
	if err != nil {
		return nil, err
	}

	var names []string

	for _, desc := range descriptors {
		if desc.Kind == m.KindFunctions {
			continue
		}

		names = append(names, desc.FQN())
	}

	return names, nil
}

// typeCollector gathers descriptors in declaration order.
type typeCollector struct {
	e         *structureExtractor
	types     []m.TypeDescriptor
	seen      map[string]bool
	functions *m.TypeDescriptor
}

func (e *structureExtractor) collect(root *m.Node) *typeCollector {
	c := &typeCollector{e: e, seen: map[string]bool{}}
	c.walk(root, "")

	return c
}

func (c *typeCollector) descriptors() []m.TypeDescriptor {
	if c.functions == nil {
		return c.types
	}

	return append(c.types, *c.functions)
}

// walk visits statements, following both namespace forms. Declarations are
// not descended into: classes cannot nest and function bodies are hashed.
func (c *typeCollector) walk(node *m.Node, namespace string) {
	for _, child := range node.Children {
		switch child.Kind {
		case "namespace_definition":
			name := ""
			if nameNode := child.ChildOfKind("namespace_name"); nameNode != nil {
				name = m.TrimNamespace(nameNode.Flatten())
			}

			if body := child.ChildOfKind("compound_statement"); body != nil {
				c.walk(body, name)
				continue
			}

			namespace = name
		case "function_definition":
			c.addFunction(c.e.describeFunction(child, namespace))
		case "method_declaration", "anonymous_function", "anonymous_function_creation_expression", "arrow_function":
			continue
		default:
			if kind, ok := typeDeclarationKinds[child.Kind]; ok {
				c.addType(c.e.describeType(child, kind, namespace))
				continue
			}

			if !child.IsLeaf() {
				c.walk(child, namespace)
			}
		}
	}
}

func (c *typeCollector) addType(desc m.TypeDescriptor) {
	fqn := desc.FQN()
	if c.seen[fqn] {
		slog.Debug("Ignoring repeated type declaration", "type", fqn)
		return
	}

	c.seen[fqn] = true
	c.types = append(c.types, desc)
}

func (c *typeCollector) addFunction(fn m.MethodDescriptor) {
	if c.functions == nil {
		desc := m.NewTypeDescriptor(m.FunctionsTypeName, m.KindFunctions)
		c.functions = &desc
	}

	if _, ok := c.functions.Methods[fn.Name]; ok {
		return
	}

	c.functions.Methods[fn.Name] = fn
}

func (e *structureExtractor) describeType(node *m.Node, kind m.TypeKind, namespace string) m.TypeDescriptor {
	desc := m.NewTypeDescriptor(nameOf(node), kind)
	desc.Namespace = namespace

	var (
		attributes []*m.Node
		body       *m.Node
	)

	for _, child := range node.Children {
		switch child.Kind {
		case "final_modifier":
			desc.IsFinal = true
		case "abstract_modifier":
			desc.IsAbstract = true
		case "readonly_modifier":
			desc.IsReadonly = true
		case "attribute_list":
			attributes = append(attributes, child)
		case "base_clause":
			desc.Extends = namesIn(child)
		case "class_interface_clause":
			desc.Implements = namesIn(child)
		case "declaration_list", "enum_declaration_list":
			body = child
		}
	}

	if kind == m.KindEnum {
		desc.BackingType = typeText(asType(node.NamedChildAfter(":")))
	}

	desc.AttributeHash = e.hashAttributes(attributes)
	e.describeMembers(body, &desc)

	return desc
}

func (e *structureExtractor) describeMembers(body *m.Node, desc *m.TypeDescriptor) {
	var traitRules []*m.Node

	if body == nil {
		desc.TraitRulesHash = e.hasher.HashList(nil)
		return
	}

	for _, child := range body.Children {
		switch child.Kind {
		case "method_declaration":
			method, promoted := e.describeMethod(child)
			if _, ok := desc.Methods[method.Name]; !ok {
				desc.Methods[method.Name] = method
			}

			for _, property := range promoted {
				desc.Properties[property.Name] = property
			}
		case "property_declaration":
			for _, property := range e.describeProperties(child) {
				desc.Properties[property.Name] = property
			}
		case "const_declaration":
			for _, constant := range e.describeConstants(child) {
				desc.Constants[constant.Name] = constant
			}
		case "enum_case":
			constant := e.describeEnumCase(child)
			desc.Constants[constant.Name] = constant
		case "use_declaration":
			desc.UsedTraits = append(desc.UsedTraits, namesIn(child)...)
			if rules := child.ChildOfKind("use_list"); rules != nil {
				traitRules = append(traitRules, rules)
			}
		}
	}

	desc.TraitRulesHash = e.hasher.HashList(e.normalizer.NormalizeAll(traitRules))
}

func (e *structureExtractor) describeFunction(node *m.Node, namespace string) m.MethodDescriptor {
	fn, _ := e.describeMethod(node)
	if namespace != "" {
		fn.Name = namespace + `\` + fn.Name
	}

	return fn
}

// describeMethod describes a method or function declaration and returns the
// properties promoted by its parameters.
func (e *structureExtractor) describeMethod(node *m.Node) (m.MethodDescriptor, []m.PropertyDescriptor) {
	method := m.MethodDescriptor{Name: nameOf(node), Visibility: m.Public}

	var attributes []*m.Node

	for _, child := range node.Children {
		switch child.Kind {
		case "visibility_modifier":
			method.Visibility = m.ParseVisibility(strings.ToLower(child.Flatten()))
		case "static_modifier":
			method.IsStatic = true
		case "abstract_modifier":
			method.IsAbstract = true
		case "final_modifier":
			method.IsFinal = true
		case "reference_modifier":
			method.ReturnsRef = true
		case "attribute_list":
			attributes = append(attributes, child)
		}
	}

	params := e.describeParams(node.ChildOfKind("formal_parameters"))
	method.Params = params.params
	method.ReturnType = typeText(returnTypeOf(node))
	method.AttributeHash = e.hashAttributes(append(attributes, params.attributes...))

	if body := node.ChildOfKind("compound_statement"); body != nil {
		digestRoot := &m.Node{
			Kind:  "method_body",
			Named: true,
			Children: []*m.Node{
				{Kind: "parameter_defaults", Named: true, Children: params.defaults},
				body,
			},
		}
		method.Body = m.BodyHash(e.hasher.Hash(e.normalizer.Normalize(digestRoot)))
	} else {
		method.Body = m.NoBody()
	}

	return method, params.promoted
}

type paramList struct {
	params     []m.Parameter
	defaults   []*m.Node
	attributes []*m.Node
	promoted   []m.PropertyDescriptor
}

func (e *structureExtractor) describeParams(node *m.Node) paramList {
	var list paramList

	if node == nil {
		return list
	}

	for _, child := range node.Children {
		if !parameterKinds[child.Kind] {
			continue
		}

		param := m.Parameter{
			Type:       typeText(typeOf(child)),
			IsVariadic: child.Kind == "variadic_parameter" || hasToken(child, "..."),
			IsByRef:    child.ChildOfKind("reference_modifier", "by_ref") != nil,
		}

		variable := child.ChildOfKind("variable_name")
		if variable == nil {
			variable = child.ChildOfKind("by_ref").ChildOfKind("variable_name")
		}

		param.Name = strings.TrimPrefix(variable.Flatten(), "$")

		defaultValue := child.ChildByField("default_value")
		if defaultValue == nil {
			defaultValue = child.NamedChildAfter("=")
		}

		param.HasDefault = defaultValue != nil
		if defaultValue == nil {
			defaultValue = &m.Node{Kind: "no_default", Named: true}
		}

		list.params = append(list.params, param)
		list.defaults = append(list.defaults, defaultValue)
		list.attributes = append(list.attributes, child.ChildrenOfKind("attribute_list")...)

		if child.Kind != "property_promotion_parameter" {
			continue
		}

		property := m.PropertyDescriptor{
			Name:       param.Name,
			Visibility: m.Public,
			IsPromoted: true,
			IsReadonly: child.ChildOfKind("readonly_modifier") != nil,
			Type:       param.Type,
			Default:    m.NoBody(),
		}
		if visibility := child.ChildOfKind("visibility_modifier"); visibility != nil {
			property.Visibility = m.ParseVisibility(strings.ToLower(visibility.Flatten()))
		}

		property.AttributeHash = e.hashAttributes(child.ChildrenOfKind("attribute_list"))
		list.promoted = append(list.promoted, property)
	}

	return list
}

func (e *structureExtractor) describeProperties(node *m.Node) []m.PropertyDescriptor {
	template := m.PropertyDescriptor{
		Visibility:    m.Public,
		Type:          typeText(typeOf(node)),
		AttributeHash: e.hashAttributes(node.ChildrenOfKind("attribute_list")),
	}

	for _, child := range node.Children {
		switch child.Kind {
		case "visibility_modifier":
			template.Visibility = m.ParseVisibility(strings.ToLower(child.Flatten()))
		case "static_modifier":
			template.IsStatic = true
		case "readonly_modifier":
			template.IsReadonly = true
		}
	}

	var properties []m.PropertyDescriptor

	for _, element := range node.ChildrenOfKind("property_element") {
		property := template
		property.Name = strings.TrimPrefix(element.ChildOfKind("variable_name").Flatten(), "$")
		property.Default = e.valueDigest(propertyDefault(element))
		properties = append(properties, property)
	}

	return properties
}

func (e *structureExtractor) describeConstants(node *m.Node) []m.ConstantDescriptor {
	template := m.ConstantDescriptor{
		Visibility: m.Public,
		Type:       typeText(typeOf(node)),
	}

	for _, child := range node.Children {
		switch child.Kind {
		case "visibility_modifier":
			template.Visibility = m.ParseVisibility(strings.ToLower(child.Flatten()))
		case "final_modifier":
			template.IsFinal = true
		}
	}

	var constants []m.ConstantDescriptor

	for _, element := range node.ChildrenOfKind("const_element") {
		constant := template
		constant.Name = nameOf(element)

		value := element.ChildByField("value")
		if value == nil {
			value = element.NamedChildAfter("=")
		}

		constant.Value = m.BodyHash(e.hasher.Hash(e.normalizer.Normalize(value)))
		constants = append(constants, constant)
	}

	return constants
}

func (e *structureExtractor) describeEnumCase(node *m.Node) m.ConstantDescriptor {
	value := node.ChildByField("value")
	if value == nil {
		value = node.NamedChildAfter("=")
	}

	return m.ConstantDescriptor{
		Name:       nameOf(node),
		Visibility: m.Public,
		IsEnumCase: true,
		Value:      e.valueDigest(value),
	}
}

// valueDigest hashes an optional initializer; a missing one is NoBody.
func (e *structureExtractor) valueDigest(value *m.Node) m.BodyDigest {
	if value == nil {
		return m.NoBody()
	}

	return m.BodyHash(e.hasher.Hash(e.normalizer.Normalize(value)))
}

func (e *structureExtractor) hashAttributes(attributes []*m.Node) string {
	return e.hasher.HashList(e.normalizer.NormalizeAll(attributes))
}

func propertyDefault(element *m.Node) *m.Node {
	if value := element.ChildByField("default_value"); value != nil {
		return value
	}

	if initializer := element.ChildOfKind("property_initializer"); initializer != nil {
		return initializer.NamedChildAfter("=")
	}

	return element.NamedChildAfter("=")
}

func nameOf(node *m.Node) string {
	if name := node.ChildByField("name"); name != nil {
		return name.Flatten()
	}

	return node.ChildOfKind("name").Flatten()
}

// namesIn returns the type names listed in an extends, implements or use clause.
func namesIn(node *m.Node) []string {
	var names []string

	for _, child := range node.Children {
		if child.Kind == "name" || child.Kind == "qualified_name" {
			names = append(names, child.Flatten())
		}
	}

	return names
}

func typeOf(node *m.Node) *m.Node {
	if t := node.ChildByField("type"); t != nil {
		return t
	}

	return node.ChildOfKind(typeKinds...)
}

func returnTypeOf(node *m.Node) *m.Node {
	if t := node.ChildByField("return_type"); t != nil {
		return t
	}

	return asType(node.NamedChildAfter(":"))
}

// asType returns node when it is a type node and nil otherwise.
func asType(node *m.Node) *m.Node {
	if node == nil {
		return nil
	}

	for _, kind := range typeKinds {
		if node.Kind == kind {
			return node
		}
	}

	return nil
}

func typeText(node *m.Node) string {
	return strings.Join(strings.Fields(node.Flatten()), "")
}

func hasToken(node *m.Node, token string) bool {
	for _, child := range node.Children {
		if !child.Named && child.Kind == token {
			return true
		}
	}

	return false
}
