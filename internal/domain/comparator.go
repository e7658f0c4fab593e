package domain

import (
	"context"
	"fmt"
	"sort"
	"strings"

	m "semaudit.dev/pkg/semaudit/internal/model"
)

const constructorName = "__construct"

// FileComparator diffs the declared structure of a before/after file pair.
type FileComparator interface {
	// Compare extracts both sides and diffs them. A side that fails to parse
	// forces BodyChanged and records the parse errors.
	Compare(ctx context.Context, before, after []byte) m.ComparisonResult

	// CompareParsed is Compare with the after side already parsed.
	CompareParsed(ctx context.Context, before []byte, after *m.ParsedFile) m.ComparisonResult

	// CompareDescriptors diffs two extracted descriptor sets.
	CompareDescriptors(before, after []m.TypeDescriptor) m.ComparisonResult
}

type fileComparator struct {
	StructureExtractor
}

// NewFileComparator creates a FileComparator using the given extractor.
func NewFileComparator(extractor StructureExtractor) FileComparator {
	return &fileComparator{StructureExtractor: extractor}
}

func (c *fileComparator) Compare(ctx context.Context, before, after []byte) m.ComparisonResult {
	beforeTypes, beforeErrs := c.ExtractWithErrors(ctx, before)
	afterTypes, afterErrs := c.ExtractWithErrors(ctx, after)

	return c.compareExtracted(beforeTypes, beforeErrs, afterTypes, afterErrs)
}

func (c *fileComparator) CompareParsed(ctx context.Context, before []byte, after *m.ParsedFile) m.ComparisonResult {
	beforeTypes, beforeErrs := c.ExtractWithErrors(ctx, before)
	afterTypes, afterErrs := c.ExtractFromTree(after)

	return c.compareExtracted(beforeTypes, beforeErrs, afterTypes, afterErrs)
}

func (c *fileComparator) compareExtracted(
	beforeTypes []m.TypeDescriptor, beforeErrs []string,
	afterTypes []m.TypeDescriptor, afterErrs []string,
) m.ComparisonResult {
	if len(beforeErrs) == 0 && len(afterErrs) == 0 {
		return c.CompareDescriptors(beforeTypes, afterTypes)
	}

	d := &diffContext{}
	d.result.BodyChanged = true

	for _, msg := range beforeErrs {
		d.result.ParseErrors = append(d.result.ParseErrors, "before: "+msg)
	}

	for _, msg := range afterErrs {
		d.result.ParseErrors = append(d.result.ParseErrors, "after: "+msg)
	}

	d.note("could not parse %s; treating the file as a logic change", failedSides(beforeErrs, afterErrs))

	return d.result
}

func failedSides(beforeErrs, afterErrs []string) string {
	switch {
	case len(beforeErrs) > 0 && len(afterErrs) > 0:
		return "either side"
	case len(beforeErrs) > 0:
		return "the before side"
	default:
		return "the after side"
	}
}

func (c *fileComparator) CompareDescriptors(before, after []m.TypeDescriptor) m.ComparisonResult {
	d := &diffContext{}

	qualified := repeatedNames(before, after)
	beforeIndex := indexTypes(before, qualified)
	afterIndex := indexTypes(after, qualified)

	for _, label := range unionKeys(beforeIndex, afterIndex) {
		b, inBefore := beforeIndex[label]
		a, inAfter := afterIndex[label]

		switch {
		case inBefore && inAfter:
			compareTypes(d, label, b, a)
		case b.Kind == m.KindFunctions || a.Kind == m.KindFunctions:
			// Report the individual functions rather than the synthetic group.
			empty := m.NewTypeDescriptor(m.FunctionsTypeName, m.KindFunctions)
			if inBefore {
				compareTypes(d, label, b, empty)
			} else {
				compareTypes(d, label, empty, a)
			}
		case inBefore:
			d.membership("%s %s removed", b.Kind, label)
		default:
			d.membership("%s %s added", a.Kind, label)
		}
	}

	return d.result
}

// diffContext accumulates one comparison. Each Compare call owns its own.
type diffContext struct {
	result m.ComparisonResult
}

func (d *diffContext) note(format string, args ...any) {
	d.result.Details = append(d.result.Details, fmt.Sprintf(format, args...))
}

func (d *diffContext) structure(format string, args ...any) {
	d.result.ClassStructureChanged = true
	d.note(format, args...)
}

func (d *diffContext) signature(format string, args ...any) {
	d.result.SignatureChanged = true
	d.note(format, args...)
}

func (d *diffContext) body(format string, args ...any) {
	d.result.BodyChanged = true
	d.note(format, args...)
}

func (d *diffContext) membership(format string, args ...any) {
	d.result.MembersAddedOrRemoved = true
	d.note(format, args...)
}

func compareTypes(d *diffContext, name string, b, a m.TypeDescriptor) {

	if b.Kind != a.Kind {
		d.structure("%s: kind changed from %s to %s", name, b.Kind, a.Kind)
	}

	if b.Namespace != a.Namespace {
		d.structure("%s: namespace changed from %q to %q", name, b.Namespace, a.Namespace)
	}

	if flag, changed := toggled(b.IsFinal, a.IsFinal); changed {
		d.signature("%s: class %s", name, flag.describe("made final", "no longer final"))
	}

	if flag, changed := toggled(b.IsAbstract, a.IsAbstract); changed {
		d.structure("%s: class %s", name, flag.describe("made abstract", "no longer abstract"))
	}

	if flag, changed := toggled(b.IsReadonly, a.IsReadonly); changed {
		d.structure("%s: class %s", name, flag.describe("made readonly", "no longer readonly"))
	}

	compareNameList(d, name, "extends", b.Extends, a.Extends)
	compareNameList(d, name, "implements", b.Implements, a.Implements)
	compareNameList(d, name, "traits", b.UsedTraits, a.UsedTraits)

	if !m.SameType(b.BackingType, a.BackingType) {
		d.structure("%s: enum backing type changed from %s to %s", name, typeLabel(b.BackingType), typeLabel(a.BackingType))
	}

	if b.TraitRulesHash != a.TraitRulesHash {
		d.structure("%s: trait adaptation rules changed", name)
	}

	if b.AttributeHash != a.AttributeHash {
		d.body("%s: attributes changed", name)
	}

	compareMethods(d, name, a.Kind == m.KindFunctions, b.Methods, a.Methods)
	compareProperties(d, name, b.Properties, a.Properties)
	compareConstants(d, name, b.Constants, a.Constants)
}

func compareNameList(d *diffContext, typeName, facet string, before, after []string) {
	b := canonicalNames(before)
	a := canonicalNames(after)

	if strings.Join(b, ",") == strings.Join(a, ",") {
		return
	}

	d.structure("%s: %s changed from [%s] to [%s]", typeName, facet, strings.Join(before, ", "), strings.Join(after, ", "))
}

func canonicalNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, m.TrimNamespace(name))
	}

	sort.Strings(out)

	return out
}

func compareMethods(d *diffContext, owner string, functions bool, before, after map[string]m.MethodDescriptor) {
	for _, name := range unionKeys(before, after) {
		b, inBefore := before[name]
		a, inAfter := after[name]
		label := methodLabel(owner, functions, name)

		switch {
		case !inAfter:
			d.membership("%s removed", label)
		case !inBefore:
			d.membership("%s added", label)
		default:
			compareMethod(d, label, b, a)
		}
	}
}

func methodLabel(owner string, functions bool, name string) string {
	if functions {
		return "function " + name + "()"
	}

	return owner + "::" + name + "()"
}

func compareMethod(d *diffContext, label string, b, a m.MethodDescriptor) {
	if !b.SignatureEquals(a) {
		compareReturnType(d, label, b.ReturnType, a.ReturnType)

		if b.Visibility != a.Visibility {
			d.signature("%s: %s", label, visibilityChange(b.Visibility, a.Visibility))
		}

		if flag, changed := toggled(b.IsAbstract, a.IsAbstract); changed {
			d.signature("%s: %s", label, flag.describe("made abstract", "no longer abstract"))
		}

		if flag, changed := toggled(b.IsFinal, a.IsFinal); changed {
			d.signature("%s: %s", label, flag.describe("made final", "no longer final"))
		}

		if flag, changed := toggled(b.IsStatic, a.IsStatic); changed {
			d.signature("%s: %s", label, flag.describe("made static", "no longer static"))
		}

		if flag, changed := toggled(b.ReturnsRef, a.ReturnsRef); changed {
			d.signature("%s: %s", label, flag.describe("now returns by reference", "no longer returns by reference"))
		}

		compareParams(d, label, b.Params, a.Params)

		if strings.EqualFold(a.Name, constructorName) {
			d.signature("%s: constructor changed", label)
		}
	}

	if !b.BodyEquals(a) {
		d.body("%s: body changed", label)
	}

	if b.AttributeHash != a.AttributeHash {
		d.body("%s: attributes changed", label)
	}
}

func compareReturnType(d *diffContext, label, before, after string) {
	switch {
	case m.SameType(before, after):
	case before == "":
		d.signature("%s: return type added (%s)", label, after)
	case after == "":
		d.signature("%s: return type removed (was %s)", label, before)
	default:
		d.signature("%s: return type changed from %s to %s", label, before, after)
	}
}

func compareParams(d *diffContext, label string, before, after []m.Parameter) {
	count := len(before)
	if len(after) > count {
		count = len(after)
	}

	for i := 0; i < count; i++ {
		position := i + 1

		if i >= len(before) {
			p := after[i]

			kind := "required"
			if p.HasDefault || p.IsVariadic {
				kind = "optional"
			}

			d.signature("%s: parameter #%d ($%s) added (%s)", label, position, p.Name, kind)

			continue
		}

		if i >= len(after) {
			d.signature("%s: parameter #%d ($%s) removed", label, position, before[i].Name)
			continue
		}

		b, a := before[i], after[i]
		param := fmt.Sprintf("%s: parameter #%d ($%s)", label, position, a.Name)

		if !m.SameType(b.Type, a.Type) {
			d.signature("%s type changed from %s to %s", param, typeLabel(b.Type), typeLabel(a.Type))
		}

		if b.Name != a.Name {
			d.signature("%s: parameter #%d renamed from $%s to $%s", label, position, b.Name, a.Name)
		}

		if flag, changed := toggled(b.IsVariadic, a.IsVariadic); changed {
			d.signature("%s %s", param, flag.describe("made variadic", "no longer variadic"))
		}

		if flag, changed := toggled(b.IsByRef, a.IsByRef); changed {
			d.signature("%s %s", param, flag.describe("now passed by reference", "no longer passed by reference"))
		}

		if flag, changed := toggled(b.HasDefault, a.HasDefault); changed {
			d.signature("%s %s", param, flag.describe("now optional", "now required"))
		}
	}
}

func compareProperties(d *diffContext, typeName string, before, after map[string]m.PropertyDescriptor) {
	for _, name := range unionKeys(before, after) {
		b, inBefore := before[name]
		a, inAfter := after[name]
		label := typeName + "::$" + name

		switch {
		case !inAfter:
			d.membership("%s removed", label)
			continue
		case !inBefore:
			d.membership("%s added", label)
			continue
		}

		if !m.SameType(b.Type, a.Type) {
			d.signature("%s: type changed from %s to %s", label, typeLabel(b.Type), typeLabel(a.Type))
		}

		if b.Visibility != a.Visibility {
			d.signature("%s: %s", label, visibilityChange(b.Visibility, a.Visibility))
		}

		if flag, changed := toggled(b.IsReadonly, a.IsReadonly); changed {
			d.signature("%s: %s", label, flag.describe("made readonly", "no longer readonly"))
		}

		if flag, changed := toggled(b.IsStatic, a.IsStatic); changed {
			d.signature("%s: %s", label, flag.describe("made static", "no longer static"))
		}

		if !b.ValueEquals(a) {
			d.body("%s: %s", label, valueChange("default value", b.Default, a.Default))
		}

		if b.AttributeHash != a.AttributeHash {
			d.body("%s: attributes changed", label)
		}
	}
}

// compareConstants folds constant changes into the shared signature and
// body flags; constants have no dedicated flag.
func compareConstants(d *diffContext, typeName string, before, after map[string]m.ConstantDescriptor) {
	for _, name := range unionKeys(before, after) {
		b, inBefore := before[name]
		a, inAfter := after[name]

		label := typeName + "::" + name
		if a.IsEnumCase || b.IsEnumCase {
			label = "case " + label
		}

		switch {
		case !inAfter:
			d.membership("%s removed", label)
			continue
		case !inBefore:
			d.membership("%s added", label)
			continue
		}

		if flag, changed := toggled(b.IsFinal, a.IsFinal); changed {
			d.signature("%s: %s", label, flag.describe("made final", "no longer final"))
		}

		if !m.SameType(b.Type, a.Type) {
			d.signature("%s: type changed from %s to %s", label, typeLabel(b.Type), typeLabel(a.Type))
		}

		if b.Visibility != a.Visibility {
			d.signature("%s: %s", label, visibilityChange(b.Visibility, a.Visibility))
		}

		if !b.ValueEquals(a) {
			d.body("%s: %s", label, valueChange("value", b.Value, a.Value))
		}
	}
}

func visibilityChange(before, after m.Visibility) string {
	direction := "tightened"
	if after > before {
		direction = "loosened"
	}

	return fmt.Sprintf("visibility %s from %s to %s", direction, before, after)
}

func valueChange(what string, before, after m.BodyDigest) string {
	switch {
	case !before.HasBody():
		return what + " added"
	case !after.HasBody():
		return what + " removed"
	default:
		return what + " changed"
	}
}

func typeLabel(t string) string {
	if t == "" {
		return "none"
	}

	return t
}

// toggle records the direction of a boolean facet change.
type toggle bool

func toggled(before, after bool) (toggle, bool) {
	return toggle(after), before != after
}

func (t toggle) describe(on, off string) string {
	if t {
		return on
	}

	return off
}

// repeatedNames returns the short type names declared more than once on
// either side. Those types are matched by fully qualified name instead.
func repeatedNames(before, after []m.TypeDescriptor) map[string]bool {
	repeated := map[string]bool{}

	for _, side := range [][]m.TypeDescriptor{before, after} {
		seen := make(map[string]bool, len(side))
		for _, desc := range side {
			if seen[desc.Name] {
				repeated[desc.Name] = true
			}

			seen[desc.Name] = true
		}
	}

	return repeated
}

// indexTypes keys each type by its short name, or by its fully qualified name
// when the short name is in qualified.
func indexTypes(types []m.TypeDescriptor, qualified map[string]bool) map[string]m.TypeDescriptor {
	index := make(map[string]m.TypeDescriptor, len(types))
	for _, desc := range types {
		key := desc.Name
		if qualified[desc.Name] {
			key = desc.FQN()
		}

		if _, ok := index[key]; !ok {
			index[key] = desc
		}
	}

	return index
}

func unionKeys[V any](before, after map[string]V) []string {
	keys := make([]string, 0, len(before)+len(after))

	for key := range before {
		keys = append(keys, key)
	}

	for key := range after {
		if _, ok := before[key]; !ok {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	return keys
}
