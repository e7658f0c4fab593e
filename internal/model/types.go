package model

import (
	"sort"
	"strings"
)

// SameType compares two declared type strings ignoring leading namespace
// separators and the member order of union and intersection types.
func SameType(a, b string) bool {
	return CanonicalType(a) == CanonicalType(b)
}

// CanonicalType normalises a syntactic type string for comparison.
func CanonicalType(t string) string {
	t = strings.Join(strings.Fields(t), "")
	if t == "" {
		return ""
	}

	if strings.HasPrefix(t, "?") {
		return "?" + TrimNamespace(t[1:])
	}

	if strings.Contains(t, "|") {
		parts := splitTopLevel(t, '|')
		for i, part := range parts {
			if strings.HasPrefix(part, "(") && strings.HasSuffix(part, ")") {
				parts[i] = "(" + canonicalMembers(part[1:len(part)-1], '&') + ")"
				continue
			}

			parts[i] = TrimNamespace(part)
		}

		sort.Strings(parts)

		return strings.Join(parts, "|")
	}

	if strings.Contains(t, "&") {
		return canonicalMembers(t, '&')
	}

	return TrimNamespace(t)
}

// TrimNamespace drops a leading namespace separator from a name.
func TrimNamespace(name string) string {
	return strings.TrimLeft(name, `\`)
}

func canonicalMembers(t string, sep byte) string {
	parts := strings.Split(t, string(sep))
	for i, part := range parts {
		parts[i] = TrimNamespace(part)
	}

	sort.Strings(parts)

	return strings.Join(parts, string(sep))
}

func splitTopLevel(t string, sep byte) []string {
	var (
		parts []string
		depth int
		start int
	)

	for i := 0; i < len(t); i++ {
		switch t[i] {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, t[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, t[start:])
}
