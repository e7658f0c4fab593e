package domain

import m "semaudit.dev/pkg/semaudit/internal/model"

// Classify maps a comparison result to its category by fixed priority:
// any body, structure or membership change is Logic, then a signature
// change is Signature, and everything else is Cosmetic. A parse failure
// sets BodyChanged and therefore always classifies as Logic.
func Classify(result m.ComparisonResult) m.Category {
	switch {
	case result.BodyChanged, result.ClassStructureChanged, result.MembersAddedOrRemoved:
		return m.Logic
	case result.SignatureChanged:
		return m.Signature
	default:
		return m.Cosmetic
	}
}
