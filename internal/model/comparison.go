package model

import "fmt"

// Category is the audit verdict for one file pair.
type Category int

// Available Category values, in increasing order of review priority.
const (
	Cosmetic Category = iota
	Signature
	Logic
)

// String returns the stable identifier consumed by reports.
func (c Category) String() string {
	switch c {
	case Cosmetic:
		return "cosmetic"
	case Signature:
		return "signature"
	case Logic:
		return "logic"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ComparisonResult is the structural diff of one before/after file pair.
// The booleans are authoritative; Details is an evidence trail.
type ComparisonResult struct {
	ClassStructureChanged bool     `json:"classStructureChanged" yaml:"class_structure_changed"`
	SignatureChanged      bool     `json:"signatureChanged" yaml:"signature_changed"`
	BodyChanged           bool     `json:"bodyChanged" yaml:"body_changed"`
	MembersAddedOrRemoved bool     `json:"membersAddedOrRemoved" yaml:"members_added_or_removed"`
	Details               []string `json:"details,omitempty" yaml:"details,omitempty"`
	ParseErrors           []string `json:"parseErrors,omitempty" yaml:"parse_errors,omitempty"`
}

// Changed reports whether any of the four flags is set.
func (r ComparisonResult) Changed() bool {
	return r.ClassStructureChanged || r.SignatureChanged || r.BodyChanged || r.MembersAddedOrRemoved
}
