package model

// FileAudit is the verdict for one compared file pair.
type FileAudit struct {
	Path     string           `json:"path" yaml:"path"`
	MovedTo  string           `json:"movedTo,omitempty" yaml:"moved_to,omitempty"`
	Category Category         `json:"category" yaml:"category"`
	Result   ComparisonResult `json:"result" yaml:"result"`
}

// AuditReport aggregates the audit of two trees.
type AuditReport struct {
	BeforeRoot Path        `json:"beforeRoot" yaml:"before_root"`
	AfterRoot  Path        `json:"afterRoot" yaml:"after_root"`
	Files      []FileAudit `json:"files" yaml:"files"`
	Added      []string    `json:"added" yaml:"added"`
	Removed    []string    `json:"removed" yaml:"removed"`
}

// Counts returns the number of audited files per category.
func (r AuditReport) Counts() map[Category]int {
	counts := map[Category]int{Cosmetic: 0, Signature: 0, Logic: 0}
	for _, file := range r.Files {
		counts[file.Category]++
	}

	return counts
}

// CommitAudit classifies the change a downstream commit made to a file.
// Category and Result are only meaningful when Classified is set.
type CommitAudit struct {
	Commit     CommitRecord     `json:"commit" yaml:"commit"`
	Classified bool             `json:"classified" yaml:"classified"`
	Category   Category         `json:"category" yaml:"category"`
	Result     ComparisonResult `json:"result" yaml:"result"`
	Patch      *Patch           `json:"patch,omitempty" yaml:"patch,omitempty"`
}
