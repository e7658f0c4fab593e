package model

import "time"

// CommitRecord is one commit touching a file.
type CommitRecord struct {
	Hash      string    `json:"hash" yaml:"hash"`
	ShortHash string    `json:"shortHash" yaml:"short_hash"`
	Author    string    `json:"author" yaml:"author"`
	Email     string    `json:"email" yaml:"email"`
	Date      time.Time `json:"date" yaml:"date"`
	Message   string    `json:"message" yaml:"message"`
}

// Divergence is the fork point of a downstream file history and the
// downstream commits after it, oldest first. Common is nil when the
// histories share no content.
type Divergence struct {
	Common  *CommitRecord  `json:"common,omitempty" yaml:"common,omitempty"`
	Commits []CommitRecord `json:"commits" yaml:"commits"`
}

// Patch is a unified diff for one file together with its line counts.
type Patch struct {
	Commit  string `json:"commit,omitempty" yaml:"commit,omitempty"`
	Text    string `json:"-" yaml:"-"`
	Files   int    `json:"files" yaml:"files"`
	Hunks   int    `json:"hunks" yaml:"hunks"`
	Added   int    `json:"added" yaml:"added"`
	Deleted int    `json:"deleted" yaml:"deleted"`
}

// Empty reports whether the patch carries no changes.
func (p Patch) Empty() bool {
	return p.Hunks == 0
}

// DivergenceReport is the downstream-only history of a file, each commit
// optionally classified and carrying its patch.
type DivergenceReport struct {
	Upstream    Path          `json:"upstream" yaml:"upstream"`
	Downstream  Path          `json:"downstream" yaml:"downstream"`
	Common      *CommitRecord `json:"common,omitempty" yaml:"common,omitempty"`
	Commits     []CommitAudit `json:"commits" yaml:"commits"`
	Uncommitted *Patch        `json:"uncommitted,omitempty" yaml:"uncommitted,omitempty"`
}
