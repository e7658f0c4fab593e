package model

// PathIndex maps a fully qualified type name to the absolute path declaring it.
// It is filled during one directory scan and read-only afterwards.
type PathIndex map[string]Path

// Put records fqn, replacing any earlier path.
func (i PathIndex) Put(fqn string, path Path) {
	i[fqn] = path
}

// Lookup returns the path declaring fqn.
func (i PathIndex) Lookup(fqn string) (Path, bool) {
	path, ok := i[TrimNamespace(fqn)]
	return path, ok
}

// FilePair links the same logical file on both sides.
type FilePair struct {
	Rel    string `json:"path" yaml:"path"`
	Before Path   `json:"before" yaml:"before"`
	After  Path   `json:"after" yaml:"after"`
}

// Move is a file that changed its relative path between the two trees.
type Move struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// PairingResult holds the outcome of matching two trees. Every list is sorted.
type PairingResult struct {
	BeforeRoot  Path       `json:"beforeRoot" yaml:"before_root"`
	AfterRoot   Path       `json:"afterRoot" yaml:"after_root"`
	Paired      []FilePair `json:"paired" yaml:"paired"`
	Added       []string   `json:"added" yaml:"added"`
	Removed     []string   `json:"removed" yaml:"removed"`
	Moved       []Move     `json:"moved" yaml:"moved"`
	BeforeIndex PathIndex  `json:"-" yaml:"-"`
	AfterIndex  PathIndex  `json:"-" yaml:"-"`
}
