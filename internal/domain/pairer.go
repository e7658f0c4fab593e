package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"semaudit.dev/pkg/semaudit/internal/adapter"
	m "semaudit.dev/pkg/semaudit/internal/model"
)

// sniffLimit bounds how much of a file is read to find its namespace and
// first type. Declarations past this point are not indexed.
const sniffLimit = 8 * 1024

var skippedDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
}

// PairingOptions tunes which files a FilePairer considers.
type PairingOptions struct {
	// Exclude holds doublestar globs matched against slash-separated paths
	// relative to each root.
	Exclude []string
	// Extensions lists accepted file extensions. Empty means ".php".
	Extensions []string
}

// FilePairer matches the files of two directory trees.
type FilePairer interface {
	// Collect pairs files by relative path and detects moves among the rest.
	// A missing root is an error; unreadable files are logged and left unmatched.
	Collect(ctx context.Context, beforeDir, afterDir m.Path) (m.PairingResult, error)
}

type filePairer struct {
	fs         adapter.SourceFSAdapter
	php        adapter.PHPFileAdapter
	exclude    []string
	extensions map[string]bool
}

// NewFilePairer creates a FilePairer scanning through fs. Each file's
// namespace and first type are read from a parse of its leading bytes.
func NewFilePairer(fs adapter.SourceFSAdapter, php adapter.PHPFileAdapter, opts PairingOptions) FilePairer {
	extensions := map[string]bool{}
	for _, ext := range opts.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		extensions[ext] = true
	}

	if len(extensions) == 0 {
		extensions[".php"] = true
	}

	return &filePairer{fs: fs, php: php, exclude: opts.Exclude, extensions: extensions}
}

// scannedTree is one side of a pairing: files keyed by relative path plus the
// FQN sniffed from each.
type scannedTree struct {
	root  m.Path
	files map[string]m.Path
	fqns  map[string]string
	index m.PathIndex
}

func (p *filePairer) Collect(ctx context.Context, beforeDir, afterDir m.Path) (m.PairingResult, error) {
	before, err := p.scan(ctx, beforeDir)
	if err != nil {
		return m.PairingResult{}, err
	}

	after, err := p.scan(ctx, afterDir)
	if err != nil {
		return m.PairingResult{}, err
	}

	result := m.PairingResult{
		BeforeRoot:  beforeDir,
		AfterRoot:   afterDir,
		BeforeIndex: before.index,
		AfterIndex:  after.index,
	}

	removed := map[string]bool{}

	for rel, beforePath := range before.files {
		afterPath, ok := after.files[rel]
		if !ok {
			removed[rel] = true
			continue
		}

		result.Paired = append(result.Paired, m.FilePair{Rel: rel, Before: beforePath, After: afterPath})
	}

	added := map[string]bool{}

	for rel := range after.files {
		if _, ok := before.files[rel]; !ok {
			added[rel] = true
		}
	}

	result.Moved = append(result.Moved, matchUnique(removed, added, path.Base, path.Base)...)
	result.Moved = append(result.Moved, matchUnique(removed, added,
		func(rel string) string { return before.fqns[rel] },
		func(rel string) string { return after.fqns[rel] },
	)...)

	result.Added = sortedKeys(added)
	result.Removed = sortedKeys(removed)

	sort.Slice(result.Paired, func(i, j int) bool { return result.Paired[i].Rel < result.Paired[j].Rel })
	sort.Slice(result.Moved, func(i, j int) bool { return result.Moved[i].From < result.Moved[j].From })

	slog.Info("Paired source trees",
		"before", beforeDir, "after", afterDir,
		"paired", len(result.Paired), "moved", len(result.Moved),
		"added", len(result.Added), "removed", len(result.Removed))

	return result, nil
}

// matchUnique pairs removed and added files whose key is unique on both
// sides and drops them from the pools. Empty keys never match.
func matchUnique(removed, added map[string]bool, removedKey, addedKey func(string) string) []m.Move {
	removedByKey := groupBy(removed, removedKey)
	addedByKey := groupBy(added, addedKey)

	var moves []m.Move

	for key, from := range removedByKey {
		to, ok := addedByKey[key]
		if !ok {
			continue
		}

		if len(from) != 1 || len(to) != 1 {
			slog.Debug("Leaving ambiguous move unresolved", "key", key, "candidates_before", len(from), "candidates_after", len(to))
			continue
		}

		moves = append(moves, m.Move{From: from[0], To: to[0]})
		delete(removed, from[0])
		delete(added, to[0])
	}

	return moves
}

func groupBy(rels map[string]bool, key func(string) string) map[string][]string {
	groups := map[string][]string{}

	for rel := range rels {
		k := key(rel)
		if k == "" {
			continue
		}

		groups[k] = append(groups[k], rel)
	}

	return groups
}

func (p *filePairer) scan(ctx context.Context, root m.Path) (*scannedTree, error) {
	info, err := p.fs.FileInfo(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	tree := &scannedTree{
		root:  root,
		files: map[string]m.Path{},
		fqns:  map[string]string{},
		index: m.PathIndex{},
	}

	err = p.fs.Walk(root, true, func(current string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			slog.Warn("Skipping unreadable path", "path", current, "error", err)
			return nil
		}

		rel, err := p.fs.RelPath(root, m.Path(current))
		if err != nil || rel == "." {
			return nil
		}

		if info.IsDir() {
			if skippedDirs[info.Name()] || p.excluded(rel) {
				return filepath.SkipDir
			}

			return nil
		}

		if !p.extensions[strings.ToLower(filepath.Ext(current))] || p.excluded(rel) {
			return nil
		}

		tree.files[rel] = m.Path(current)
		p.index(ctx, tree, rel, m.Path(current))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return tree, nil
}

func (p *filePairer) index(ctx context.Context, tree *scannedTree, rel string, file m.Path) {
	prefix, err := p.fs.ReadPrefix(file, sniffLimit)
	if err != nil {
		slog.Warn("Failed to read file", "path", file, "error", err)
		return
	}

	fqn := SniffFQN(ctx, p.php, prefix)
	if fqn == "" {
		return
	}

	tree.fqns[rel] = fqn
	tree.index.Put(fqn, file)
}

func (p *filePairer) excluded(rel string) bool {
	for _, pattern := range p.exclude {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			slog.Warn("Invalid exclude pattern", "pattern", pattern, "error", err)
			continue
		}

		if matched {
			return true
		}
	}

	return false
}

// SniffFQN returns the fully qualified name of the first type declared in
// src, or "" when none is found. src may be a truncated prefix: the syntax
// errors this causes are tolerated.
func SniffFQN(ctx context.Context, php adapter.PHPFileAdapter, src []byte) string {
	file, err := php.Parse(ctx, src)
	if err != nil {
		slog.Debug("Failed to parse file prefix", "error", err)
		return ""
	}

	namespace := ""

	return sniffType(file.Root, &namespace)
}

// sniffType walks statements in source order. A statement-form namespace
// applies to the declarations after it; a block namespace only to its body.
func sniffType(node *m.Node, namespace *string) string {
	if node == nil {
		return ""
	}

	for _, child := range node.Children {
		switch child.Kind {
		case "namespace_definition":
			name := ""
			if nameNode := child.ChildOfKind("namespace_name"); nameNode != nil {
				name = m.TrimNamespace(nameNode.Flatten())
			}

			if body := child.ChildOfKind("compound_statement"); body != nil {
				if fqn := sniffType(body, &name); fqn != "" {
					return fqn
				}

				continue
			}

			*namespace = name
		case "function_definition", "method_declaration", "anonymous_function", "anonymous_function_creation_expression", "arrow_function":
			continue
		default:
			if _, ok := typeDeclarationKinds[child.Kind]; ok {
				if name := nameOf(child); name != "" {
					return qualify(*namespace, name)
				}

				continue
			}

			if child.IsLeaf() {
				continue
			}

			if fqn := sniffType(child, namespace); fqn != "" {
				return fqn
			}
		}
	}

	return ""
}

func qualify(namespace, name string) string {
	if namespace == "" {
		return name
	}

	return namespace + `\` + name
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
