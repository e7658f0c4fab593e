package domain

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/sourcegraph/go-diff/diff"

	"semaudit.dev/pkg/semaudit/internal/adapter"
	m "semaudit.dev/pkg/semaudit/internal/model"
)

// DivergenceAnalyzer locates where a downstream copy of a file forked from
// its upstream history. Every query degrades to an empty result when git or
// the repository is unavailable; failures are logged, never returned.
type DivergenceAnalyzer interface {
	// FindDivergence returns the newest downstream commit whose content also
	// exists upstream and the downstream commits after it, oldest first.
	FindDivergence(ctx context.Context, upstream, downstream m.Path) m.Divergence

	// CommitContents returns the file content at each revision.
	CommitContents(ctx context.Context, file m.Path, revs []string) map[string][]byte

	// CommitDiff returns the change rev applied to file.
	CommitDiff(ctx context.Context, file m.Path, rev string) m.Patch

	// CommitDiffs is CommitDiff for several revisions in one git call.
	CommitDiffs(ctx context.Context, file m.Path, revs []string) map[string]m.Patch

	// UncommittedDiff returns the work tree changes to file.
	UncommittedDiff(ctx context.Context, file m.Path) m.Patch

	// RepoRoot returns the work tree root containing path.
	RepoRoot(ctx context.Context, path m.Path) (m.Path, bool)

	// RelativePath returns path relative to its work tree root.
	RelativePath(ctx context.Context, path m.Path) (string, bool)
}

type divergenceAnalyzer struct {
	git adapter.GitAdapter
	fs  adapter.SourceFSAdapter
}

// NewDivergenceAnalyzer creates a DivergenceAnalyzer over the given adapters.
func NewDivergenceAnalyzer(git adapter.GitAdapter, fs adapter.SourceFSAdapter) DivergenceAnalyzer {
	return &divergenceAnalyzer{git: git, fs: fs}
}

func (a *divergenceAnalyzer) RepoRoot(ctx context.Context, path m.Path) (m.Path, bool) {
	root, err := a.git.RepoRoot(ctx, path)
	if err != nil {
		slog.Warn("Failed to find repository", "path", path, "error", err)
		return "", false
	}

	return root, true
}

func (a *divergenceAnalyzer) RelativePath(ctx context.Context, path m.Path) (string, bool) {
	_, rel, ok := a.locate(ctx, path)
	return rel, ok
}

// locate resolves the work tree root and root-relative path of a file.
func (a *divergenceAnalyzer) locate(ctx context.Context, path m.Path) (m.Path, string, bool) {
	root, ok := a.RepoRoot(ctx, path)
	if !ok {
		return "", "", false
	}

	rel, err := a.fs.RelPath(resolved(root), resolved(path))
	if err != nil || rel == "." || strings.HasPrefix(rel, "../") || rel == ".." {
		slog.Warn("File is outside its repository", "path", path, "root", root)
		return "", "", false
	}

	return root, rel, true
}

// resolved returns the absolute, symlink-free form of path when it exists.
func resolved(path m.Path) m.Path {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return path
	}

	if target, err := filepath.EvalSymlinks(abs); err == nil {
		return m.Path(target)
	}

	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		return m.Path(filepath.Join(dir, filepath.Base(abs)))
	}

	return m.Path(abs)
}

func (a *divergenceAnalyzer) FindDivergence(ctx context.Context, upstream, downstream m.Path) m.Divergence {
	known := a.upstreamChecksums(ctx, upstream)

	root, rel, ok := a.locate(ctx, downstream)
	if !ok {
		return m.Divergence{}
	}

	history, err := a.git.History(ctx, root, rel)
	if err != nil {
		slog.Error("Failed to read history", "path", downstream, "error", err)
		return m.Divergence{}
	}

	contents := a.contents(ctx, root, rel, hashes(history))

	for i := len(history) - 1; i >= 0; i-- {
		content, ok := contents[history[i].Hash]
		if !ok || !known[adapter.Fingerprint(content)] {
			continue
		}

		common := history[i]

		slog.Info("Found fork point", "path", downstream, "commit", common.ShortHash, "downstream_commits", len(history)-i-1)

		return m.Divergence{Common: &common, Commits: history[i+1:]}
	}

	slog.Info("No shared content with upstream", "upstream", upstream, "downstream", downstream)

	return m.Divergence{Commits: history}
}

// upstreamChecksums hashes every committed upstream version of the file plus
// the version on disk.
func (a *divergenceAnalyzer) upstreamChecksums(ctx context.Context, upstream m.Path) map[string]bool {
	known := map[string]bool{}

	if sum, err := a.fs.HashFile(upstream); err == nil {
		known[sum] = true
	} else {
		slog.Debug("Upstream file not on disk", "path", upstream, "error", err)
	}

	root, rel, ok := a.locate(ctx, upstream)
	if !ok {
		return known
	}

	history, err := a.git.History(ctx, root, rel)
	if err != nil {
		slog.Error("Failed to read history", "path", upstream, "error", err)
		return known
	}

	for _, content := range a.contents(ctx, root, rel, hashes(history)) {
		known[adapter.Fingerprint(content)] = true
	}

	return known
}

func (a *divergenceAnalyzer) CommitContents(ctx context.Context, file m.Path, revs []string) map[string][]byte {
	root, rel, ok := a.locate(ctx, file)
	if !ok {
		return map[string][]byte{}
	}

	return a.contents(ctx, root, rel, revs)
}

func (a *divergenceAnalyzer) contents(ctx context.Context, root m.Path, rel string, revs []string) map[string][]byte {
	contents, err := a.git.Contents(ctx, root, rel, revs)
	if err != nil {
		slog.Error("Failed to read file contents", "path", rel, "root", root, "error", err)
		return map[string][]byte{}
	}

	return contents
}

func (a *divergenceAnalyzer) CommitDiff(ctx context.Context, file m.Path, rev string) m.Patch {
	if patch, ok := a.CommitDiffs(ctx, file, []string{rev})[rev]; ok {
		return patch
	}

	return m.Patch{Commit: rev}
}

func (a *divergenceAnalyzer) CommitDiffs(ctx context.Context, file m.Path, revs []string) map[string]m.Patch {
	patches := make(map[string]m.Patch, len(revs))

	root, rel, ok := a.locate(ctx, file)
	if !ok || len(revs) == 0 {
		return patches
	}

	texts, err := a.git.CommitDiffs(ctx, root, rel, revs)
	if err != nil {
		slog.Error("Failed to read commit diffs", "path", file, "error", err)
		return patches
	}

	for _, rev := range revs {
		if text, ok := texts[rev]; ok {
			patches[rev] = ParsePatch(rev, text)
		}
	}

	return patches
}

func (a *divergenceAnalyzer) UncommittedDiff(ctx context.Context, file m.Path) m.Patch {
	root, rel, ok := a.locate(ctx, file)
	if !ok {
		return m.Patch{}
	}

	text, err := a.git.WorktreeDiff(ctx, root, rel)
	if err != nil {
		slog.Error("Failed to read uncommitted diff", "path", file, "error", err)
		return m.Patch{}
	}

	return ParsePatch("", text)
}

// ParsePatch reads unified diff text into a Patch with its line counts. Text
// that does not parse keeps its raw form with zero counts.
func ParsePatch(commit, text string) m.Patch {
	patch := m.Patch{Commit: commit, Text: text}
	if strings.TrimSpace(text) == "" {
		return patch
	}

	fileDiffs, err := diff.NewMultiFileDiffReader(strings.NewReader(text)).ReadAllFiles()
	if err != nil {
		slog.Warn("Failed to parse diff", "commit", commit, "error", err)
		return patch
	}

	patch.Files = len(fileDiffs)

	for _, fd := range fileDiffs {
		patch.Hunks += len(fd.Hunks)

		for _, hunk := range fd.Hunks {
			for _, line := range strings.Split(string(hunk.Body), "\n") {
				switch {
				case strings.HasPrefix(line, "+"):
					patch.Added++
				case strings.HasPrefix(line, "-"):
					patch.Deleted++
				}
			}
		}
	}

	return patch
}

func hashes(commits []m.CommitRecord) []string {
	out := make([]string, 0, len(commits))
	for _, commit := range commits {
		out = append(out, commit.Hash)
	}

	return out
}
