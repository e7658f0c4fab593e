package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"

	m "semaudit.dev/pkg/semaudit/internal/model"
)

const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
	logFormat = "--format=%H%x1f%h%x1f%an%x1f%ae%x1f%aI%x1f%s%x1e"

	batchFormat = "--batch=%(objectname) %(objecttype) %(objectsize)"
)

// ErrNotRepository is returned when a path is not inside a git work tree.
var ErrNotRepository = errors.New("not a git repository")

// GitAdapter wraps the version-control queries the divergence analysis
// needs. Every call on a file takes the work tree root and a slash-separated
// path relative to it.
type GitAdapter interface {
	// RepoRoot returns the work tree root containing path.
	RepoRoot(ctx context.Context, path m.Path) (m.Path, error)

	// History lists the commits touching rel, oldest first.
	History(ctx context.Context, root m.Path, rel string) ([]m.CommitRecord, error)

	// Contents returns the content of rel at each revision in one batch.
	// Revisions where the file does not exist are absent from the result.
	Contents(ctx context.Context, root m.Path, rel string, revs []string) (map[string][]byte, error)

	// CommitDiffs returns the unified diff each revision applied to rel, in one call.
	CommitDiffs(ctx context.Context, root m.Path, rel string, revs []string) (map[string]string, error)

	// WorktreeDiff returns the uncommitted changes to rel.
	WorktreeDiff(ctx context.Context, root m.Path, rel string) (string, error)
}

// LocalGitAdapter runs the git binary for history queries and go-git for
// repository discovery.
type LocalGitAdapter struct {
	binary string
}

// NewLocalGitAdapter constructs a LocalGitAdapter using git from PATH.
func NewLocalGitAdapter() *LocalGitAdapter {
	return &LocalGitAdapter{binary: "git"}
}

// RepoRoot walks up from path until it finds a .git directory.
func (a *LocalGitAdapter) RepoRoot(_ context.Context, path m.Path) (m.Path, error) {
	dir, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", fmt.Errorf("%w: %s", ErrNotRepository, path)
		}

		return "", fmt.Errorf("failed to open repository at %s: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("%w: %s has no work tree", ErrNotRepository, path)
	}

	return m.Path(worktree.Filesystem.Root()), nil
}

// History lists the commits touching rel, oldest first.
func (a *LocalGitAdapter) History(ctx context.Context, root m.Path, rel string) ([]m.CommitRecord, error) {
	out, err := a.run(ctx, root, nil, "log", logFormat, "--", rel)
	if err != nil {
		return nil, err
	}

	var commits []m.CommitRecord

	for _, record := range strings.Split(string(out), recordSep) {
		record = strings.TrimSpace(record)
		if record == "" {
			continue
		}

		commit, err := parseCommitRecord(record)
		if err != nil {
			return nil, err
		}

		commits = append(commits, commit)
	}

	// git log lists newest first.
	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}

	return commits, nil
}

func parseCommitRecord(record string) (m.CommitRecord, error) {
	fields := strings.SplitN(record, fieldSep, 6)
	if len(fields) != 6 {
		return m.CommitRecord{}, fmt.Errorf("unexpected git log record %q", record)
	}

	date, err := time.Parse(time.RFC3339, fields[4])
	if err != nil {
		return m.CommitRecord{}, fmt.Errorf("invalid commit date %q: %w", fields[4], err)
	}

	return m.CommitRecord{
		Hash:      fields[0],
		ShortHash: fields[1],
		Author:    fields[2],
		Email:     fields[3],
		Date:      date,
		Message:   fields[5],
	}, nil
}

// Contents feeds every <rev>:<rel> object name to a single git cat-file --batch.
// Object names are echoed back only for missing objects, so rel may contain
// spaces.
func (a *LocalGitAdapter) Contents(ctx context.Context, root m.Path, rel string, revs []string) (map[string][]byte, error) {
	contents := make(map[string][]byte, len(revs))
	if len(revs) == 0 {
		return contents, nil
	}

	var stdin bytes.Buffer
	for _, rev := range revs {
		fmt.Fprintf(&stdin, "%s:%s\n", rev, rel)
	}

	out, err := a.run(ctx, root, &stdin, "cat-file", batchFormat)
	if err != nil {
		return nil, err
	}

	reader := bufio.NewReader(bytes.NewReader(out))

	for _, rev := range revs {
		header, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("truncated cat-file output at %s: %w", rev, err)
		}

		line := strings.TrimSuffix(header, "\n")
		if strings.HasSuffix(line, " missing") || strings.HasSuffix(line, " ambiguous") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("invalid cat-file header %q", line)
		}

		size, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("invalid cat-file header %q: %w", strings.TrimSpace(header), err)
		}

		body := make([]byte, size+1)
		if _, err := io.ReadFull(reader, body); err != nil {
			return nil, fmt.Errorf("truncated cat-file object %s: %w", rev, err)
		}

		if fields[1] == "blob" {
			contents[rev] = body[:size]
		}
	}

	return contents, nil
}

// CommitDiffs runs one git show over all revisions. Each commit's output is
// prefixed with a record separator and its hash so it can be split apart.
func (a *LocalGitAdapter) CommitDiffs(ctx context.Context, root m.Path, rel string, revs []string) (map[string]string, error) {
	diffs := make(map[string]string, len(revs))
	if len(revs) == 0 {
		return diffs, nil
	}

	args := []string{"show", "--no-color", "--diff-merges=first-parent", "--format=format:%x1e%H", "-p"}
	args = append(args, revs...)
	args = append(args, "--", rel)

	out, err := a.run(ctx, root, nil, args...)
	if err != nil {
		return nil, err
	}

	for _, record := range strings.Split(string(out), recordSep) {
		if strings.TrimSpace(record) == "" {
			continue
		}

		hash, text, _ := strings.Cut(record, "\n")
		diffs[strings.TrimSpace(hash)] = strings.TrimLeft(text, "\n")
	}

	// Callers may pass short hashes; map them back onto the full ones.
	for _, rev := range revs {
		if _, ok := diffs[rev]; ok {
			continue
		}

		for hash, text := range diffs {
			if strings.HasPrefix(hash, rev) {
				diffs[rev] = text
				break
			}
		}
	}

	return diffs, nil
}

// WorktreeDiff returns git diff output for rel against HEAD, so staged and
// unstaged edits are both included.
func (a *LocalGitAdapter) WorktreeDiff(ctx context.Context, root m.Path, rel string) (string, error) {
	out, err := a.run(ctx, root, nil, "diff", "--no-color", "HEAD", "--", rel)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

func (a *LocalGitAdapter) run(ctx context.Context, root m.Path, stdin io.Reader, args ...string) ([]byte, error) {
	// #nosec G204 - arguments are built from fixed flags, revisions and repo paths
	cmd := exec.CommandContext(ctx, a.binary, args...)
	cmd.Dir = string(root)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("git %s failed: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}
