package domain

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semaudit.dev/pkg/semaudit/internal/adapter"
	m "semaudit.dev/pkg/semaudit/internal/model"
)

// gitTree is a real work tree holding a single tracked file.
type gitTree struct {
	t    *testing.T
	root string
	rel  string
	repo *git.Repository
	when time.Time
}

func newGitTree(t *testing.T, rel string) *gitTree {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	root := t.TempDir()

	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)

	return &gitTree{t: t, root: root, rel: rel, repo: repo, when: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (g *gitTree) path() m.Path {
	return m.Path(filepath.Join(g.root, filepath.FromSlash(g.rel)))
}

func (g *gitTree) commit(content string) string {
	g.t.Helper()

	path := string(g.path())
	require.NoError(g.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(g.t, os.WriteFile(path, []byte(content), 0o644))

	worktree, err := g.repo.Worktree()
	require.NoError(g.t, err)

	_, err = worktree.Add(g.rel)
	require.NoError(g.t, err)

	return g.save(worktree, "update "+g.rel)
}

func (g *gitTree) remove() string {
	g.t.Helper()

	worktree, err := g.repo.Worktree()
	require.NoError(g.t, err)

	_, err = worktree.Remove(g.rel)
	require.NoError(g.t, err)

	return g.save(worktree, "remove "+g.rel)
}

func (g *gitTree) save(worktree *git.Worktree, message string) string {
	g.t.Helper()

	g.when = g.when.Add(time.Hour)

	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{Name: "Ada", Email: "ada@example.com", When: g.when},
	})
	require.NoError(g.t, err)

	return hash.String()
}

func TestDivergenceAnalyzer_GitHistoryWithDeletion(t *testing.T) {
	const rel = "src/My User.php"

	upstream := newGitTree(t, rel)
	upstream.commit(v1)
	upstream.commit(v2)

	downstream := newGitTree(t, rel)
	downstream.commit(v1)
	downstream.commit(v2)
	downstream.remove()
	restored := downstream.commit(v2)
	custom := downstream.commit(v2Custom)

	analyzer := NewDivergenceAnalyzer(adapter.NewLocalGitAdapter(), adapter.NewLocalSourceFSAdapter())

	got := analyzer.FindDivergence(context.Background(), upstream.path(), downstream.path())

	require.NotNil(t, got.Common)
	assert.Equal(t, restored, got.Common.Hash)
	assert.Equal(t, []string{custom}, hashes(got.Commits))
}
