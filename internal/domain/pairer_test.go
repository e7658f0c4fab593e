package domain

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semaudit.dev/pkg/semaudit/internal/adapter"
	m "semaudit.dev/pkg/semaudit/internal/model"
)

func collect(t *testing.T, opts PairingOptions, before, after string) m.PairingResult {
	t.Helper()

	result, err := NewFilePairer(adapter.NewLocalSourceFSAdapter(), adapter.NewLocalPHPFileAdapter(), opts).Collect(context.Background(), m.Path(before), m.Path(after))
	require.NoError(t, err)

	return result
}

func TestFilePairer_PairsByRelativePath(t *testing.T) {
	before := t.TempDir()
	after := t.TempDir()

	writeFile(t, filepath.Join(before, "b.php"), "<?php\n")
	writeFile(t, filepath.Join(before, "a", "x.php"), "<?php\n")
	writeFile(t, filepath.Join(after, "b.php"), "<?php\n")
	writeFile(t, filepath.Join(after, "a", "x.php"), "<?php\n")
	writeFile(t, filepath.Join(after, "readme.md"), "docs\n")

	result := collect(t, PairingOptions{}, before, after)

	require.Len(t, result.Paired, 2)
	assert.Equal(t, "a/x.php", result.Paired[0].Rel)
	assert.Equal(t, m.Path(filepath.Join(before, "a", "x.php")), result.Paired[0].Before)
	assert.Equal(t, m.Path(filepath.Join(after, "a", "x.php")), result.Paired[0].After)
	assert.Equal(t, "b.php", result.Paired[1].Rel)
	assert.Empty(t, result.Added)
	assert.Empty(t, result.Removed)
	assert.Empty(t, result.Moved)
}

func TestFilePairer_UniqueBasenameMove(t *testing.T) {
	before := t.TempDir()
	after := t.TempDir()

	writeFile(t, filepath.Join(before, "old", "Invoice.php"), "<?php\nclass Invoice {}\n")
	writeFile(t, filepath.Join(after, "new", "Invoice.php"), "<?php\nclass Invoice {}\n")

	result := collect(t, PairingOptions{}, before, after)

	assert.Equal(t, []m.Move{{From: "old/Invoice.php", To: "new/Invoice.php"}}, result.Moved)
	assert.Empty(t, result.Added)
	assert.Empty(t, result.Removed)
}

func TestFilePairer_AmbiguousBasenameStaysUnmatched(t *testing.T) {
	before := t.TempDir()
	after := t.TempDir()

	writeFile(t, filepath.Join(before, "a", "Helper.php"), "<?php\n")
	writeFile(t, filepath.Join(before, "b", "Helper.php"), "<?php\n")
	writeFile(t, filepath.Join(after, "c", "Helper.php"), "<?php\n")

	result := collect(t, PairingOptions{}, before, after)

	assert.Empty(t, result.Moved)
	assert.Equal(t, []string{"c/Helper.php"}, result.Added)
	assert.Equal(t, []string{"a/Helper.php", "b/Helper.php"}, result.Removed)
}

func TestFilePairer_FQNMove(t *testing.T) {
	before := t.TempDir()
	after := t.TempDir()

	writeFile(t, filepath.Join(before, "src", "user_service.php"), "<?php\nnamespace App\\Service;\n\nfinal class UserService {}\n")
	writeFile(t, filepath.Join(after, "src", "Service", "UserService.php"), "<?php\nnamespace App\\Service;\n\nfinal class UserService\n{\n}\n")

	// Same basename twice on the after side blocks pass one; the FQN still matches.
	writeFile(t, filepath.Join(before, "legacy", "Repo.php"), "<?php\nnamespace Legacy;\ninterface Repo {}\n")
	writeFile(t, filepath.Join(after, "x", "Repo.php"), "<?php\nnamespace Legacy;\ninterface Repo {}\n")
	writeFile(t, filepath.Join(after, "y", "Repo.php"), "<?php\nnamespace Other;\ninterface Repo {}\n")

	result := collect(t, PairingOptions{}, before, after)

	assert.Equal(t, []m.Move{
		{From: "legacy/Repo.php", To: "x/Repo.php"},
		{From: "src/user_service.php", To: "src/Service/UserService.php"},
	}, result.Moved)
	assert.Equal(t, []string{"y/Repo.php"}, result.Added)
	assert.Empty(t, result.Removed)

	path, ok := result.AfterIndex.Lookup(`\App\Service\UserService`)
	require.True(t, ok)
	assert.Equal(t, m.Path(filepath.Join(after, "src", "Service", "UserService.php")), path)

	_, ok = result.BeforeIndex.Lookup(`Other\Repo`)
	assert.False(t, ok)
}

func TestFilePairer_AmbiguousFQNStaysUnmatched(t *testing.T) {
	before := t.TempDir()
	after := t.TempDir()

	writeFile(t, filepath.Join(before, "one.php"), "<?php\nnamespace App;\nclass Dup {}\n")
	writeFile(t, filepath.Join(after, "two.php"), "<?php\nnamespace App;\nclass Dup {}\n")
	writeFile(t, filepath.Join(after, "three.php"), "<?php\nnamespace App;\nclass Dup {}\n")

	result := collect(t, PairingOptions{}, before, after)

	assert.Empty(t, result.Moved)
	assert.Equal(t, []string{"three.php", "two.php"}, result.Added)
	assert.Equal(t, []string{"one.php"}, result.Removed)
}

func TestFilePairer_SkipsVendoredAndExcluded(t *testing.T) {
	before := t.TempDir()
	after := t.TempDir()

	for _, root := range []string{before, after} {
		writeFile(t, filepath.Join(root, "src", "App.php"), "<?php\nclass App {}\n")
		writeFile(t, filepath.Join(root, "vendor", "lib", "Lib.php"), "<?php\nclass Lib {}\n")
		writeFile(t, filepath.Join(root, "node_modules", "pkg", "x.php"), "<?php\n")
		writeFile(t, filepath.Join(root, "cache", "compiled.php"), "<?php\n")
		writeFile(t, filepath.Join(root, "src", "App.inc"), "<?php\n")
	}

	t.Run("defaults", func(t *testing.T) {
		result := collect(t, PairingOptions{Exclude: []string{"cache/**"}}, before, after)

		require.Len(t, result.Paired, 1)
		assert.Equal(t, "src/App.php", result.Paired[0].Rel)

		_, ok := result.BeforeIndex.Lookup("Lib")
		assert.False(t, ok)
	})

	t.Run("extra extensions", func(t *testing.T) {
		result := collect(t, PairingOptions{Exclude: []string{"cache"}, Extensions: []string{"php", ".INC"}}, before, after)

		var rels []string
		for _, pair := range result.Paired {
			rels = append(rels, pair.Rel)
		}

		assert.Equal(t, []string{"src/App.inc", "src/App.php"}, rels)
	})
}

func TestFilePairer_MissingRoot(t *testing.T) {
	pairer := NewFilePairer(adapter.NewLocalSourceFSAdapter(), adapter.NewLocalPHPFileAdapter(), PairingOptions{})

	_, err := pairer.Collect(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing")), m.Path(t.TempDir()))
	require.Error(t, err)

	file := filepath.Join(t.TempDir(), "file.php")
	writeFile(t, file, "<?php\n")

	_, err = pairer.Collect(context.Background(), m.Path(t.TempDir()), m.Path(file))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestSniffFQN(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"global class", "<?php\nclass Plain {}\n", "Plain"},
		{"namespaced", "<?php\nnamespace App\\Model;\n\nabstract class User {}\n", `App\Model\User`},
		{"block namespace", "<?php\nnamespace App {\n    trait Greets {}\n}\n", `App\Greets`},
		{"enum", "<?php\nnamespace App;\nenum Suit: string {}\n", `App\Suit`},
		{"final", "<?php\nfinal class Money {}\n", "Money"},
		{"last namespace before type", "<?php\nnamespace A;\nfunction f() {}\nnamespace B;\nclass C {}\n", `B\C`},
		{"no type", "<?php\nfunction helper() {}\n", ""},
		{"anonymous class ignored", "<?php\n$x = new class {};\n", ""},
		{
			name: "declaration in comment",
			src:  "<?php\n/*\n  class Legacy was removed\n*/\nnamespace App\\Billing;\nclass Invoice {}\n",
			want: `App\Billing\Invoice`,
		},
		{
			name: "declaration in heredoc",
			src:  "<?php\nnamespace App;\n$doc = <<<EOT\nclass Foo\nEOT;\ninterface Bar {}\n",
			want: `App\Bar`,
		},
		{"attribute before class", "<?php\n#[Entity] class Invoice {}\n", "Invoice"},
	}

	php := adapter.NewLocalPHPFileAdapter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SniffFQN(context.Background(), php, []byte(tt.src)))
		})
	}
}
