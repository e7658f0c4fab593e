package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"semaudit.dev/pkg/semaudit/internal/domain"
	m "semaudit.dev/pkg/semaudit/internal/model"
)

func TestCompareCmd_PassesArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantDiff bool
	}{
		{"plain", []string{"compare", "a.php", "b.php"}, false},
		{"with diff", []string{"compare", "--diff", "a.php", "b.php"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := useMockWorkflow(t)
			cmd, _ := newTestRootCmd(newCompareCmd())

			mockWorkflow.EXPECT().Compare(mock.Anything, domain.CompareArgs{
				Before: m.Path("a.php"),
				After:  m.Path("b.php"),
				Diff:   tt.wantDiff,
			}).Return(nil)

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestCompareCmd_Fixture(t *testing.T) {
	isolateLogs(t)

	cmd, out := newTestRootCmd(newCompareCmd())
	cmd.SetArgs([]string{
		"compare", "--diff",
		filepath.Join(shopBefore, "src", "Invoice.php"),
		filepath.Join(shopAfter, "src", "Invoice.php"),
	})
	require.NoError(t, cmd.Execute())

	output := out.String()
	assert.Contains(t, output, "Invoice.php: signature")
	assert.Contains(t, output, "  - Invoice::total(): return type added (int)")
	assert.Contains(t, output, "+    public function total(): int")
}

func TestCompareCmd_MissingFile(t *testing.T) {
	isolateLogs(t)

	cmd, _ := newTestRootCmd(newCompareCmd())
	cmd.SetArgs([]string{"compare", filepath.Join(t.TempDir(), "missing.php"), filepath.Join(shopAfter, "src", "Tax.php")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.php")
}
