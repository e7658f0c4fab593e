package controller

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "semaudit.dev/pkg/semaudit/internal/model"
)

func newTestTUI(t *testing.T, options ...StartOption) (*TUI, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	tui := NewTUI(cmd)
	require.NoError(t, tui.Start(context.Background(), options...))

	return tui, &buf
}

func largeAuditReport(files int) m.AuditReport {
	report := m.AuditReport{BeforeRoot: "legacy", AfterRoot: "rewrite"}

	for i := 0; i < files; i++ {
		report.Files = append(report.Files, m.FileAudit{
			Path:     fmt.Sprintf("src/File%02d.php", i),
			Category: m.Logic,
			Result:   m.ComparisonResult{BodyChanged: true, Details: []string{"A::run(): body changed"}},
		})
	}

	return report
}

func TestTUI_DisplayAudit(t *testing.T) {
	tests := []struct {
		name           string
		showCosmetic   bool
		wantContains   []string
		wantNotContain []string
	}{
		{
			name: "cosmetic hidden",
			wantContains: []string{
				"legacy -> rewrite",
				"src/Invoice.php",
				"lib/User.php -> src/Model/User.php",
				"- Invoice::total(): return type added (int)",
				"! after: parse error: unexpected token",
				"src/Fresh.php",
				"src/Gone.php",
				"Files: 4",
				"cosmetic: 1",
				"signature: 1",
				"logic: 2",
			},
			wantNotContain: []string{"src/Format.php", "q: quit"},
		},
		{
			name:         "cosmetic shown",
			showCosmetic: true,
			wantContains: []string{"src/Format.php", "src/Invoice.php"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tui, buf := newTestTUI(t, WithShowCosmetic(tt.showCosmetic))

			require.NoError(t, tui.DisplayAudit(context.Background(), sampleAuditReport()))
			require.NoError(t, tui.Close(context.Background()))

			output := buf.String()
			for _, want := range tt.wantContains {
				assert.Contains(t, output, want)
			}

			for _, unwanted := range tt.wantNotContain {
				assert.NotContains(t, output, unwanted)
			}
		})
	}
}

func TestTUI_EmptyAudit(t *testing.T) {
	tui, buf := newTestTUI(t)

	require.NoError(t, tui.DisplayAudit(context.Background(), m.AuditReport{BeforeRoot: "a", AfterRoot: "b"}))

	assert.Contains(t, buf.String(), "No changes worth reviewing")
	assert.Contains(t, buf.String(), "Files: 0")
}

func TestTUI_DelegatesOtherResults(t *testing.T) {
	tui, buf := newTestTUI(t)

	require.NoError(t, tui.DisplayPairing(context.Background(), m.PairingResult{BeforeRoot: "legacy", AfterRoot: "rewrite"}))
	assert.Contains(t, buf.String(), "Pairing legacy -> rewrite")
}

func TestTUI_CanceledContext(t *testing.T) {
	tui, _ := newTestTUI(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, tui.DisplayAudit(ctx, sampleAuditReport()), context.Canceled)
}

func TestAuditModel_Pagination(t *testing.T) {
	model := newAuditModel(largeAuditReport(30), false)
	assert.False(t, model.needsPagination(), "unknown terminal size never paginates")

	model = model.resize(80, 20)
	require.True(t, model.needsPagination())
	assert.Equal(t, 12, model.viewport.Height)
	assert.Contains(t, model.View(), "q: quit")

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	bottom := updated.(auditModel)
	assert.True(t, bottom.viewport.AtBottom())
	assert.Contains(t, bottom.View(), "src/File29.php")

	updated, _ = bottom.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.True(t, updated.(auditModel).viewport.AtTop())

	updated, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 200})
	assert.False(t, updated.(auditModel).needsPagination())

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))

	file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })

	assert.False(t, IsTTY(file))
}
