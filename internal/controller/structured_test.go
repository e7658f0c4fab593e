package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "semaudit.dev/pkg/semaudit/internal/model"
)

func TestNewUI(t *testing.T) {
	tests := []struct {
		format  string
		want    any
		wantErr bool
	}{
		{format: "", want: &SimpleUI{}},
		{format: FormatText, want: &SimpleUI{}},
		{format: FormatYAML, want: &StructuredUI{}},
		{format: FormatJSON, want: &StructuredUI{}},
		{format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.SetOut(&bytes.Buffer{})

			ui, err := NewUI(cmd, tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown output format")

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.want, ui)
		})
	}
}

func TestStructuredUI_AuditYAML(t *testing.T) {
	tests := []struct {
		name         string
		showCosmetic bool
		wantPaths    []string
	}{
		{"cosmetic hidden", false, []string{"src/Invoice.php", "lib/User.php", "src/Broken.php"}},
		{"cosmetic shown", true, []string{"src/Format.php", "src/Invoice.php", "lib/User.php", "src/Broken.php"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			ui := NewStructuredUI(&buf, FormatYAML)
			require.NoError(t, ui.Start(context.Background(), WithShowCosmetic(tt.showCosmetic)))
			require.NoError(t, ui.DisplayAudit(context.Background(), sampleAuditReport()))
			require.NoError(t, ui.Close(context.Background()))

			var doc struct {
				BeforeRoot string `yaml:"before_root"`
				Files      []struct {
					Path     string `yaml:"path"`
					MovedTo  string `yaml:"moved_to"`
					Category string `yaml:"category"`
					Result   struct {
						Details []string `yaml:"details"`
					} `yaml:"result"`
				} `yaml:"files"`
				Added   []string       `yaml:"added"`
				Summary map[string]int `yaml:"summary"`
			}
			require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

			var paths []string
			for _, file := range doc.Files {
				paths = append(paths, file.Path)
			}

			assert.Equal(t, "legacy", doc.BeforeRoot)
			assert.Equal(t, tt.wantPaths, paths)
			assert.Equal(t, map[string]int{"cosmetic": 1, "signature": 1, "logic": 2}, doc.Summary)
			assert.Equal(t, []string{"src/Fresh.php"}, doc.Added)
		})
	}
}

func TestStructuredUI_AuditJSON(t *testing.T) {
	var buf bytes.Buffer

	ui := NewStructuredUI(&buf, FormatJSON)
	require.NoError(t, ui.Start(context.Background()))
	require.NoError(t, ui.DisplayAudit(context.Background(), sampleAuditReport()))
	require.NoError(t, ui.Close(context.Background()))

	var doc struct {
		Files []struct {
			Path     string `json:"path"`
			MovedTo  string `json:"movedTo"`
			Category string `json:"category"`
		} `json:"files"`
		Removed []string       `json:"removed"`
		Summary map[string]int `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.Files, 3)
	assert.Equal(t, "signature", doc.Files[0].Category)
	assert.Equal(t, "src/Model/User.php", doc.Files[1].MovedTo)
	assert.Equal(t, "logic", doc.Files[1].Category)
	assert.Equal(t, []string{"src/Gone.php"}, doc.Removed)
	assert.Equal(t, 2, doc.Summary["logic"])
}

func TestStructuredUI_ComparisonAndDivergence(t *testing.T) {
	var buf bytes.Buffer

	ui := NewStructuredUI(&buf, FormatYAML)
	require.NoError(t, ui.Start(context.Background()))

	audit := m.FileAudit{Path: "after/A.php", Category: m.Logic, Result: m.ComparisonResult{BodyChanged: true}}
	require.NoError(t, ui.DisplayComparison(context.Background(), audit, "--- a\n+++ b\n"))

	report := m.DivergenceReport{
		Upstream:   "up/A.php",
		Downstream: "down/A.php",
		Commits: []m.CommitAudit{{
			Commit: m.CommitRecord{Hash: "abc", ShortHash: "abc"},
			Patch:  &m.Patch{Commit: "abc", Text: "diff text", Hunks: 1, Added: 1},
		}},
	}
	require.NoError(t, ui.DisplayDivergence(context.Background(), report))
	require.NoError(t, ui.Close(context.Background()))

	decoder := yaml.NewDecoder(&buf)

	var comparison map[string]any
	require.NoError(t, decoder.Decode(&comparison))
	assert.Equal(t, "after/A.php", comparison["path"])
	assert.Equal(t, "logic", comparison["category"])
	assert.Equal(t, "--- a\n+++ b\n", comparison["diff"])

	var divergence map[string]any
	require.NoError(t, decoder.Decode(&divergence))
	assert.Equal(t, "down/A.php", divergence["downstream"])
	assert.NotContains(t, divergence, "common")

	commits, ok := divergence["commits"].([]any)
	require.True(t, ok)
	require.Len(t, commits, 1)

	patch := commits[0].(map[string]any)["patch"].(map[string]any)
	assert.Equal(t, 1, patch["added"])
	assert.NotContains(t, patch, "text")
}

func TestStructuredUI_NotStarted(t *testing.T) {
	ui := NewStructuredUI(&bytes.Buffer{}, FormatJSON)

	err := ui.DisplayPairing(context.Background(), m.PairingResult{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui not started")
	assert.NoError(t, ui.Close(context.Background()))
}

func TestStructuredUI_Pairing(t *testing.T) {
	var buf bytes.Buffer

	ui := NewStructuredUI(&buf, FormatJSON)
	require.NoError(t, ui.Start(context.Background()))
	require.NoError(t, ui.DisplayPairing(context.Background(), m.PairingResult{
		BeforeRoot:  "a",
		AfterRoot:   "b",
		Moved:       []m.Move{{From: "x/A.php", To: "y/A.php"}},
		BeforeIndex: m.PathIndex{"A": "a/x/A.php"},
	}))

	assert.Contains(t, buf.String(), `"from": "x/A.php"`)
	assert.NotContains(t, buf.String(), "a/x/A.php")
}
