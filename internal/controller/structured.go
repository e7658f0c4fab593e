package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "semaudit.dev/pkg/semaudit/internal/model"
)

// Output formats understood by NewUI.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// StructuredUI writes every result as one yaml or json document.
type StructuredUI struct {
	out    io.Writer
	format string
	config StartConfig
	yaml   *yaml.Encoder
	json   *json.Encoder
}

// NewUI returns the UI for the given output format. Text output goes to the
// TUI when the command writes to a terminal.
func NewUI(cmd *cobra.Command, format string) (UI, error) {
	switch format {
	case "", FormatText:
		if IsTTY(cmd.OutOrStdout()) {
			return NewTUI(cmd), nil
		}

		return NewSimpleUI(cmd), nil
	case FormatYAML, FormatJSON:
		return NewStructuredUI(cmd.OutOrStdout(), format), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s, %s or %s)", format, FormatText, FormatYAML, FormatJSON)
	}
}

// NewStructuredUI creates a StructuredUI writing format to out.
func NewStructuredUI(out io.Writer, format string) *StructuredUI {
	return &StructuredUI{out: out, format: format}
}

// Start creates the document encoder.
func (s *StructuredUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.config = newStartConfig(options)

	if s.format == FormatJSON {
		s.json = json.NewEncoder(s.out)
		s.json.SetIndent("", "  ")

		return nil
	}

	s.yaml = yaml.NewEncoder(s.out)
	s.yaml.SetIndent(2)

	return nil
}

// Close flushes the yaml stream.
func (s *StructuredUI) Close(_ context.Context) error {
	if s.yaml == nil {
		return nil
	}

	err := s.yaml.Close()
	s.yaml = nil

	return err
}

// DisplayPairing writes the pairing result.
func (s *StructuredUI) DisplayPairing(ctx context.Context, result m.PairingResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.encode(result)
}

type auditDocument struct {
	m.AuditReport `yaml:",inline"`
	Summary       map[string]int `json:"summary" yaml:"summary"`
}

// DisplayAudit writes the audit report with per-category counts. Cosmetic
// files are left out unless WithShowCosmetic is set; counts always cover all.
func (s *StructuredUI) DisplayAudit(ctx context.Context, report m.AuditReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	summary := map[string]int{}
	for category, count := range report.Counts() {
		summary[category.String()] = count
	}

	if !s.config.showCosmetic {
		files := make([]m.FileAudit, 0, len(report.Files))

		for _, file := range report.Files {
			if file.Category != m.Cosmetic {
				files = append(files, file)
			}
		}

		report.Files = files
	}

	return s.encode(auditDocument{AuditReport: report, Summary: summary})
}

type comparisonDocument struct {
	m.FileAudit `yaml:",inline"`
	Diff        string `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// DisplayComparison writes one file verdict and the optional text diff.
func (s *StructuredUI) DisplayComparison(ctx context.Context, audit m.FileAudit, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.encode(comparisonDocument{FileAudit: audit, Diff: diff})
}

// DisplayDivergence writes the divergence report.
func (s *StructuredUI) DisplayDivergence(ctx context.Context, report m.DivergenceReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.encode(report)
}

func (s *StructuredUI) encode(doc any) error {
	var err error

	switch {
	case s.json != nil:
		err = s.json.Encode(doc)
	case s.yaml != nil:
		err = s.yaml.Encode(doc)
	default:
		return fmt.Errorf("ui not started")
	}

	if err != nil {
		return fmt.Errorf("encode %s: %w", s.format, err)
	}

	return nil
}
