package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "semaudit.dev/pkg/semaudit/internal/model"
)

const dateLayout = "2006-01-02"

// SimpleUI implements UI with plain text tables on the command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.config = newStartConfig(options)

	return nil
}

// Close finalizes the UI. SimpleUI writes eagerly, so there is nothing to flush.
func (s *SimpleUI) Close(_ context.Context) error {
	return nil
}

// DisplayPairing prints moved, added and removed files with totals.
func (s *SimpleUI) DisplayPairing(ctx context.Context, result m.PairingResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Pairing %s -> %s\n\n", result.BeforeRoot, result.AfterRoot)

	table, buf := newTable([]string{"Path", "Status"})

	for _, move := range result.Moved {
		table.Append([]string{move.From + " -> " + move.To, "moved"})
	}

	for _, rel := range result.Added {
		table.Append([]string{rel, "added"})
	}

	for _, rel := range result.Removed {
		table.Append([]string{rel, "removed"})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Paired %d", len(result.Paired)),
		fmt.Sprintf("moved %d, added %d, removed %d", len(result.Moved), len(result.Added), len(result.Removed)),
	})
	table.Render()

	s.printf("%s", buf.String())

	return nil
}

// DisplayAudit prints one row per audited file and the details of every
// non-cosmetic one. Cosmetic rows are hidden unless WithShowCosmetic is set.
func (s *SimpleUI) DisplayAudit(ctx context.Context, report m.AuditReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Auditing %s -> %s\n\n", report.BeforeRoot, report.AfterRoot)

	table, buf := newTable([]string{"Path", "Category", "Changes"})

	var flagged []m.FileAudit

	for _, file := range report.Files {
		if file.Category == m.Cosmetic && !s.config.showCosmetic {
			continue
		}

		table.Append([]string{auditPath(file), file.Category.String(), fmt.Sprintf("%d", len(file.Result.Details))})

		if file.Category != m.Cosmetic {
			flagged = append(flagged, file)
		}
	}

	counts := report.Counts()
	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(report.Files)),
		fmt.Sprintf("%d cosmetic, %d signature, %d logic", counts[m.Cosmetic], counts[m.Signature], counts[m.Logic]),
		"",
	})
	table.Render()

	s.printf("%s", buf.String())

	for _, file := range flagged {
		s.printf("\n%s (%s)\n", auditPath(file), file.Category)
		s.printResult(file.Result)
	}

	s.printList("Added", report.Added)
	s.printList("Removed", report.Removed)

	return nil
}

// DisplayComparison prints the verdict for one file pair and an optional text diff.
func (s *SimpleUI) DisplayComparison(ctx context.Context, audit m.FileAudit, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s: %s\n", audit.Path, audit.Category)

	if audit.Result.Changed() {
		s.printf("  structure %s, signature %s, body %s, members %s\n",
			changeMark(audit.Result.ClassStructureChanged),
			changeMark(audit.Result.SignatureChanged),
			changeMark(audit.Result.BodyChanged),
			changeMark(audit.Result.MembersAddedOrRemoved))
	} else {
		s.printf("  no semantic changes\n")
	}

	s.printResult(audit.Result)

	if diff != "" {
		s.printf("\n%s", diff)
	}

	return nil
}

// DisplayDivergence prints the fork point and the downstream-only commits.
func (s *SimpleUI) DisplayDivergence(ctx context.Context, report m.DivergenceReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if report.Common != nil {
		s.printf("Fork point: %s %s %s\n\n", report.Common.ShortHash, report.Common.Date.Format(dateLayout), report.Common.Message)
	} else {
		s.printf("No common history between %s and %s\n\n", report.Upstream, report.Downstream)
	}

	if len(report.Commits) == 0 {
		s.printf("No downstream-only commits\n")
	} else {
		table, buf := newTable([]string{"Commit", "Date", "Author", "Message", "Category", "Lines"})

		for _, audit := range report.Commits {
			category := "-"
			if audit.Classified {
				category = audit.Category.String()
			}

			lines := "-"
			if audit.Patch != nil {
				lines = fmt.Sprintf("+%d -%d", audit.Patch.Added, audit.Patch.Deleted)
			}

			table.Append([]string{
				audit.Commit.ShortHash,
				audit.Commit.Date.Format(dateLayout),
				audit.Commit.Author,
				audit.Commit.Message,
				category,
				lines,
			})
		}

		table.Render()
		s.printf("%s", buf.String())

		for _, audit := range report.Commits {
			if len(audit.Result.Details) == 0 && len(audit.Result.ParseErrors) == 0 {
				continue
			}

			s.printf("\n%s %s (%s)\n", audit.Commit.ShortHash, audit.Commit.Message, audit.Category)
			s.printResult(audit.Result)
		}
	}

	if report.Uncommitted != nil && !report.Uncommitted.Empty() {
		s.printf("\nUncommitted changes: +%d -%d\n", report.Uncommitted.Added, report.Uncommitted.Deleted)
	}

	return nil
}

func (s *SimpleUI) printResult(result m.ComparisonResult) {
	for _, msg := range result.ParseErrors {
		s.printf("  ! %s\n", msg)
	}

	for _, detail := range result.Details {
		s.printf("  - %s\n", detail)
	}
}

func (s *SimpleUI) printList(title string, items []string) {
	if len(items) == 0 {
		return
	}

	s.printf("\n%s (%d):\n", title, len(items))

	for _, item := range items {
		s.printf("  %s\n", item)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table, &buf
}

func auditPath(file m.FileAudit) string {
	if file.MovedTo != "" {
		return file.Path + " -> " + file.MovedTo
	}

	return file.Path
}

func changeMark(v bool) string {
	if v {
		return "changed"
	}

	return "-"
}
