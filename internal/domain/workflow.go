package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"semaudit.dev/pkg/semaudit/internal/adapter"
	"semaudit.dev/pkg/semaudit/internal/controller"
	m "semaudit.dev/pkg/semaudit/internal/model"
)

// AuditArgs contains the arguments for auditing two source trees.
type AuditArgs struct {
	Before       m.Path
	After        m.Path
	Exclude      []string
	Extensions   []string
	Parallel     uint
	ShowCosmetic bool
}

// CompareArgs contains the arguments for auditing one file pair.
type CompareArgs struct {
	Before m.Path
	After  m.Path
	Diff   bool
}

// PairArgs contains the arguments for pairing two source trees.
type PairArgs struct {
	Before     m.Path
	After      m.Path
	Exclude    []string
	Extensions []string
}

// DivergeArgs contains the arguments for isolating downstream-only commits.
type DivergeArgs struct {
	Upstream   m.Path
	Downstream m.Path
	Classify   bool
	Patch      bool
}

// Workflow runs the audit commands and hands their results to the UI.
type Workflow interface {
	Audit(ctx context.Context, args AuditArgs) error
	Compare(ctx context.Context, args CompareArgs) error
	Pair(ctx context.Context, args PairArgs) error
	Diverge(ctx context.Context, args DivergeArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	controller.UI
	FileComparator
	DivergenceAnalyzer

	php adapter.PHPFileAdapter
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	phpAdapter adapter.PHPFileAdapter,
	ui controller.UI,
	comparator FileComparator,
	analyzer DivergenceAnalyzer,
) Workflow {
	return &workflow{
		SourceFSAdapter:    fsAdapter,
		UI:                 ui,
		FileComparator:     comparator,
		DivergenceAnalyzer: analyzer,
		php:                phpAdapter,
	}
}

func (w *workflow) Pair(ctx context.Context, args PairArgs) error {
	pairer := NewFilePairer(w.SourceFSAdapter, w.php, PairingOptions{Exclude: args.Exclude, Extensions: args.Extensions})

	result, err := pairer.Collect(ctx, args.Before, args.After)
	if err != nil {
		return fmt.Errorf("pair sources: %w", err)
	}

	return w.display(ctx, nil, func() error { return w.DisplayPairing(ctx, result) })
}

func (w *workflow) Audit(ctx context.Context, args AuditArgs) error {
	pairer := NewFilePairer(w.SourceFSAdapter, w.php, PairingOptions{Exclude: args.Exclude, Extensions: args.Extensions})

	pairing, err := pairer.Collect(ctx, args.Before, args.After)
	if err != nil {
		return fmt.Errorf("pair sources: %w", err)
	}

	files, err := w.auditPairs(ctx, pairing, args.Parallel)
	if err != nil {
		return fmt.Errorf("audit sources: %w", err)
	}

	report := m.AuditReport{
		BeforeRoot: args.Before,
		AfterRoot:  args.After,
		Files:      files,
		Added:      pairing.Added,
		Removed:    pairing.Removed,
	}

	counts := report.Counts()
	slog.Info("Audit finished",
		"files", len(files),
		"cosmetic", counts[m.Cosmetic], "signature", counts[m.Signature], "logic", counts[m.Logic])

	options := []controller.StartOption{controller.WithShowCosmetic(args.ShowCosmetic)}

	return w.display(ctx, options, func() error { return w.DisplayAudit(ctx, report) })
}

// auditPairs compares every paired and moved file on a bounded worker pool.
// Each worker writes only its own slot, in the order paired then moved.
func (w *workflow) auditPairs(ctx context.Context, pairing m.PairingResult, parallel uint) ([]m.FileAudit, error) {
	type job struct {
		audit  m.FileAudit
		before m.Path
		after  m.Path
	}

	jobs := make([]job, 0, len(pairing.Paired)+len(pairing.Moved))

	for _, pair := range pairing.Paired {
		jobs = append(jobs, job{audit: m.FileAudit{Path: pair.Rel}, before: pair.Before, after: pair.After})
	}

	for _, move := range pairing.Moved {
		jobs = append(jobs, job{
			audit:  m.FileAudit{Path: move.From, MovedTo: move.To},
			before: w.JoinPath(string(pairing.BeforeRoot), move.From),
			after:  w.JoinPath(string(pairing.AfterRoot), move.To),
		})
	}

	files := make([]m.FileAudit, len(jobs))

	group, groupCtx := errgroup.WithContext(ctx)
	if parallel > 0 {
		group.SetLimit(int(parallel))
	}

	for i, current := range jobs {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			audit := current.audit
			audit.Result = w.compareFiles(groupCtx, current.before, current.after)
			audit.Category = Classify(audit.Result)
			files[i] = audit

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

// compareFiles compares two files on disk. A file that cannot be read makes
// the pair a logic change rather than failing the batch.
func (w *workflow) compareFiles(ctx context.Context, before, after m.Path) m.ComparisonResult {
	beforeSrc, beforeErr := w.ReadFile(before)
	afterSrc, afterErr := w.ReadFile(after)

	if beforeErr != nil || afterErr != nil {
		result := m.ComparisonResult{BodyChanged: true}

		for _, err := range []error{beforeErr, afterErr} {
			if err == nil {
				continue
			}

			slog.Error("Failed to read file", "error", err)
			result.ParseErrors = append(result.ParseErrors, "read error: "+err.Error())
		}

		result.Details = append(result.Details, "could not read the file; treating it as a logic change")

		return result
	}

	return w.FileComparator.Compare(ctx, beforeSrc, afterSrc)
}

func (w *workflow) Compare(ctx context.Context, args CompareArgs) error {
	beforeSrc, err := w.ReadFile(args.Before)
	if err != nil {
		return fmt.Errorf("read %s: %w", args.Before, err)
	}

	afterSrc, err := w.ReadFile(args.After)
	if err != nil {
		return fmt.Errorf("read %s: %w", args.After, err)
	}

	result := w.FileComparator.Compare(ctx, beforeSrc, afterSrc)
	audit := m.FileAudit{Path: string(args.After), Category: Classify(result), Result: result}

	diff := ""
	if args.Diff {
		diff, err = TextDiff(string(args.Before), string(args.After), beforeSrc, afterSrc)
		if err != nil {
			return fmt.Errorf("diff: %w", err)
		}
	}

	return w.display(ctx, nil, func() error { return w.DisplayComparison(ctx, audit, diff) })
}

func (w *workflow) Diverge(ctx context.Context, args DivergeArgs) error {
	for _, path := range []m.Path{args.Upstream, args.Downstream} {
		if _, err := w.FileInfo(path); err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	divergence := w.FindDivergence(ctx, args.Upstream, args.Downstream)

	report := m.DivergenceReport{
		Upstream:   args.Upstream,
		Downstream: args.Downstream,
		Common:     divergence.Common,
		Commits:    make([]m.CommitAudit, 0, len(divergence.Commits)),
	}

	for _, commit := range divergence.Commits {
		report.Commits = append(report.Commits, m.CommitAudit{Commit: commit})
	}

	if args.Classify {
		w.classifyCommits(ctx, args.Downstream, divergence, report.Commits)
	}

	if args.Patch {
		patches := w.CommitDiffs(ctx, args.Downstream, hashes(divergence.Commits))

		for i := range report.Commits {
			if patch, ok := patches[report.Commits[i].Commit.Hash]; ok {
				report.Commits[i].Patch = &patch
			}
		}

		uncommitted := w.UncommittedDiff(ctx, args.Downstream)
		report.Uncommitted = &uncommitted
	}

	return w.display(ctx, nil, func() error { return w.DisplayDivergence(ctx, report) })
}

// classifyCommits compares each downstream commit's content with its
// predecessor: the previous downstream commit, or the fork point for the
// first one. Without a fork point the first commit is compared to an empty file.
func (w *workflow) classifyCommits(ctx context.Context, file m.Path, divergence m.Divergence, audits []m.CommitAudit) {
	revs := hashes(divergence.Commits)
	if divergence.Common != nil {
		revs = append([]string{divergence.Common.Hash}, revs...)
	}

	contents := w.CommitContents(ctx, file, revs)

	var previous []byte
	if divergence.Common != nil {
		previous = contents[divergence.Common.Hash]
	}

	for i := range audits {
		current := contents[audits[i].Commit.Hash]

		result := w.FileComparator.Compare(ctx, previous, current)
		audits[i].Classified = true
		audits[i].Result = result
		audits[i].Category = Classify(result)

		previous = current
	}
}

// display runs one UI session around show.
func (w *workflow) display(ctx context.Context, options []controller.StartOption, show func() error) error {
	if err := w.Start(ctx, options...); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	if err := show(); err != nil {
		_ = w.Close(ctx)
		slog.Error("Failed to display results", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	return w.Close(ctx)
}

// TextDiff renders a unified diff of two file versions.
func TextDiff(beforeName, afterName string, before, after []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: beforeName,
		ToFile:   afterName,
		Context:  3,
	})
}
