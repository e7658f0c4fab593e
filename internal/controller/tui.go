package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "semaudit.dev/pkg/semaudit/internal/model"
)

// reservedLines counts the header box, summary and help footer around the
// scrolled file list.
const reservedLines = 8

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Border(lipgloss.RoundedBorder()).Padding(0, 2)
	pathStyle   = lipgloss.NewStyle().Bold(true)
	detailStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Faint(true)

	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))

	categoryStyles = map[m.Category]lipgloss.Style{
		m.Cosmetic:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		m.Signature: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		m.Logic:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// TUI renders audit reports as a styled view that scrolls with Bubble Tea
// when the report is taller than the terminal. Pairings, comparisons and
// divergences are printed the way SimpleUI prints them.
type TUI struct {
	*SimpleUI
	output io.Writer
}

// NewTUI creates a TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), output: cmd.OutOrStdout()}
}

// DisplayAudit prints the report directly when it fits on screen and opens
// a scrollable view otherwise.
func (t *TUI) DisplayAudit(ctx context.Context, report m.AuditReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newAuditModel(report, t.config.showCosmetic)

	if f, ok := t.output.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			model = model.resize(width, height)
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// auditModel is the Bubble Tea model behind DisplayAudit.
type auditModel struct {
	report   m.AuditReport
	lines    []string
	viewport viewport.Model
	width    int
	height   int
}

func newAuditModel(report m.AuditReport, showCosmetic bool) auditModel {
	model := auditModel{
		report:   report,
		lines:    auditLines(report, showCosmetic),
		viewport: viewport.New(0, 0),
	}
	model.viewport.SetContent(strings.Join(model.lines, "\n"))

	return model
}

func (a auditModel) resize(width, height int) auditModel {
	a.width = width
	a.height = height
	a.viewport.Width = width
	a.viewport.Height = max(height-reservedLines, 1)

	return a
}

// needsPagination is false until the terminal size is known.
func (a auditModel) needsPagination() bool {
	return a.height > 0 && len(a.lines) > a.viewport.Height
}

func (a auditModel) Init() tea.Cmd {
	return nil
}

func (a auditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.resize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return a, tea.Quit
		case "g", "home":
			a.viewport.GotoTop()
			return a, nil
		case "G", "end":
			a.viewport.GotoBottom()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)

	return a, cmd
}

func (a auditModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Semaudit  %s -> %s", a.report.BeforeRoot, a.report.AfterRoot)))
	b.WriteString("\n\n")

	switch {
	case len(a.lines) == 0:
		b.WriteString("  No changes worth reviewing\n")
	case a.needsPagination():
		b.WriteString(a.viewport.View())
		b.WriteString("\n")
	default:
		b.WriteString(strings.Join(a.lines, "\n"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.summary())
	b.WriteString("\n")

	if a.needsPagination() {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("  %3.0f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit",
			a.viewport.ScrollPercent()*100)))
		b.WriteString("\n")
	}

	return b.String()
}

func (a auditModel) summary() string {
	counts := a.report.Counts()

	parts := []string{fmt.Sprintf("  Files: %d", len(a.report.Files))}
	for _, category := range []m.Category{m.Cosmetic, m.Signature, m.Logic} {
		parts = append(parts, categoryStyles[category].Render(fmt.Sprintf("%s: %d", category, counts[category])))
	}

	parts = append(parts,
		addedStyle.Render(fmt.Sprintf("added: %d", len(a.report.Added))),
		removedStyle.Render(fmt.Sprintf("removed: %d", len(a.report.Removed))),
	)

	return strings.Join(parts, " | ")
}

// auditLines renders one line per reviewed file followed by its details,
// then the added and removed files.
func auditLines(report m.AuditReport, showCosmetic bool) []string {
	var lines []string

	for _, file := range report.Files {
		if file.Category == m.Cosmetic && !showCosmetic {
			continue
		}

		label := categoryStyles[file.Category].Render(fmt.Sprintf("%-9s", file.Category))
		lines = append(lines, "  "+label+" "+pathStyle.Render(auditPath(file)))

		for _, detail := range file.Result.Details {
			lines = append(lines, detailStyle.Render("      - "+detail))
		}

		for _, parseErr := range file.Result.ParseErrors {
			lines = append(lines, errorStyle.Render("      ! "+parseErr))
		}
	}

	for _, rel := range report.Added {
		lines = append(lines, "  "+addedStyle.Render(fmt.Sprintf("%-9s", "added"))+" "+rel)
	}

	for _, rel := range report.Removed {
		lines = append(lines, "  "+removedStyle.Render(fmt.Sprintf("%-9s", "removed"))+" "+rel)
	}

	return lines
}
