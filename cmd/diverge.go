package cmd

import (
	"github.com/spf13/cobra"

	"semaudit.dev/pkg/semaudit/internal/domain"
	m "semaudit.dev/pkg/semaudit/internal/model"
)

var classifyFlag bool
var patchFlag bool

// divergeCmd represents the diverge command.
var divergeCmd = newDivergeCmd()

func newDivergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diverge <upstream-file> <downstream-file>",
		Short: "List the downstream-only commits of a customized file",
		Long: `Find the last downstream commit whose content also appears in the upstream
history of a file (or in the upstream file on disk) and list the downstream
commits made after it.

Both files must live in git working trees. A file without history, or outside
a repository, yields no commits rather than an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			workflow, err := newWorkflow(cmd)
			if err != nil {
				return err
			}

			return workflow.Diverge(cmd.Context(), domain.DivergeArgs{
				Upstream:   m.Path(args[0]),
				Downstream: m.Path(args[1]),
				Classify:   classifyFlag,
				Patch:      patchFlag,
			})
		},
	}

	cmd.Flags().BoolVarP(&classifyFlag, classifyFlagName, "c", false, "classify each commit against its predecessor")
	cmd.Flags().BoolVar(&patchFlag, patchFlagName, false, "attach diff stats per commit and for uncommitted changes")

	return cmd
}

func init() {
	rootCmd.AddCommand(divergeCmd)
}
