package cmd

import (
	"github.com/spf13/cobra"

	"semaudit.dev/pkg/semaudit/internal/domain"
	m "semaudit.dev/pkg/semaudit/internal/model"
)

var diffFlag bool

// compareCmd represents the compare command.
var compareCmd = newCompareCmd()

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <before-file> <after-file>",
		Short: "Compare two versions of one PHP file",
		Long: `Compare two versions of one PHP file and print the category and the
individual structural changes found.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			workflow, err := newWorkflow(cmd)
			if err != nil {
				return err
			}

			return workflow.Compare(cmd.Context(), domain.CompareArgs{
				Before: m.Path(args[0]),
				After:  m.Path(args[1]),
				Diff:   diffFlag,
			})
		},
	}

	cmd.Flags().BoolVarP(&diffFlag, diffFlagName, "d", false, "also print a unified text diff")

	return cmd
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
