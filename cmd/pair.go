package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"semaudit.dev/pkg/semaudit/internal/domain"
	m "semaudit.dev/pkg/semaudit/internal/model"
)

// pairCmd represents the pair command.
var pairCmd = newPairCmd()

func newPairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pair <before-dir> <after-dir>",
		Short: "Show how the files of two source trees are paired",
		Long: `Pair the files of two source trees without comparing them and list the
moved, added and removed files.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			workflow, err := newWorkflow(cmd)
			if err != nil {
				return err
			}

			return workflow.Pair(cmd.Context(), domain.PairArgs{
				Before:     m.Path(args[0]),
				After:      m.Path(args[1]),
				Exclude:    viper.GetStringSlice(excludeConfigKey),
				Extensions: viper.GetStringSlice(extensionConfigKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(pairCmd)
}
