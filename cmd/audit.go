package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"semaudit.dev/pkg/semaudit/internal/domain"
	m "semaudit.dev/pkg/semaudit/internal/model"
)

const auditLongDescription = `Pair the files of two source trees, compare every pair and classify it as
cosmetic, signature or logic.

Files are paired by relative path first. Remaining files are matched as moves
when their basename, or else the fully qualified name of their first type, is
unique on both sides. Files left over are reported as added or removed.
Directories named vendor, node_modules and .git are skipped.`

var parallelFlag uint
var showCosmeticFlag bool

// auditCmd represents the audit command.
var auditCmd = newAuditCmd()

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit <before-dir> <after-dir>",
		Short: "Audit a rewritten source tree against the original",
		Long:  auditLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			workflow, err := newWorkflow(cmd)
			if err != nil {
				return err
			}

			return workflow.Audit(cmd.Context(), domain.AuditArgs{
				Before:       m.Path(args[0]),
				After:        m.Path(args[1]),
				Exclude:      viper.GetStringSlice(excludeConfigKey),
				Extensions:   viper.GetStringSlice(extensionConfigKey),
				Parallel:     viper.GetUint(parallelConfigKey),
				ShowCosmetic: viper.GetBool(showCosmeticKey),
			})
		},
	}

	configureAuditFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func configureAuditFlags(cmd *cobra.Command) {
	cmd.Flags().UintVarP(&parallelFlag, parallelFlagName, "p", viper.GetUint(parallelConfigKey), "number of files compared in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().BoolVar(&showCosmeticFlag, showCosmeticFlagName, viper.GetBool(showCosmeticKey), "list cosmetic files too")
	bindFlagToConfig(cmd.Flags().Lookup(showCosmeticFlagName), showCosmeticKey)
}
