// Package cmd provides the root command and CLI setup for semaudit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"semaudit.dev/pkg/semaudit/internal/adapter"
	"semaudit.dev/pkg/semaudit/internal/controller"
	"semaudit.dev/pkg/semaudit/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var phpAdapter adapter.PHPFileAdapter
var gitAdapter adapter.GitAdapter
var comparator domain.FileComparator
var analyzer domain.DivergenceAnalyzer

// newWorkflow builds the workflow for one command invocation. The UI depends
// on the output format, which is only known once flags are parsed.
var newWorkflow = func(cmd *cobra.Command) (domain.Workflow, error) {
	ui, err := controller.NewUI(cmd, viper.GetString(outputFormatKey))
	if err != nil {
		return nil, err
	}

	return domain.NewWorkflow(fsAdapter, phpAdapter, ui, comparator, analyzer), nil
}

var outputFormatFlag string
var excludePatterns []string
var extensions []string
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	phpAdapter = adapter.NewLocalPHPFileAdapter()
	gitAdapter = adapter.NewLocalGitAdapter()
	comparator = domain.NewFileComparator(domain.NewStructureExtractor(phpAdapter))
	analyzer = domain.NewDivergenceAnalyzer(gitAdapter, fsAdapter)
}

const rootLongDescription = `Semaudit audits a rewrite of a PHP code base by comparing the semantic
structure of every file before and after, ignoring formatting and comments.

Each file pair is classified as:
  - cosmetic   nothing but formatting, comments or equivalent type spellings changed
  - signature  declarations changed (visibility, types, parameters, modifiers)
  - logic      method bodies, class structure or the set of members changed

It can also isolate the downstream-only commits of a customized file relative
to its upstream copy.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "semaudit",
		Short: "Semantic diff auditor for PHP rewrites",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputFormatFlag, outputFlagName, "o",
			viper.GetString(outputFormatKey),
			"output format: text, yaml or json",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFormatKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching glob, relative to each root (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringSliceVar(&extensions, extensionFlagName, viper.GetStringSlice(extensionConfigKey), "file extensions to audit")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(extensionFlagName), extensionConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
