package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

// buildVersion is what the version command reports about the running binary.
type buildVersion struct {
	Version  string
	Module   string
	Revision string
	Modified bool
	Time     string
	Go       string
}

// readBuildVersion extracts the module version and the VCS stamp from build
// info. A binary built without module support reports everything unknown.
func readBuildVersion(info *debug.BuildInfo, ok bool) buildVersion {
	if !ok || info == nil {
		return buildVersion{Version: unknownVersion}
	}

	v := buildVersion{
		Version: info.Main.Version,
		Module:  info.Main.Path,
		Go:      info.GoVersion,
	}

	if v.Version == "" {
		v.Version = unknownVersion
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			v.Revision = setting.Value
		case "vcs.time":
			v.Time = setting.Value
		case "vcs.modified":
			v.Modified = setting.Value == "true"
		}
	}

	return v
}

// lines renders the report, leaving out what the build did not record.
func (v buildVersion) lines() []string {
	out := []string{"semaudit " + v.Version}

	if v.Module != "" {
		out = append(out, "  module:   "+v.Module)
	}

	if v.Revision != "" {
		revision := v.Revision
		if len(revision) > 12 {
			revision = revision[:12]
		}

		if v.Modified {
			revision += " (dirty)"
		}

		out = append(out, "  revision: "+revision)
	}

	if v.Time != "" {
		out = append(out, "  built:    "+v.Time)
	}

	if v.Go != "" {
		out = append(out, fmt.Sprintf("  go:       %s", v.Go))
	}

	return out
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the semaudit build",
		Long:  "Prints the semaudit release, the source revision it was built from and its Go toolchain.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, line := range readBuildVersion(debug.ReadBuildInfo()).lines() {
				cmd.Println(line)
			}
		},
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
