// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

// set with -ldflags "-X github.com/oneconcern/rit/cmd/rit/cmd.Version=..."
var (
	Version   string
	BuildDate string
	GitCommit string
	GitState  string
)

const devVersion = "dev"

// VersionInfo describes the rit binary
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	BuildDate string `json:"buildDate,omitempty" yaml:"buildDate,omitempty"`
	GitCommit string `json:"gitCommit,omitempty" yaml:"gitCommit,omitempty"`
	GitState  string `json:"gitState,omitempty" yaml:"gitState,omitempty"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
}

// NewVersionInfo reports the values set by the linker, completed by the build info of the module
func NewVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GitState:  GitState,
		GoVersion: runtime.Version(),
	}
	if Version != "" && GitState == "" {
		info.GitState = "clean"
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = setting.Value
				}
			case "vcs.time":
				if info.BuildDate == "" {
					info.BuildDate = setting.Value
				}
			case "vcs.modified":
				if info.GitState == "" {
					info.GitState = "clean"
					if setting.Value == "true" {
						info.GitState = "dirty"
					}
				}
			}
		}
	}

	if info.Version == "" {
		info.Version = devVersion
	}
	return info
}

func versionTable(w io.Writer, data interface{}) error {
	v, ok := data.(VersionInfo)
	if !ok {
		return fmt.Errorf("unexpected data type %T", data)
	}
	table := uitable.New()
	table.AddRow("Version:", v.Version)
	table.AddRow("Build date:", v.BuildDate)
	table.AddRow("Commit:", v.GitCommit)
	table.AddRow("Working tree:", v.GitState)
	table.AddRow("Go:", v.GoVersion)
	_, err := fmt.Fprintln(w, table)
	return err
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of rit",
	Long: `Print the version of rit:
	* Version (git describe --tags at build time, or the module version)
	* Build date
	* Commit (the git commit the binary was built from)
	* Working tree (dirty when there were uncommitted changes during the build)
	* Go (the Go release the binary was built with)
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := printFormatted(cmd, NewVersionInfo()); err != nil {
			wrapFatalln("print version", err)
		}
	},
}

func init() {
	addFormatFlag(versionCmd, "text", map[string]Formatter{
		"text": FormatterFunc(versionTable),
	})
	rootCmd.AddCommand(versionCmd)
}
