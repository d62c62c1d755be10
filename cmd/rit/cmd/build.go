// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a rojo project into a place file",
	Long:  `Build <project>.project.json with rojo into build/<output>.rbxl and print the path of the place file.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		place, err := newRojo(cmd).Build(cmd.Context(), ritFlags.build.project, ritFlags.build.output)
		if err != nil {
			wrapFatalln("build", err)
			return
		}
		printResult(cmd, place)
	},
}

func init() {
	addProjectNameFlag(buildCmd)
	addOutputNameFlag(buildCmd)
	rootCmd.AddCommand(buildCmd)
}
