// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/rit/pkg/toolchain"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync images to the Roblox CDN with tarmac",
	Long: `Sync image assets to the Roblox CDN with tarmac.

Uploads are authenticated with the --auth flag or the ROBLOSECURITY environment variable.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		auth, err := sessionResolver().Resolve(ritFlags.sync.auth)
		if err != nil {
			wrapFatalln("resolve session credential", err)
			return
		}
		tarmac := toolchain.Tarmac{Runner: newToolRunner(cmd)}
		if err := tarmac.Sync(cmd.Context(), auth); err != nil {
			wrapFatalln("sync images", err)
			return
		}
		printResult(cmd, "Synced images to Roblox CDN.")
	},
}

func init() {
	addAuthFlag(syncCmd)
	rootCmd.AddCommand(syncCmd)
}
