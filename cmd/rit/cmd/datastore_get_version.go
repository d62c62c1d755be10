// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/rit/pkg/datastore"
	"github.com/spf13/cobra"
)

var datastoreGetVersionCmd = &cobra.Command{
	Use:   "get-version",
	Short: "Print the value of an entry at a given version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d, err := newDispatcher(cmd)
		if err != nil {
			wrapFatalln("load configuration", err)
			return
		}
		result, err := d.GetEntryVersion(cmd.Context(), datastore.GetEntryVersionParams{
			Target:    ritFlags.datastoreTarget(),
			Key:       ritFlags.entry.key,
			VersionID: ritFlags.entry.versionID,
		})
		if err != nil {
			wrapFatalln("get version "+ritFlags.entry.versionID+" of entry "+ritFlags.entry.key, err)
			return
		}
		printResult(cmd, result)
	},
}

func init() {
	requireFlags(datastoreGetVersionCmd,
		addKeyFlag(datastoreGetVersionCmd),
		addVersionIDFlag(datastoreGetVersionCmd),
	)
	datastoreCmd.AddCommand(datastoreGetVersionCmd)
}
