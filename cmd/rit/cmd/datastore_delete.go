// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/rit/pkg/datastore"
	"github.com/spf13/cobra"
)

var datastoreDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an entry",
	Long: `Delete an entry. A tombstone version is kept by the datastore.

Deleting an entry which does not exist succeeds.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d, err := newDispatcher(cmd)
		if err != nil {
			wrapFatalln("load configuration", err)
			return
		}
		err = d.DeleteEntry(cmd.Context(), datastore.EntryParams{
			Target: ritFlags.datastoreTarget(),
			Key:    ritFlags.entry.key,
		})
		if err != nil {
			wrapFatalln("delete entry "+ritFlags.entry.key, err)
			return
		}
	},
}

func init() {
	requireFlags(datastoreDeleteCmd,
		addKeyFlag(datastoreDeleteCmd),
	)
	datastoreCmd.AddCommand(datastoreDeleteCmd)
}
