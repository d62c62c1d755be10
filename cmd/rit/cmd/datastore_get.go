// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/rit/pkg/datastore"
	"github.com/spf13/cobra"
)

var datastoreGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the value of an entry",
	Long: `Print the value of an entry, as indented JSON.

A value which is not valid JSON is reported as a formatting error.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d, err := newDispatcher(cmd)
		if err != nil {
			wrapFatalln("load configuration", err)
			return
		}
		result, err := d.GetEntry(cmd.Context(), datastore.EntryParams{
			Target: ritFlags.datastoreTarget(),
			Key:    ritFlags.entry.key,
		})
		if err != nil {
			wrapFatalln("get entry "+ritFlags.entry.key, err)
			return
		}
		printResult(cmd, result)
	},
}

func init() {
	requireFlags(datastoreGetCmd,
		addKeyFlag(datastoreGetCmd),
	)
	datastoreCmd.AddCommand(datastoreGetCmd)
}
