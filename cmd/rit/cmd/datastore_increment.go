// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/rit/pkg/datastore"
	"github.com/spf13/cobra"
)

var datastoreIncrementCmd = &cobra.Command{
	Use:   "increment",
	Short: "Increment the value of an entry",
	Long: `Increment the numeric value of an entry and print the new value.

Incrementing a value which is not a number is reported by Open Cloud.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		userIDs, err := ritFlags.userIDs()
		if err != nil {
			wrapFatalln("invalid --user-ids", err)
			return
		}
		d, err := newDispatcher(cmd)
		if err != nil {
			wrapFatalln("load configuration", err)
			return
		}
		result, err := d.IncrementEntry(cmd.Context(), datastore.IncrementEntryParams{
			Target:      ritFlags.datastoreTarget(),
			Key:         ritFlags.entry.key,
			IncrementBy: ritFlags.entry.incrementBy,
			UserIDs:     userIDs,
			Attributes:  ritFlags.entry.attributes,
		})
		if err != nil {
			wrapFatalln("increment entry "+ritFlags.entry.key, err)
			return
		}
		printResult(cmd, result)
	},
}

func init() {
	requireFlags(datastoreIncrementCmd,
		addKeyFlag(datastoreIncrementCmd),
		addIncrementByFlag(datastoreIncrementCmd),
	)
	addUserIDsFlag(datastoreIncrementCmd)
	addAttributesFlag(datastoreIncrementCmd)
	datastoreCmd.AddCommand(datastoreIncrementCmd)
}
