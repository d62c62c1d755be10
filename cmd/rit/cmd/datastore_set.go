// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/rit/pkg/datastore"
	"github.com/spf13/cobra"
)

var datastoreSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the value of an entry",
	Long: `Set the value of an entry and print its new version.

With --exclusive-create, the command fails if the entry already exists.
With --match-version, the command fails unless the current version of the entry matches.`,
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
		result, err := d.SetEntry(cmd.Context(), datastore.SetEntryParams{
			Target:          ritFlags.datastoreTarget(),
			Key:             ritFlags.entry.key,
			Data:            ritFlags.entry.data,
			MatchVersion:    ritFlags.entry.matchVersion,
			ExclusiveCreate: ritFlags.entry.exclusiveCreate,
			UserIDs:         userIDs,
			Attributes:      ritFlags.entry.attributes,
		})
		if err != nil {
			wrapFatalln("set entry "+ritFlags.entry.key, err)
			return
		}
		printResult(cmd, result)
	},
}

func init() {
	requireFlags(datastoreSetCmd,
		addKeyFlag(datastoreSetCmd),
		addDataFlag(datastoreSetCmd),
	)
	addMatchVersionFlag(datastoreSetCmd)
	addExclusiveCreateFlag(datastoreSetCmd)
	addUserIDsFlag(datastoreSetCmd)
	addAttributesFlag(datastoreSetCmd)
	datastoreCmd.AddCommand(datastoreSetCmd)
}
