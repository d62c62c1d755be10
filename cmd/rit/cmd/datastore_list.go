// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/rit/pkg/datastore"
	"github.com/spf13/cobra"
)

var datastoreListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the keys of a datastore",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d, err := newDispatcher(cmd)
		if err != nil {
			wrapFatalln("load configuration", err)
			return
		}
		err = d.ListEntries(cmd.Context(), datastore.ListEntriesParams{
			Target:    ritFlags.datastoreTarget(),
			AllScopes: ritFlags.list.allScopes,
			Prefix:    ritFlags.list.prefix,
			Limit:     ritFlags.list.limit,
			Cursor:    ritFlags.list.cursor,
		})
		if err != nil {
			wrapFatalln("list entries", err)
			return
		}
	},
}

func init() {
	addAllScopesFlag(datastoreListCmd)
	addPrefixFlag(datastoreListCmd)
	addLimitFlag(datastoreListCmd)
	addCursorFlag(datastoreListCmd)
	datastoreCmd.AddCommand(datastoreListCmd)
}
