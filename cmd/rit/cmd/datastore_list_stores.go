// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/rit/pkg/datastore"
	"github.com/spf13/cobra"
)

var datastoreListStoresCmd = &cobra.Command{
	Use:   "list-stores",
	Short: "List the datastores of the universe",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d, err := newDispatcher(cmd)
		if err != nil {
			wrapFatalln("load configuration", err)
			return
		}
		err = d.ListStores(cmd.Context(), datastore.ListStoresParams{
			Target: ritFlags.datastoreTarget(),
			Prefix: ritFlags.list.prefix,
			Limit:  ritFlags.list.limit,
			Cursor: ritFlags.list.cursor,
		})
		if err != nil {
			wrapFatalln("list datastores", err)
			return
		}
	},
}

func init() {
	addPrefixFlag(datastoreListStoresCmd)
	addLimitFlag(datastoreListStoresCmd)
	addCursorFlag(datastoreListStoresCmd)
	datastoreCmd.AddCommand(datastoreListStoresCmd)
}
