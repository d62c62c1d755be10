// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/rit/pkg/datastore"
	"github.com/spf13/cobra"
)

var datastoreListVersionsCmd = &cobra.Command{
	Use:   "list-versions",
	Short: "List the versions of an entry",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		start, err := parseTime("--start-time", ritFlags.entry.startTime)
		if err != nil {
			wrapFatalln("invalid time range", err)
			return
		}
		end, err := parseTime("--end-time", ritFlags.entry.endTime)
		if err != nil {
			wrapFatalln("invalid time range", err)
			return
		}
		d, err := newDispatcher(cmd)
		if err != nil {
			wrapFatalln("load configuration", err)
			return
		}
		err = d.ListEntryVersions(cmd.Context(), datastore.ListEntryVersionsParams{
			Target:    ritFlags.datastoreTarget(),
			Key:       ritFlags.entry.key,
			StartTime: start,
			EndTime:   end,
			SortOrder: ritFlags.entry.sortOrder,
			Limit:     ritFlags.list.limit,
			Cursor:    ritFlags.list.cursor,
		})
		if err != nil {
			wrapFatalln("list versions of entry "+ritFlags.entry.key, err)
			return
		}
	},
}

func init() {
	requireFlags(datastoreListVersionsCmd,
		addKeyFlag(datastoreListVersionsCmd),
	)
	addStartTimeFlag(datastoreListVersionsCmd)
	addEndTimeFlag(datastoreListVersionsCmd)
	addSortOrderFlag(datastoreListVersionsCmd)
	addLimitFlag(datastoreListVersionsCmd)
	addCursorFlag(datastoreListVersionsCmd)
	datastoreCmd.AddCommand(datastoreListVersionsCmd)
}
