// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oneconcern/rit/pkg/opencloud"
	"github.com/spf13/cobra"
)

type flagsT struct {
	root struct {
		config   string
		logLevel string
	}
	target struct {
		branch string
		apiKey string
		name   string
		scope  string
	}
	list struct {
		prefix    string
		limit     uint64
		cursor    string
		allScopes bool
	}
	entry struct {
		key             string
		data            string
		matchVersion    string
		exclusiveCreate bool
		userIDs         []string
		attributes      string
		incrementBy     float64
		startTime       string
		endTime         string
		sortOrder       opencloud.SortOrder
		versionID       string
	}
	deploy struct {
		message string
	}
	send struct {
		topic   string
		message string
	}
	build struct {
		project string
		output  string
	}
	sync struct {
		auth string
	}
	doc struct {
		docTarget string
	}
	format string
}

var ritFlags = flagsT{}

const (
	configFlag   = "config"
	logLevelFlag = "loglevel"
)

func addConfigFileFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&ritFlags.root.config, configFlag, "",
		`The path to the project configuration file (defaults to "config.json", then ".rit/config.json")`)
	return configFlag
}

func addLogLevel(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&ritFlags.root.logLevel, logLevelFlag, "",
		"The logging level (defaults to warn). Levels by increasing order of verbosity: none, error, warn, info, debug")
	return logLevelFlag
}

func addBranchFlag(cmd *cobra.Command) string {
	c := "branch-name"
	cmd.PersistentFlags().StringVarP(&ritFlags.target.branch, c, "b", "", `The branch to operate on (defaults to "main")`)
	return c
}

func addAPIKeyFlag(cmd *cobra.Command) string {
	c := "api-key"
	cmd.PersistentFlags().StringVarP(&ritFlags.target.apiKey, c, "a", "", "The Open Cloud API key (defaults to the OPENCLOUD_KEY environment variable)")
	return c
}

func addDatastoreNameFlag(cmd *cobra.Command) string {
	c := "datastore-name"
	cmd.PersistentFlags().StringVarP(&ritFlags.target.name, c, "d", "", "The name of the datastore (defaults to datastore.name in the configuration)")
	return c
}

func addScopeFlag(cmd *cobra.Command) string {
	c := "scope"
	cmd.PersistentFlags().StringVarP(&ritFlags.target.scope, c, "s", "", "The scope of the datastore (defaults to datastore.scope in the configuration)")
	return c
}

func addPrefixFlag(cmd *cobra.Command) string {
	c := "prefix"
	cmd.Flags().StringVarP(&ritFlags.list.prefix, c, "p", "", "Only list names starting with this prefix")
	return c
}

func addLimitFlag(cmd *cobra.Command) string {
	c := "limit"
	cmd.Flags().Uint64VarP(&ritFlags.list.limit, c, "l", 0, fmt.Sprintf("The maximum number of items per page (defaults to %d)", opencloud.DefaultLimit))
	return c
}

func addCursorFlag(cmd *cobra.Command) string {
	c := "cursor"
	cmd.Flags().StringVarP(&ritFlags.list.cursor, c, "c", "", "Resume listing from this cursor")
	return c
}

func addAllScopesFlag(cmd *cobra.Command) string {
	c := "all-scopes"
	cmd.Flags().BoolVar(&ritFlags.list.allScopes, c, false, "List the keys of every scope. The scope flag and the configured scope are ignored")
	return c
}

func addKeyFlag(cmd *cobra.Command) string {
	c := "key"
	cmd.Flags().StringVarP(&ritFlags.entry.key, c, "k", "", "The key of the entry")
	return c
}

func addDataFlag(cmd *cobra.Command) string {
	c := "data"
	cmd.Flags().StringVarP(&ritFlags.entry.data, c, "D", "", "The value of the entry")
	return c
}

func addMatchVersionFlag(cmd *cobra.Command) string {
	c := "match-version"
	cmd.Flags().StringVar(&ritFlags.entry.matchVersion, c, "", "Only update the entry if its current version matches")
	return c
}

func addExclusiveCreateFlag(cmd *cobra.Command) string {
	c := "exclusive-create"
	cmd.Flags().BoolVar(&ritFlags.entry.exclusiveCreate, c, false, "Fail if the entry already exists")
	return c
}

func addUserIDsFlag(cmd *cobra.Command) string {
	c := "user-ids"
	cmd.Flags().StringSliceVarP(&ritFlags.entry.userIDs, c, "u", nil, "Comma-separated user ids associated with the entry")
	return c
}

func addAttributesFlag(cmd *cobra.Command) string {
	c := "attributes"
	cmd.Flags().StringVar(&ritFlags.entry.attributes, c, "", `Attributes of the entry, as a JSON object (e.g. '{"tag":"test"}')`)
	return c
}

func addIncrementByFlag(cmd *cobra.Command) string {
	c := "increment-by"
	cmd.Flags().Float64VarP(&ritFlags.entry.incrementBy, c, "i", 0, "The amount to add to the entry")
	return c
}

func addStartTimeFlag(cmd *cobra.Command) string {
	c := "start-time"
	cmd.Flags().StringVar(&ritFlags.entry.startTime, c, "", "Only list versions created after this time (RFC3339)")
	return c
}

func addEndTimeFlag(cmd *cobra.Command) string {
	c := "end-time"
	cmd.Flags().StringVar(&ritFlags.entry.endTime, c, "", "Only list versions created before this time (RFC3339)")
	return c
}

func addSortOrderFlag(cmd *cobra.Command) string {
	c := "sort-order"
	cmd.Flags().Var(&ritFlags.entry.sortOrder, c, "The order of versions: Ascending or Descending (defaults to Ascending)")
	return c
}

func addVersionIDFlag(cmd *cobra.Command) string {
	c := "version-id"
	cmd.Flags().StringVarP(&ritFlags.entry.versionID, c, "v", "", "The version of the entry")
	return c
}

func addDeployMessageFlag(cmd *cobra.Command) string {
	c := "message"
	cmd.Flags().StringVarP(&ritFlags.deploy.message, c, "m", "", "Announce the deploy with this message")
	return c
}

func addTopicFlag(cmd *cobra.Command) string {
	c := "topic"
	cmd.Flags().StringVarP(&ritFlags.send.topic, c, "t", "", `The topic to publish to (defaults to "updates-<branch>")`)
	return c
}

func addSendMessageFlag(cmd *cobra.Command) string {
	c := "message"
	cmd.Flags().StringVarP(&ritFlags.send.message, c, "m", "", "The message to publish")
	return c
}

func addProjectNameFlag(cmd *cobra.Command) string {
	c := "project-name"
	cmd.Flags().StringVarP(&ritFlags.build.project, c, "p", "", `The rojo project to build (defaults to "default")`)
	return c
}

func addOutputNameFlag(cmd *cobra.Command) string {
	c := "output-name"
	cmd.Flags().StringVarP(&ritFlags.build.output, c, "o", "", "The name of the place file, under build/ (defaults to the project name)")
	return c
}

func addAuthFlag(cmd *cobra.Command) string {
	c := "auth"
	cmd.Flags().StringVar(&ritFlags.sync.auth, c, "", "The session credential (defaults to the ROBLOSECURITY environment variable)")
	return c
}

func addTargetFlag(cmd *cobra.Command) string {
	c := "target-dir"
	cmd.Flags().StringVar(&ritFlags.doc.docTarget, c, ".", "The target directory where to generate the markdown documentation")
	return c
}

func requireFlags(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		err := cmd.MarkFlagRequired(flag)
		if err != nil {
			err = cmd.MarkPersistentFlagRequired(flag)
		}
		if err != nil {
			wrapFatalln(fmt.Sprintf("error attempting to mark the required flag %q", flag), err)
			return
		}
	}
}

/** flags to typed parameters */

func (flags *flagsT) userIDs() ([]uint64, error) {
	ids := make([]uint64, 0, len(flags.entry.userIDs))
	for _, raw := range flags.entry.userIDs {
		id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q: %w", raw, err)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return ids, nil
}

func parseTime(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q, expected an RFC3339 time such as 2022-07-14T21:35:02Z: %w", name, value, err)
	}
	t = t.UTC()
	return &t, nil
}
