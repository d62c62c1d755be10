// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"io"

	"github.com/oneconcern/rit/pkg/datastore"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// datastoreCmd is the group of datastore commands
var datastoreCmd = &cobra.Command{
	Use:     "datastore",
	Aliases: []string{"ds"},
	Short:   "Commands to manage the standard datastores of a universe",
	Long: `Commands to manage the standard datastores of the universe of a branch.

The datastore name and scope default to the "datastore" section of the configuration file.
Listings are paginated: press Enter to fetch the next page, or 'q' to quit.
`,
}

func init() {
	addBranchFlag(datastoreCmd)
	addAPIKeyFlag(datastoreCmd)
	addDatastoreNameFlag(datastoreCmd)
	addScopeFlag(datastoreCmd)
	rootCmd.AddCommand(datastoreCmd)
}

func (flags *flagsT) datastoreTarget() datastore.Target {
	return datastore.Target{
		Branch: branchOrDefault(flags.target.branch),
		APIKey: flags.target.apiKey,
		Name:   flags.target.name,
		Scope:  flags.target.scope,
	}
}

func newPager(cmd *cobra.Command) *datastore.Pager {
	out := cmd.OutOrStdout()
	clear := func(io.Writer) {}
	if isTerminal(out) {
		clear = datastore.ClearTerminal
	}
	return datastore.NewPager(cmd.InOrStdin(), out, clear, logger)
}

func newDispatcher(cmd *cobra.Command) (*datastore.Dispatcher, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration loaded", zap.String("path", cfg.Path()))
	return datastore.NewDispatcher(cfg, apiKeyResolver(), datastoreClientFactory,
		datastore.WithPager(newPager(cmd)),
		datastore.WithLogger(logger),
		datastore.WithOutput(cmd.OutOrStdout()),
	), nil
}

func printResult(cmd *cobra.Command, result string) {
	if result == "" {
		return
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), result)
}
