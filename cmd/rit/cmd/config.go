// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/oneconcern/rit/pkg/config"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// configCmd represents the config related commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to inspect the project configuration",
	Long: `Commands to inspect the project configuration.

The configuration is read from config.json, or .rit/config.json when config.json does not exist.
Use --config or the RIT_CONFIG environment variable to read another file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the branches, universes and places of the configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			wrapFatalln("load configuration", err)
			return
		}
		if err := printFormatted(cmd, cfg); err != nil {
			wrapFatalln("print configuration", err)
			return
		}
	},
}

func configTable(w io.Writer, data interface{}) error {
	cfg, ok := data.(*config.Config)
	if !ok {
		return fmt.Errorf("unexpected data type %T", data)
	}
	table := uitable.New()
	table.MaxColWidth = 80
	table.Wrap = true
	table.AddRow("BRANCH", "UNIVERSE", "PLACES")
	for _, branch := range cfg.Branches() {
		universeID, _ := cfg.UniverseID(branch)
		var names []string
		if places, err := cfg.SortedPlaces(branch); err == nil {
			for _, place := range places {
				names = append(names, place.Name+" ("+cast.ToString(place.ID)+")")
			}
		}
		table.AddRow(branch, cast.ToString(universeID), strings.Join(names, ", "))
	}
	name, scope := cfg.DefaultDatastore(config.DefaultBranch)
	_, err := fmt.Fprintf(w, "%s\n\nConfiguration: %s\nDatastore: %s\nScope: %s\n", table, cfg.Path(), orNone(name), orNone(scope))
	return err
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func init() {
	addFormatFlag(configShowCmd, "table", map[string]Formatter{
		"table": FormatterFunc(configTable),
	})
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
