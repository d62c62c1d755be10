// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/oneconcern/rit/pkg/config"
	"github.com/oneconcern/rit/pkg/dlogger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	envPrefix = "rit"

	// settings keys
	configKey       = "config"
	logLevelKey     = "loglevel"
	openCloudURLKey = "opencloud_url"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rit",
	Short: "rit drives the build, deploy and datastore workflow of a Roblox experience",
	Long: `rit drives the build, deploy and datastore workflow of a Roblox experience.

Each branch of the project maps to a universe, configured in config.json:

  {
    "deployment": {
      "universes": {"main": 123},
      "places": {"main": {"Lobby": 1001}}
    },
    "datastore": {"name": "Players", "scope": "global"}
  }

Open Cloud requests are authenticated with the --api-key flag or the OPENCLOUD_KEY environment variable.
`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		l, err := dlogger.GetLogger(viper.GetString(logLevelKey))
		if err != nil {
			wrapFatalln("invalid log level", err)
			return
		}
		logger = l
		if !isTerminal(cmd.OutOrStdout()) {
			color.NoColor = true
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var (
	// used to patch over the file system and the environment during test
	projectFs afero.Fs = afero.NewOsFs()
	lookupEnv          = os.LookupEnv

	logger = zap.NewNop()
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := registerSIGINTHandler(context.Background())
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	for key, flag := range map[string]string{
		configKey:   addConfigFileFlag(rootCmd),
		logLevelKey: addLogLevel(rootCmd),
	} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			wrapFatalln("bind flag "+flag, err)
		}
	}
}

// initConfig reads the settings of rit from flags and RIT_* environment variables
func initConfig() {
	viper.SetDefault(logLevelKey, dlogger.LogLevelWarn)
	viper.SetDefault(openCloudURLKey, "")
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
}

// loadConfig reads the project configuration file
func loadConfig() (*config.Config, error) {
	if pth := viper.GetString(configKey); pth != "" {
		return config.Load(projectFs, pth)
	}
	return config.Load(projectFs)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func branchOrDefault(branch string) string {
	if branch == "" {
		return config.DefaultBranch
	}
	return branch
}
