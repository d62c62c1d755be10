// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/rit/pkg/deploy"
	"github.com/spf13/cobra"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Build and publish every place of a branch",
	Long: `Build every place configured for a branch with rojo, then publish each place file
to the universe of the branch.

With --message, the deploy is announced on the "updates-<branch>" topic of the universe.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			wrapFatalln("load configuration", err)
			return
		}
		client, err := connect(ritFlags.target.apiKey)
		if err != nil {
			wrapFatalln("connect to Open Cloud", err)
			return
		}
		deployer := &deploy.Deployer{
			Config:    cfg,
			Builder:   newRojo(cmd),
			Publisher: client,
			Messenger: client,
			Fs:        projectFs,
			Out:       cmd.OutOrStdout(),
			Logger:    logger,
		}
		if _, err := deployer.Run(cmd.Context(), branchOrDefault(ritFlags.target.branch), ritFlags.deploy.message); err != nil {
			wrapFatalln("deploy", err)
			return
		}
	},
}

func init() {
	addBranchFlag(deployCmd)
	addAPIKeyFlag(deployCmd)
	addDeployMessageFlag(deployCmd)
	rootCmd.AddCommand(deployCmd)
}
