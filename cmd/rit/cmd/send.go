// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/rit/pkg/deploy"
	"github.com/oneconcern/rit/pkg/opencloud"
	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Publish a message to a topic of the universe",
	Long: `Publish a message to a messaging service topic of the universe of a branch.

Servers subscribed to the topic receive the message.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			wrapFatalln("load configuration", err)
			return
		}
		branch := branchOrDefault(ritFlags.target.branch)
		universeID, err := cfg.UniverseID(branch)
		if err != nil {
			wrapFatalln("resolve universe", err)
			return
		}
		client, err := connect(ritFlags.target.apiKey)
		if err != nil {
			wrapFatalln("connect to Open Cloud", err)
			return
		}
		topic := ritFlags.send.topic
		if topic == "" {
			topic = deploy.Topic(branch)
		}
		err = client.PublishMessage(cmd.Context(), &opencloud.PublishMessageRequest{
			UniverseID: universeID,
			Topic:      topic,
			Message:    ritFlags.send.message,
		})
		if err != nil {
			wrapFatalln("publish message to "+topic, err)
			return
		}
	},
}

func init() {
	addBranchFlag(sendCmd)
	addAPIKeyFlag(sendCmd)
	addTopicFlag(sendCmd)
	requireFlags(sendCmd,
		addSendMessageFlag(sendCmd),
	)
	rootCmd.AddCommand(sendCmd)
}
