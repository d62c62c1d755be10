// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
)

const (
	bash = "bash"
	zsh  = "zsh"
	fish = "fish"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion SHELL",
	Short: "generate completions for the rit command",
	Long: `Generate completions for your shell

	For bash add the following line to your ~/.bashrc

		eval "$(rit completion bash)"

	For zsh generate a file:

		rit completion zsh > /usr/local/share/zsh/site-functions/_rit

	For fish generate a file:

		rit completion fish > ~/.config/fish/completions/rit.fish
	`,
	ValidArgs: []string{bash, zsh, fish},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),

	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		var err error
		switch args[0] {
		case bash:
			err = rootCmd.GenBashCompletionV2(out, true)
		case zsh:
			err = rootCmd.GenZshCompletion(out)
		case fish:
			err = rootCmd.GenFishCompletion(out, true)
		}
		if err != nil {
			wrapFatalln("failed to generate "+args[0]+" completion", err)
			return
		}
	},
}

func init() {
	completionCmd.Hidden = true
	rootCmd.AddCommand(completionCmd)
}
