// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/rit/pkg/toolchain"
	"github.com/spf13/cobra"
)

// used to patch over external tools during test
var newToolRunner = func(cmd *cobra.Command) toolchain.Runner {
	return toolchain.ExecRunner{
		Stdout: cmd.ErrOrStderr(),
		Stderr: cmd.ErrOrStderr(),
		Logger: logger,
	}
}

func newRojo(cmd *cobra.Command) toolchain.Rojo {
	return toolchain.Rojo{Runner: newToolRunner(cmd), Fs: projectFs}
}
