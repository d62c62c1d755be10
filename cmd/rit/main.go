// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/rit/cmd/rit/cmd"
)

func main() {
	cmd.Execute()
}
