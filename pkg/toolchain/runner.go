// Copyright © 2018 One Concern

// Package toolchain runs the external tools rit relies on: rojo to build
// place files and tarmac to sync image assets.
//
// Tools are invoked with an argument vector, never through a shell.
package toolchain

import (
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Runner runs an external program
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs programs found in the PATH
type ExecRunner struct {
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// Run a program and wait for its completion
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	if r.Logger != nil {
		r.Logger.Debug("running tool", zap.String("tool", name), zap.Strings("args", redact(args)))
	}
	cmd := exec.CommandContext(ctx, name, args...) // #nosec: argument vector, no shell
	cmd.Dir = r.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "%s %s", name, strings.Join(redact(args), " "))
	}
	return nil
}

// redact hides the value following an --auth argument
func redact(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i := 0; i < len(out)-1; i++ {
		if out[i] == "--auth" {
			out[i+1] = "***"
		}
	}
	return out
}
