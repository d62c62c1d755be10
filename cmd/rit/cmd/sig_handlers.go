// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

const interruptedExitCode = 130

// registerSIGINTHandler cancels the returned context on SIGINT or SIGTERM, then exits.
//
// Exiting is required to leave a blocking read of the pager prompt.
func registerSIGINTHandler(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case <-signalChan:
			cancel()
			_, _ = fmt.Fprintln(os.Stderr, "\nReceived interrupt, quitting...")
			osExit(interruptedExitCode)
		case <-done:
		}
	}()

	return ctx, func() {
		signal.Stop(signalChan)
		close(done)
		cancel()
	}
}
