// Copyright © 2018 One Concern

package toolchain

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
)

// Tarmac syncs image assets to the Roblox CDN
type Tarmac struct {
	Runner     Runner
	Retries    int
	RetryDelay int // seconds
}

// Sync uploads assets, authenticated by a session credential
func (t Tarmac) Sync(ctx context.Context, auth string) error {
	if auth == "" {
		return errors.New("tarmac: a session credential is required")
	}
	retries, delay := t.Retries, t.RetryDelay
	if retries <= 0 {
		retries = 3
	}
	if delay <= 0 {
		delay = 5
	}
	return t.Runner.Run(ctx, "tarmac", "sync",
		"--target", "roblox",
		"--auth", auth,
		"--retry", strconv.Itoa(retries),
		"--retry-delay", strconv.Itoa(delay),
	)
}
