// Copyright © 2018 One Concern

// Package credential resolves secrets from an explicit value or the environment.
package credential

import (
	"os"
	"strings"

	"github.com/oneconcern/rit/pkg/errors"
)

const (
	// EnvAPIKey holds the Open Cloud API key
	EnvAPIKey = "OPENCLOUD_KEY"

	// EnvSession holds the studio session credential used by asset tooling
	EnvSession = "ROBLOSECURITY"
)

// ErrMissingCredential indicates that neither an explicit value nor the environment provided a credential
var ErrMissingCredential = errors.New("missing credential")

// Resolver resolves a credential, preferring an explicit value over an environment variable.
type Resolver struct {
	EnvVar string
	Lookup func(string) (string, bool)
}

// NewResolver builds a resolver reading the process environment
func NewResolver(envVar string) Resolver {
	return Resolver{EnvVar: envVar, Lookup: os.LookupEnv}
}

// APIKey resolves the Open Cloud API key
func APIKey() Resolver {
	return NewResolver(EnvAPIKey)
}

// Session resolves the studio session credential
func Session() Resolver {
	return NewResolver(EnvSession)
}

// Resolve returns the explicit value when not empty, or the value of the environment variable.
func (r Resolver) Resolve(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	lookup := r.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(r.EnvVar); ok && strings.TrimSpace(v) != "" {
		return v, nil
	}
	return "", ErrMissingCredential.Wrapf("environment variable %q is not set", r.EnvVar)
}
