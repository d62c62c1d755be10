// Copyright © 2018 One Concern

// Package status declares error constants returned when resolving
// the project configuration.
package status

import "github.com/oneconcern/rit/pkg/errors"

var (
	// ErrConfiguration is the parent of all configuration errors.
	// Configuration errors are fatal to the current command and never retried.
	ErrConfiguration = errors.New("configuration error")

	// ErrConfigNotFound indicates that no configuration file exists at any of the searched paths
	ErrConfigNotFound = ErrConfiguration.Derive("configuration file not found")

	// ErrConfigMalformed indicates that the configuration file could not be read or parsed
	ErrConfigMalformed = ErrConfiguration.Derive("malformed configuration file")

	// ErrUnknownBranch indicates that the branch has no universe configured
	ErrUnknownBranch = ErrConfiguration.Derive("unknown branch")

	// ErrNoPlaces indicates that the branch has no deployable places configured
	ErrNoPlaces = ErrConfiguration.Derive("no places configured")

	// ErrNoDatastoreName indicates that no datastore name was given and no default is configured
	ErrNoDatastoreName = ErrConfiguration.Derive("no datastore name")

	// ErrNoDatastoreScope indicates that no datastore scope was given and no default is configured
	ErrNoDatastoreScope = ErrConfiguration.Derive("no datastore scope")
)
