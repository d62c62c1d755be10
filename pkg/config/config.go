// Copyright © 2018 One Concern

// Package config loads the project configuration file and exposes
// branch-scoped lookups: universe id, default datastore and deployable places.
//
// The configuration is read once per invocation and is immutable thereafter.
package config

import (
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/oneconcern/rit/pkg/config/status"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	// DefaultBranch is used when no branch is specified
	DefaultBranch = "main"

	// PrimaryPath is the conventional location of the configuration file
	PrimaryPath = "config.json"

	// FallbackPath is searched when PrimaryPath does not exist
	FallbackPath = ".rit/config.json"
)

// DefaultPaths returns the configuration file search order
func DefaultPaths() []string {
	return []string{PrimaryPath, FallbackPath}
}

// Config describes the project configuration file.
//
// Branch names and place names are matched exactly: no normalization, no case-folding.
type Config struct {
	Deployment Deployment `json:"deployment" yaml:"deployment"`
	Datastore  Datastore  `json:"datastore" yaml:"datastore"`

	path string
}

// Deployment maps branches to universes and places
type Deployment struct {
	Universes map[string]uint64            `json:"universes" yaml:"universes"` // branch -> universe id
	Places    map[string]map[string]uint64 `json:"places" yaml:"places"`       // branch -> place name -> place id
}

// Datastore holds the default datastore used by datastore commands
type Datastore struct {
	Name  string `json:"name" yaml:"name"`
	Scope string `json:"scope" yaml:"scope"`
}

// Place is a deployable place
type Place struct {
	Name string
	ID   uint64
}

// Load reads the first existing file among paths. When no path is given, DefaultPaths() are searched.
func Load(fs afero.Fs, paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = DefaultPaths()
	}
	for _, pth := range paths {
		exists, err := afero.Exists(fs, pth)
		if err != nil {
			return nil, status.ErrConfigMalformed.Wrap(errors.Wrapf(err, "stat %s", pth))
		}
		if !exists {
			continue
		}
		b, err := afero.ReadFile(fs, pth)
		if err != nil {
			return nil, status.ErrConfigMalformed.Wrap(errors.Wrapf(err, "read %s", pth))
		}
		return Parse(pth, b)
	}
	return nil, status.ErrConfigNotFound.Wrapf("searched %v", paths)
}

// Parse a configuration document. The path is only used for reporting.
func Parse(pth string, b []byte) (*Config, error) {
	var c Config
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(b, &c); err != nil {
		return nil, status.ErrConfigMalformed.Wrap(errors.Wrapf(err, "parse %s", pth))
	}
	c.path = pth
	return &c, nil
}

// Path of the file this configuration was read from
func (c *Config) Path() string {
	return c.path
}

// UniverseID for a branch
func (c *Config) UniverseID(branch string) (uint64, error) {
	id, ok := c.Deployment.Universes[branch]
	if !ok {
		return 0, status.ErrUnknownBranch.Wrapf("no universe id found for branch %s", branch)
	}
	return id, nil
}

// Places configured for a branch, by place name
func (c *Config) Places(branch string) (map[string]uint64, error) {
	places, ok := c.Deployment.Places[branch]
	if !ok {
		return nil, status.ErrNoPlaces.Wrapf("no places found for branch %s", branch)
	}
	return places, nil
}

// SortedPlaces returns the places configured for a branch, in lexicographic order of names
func (c *Config) SortedPlaces(branch string) ([]Place, error) {
	places, err := c.Places(branch)
	if err != nil {
		return nil, err
	}
	result := make([]Place, 0, len(places))
	for name, id := range places {
		result = append(result, Place{Name: name, ID: id})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// DefaultDatastore returns the configured datastore name and scope.
// Empty strings mean that no default is configured.
//
// Defaults are shared by all branches.
func (c *Config) DefaultDatastore(_ string) (name, scope string) {
	return c.Datastore.Name, c.Datastore.Scope
}

// ResolveDatastore applies the precedence rule: explicit value, then configured default, then failure.
func (c *Config) ResolveDatastore(branch, name, scope string) (string, string, error) {
	n, err := c.ResolveDatastoreName(branch, name)
	if err != nil {
		return "", "", err
	}
	s, err := c.ResolveDatastoreScope(branch, scope)
	if err != nil {
		return "", "", err
	}
	return n, s, nil
}

// ResolveDatastoreName returns the explicit name if any, or the configured default
func (c *Config) ResolveDatastoreName(branch, name string) (string, error) {
	if name != "" {
		return name, nil
	}
	if n, _ := c.DefaultDatastore(branch); n != "" {
		return n, nil
	}
	return "", status.ErrNoDatastoreName.Wrapf("specify --datastore-name or set datastore.name in %s", c.describe())
}

// ResolveDatastoreScope returns the explicit scope if any, or the configured default
func (c *Config) ResolveDatastoreScope(branch, scope string) (string, error) {
	if scope != "" {
		return scope, nil
	}
	if _, s := c.DefaultDatastore(branch); s != "" {
		return s, nil
	}
	return "", status.ErrNoDatastoreScope.Wrapf("specify --scope or set datastore.scope in %s", c.describe())
}

// Branches returns all branches with a configured universe, sorted
func (c *Config) Branches() []string {
	branches := make([]string, 0, len(c.Deployment.Universes))
	for b := range c.Deployment.Universes {
		branches = append(branches, b)
	}
	sort.Strings(branches)
	return branches
}

func (c *Config) describe() string {
	if c.path == "" {
		return "the configuration"
	}
	return c.path
}
