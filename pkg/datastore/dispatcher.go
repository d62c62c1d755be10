// Copyright © 2018 One Concern

package datastore

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/oneconcern/rit/pkg/config"
	"github.com/oneconcern/rit/pkg/credential"
	"github.com/oneconcern/rit/pkg/errors"
	"github.com/oneconcern/rit/pkg/opencloud"
	"github.com/oneconcern/rit/pkg/opencloud/status"
	"go.uber.org/zap"
)

var (
	// ErrInvalidAttributes indicates entry attributes which are not a JSON object
	ErrInvalidAttributes = errors.New("attributes must be a JSON object")

	// ErrInvalidTimeRange indicates a version listing which ends before it starts
	ErrInvalidTimeRange = errors.New("invalid time range")
)

// Target designates the datastore an operation applies to.
//
// Name and Scope default to the configured datastore. APIKey defaults to the environment.
type Target struct {
	Branch string
	APIKey string
	Name   string
	Scope  string
}

func (t Target) branch() string {
	if t.Branch == "" {
		return config.DefaultBranch
	}
	return t.Branch
}

// ListStoresParams for ListStores. Name and Scope are not used.
type ListStoresParams struct {
	Target
	Prefix string
	Limit  uint64
	Cursor string
}

// ListEntriesParams for ListEntries
type ListEntriesParams struct {
	Target
	AllScopes bool
	Prefix    string
	Limit     uint64
	Cursor    string
}

// EntryParams for GetEntry and DeleteEntry
type EntryParams struct {
	Target
	Key string
}

// SetEntryParams for SetEntry
type SetEntryParams struct {
	Target
	Key             string
	Data            string
	MatchVersion    string
	ExclusiveCreate bool
	UserIDs         []uint64
	Attributes      string
}

// IncrementEntryParams for IncrementEntry
type IncrementEntryParams struct {
	Target
	Key         string
	IncrementBy float64
	UserIDs     []uint64
	Attributes  string
}

// ListEntryVersionsParams for ListEntryVersions
type ListEntryVersionsParams struct {
	Target
	Key       string
	StartTime *time.Time
	EndTime   *time.Time
	SortOrder opencloud.SortOrder
	Limit     uint64
	Cursor    string
}

// GetEntryVersionParams for GetEntryVersion
type GetEntryVersionParams struct {
	Target
	Key       string
	VersionID string
}

// Dispatcher carries out datastore operations on behalf of the CLI
type Dispatcher struct {
	cfg     *config.Config
	creds   credential.Resolver
	factory ClientFactory
	pager   *Pager
	logger  *zap.Logger
	out     io.Writer
}

// NewDispatcher builds a dispatcher resolving branches with cfg and API keys with creds
func NewDispatcher(cfg *config.Config, creds credential.Resolver, factory ClientFactory, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		cfg:     cfg,
		creds:   creds,
		factory: factory,
		logger:  zap.NewNop(),
		out:     io.Discard,
	}
	for _, apply := range opts {
		apply(d)
	}
	if d.pager == nil {
		d.pager = NewPager(nil, d.out, nil, d.logger)
	}
	return d
}

func (d *Dispatcher) universe(t Target) (uint64, error) {
	return d.cfg.UniverseID(t.branch())
}

func (d *Dispatcher) client(t Target) (Client, error) {
	apiKey, err := d.creds.Resolve(t.APIKey)
	if err != nil {
		return nil, err
	}
	return d.factory(apiKey)
}

// resolve returns the universe, datastore name and scope of the target, then a client
func (d *Dispatcher) resolve(t Target) (uint64, string, string, Client, error) {
	universeID, err := d.universe(t)
	if err != nil {
		return 0, "", "", nil, err
	}
	name, scope, err := d.cfg.ResolveDatastore(t.branch(), t.Name, t.Scope)
	if err != nil {
		return 0, "", "", nil, err
	}
	c, err := d.client(t)
	if err != nil {
		return 0, "", "", nil, err
	}
	d.logger.Debug("resolved datastore",
		zap.String("branch", t.branch()),
		zap.Uint64("universe", universeID),
		zap.String("datastore", name),
		zap.String("scope", scope),
	)
	return universeID, name, scope, c, nil
}

func limitOrDefault(limit uint64) uint64 {
	if limit == 0 {
		return opencloud.DefaultLimit
	}
	return limit
}

// ListStores streams the datastores of the branch universe
func (d *Dispatcher) ListStores(ctx context.Context, p ListStoresParams) error {
	universeID, err := d.universe(p.Target)
	if err != nil {
		return err
	}
	c, err := d.client(p.Target)
	if err != nil {
		return err
	}
	return d.pager.Run(ctx, p.Cursor, func(ctx context.Context, cursor string) (string, string, error) {
		res, err := c.ListStores(ctx, &opencloud.ListStoresRequest{
			UniverseID: universeID,
			Prefix:     p.Prefix,
			Limit:      limitOrDefault(p.Limit),
			Cursor:     cursor,
		})
		if err != nil {
			return "", "", err
		}
		return FormatStoreList(res.DataStores), res.NextPageCursor, nil
	})
}

// ListEntries streams the keys of a datastore.
//
// With AllScopes, the keys of every scope are listed and no scope is required.
func (d *Dispatcher) ListEntries(ctx context.Context, p ListEntriesParams) error {
	universeID, err := d.universe(p.Target)
	if err != nil {
		return err
	}
	name, err := d.cfg.ResolveDatastoreName(p.branch(), p.Name)
	if err != nil {
		return err
	}
	var scope string
	if !p.AllScopes {
		if scope, err = d.cfg.ResolveDatastoreScope(p.branch(), p.Scope); err != nil {
			return err
		}
	}
	c, err := d.client(p.Target)
	if err != nil {
		return err
	}
	return d.pager.Run(ctx, p.Cursor, func(ctx context.Context, cursor string) (string, string, error) {
		res, err := c.ListEntries(ctx, &opencloud.ListEntriesRequest{
			UniverseID: universeID,
			Name:       name,
			Scope:      scope,
			AllScopes:  p.AllScopes,
			Prefix:     p.Prefix,
			Limit:      limitOrDefault(p.Limit),
			Cursor:     cursor,
		})
		if err != nil {
			return "", "", err
		}
		return FormatEntryList(res.Keys), res.NextPageCursor, nil
	})
}

// GetEntry returns the indented JSON value of an entry
func (d *Dispatcher) GetEntry(ctx context.Context, p EntryParams) (string, error) {
	universeID, name, scope, c, err := d.resolve(p.Target)
	if err != nil {
		return "", err
	}
	entry, err := c.GetEntry(ctx, &opencloud.GetEntryRequest{
		UniverseID: universeID,
		Name:       name,
		Scope:      scope,
		Key:        p.Key,
	})
	if err != nil {
		return "", err
	}
	return FormatJSONValue(entry.Value)
}

// SetEntry sets the value of an entry and returns the new version
func (d *Dispatcher) SetEntry(ctx context.Context, p SetEntryParams) (string, error) {
	if err := validateAttributes(p.Attributes); err != nil {
		return "", err
	}
	universeID, name, scope, c, err := d.resolve(p.Target)
	if err != nil {
		return "", err
	}
	version, err := c.SetEntry(ctx, &opencloud.SetEntryRequest{
		UniverseID:      universeID,
		Name:            name,
		Scope:           scope,
		Key:             p.Key,
		MatchVersion:    p.MatchVersion,
		ExclusiveCreate: p.ExclusiveCreate,
		UserIDs:         p.UserIDs,
		Attributes:      p.Attributes,
		Data:            p.Data,
	})
	if err != nil {
		return "", err
	}
	return FormatEntryVersion(version)
}

// IncrementEntry increments an entry and returns its new value, as reported by the datastore
func (d *Dispatcher) IncrementEntry(ctx context.Context, p IncrementEntryParams) (string, error) {
	if err := validateAttributes(p.Attributes); err != nil {
		return "", err
	}
	universeID, name, scope, c, err := d.resolve(p.Target)
	if err != nil {
		return "", err
	}
	v, err := c.IncrementEntry(ctx, &opencloud.IncrementEntryRequest{
		UniverseID:  universeID,
		Name:        name,
		Scope:       scope,
		Key:         p.Key,
		IncrementBy: p.IncrementBy,
		UserIDs:     p.UserIDs,
		Attributes:  p.Attributes,
	})
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(v, 'f', -1, 64), nil
}

// DeleteEntry deletes an entry. Deleting an entry which does not exist is not an error.
func (d *Dispatcher) DeleteEntry(ctx context.Context, p EntryParams) error {
	universeID, name, scope, c, err := d.resolve(p.Target)
	if err != nil {
		return err
	}
	err = c.DeleteEntry(ctx, &opencloud.DeleteEntryRequest{
		UniverseID: universeID,
		Name:       name,
		Scope:      scope,
		Key:        p.Key,
	})
	if errors.Is(err, status.ErrNotFound) {
		d.logger.Debug("entry already deleted", zap.String("key", p.Key), zap.Error(err))
		return nil
	}
	return err
}

// ListEntryVersions streams the versions of an entry
func (d *Dispatcher) ListEntryVersions(ctx context.Context, p ListEntryVersionsParams) error {
	if p.StartTime != nil && p.EndTime != nil && p.EndTime.Before(*p.StartTime) {
		return ErrInvalidTimeRange.Wrapf("end time %s is before start time %s",
			p.EndTime.Format(time.RFC3339), p.StartTime.Format(time.RFC3339))
	}
	universeID, name, scope, c, err := d.resolve(p.Target)
	if err != nil {
		return err
	}
	sortOrder := p.SortOrder
	if sortOrder == "" {
		sortOrder = opencloud.Ascending
	}
	return d.pager.Run(ctx, p.Cursor, func(ctx context.Context, cursor string) (string, string, error) {
		res, err := c.ListEntryVersions(ctx, &opencloud.ListEntryVersionsRequest{
			UniverseID: universeID,
			Name:       name,
			Scope:      scope,
			Key:        p.Key,
			StartTime:  p.StartTime,
			EndTime:    p.EndTime,
			SortOrder:  sortOrder,
			Limit:      limitOrDefault(p.Limit),
			Cursor:     cursor,
		})
		if err != nil {
			return "", "", err
		}
		return FormatVersionList(res.Versions), res.NextPageCursor, nil
	})
}

// GetEntryVersion returns the indented JSON value of an entry at a version
func (d *Dispatcher) GetEntryVersion(ctx context.Context, p GetEntryVersionParams) (string, error) {
	universeID, name, scope, c, err := d.resolve(p.Target)
	if err != nil {
		return "", err
	}
	entry, err := c.GetEntryVersion(ctx, &opencloud.GetEntryVersionRequest{
		UniverseID: universeID,
		Name:       name,
		Scope:      scope,
		Key:        p.Key,
		VersionID:  p.VersionID,
	})
	if err != nil {
		return "", err
	}
	return FormatJSONValue(entry.Value)
}

func validateAttributes(attributes string) error {
	if strings.TrimSpace(attributes) == "" {
		return nil
	}
	var obj map[string]interface{}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(attributes, &obj); err != nil || obj == nil {
		return ErrInvalidAttributes.Wrapf("invalid attributes %q", attributes)
	}
	return nil
}
