// Copyright © 2018 One Concern

package opencloud

import (
	"fmt"
	"strings"
	"time"
)

// DefaultLimit is the page size used when no limit is specified
const DefaultLimit uint64 = 100

// SortOrder of entry versions
type SortOrder string

// Sort orders supported by the entry versions listing
const (
	Ascending  SortOrder = "Ascending"
	Descending SortOrder = "Descending"
)

// String representation of the sort order. The zero value is Ascending.
func (o SortOrder) String() string {
	if o == "" {
		return string(Ascending)
	}
	return string(o)
}

// Set the sort order from a flag value (case insensitive)
func (o *SortOrder) Set(v string) error {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "ascending", "asc":
		*o = Ascending
	case "descending", "desc":
		*o = Descending
	default:
		return fmt.Errorf("invalid sort order %q: expected Ascending or Descending", v)
	}
	return nil
}

// Type of the flag value
func (o *SortOrder) Type() string {
	return "sortOrder"
}

// DataStore describes a datastore in a universe
type DataStore struct {
	Name        string    `json:"name"`
	CreatedTime time.Time `json:"createdTime"`
}

// EntryKey identifies an entry of a datastore listing
type EntryKey struct {
	Scope string `json:"scope"`
	Key   string `json:"key"`
}

// EntryVersion is an immutable snapshot of an entry.
//
// A deleted version is a tombstone.
type EntryVersion struct {
	Version           string    `json:"version"`
	Deleted           bool      `json:"deleted"`
	ContentLength     uint64    `json:"contentLength"`
	CreatedTime       time.Time `json:"createdTime"`
	ObjectCreatedTime time.Time `json:"objectCreatedTime"`
}

// Entry is the value of an entry, with its metadata
type Entry struct {
	Value      string
	Version    string
	UserIDs    []uint64
	Attributes string
}

// ListStoresRequest lists the datastores of a universe
type ListStoresRequest struct {
	UniverseID uint64 `url:"-"`
	Prefix     string `url:"prefix,omitempty"`
	Limit      uint64 `url:"limit,omitempty"`
	Cursor     string `url:"cursor,omitempty"`
}

// ListStoresResponse is a page of datastores
type ListStoresResponse struct {
	DataStores     []DataStore `json:"datastores"`
	NextPageCursor string      `json:"nextPageCursor"`
}

// ListEntriesRequest lists the keys of a datastore.
//
// When AllScopes is true, Scope must be empty.
type ListEntriesRequest struct {
	UniverseID uint64 `url:"-"`
	Name       string `url:"datastoreName"`
	Scope      string `url:"scope,omitempty"`
	AllScopes  bool   `url:"AllScopes,omitempty"`
	Prefix     string `url:"prefix,omitempty"`
	Limit      uint64 `url:"limit,omitempty"`
	Cursor     string `url:"cursor,omitempty"`
}

// ListEntriesResponse is a page of entry keys
type ListEntriesResponse struct {
	Keys           []EntryKey `json:"keys"`
	NextPageCursor string     `json:"nextPageCursor"`
}

// GetEntryRequest fetches the latest value of an entry
type GetEntryRequest struct {
	UniverseID uint64 `url:"-"`
	Name       string `url:"datastoreName"`
	Scope      string `url:"scope"`
	Key        string `url:"entryKey"`
}

// SetEntryRequest sets or creates the value of an entry
type SetEntryRequest struct {
	UniverseID      uint64   `url:"-"`
	Name            string   `url:"datastoreName"`
	Scope           string   `url:"scope"`
	Key             string   `url:"entryKey"`
	MatchVersion    string   `url:"matchVersion,omitempty"`
	ExclusiveCreate bool     `url:"exclusiveCreate,omitempty"`
	UserIDs         []uint64 `url:"-"`
	Attributes      string   `url:"-"`
	Data            string   `url:"-"`
}

// IncrementEntryRequest increments or creates the value of an entry
type IncrementEntryRequest struct {
	UniverseID  uint64   `url:"-"`
	Name        string   `url:"datastoreName"`
	Scope       string   `url:"scope"`
	Key         string   `url:"entryKey"`
	IncrementBy float64  `url:"incrementBy"`
	UserIDs     []uint64 `url:"-"`
	Attributes  string   `url:"-"`
}

// DeleteEntryRequest marks an entry as deleted
type DeleteEntryRequest struct {
	UniverseID uint64 `url:"-"`
	Name       string `url:"datastoreName"`
	Scope      string `url:"scope"`
	Key        string `url:"entryKey"`
}

// ListEntryVersionsRequest lists the versions of an entry
type ListEntryVersionsRequest struct {
	UniverseID uint64     `url:"-"`
	Name       string     `url:"datastoreName"`
	Scope      string     `url:"scope"`
	Key        string     `url:"entryKey"`
	StartTime  *time.Time `url:"startTime,omitempty"`
	EndTime    *time.Time `url:"endTime,omitempty"`
	SortOrder  SortOrder  `url:"sortOrder"`
	Limit      uint64     `url:"limit,omitempty"`
	Cursor     string     `url:"cursor,omitempty"`
}

// ListEntryVersionsResponse is a page of entry versions
type ListEntryVersionsResponse struct {
	Versions       []EntryVersion `json:"versions"`
	NextPageCursor string         `json:"nextPageCursor"`
}

// GetEntryVersionRequest fetches the value of an entry at a given version
type GetEntryVersionRequest struct {
	UniverseID uint64 `url:"-"`
	Name       string `url:"datastoreName"`
	Scope      string `url:"scope"`
	Key        string `url:"entryKey"`
	VersionID  string `url:"versionId"`
}

// PublishMessageRequest publishes a message to a topic of a universe
type PublishMessageRequest struct {
	UniverseID uint64
	Topic      string
	Message    string
}

// VersionType of a published place
type VersionType string

// Place version types
const (
	Saved     VersionType = "Saved"
	Published VersionType = "Published"
)

// PublishPlaceRequest uploads a place file as a new version of a place
type PublishPlaceRequest struct {
	UniverseID  uint64      `url:"-"`
	PlaceID     uint64      `url:"-"`
	VersionType VersionType `url:"versionType"`
	ContentType string      `url:"-"`
	Content     []byte      `url:"-"`
}

// PublishPlaceResponse reports the version of the published place
type PublishPlaceResponse struct {
	VersionNumber uint64 `json:"versionNumber"`
}
