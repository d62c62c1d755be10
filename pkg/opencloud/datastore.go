// Copyright © 2018 One Concern

package opencloud

import (
	"context"
	"crypto/md5" // #nosec: content-md5 is an integrity header required by the API
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/oneconcern/rit/pkg/errors"
	"github.com/oneconcern/rit/pkg/opencloud/status"
)

const (
	headerEntryVersion    = "roblox-entry-version"
	headerEntryUserIDs    = "roblox-entry-userids"
	headerEntryAttributes = "roblox-entry-attributes"
	headerContentMD5      = "content-md5"
)

func datastoresPath(universeID uint64) string {
	return fmt.Sprintf("/datastores/v1/universes/%d/standard-datastores", universeID)
}

func entriesPath(universeID uint64, suffix string) string {
	return datastoresPath(universeID) + "/datastore/entries" + suffix
}

// ListStores returns a page of datastores
func (c *Client) ListStores(ctx context.Context, req *ListStoresRequest) (*ListStoresResponse, error) {
	var res ListStoresResponse
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   datastoresPath(req.UniverseID),
		query:  req,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ListEntries returns a page of entry keys
func (c *Client) ListEntries(ctx context.Context, req *ListEntriesRequest) (*ListEntriesResponse, error) {
	var res ListEntriesResponse
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   entriesPath(req.UniverseID, ""),
		query:  req,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetEntry returns the latest value of an entry
func (c *Client) GetEntry(ctx context.Context, req *GetEntryRequest) (*Entry, error) {
	b, header, err := c.doRaw(ctx, request{
		method: http.MethodGet,
		path:   entriesPath(req.UniverseID, "/entry"),
		query:  req,
	})
	if err != nil {
		return nil, err
	}
	return entryFromResponse(b, header)
}

// SetEntry sets the value of an entry and returns the new version.
//
// A conflicting exclusive create is reported as status.ErrEntryExists, and a
// mismatching version as status.ErrVersionMismatch.
func (c *Client) SetEntry(ctx context.Context, req *SetEntryRequest) (*EntryVersion, error) {
	header, err := entryHeader(req.UserIDs, req.Attributes)
	if err != nil {
		return nil, err
	}
	data := []byte(req.Data)
	sum := md5.Sum(data) // #nosec
	header.Set(headerContentMD5, base64.StdEncoding.EncodeToString(sum[:]))
	header.Set("Content-Type", "application/json")

	var res EntryVersion
	err = c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   entriesPath(req.UniverseID, "/entry"),
		query:  req,
		header: header,
		body:   data,
	}, &res)
	if err != nil {
		return nil, qualifyPrecondition(err, req)
	}
	return &res, nil
}

func qualifyPrecondition(err error, req *SetEntryRequest) error {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return err
	}
	if apiErr.StatusCode != http.StatusPreconditionFailed && apiErr.StatusCode != http.StatusConflict {
		return err
	}
	switch {
	case req.ExclusiveCreate:
		return status.ErrEntryExists.Wrap(apiErr)
	case req.MatchVersion != "":
		return status.ErrVersionMismatch.Wrap(apiErr)
	default:
		return err
	}
}

// IncrementEntry increments the value of an entry and returns the value reported by the API.
//
// Increments are not idempotent and are never retried.
func (c *Client) IncrementEntry(ctx context.Context, req *IncrementEntryRequest) (float64, error) {
	header, err := entryHeader(req.UserIDs, req.Attributes)
	if err != nil {
		return 0, err
	}
	b, _, err := c.doRaw(withoutRetry(ctx), request{
		method: http.MethodPost,
		path:   entriesPath(req.UniverseID, "/entry/increment"),
		query:  req,
		header: header,
	})
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
	if err != nil {
		return 0, status.ErrUnexpectedResponse.Wrap(fmt.Errorf("increment returned a non-numeric value %q: %w", string(b), err))
	}
	return v, nil
}

// DeleteEntry marks an entry as deleted
func (c *Client) DeleteEntry(ctx context.Context, req *DeleteEntryRequest) error {
	resp, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   entriesPath(req.UniverseID, "/entry"),
		query:  req,
	})
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// ListEntryVersions returns a page of versions of an entry
func (c *Client) ListEntryVersions(ctx context.Context, req *ListEntryVersionsRequest) (*ListEntryVersionsResponse, error) {
	q := *req
	if q.SortOrder == "" {
		q.SortOrder = Ascending
	}
	var res ListEntryVersionsResponse
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   entriesPath(req.UniverseID, "/entry/versions"),
		query:  &q,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetEntryVersion returns the value of an entry at a given version
func (c *Client) GetEntryVersion(ctx context.Context, req *GetEntryVersionRequest) (*Entry, error) {
	b, header, err := c.doRaw(ctx, request{
		method: http.MethodGet,
		path:   entriesPath(req.UniverseID, "/entry/versions/version"),
		query:  req,
	})
	if err != nil {
		return nil, err
	}
	return entryFromResponse(b, header)
}

func entryHeader(userIDs []uint64, attributes string) (http.Header, error) {
	header := make(http.Header)
	if len(userIDs) > 0 {
		ids, err := json.Marshal(userIDs)
		if err != nil {
			return nil, fmt.Errorf("opencloud: encode user ids: %w", err)
		}
		header.Set(headerEntryUserIDs, string(ids))
	}
	if attributes != "" {
		header.Set(headerEntryAttributes, attributes)
	}
	return header, nil
}

func entryFromResponse(b []byte, header http.Header) (*Entry, error) {
	entry := &Entry{
		Value:      string(b),
		Version:    header.Get(headerEntryVersion),
		Attributes: header.Get(headerEntryAttributes),
	}
	if ids := header.Get(headerEntryUserIDs); ids != "" {
		if err := json.Unmarshal([]byte(ids), &entry.UserIDs); err != nil {
			return nil, status.ErrUnexpectedResponse.Wrap(fmt.Errorf("invalid %s header %q: %w", headerEntryUserIDs, ids, err))
		}
	}
	return entry, nil
}
