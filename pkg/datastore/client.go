// Copyright © 2018 One Concern

// Package datastore implements the datastore commands of rit.
//
// The Dispatcher resolves the branch configuration and the API key, builds
// the request for the Open Cloud client, then either returns a formatted
// result or streams pages through a Pager.
package datastore

import (
	"context"

	"github.com/oneconcern/rit/pkg/opencloud"
)

// Client is the remote datastore, as exposed by the Open Cloud client
type Client interface {
	ListStores(context.Context, *opencloud.ListStoresRequest) (*opencloud.ListStoresResponse, error)
	ListEntries(context.Context, *opencloud.ListEntriesRequest) (*opencloud.ListEntriesResponse, error)
	GetEntry(context.Context, *opencloud.GetEntryRequest) (*opencloud.Entry, error)
	SetEntry(context.Context, *opencloud.SetEntryRequest) (*opencloud.EntryVersion, error)
	IncrementEntry(context.Context, *opencloud.IncrementEntryRequest) (float64, error)
	DeleteEntry(context.Context, *opencloud.DeleteEntryRequest) error
	ListEntryVersions(context.Context, *opencloud.ListEntryVersionsRequest) (*opencloud.ListEntryVersionsResponse, error)
	GetEntryVersion(context.Context, *opencloud.GetEntryVersionRequest) (*opencloud.Entry, error)
}

var _ Client = &opencloud.Client{}

// ClientFactory builds a client authenticated with an API key
type ClientFactory func(apiKey string) (Client, error)

// OpenCloudFactory builds Open Cloud clients with the given options
func OpenCloudFactory(opts ...opencloud.Option) ClientFactory {
	return func(apiKey string) (Client, error) {
		return opencloud.New(apiKey, opts...)
	}
}
