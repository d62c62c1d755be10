// Copyright © 2018 One Concern

package datastore

import (
	"context"

	"github.com/oneconcern/rit/pkg/opencloud"
	"github.com/stretchr/testify/mock"
)

type ClientMock struct {
	mock.Mock
}

var _ Client = &ClientMock{}

func (m *ClientMock) ListStores(ctx context.Context, req *opencloud.ListStoresRequest) (*opencloud.ListStoresResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*opencloud.ListStoresResponse)
	return res, args.Error(1)
}

func (m *ClientMock) ListEntries(ctx context.Context, req *opencloud.ListEntriesRequest) (*opencloud.ListEntriesResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*opencloud.ListEntriesResponse)
	return res, args.Error(1)
}

func (m *ClientMock) GetEntry(ctx context.Context, req *opencloud.GetEntryRequest) (*opencloud.Entry, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*opencloud.Entry)
	return res, args.Error(1)
}

func (m *ClientMock) SetEntry(ctx context.Context, req *opencloud.SetEntryRequest) (*opencloud.EntryVersion, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*opencloud.EntryVersion)
	return res, args.Error(1)
}

func (m *ClientMock) IncrementEntry(ctx context.Context, req *opencloud.IncrementEntryRequest) (float64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(float64), args.Error(1)
}

func (m *ClientMock) DeleteEntry(ctx context.Context, req *opencloud.DeleteEntryRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *ClientMock) ListEntryVersions(ctx context.Context, req *opencloud.ListEntryVersionsRequest) (*opencloud.ListEntryVersionsResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*opencloud.ListEntryVersionsResponse)
	return res, args.Error(1)
}

func (m *ClientMock) GetEntryVersion(ctx context.Context, req *opencloud.GetEntryVersionRequest) (*opencloud.Entry, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*opencloud.Entry)
	return res, args.Error(1)
}

// factoryFor returns a factory handing out the mock, recording the API keys it was asked for
func factoryFor(m *ClientMock, keys *[]string) ClientFactory {
	return func(apiKey string) (Client, error) {
		*keys = append(*keys, apiKey)
		return m, nil
	}
}
