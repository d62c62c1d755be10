// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/rit/pkg/credential"
	"github.com/oneconcern/rit/pkg/datastore"
	"github.com/oneconcern/rit/pkg/deploy"
	"github.com/oneconcern/rit/pkg/opencloud"
	"github.com/spf13/viper"
)

type cloudClient interface {
	datastore.Client
	deploy.Publisher
	deploy.Messenger
}

// used to patch over the Open Cloud client during test
var newCloudClient = func(apiKey string) (cloudClient, error) {
	c, err := opencloud.New(apiKey,
		opencloud.WithBaseURL(viper.GetString(openCloudURLKey)),
		opencloud.WithLogger(logger),
		opencloud.WithUserAgent("rit/"+NewVersionInfo().Version),
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func datastoreClientFactory(apiKey string) (datastore.Client, error) {
	c, err := newCloudClient(apiKey)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func apiKeyResolver() credential.Resolver {
	return credential.Resolver{EnvVar: credential.EnvAPIKey, Lookup: lookupEnv}
}

func sessionResolver() credential.Resolver {
	return credential.Resolver{EnvVar: credential.EnvSession, Lookup: lookupEnv}
}

// connect resolves the API key, then builds a client
func connect(explicitKey string) (cloudClient, error) {
	apiKey, err := apiKeyResolver().Resolve(explicitKey)
	if err != nil {
		return nil, err
	}
	return newCloudClient(apiKey)
}
