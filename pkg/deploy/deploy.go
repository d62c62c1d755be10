// Copyright © 2018 One Concern

// Package deploy builds the places of a branch and publishes them to the branch universe.
package deploy

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/fatih/color"
	"github.com/oneconcern/rit/pkg/config"
	"github.com/oneconcern/rit/pkg/opencloud"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// TopicPrefix prefixes the branch name to form the topic announcing deploys
const TopicPrefix = "updates-"

// Builder builds a project into a place file and returns its path
type Builder interface {
	Build(ctx context.Context, project, output string) (string, error)
}

// Publisher uploads place files
type Publisher interface {
	PublishPlace(context.Context, *opencloud.PublishPlaceRequest) (*opencloud.PublishPlaceResponse, error)
}

// Messenger publishes messages to a universe topic
type Messenger interface {
	PublishMessage(context.Context, *opencloud.PublishMessageRequest) error
}

// Topic announcing the deploys of a branch
func Topic(branch string) string {
	return TopicPrefix + branch
}

// Deployer publishes every place configured for a branch
type Deployer struct {
	Config    *config.Config
	Builder   Builder
	Publisher Publisher
	Messenger Messenger
	Fs        afero.Fs
	Out       io.Writer
	Logger    *zap.Logger
}

// Published reports a place published by a deploy
type Published struct {
	config.Place
	File    string
	Version uint64
}

// Run builds and publishes the places of the branch, in name order, then announces the deploy
// when message is not empty.
//
// The universe and the places are resolved before anything is built.
func (d *Deployer) Run(ctx context.Context, branch, message string) ([]Published, error) {
	if branch == "" {
		branch = config.DefaultBranch
	}
	universeID, err := d.Config.UniverseID(branch)
	if err != nil {
		return nil, err
	}
	places, err := d.Config.SortedPlaces(branch)
	if err != nil {
		return nil, err
	}
	logger := d.logger().With(zap.String("branch", branch), zap.Uint64("universe", universeID))
	fs := d.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	d.printf("%s to %s universe\n", color.GreenString("Publishing"), branch)
	published := make([]Published, 0, len(places))
	for _, place := range places {
		file, err := d.Builder.Build(ctx, place.Name, path.Join("deploy", place.Name))
		if err != nil {
			return published, err
		}
		content, err := afero.ReadFile(fs, file)
		if err != nil {
			return published, errors.Wrapf(err, "read place file %s", file)
		}
		res, err := d.Publisher.PublishPlace(ctx, &opencloud.PublishPlaceRequest{
			UniverseID:  universeID,
			PlaceID:     place.ID,
			ContentType: opencloud.ContentTypeForPlace(file),
			Content:     content,
		})
		if err != nil {
			return published, errors.Wrapf(err, "publish place %s (%d)", place.Name, place.ID)
		}
		logger.Info("place published", zap.String("place", place.Name), zap.Uint64("version", res.VersionNumber))
		d.printf("%s %s (version %d)\n", color.GreenString("Published"), place.Name, res.VersionNumber)
		published = append(published, Published{Place: place, File: file, Version: res.VersionNumber})
	}

	if message == "" {
		return published, nil
	}
	if d.Messenger == nil {
		return published, errors.New("no messenger configured to announce the deploy")
	}
	if err := d.Messenger.PublishMessage(ctx, &opencloud.PublishMessageRequest{
		UniverseID: universeID,
		Topic:      Topic(branch),
		Message:    message,
	}); err != nil {
		return published, errors.Wrap(err, "announce deploy")
	}
	logger.Info("deploy announced", zap.String("topic", Topic(branch)))
	return published, nil
}

func (d *Deployer) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

func (d *Deployer) printf(format string, args ...interface{}) {
	if d.Out == nil {
		return
	}
	_, _ = fmt.Fprintf(d.Out, format, args...)
}
