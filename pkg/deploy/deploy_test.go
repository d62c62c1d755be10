// Copyright © 2018 One Concern

package deploy

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/oneconcern/rit/pkg/config"
	cfgstatus "github.com/oneconcern/rit/pkg/config/status"
	"github.com/oneconcern/rit/pkg/errors"
	"github.com/oneconcern/rit/pkg/opencloud"
	"github.com/oneconcern/rit/pkg/opencloud/status"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testConfig = `{
  "deployment": {
    "universes": {"main": 123, "empty": 9},
    "places": {"main": {"Lobby": 1001, "Arena": 1002}}
  }
}`

type fakeBuilder struct {
	fs     afero.Fs
	builds []string
}

func (b *fakeBuilder) Build(_ context.Context, project, output string) (string, error) {
	b.builds = append(b.builds, project)
	file := "build/" + output + ".rbxl"
	return file, afero.WriteFile(b.fs, file, []byte("place:"+project), 0o644)
}

type CloudMock struct {
	mock.Mock
}

func (m *CloudMock) PublishPlace(ctx context.Context, req *opencloud.PublishPlaceRequest) (*opencloud.PublishPlaceResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*opencloud.PublishPlaceResponse)
	return res, args.Error(1)
}

func (m *CloudMock) PublishMessage(ctx context.Context, req *opencloud.PublishMessageRequest) error {
	return m.Called(ctx, req).Error(0)
}

func newDeployer(t *testing.T) (*Deployer, *fakeBuilder, *CloudMock, *bytes.Buffer) {
	color.NoColor = true
	cfg, err := config.Parse("config.json", []byte(testConfig))
	require.NoError(t, err)
	fs := afero.NewMemMapFs()
	builder := &fakeBuilder{fs: fs}
	cloud := &CloudMock{}
	var out bytes.Buffer
	return &Deployer{Config: cfg, Builder: builder, Publisher: cloud, Messenger: cloud, Fs: fs, Out: &out}, builder, cloud, &out
}

func TestDeploy(t *testing.T) {
	d, builder, cloud, out := newDeployer(t)
	cloud.On("PublishPlace", mock.Anything, &opencloud.PublishPlaceRequest{
		UniverseID: 123, PlaceID: 1002, ContentType: "application/octet-stream", Content: []byte("place:Arena"),
	}).Return(&opencloud.PublishPlaceResponse{VersionNumber: 3}, nil).Once()
	cloud.On("PublishPlace", mock.Anything, &opencloud.PublishPlaceRequest{
		UniverseID: 123, PlaceID: 1001, ContentType: "application/octet-stream", Content: []byte("place:Lobby"),
	}).Return(&opencloud.PublishPlaceResponse{VersionNumber: 8}, nil).Once()
	cloud.On("PublishMessage", mock.Anything, &opencloud.PublishMessageRequest{
		UniverseID: 123, Topic: "updates-main", Message: "v1.2",
	}).Return(nil).Once()

	published, err := d.Run(context.Background(), "", "v1.2")
	require.NoError(t, err)
	assert.Equal(t, []string{"Arena", "Lobby"}, builder.builds)
	require.Len(t, published, 2)
	assert.Equal(t, "build/deploy/Arena.rbxl", published[0].File)
	assert.EqualValues(t, 8, published[1].Version)
	assert.Contains(t, out.String(), "Publishing to main universe")
	cloud.AssertExpectations(t)
}

func TestDeployWithoutMessage(t *testing.T) {
	d, _, cloud, _ := newDeployer(t)
	cloud.On("PublishPlace", mock.Anything, mock.Anything).Return(&opencloud.PublishPlaceResponse{VersionNumber: 1}, nil)

	_, err := d.Run(context.Background(), "main", "")
	require.NoError(t, err)
	cloud.AssertNotCalled(t, "PublishMessage", mock.Anything, mock.Anything)
}

func TestDeployResolvesBeforeBuilding(t *testing.T) {
	d, builder, cloud, _ := newDeployer(t)

	_, err := d.Run(context.Background(), "prod", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cfgstatus.ErrUnknownBranch))

	_, err = d.Run(context.Background(), "empty", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cfgstatus.ErrNoPlaces))

	assert.Empty(t, builder.builds)
	cloud.AssertNotCalled(t, "PublishPlace", mock.Anything, mock.Anything)
}

func TestDeployStopsOnPublishError(t *testing.T) {
	d, builder, cloud, _ := newDeployer(t)
	cloud.On("PublishPlace", mock.Anything, mock.Anything).Return(nil, status.ErrForbidden.Wrap(&opencloud.Error{StatusCode: 403})).Once()

	published, err := d.Run(context.Background(), "main", "announce")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrForbidden))
	assert.Empty(t, published)
	assert.Equal(t, []string{"Arena"}, builder.builds)
	cloud.AssertNotCalled(t, "PublishMessage", mock.Anything, mock.Anything)
}

func TestTopic(t *testing.T) {
	assert.Equal(t, "updates-dev", Topic("dev"))
}
