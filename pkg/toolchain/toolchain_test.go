// Copyright © 2018 One Concern

package toolchain

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	calls []call
	err   error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.calls = append(f.calls, call{name: name, args: args})
	return f.err
}

func TestRojoBuild(t *testing.T) {
	fs := afero.NewMemMapFs()
	runner := &fakeRunner{}
	rojo := Rojo{Runner: runner, Fs: fs}

	place, err := rojo.Build(context.Background(), "Lobby", "deploy/Lobby")
	require.NoError(t, err)
	assert.Equal(t, "build/deploy/Lobby.rbxl", place)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, call{name: "rojo", args: []string{"build", "Lobby.project.json", "-o", "build/deploy/Lobby.rbxl"}}, runner.calls[0])

	exists, err := afero.DirExists(fs, "build/deploy")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRojoBuildDefaults(t *testing.T) {
	runner := &fakeRunner{}
	place, err := Rojo{Runner: runner, Fs: afero.NewMemMapFs()}.Build(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "build/default.rbxl", place)
	assert.Equal(t, "default.project.json", runner.calls[0].args[1])
}

func TestRojoBuildKeepsArgumentsIntact(t *testing.T) {
	runner := &fakeRunner{}
	_, err := Rojo{Runner: runner, Fs: afero.NewMemMapFs()}.Build(context.Background(), `my "place"; rm -rf /`, "")
	require.NoError(t, err)
	assert.Equal(t, `my "place"; rm -rf /.project.json`, runner.calls[0].args[1])
}

func TestRojoBuildFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 1")}
	_, err := Rojo{Runner: runner, Fs: afero.NewMemMapFs()}.Build(context.Background(), "Lobby", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build project Lobby")
}

func TestTarmacSync(t *testing.T) {
	runner := &fakeRunner{}
	require.NoError(t, Tarmac{Runner: runner}.Sync(context.Background(), "cookie"))
	assert.Equal(t, []string{"sync", "--target", "roblox", "--auth", "cookie", "--retry", "3", "--retry-delay", "5"}, runner.calls[0].args)

	require.Error(t, Tarmac{Runner: runner}.Sync(context.Background(), ""))
	assert.Len(t, runner.calls, 1)
}

func TestRedact(t *testing.T) {
	args := []string{"sync", "--auth", "secret", "--retry", "3"}
	assert.Equal(t, []string{"sync", "--auth", "***", "--retry", "3"}, redact(args))
	assert.Equal(t, "secret", args[2])
}

func TestExecRunnerMissingTool(t *testing.T) {
	err := ExecRunner{}.Run(context.Background(), "rit-tool-that-does-not-exist", "--auth", "secret")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret")
}
