// Copyright © 2018 One Concern

package toolchain

import (
	"context"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	// DefaultProject is built when no project name is given
	DefaultProject = "default"

	// BuildDir holds the place files produced by rojo
	BuildDir = "build"

	projectSuffix = ".project.json"
	placeSuffix   = ".rbxl"
)

// Rojo builds place files from rojo projects
type Rojo struct {
	Runner Runner
	Fs     afero.Fs
}

// OutputPath returns the place file built for an output name, relative to BuildDir
func OutputPath(output string) string {
	return path.Join(BuildDir, output+placeSuffix)
}

// Build the project <project>.project.json into build/<output>.rbxl and return the path of the place file.
//
// The project defaults to DefaultProject and the output to the project name.
func (r Rojo) Build(ctx context.Context, project, output string) (string, error) {
	if strings.TrimSpace(project) == "" {
		project = DefaultProject
	}
	if strings.TrimSpace(output) == "" {
		output = project
	}
	place := OutputPath(output)

	fs := r.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if err := fs.MkdirAll(path.Dir(place), 0o755); err != nil {
		return "", errors.Wrapf(err, "create output directory for %s", place)
	}
	if err := r.Runner.Run(ctx, "rojo", "build", project+projectSuffix, "-o", place); err != nil {
		return "", errors.Wrapf(err, "build project %s", project)
	}
	return place, nil
}
