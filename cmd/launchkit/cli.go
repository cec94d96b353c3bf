// Where: cmd/launchkit/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"context"
	"io"
	"os"

	"github.com/charlesfrye/launchkit/internal/app"
	"github.com/charlesfrye/launchkit/internal/buildctx"
	"github.com/charlesfrye/launchkit/internal/export"
	"github.com/charlesfrye/launchkit/internal/gitinfo"
	"github.com/charlesfrye/launchkit/internal/imagebuild"
	"github.com/charlesfrye/launchkit/internal/imagetag"
	"github.com/charlesfrye/launchkit/internal/state"
	"github.com/charlesfrye/launchkit/internal/tracking"
	"github.com/charlesfrye/launchkit/internal/ui"
)

var newDockerClient = imagebuild.NewDockerClient

// buildDependencies constructs all runtime dependencies required by the CLI:
// the Docker client, the image builder, the context exporter factory, and
// the build record store.
func buildDependencies() (app.Dependencies, io.Closer, error) {
	client, err := newDockerClient()
	if err != nil {
		return app.Dependencies{}, nil, err
	}

	console := ui.New(os.Stderr)
	packager := buildctx.Packager{Warn: console.Warn}
	resolver := imagetag.Resolver{Runner: gitinfo.ExecRunner{}}
	settings := tracking.EnvSettings{}

	deps := app.Dependencies{
		Out: os.Stdout,
		Builder: imagebuild.Builder{
			Docker:   client,
			Settings: settings,
			Packager: packager,
			Tags:     resolver,
			Warn:     console.Warn,
		},
		Legacy: legacyGenerator{runner: gitinfo.ExecRunner{}},
		NewExporter: func(ctx context.Context, bucket, prefix string) (app.ContextExporter, error) {
			s3Client, err := export.NewS3Client(ctx)
			if err != nil {
				return nil, err
			}
			return export.Exporter{
				Uploader: export.Uploader{Client: s3Client, Bucket: bucket, Prefix: prefix},
				Packager: packager,
				Tags:     resolver,
				Settings: settings,
				Warn:     console.Warn,
			}, nil
		},
		Records:      state.RecordStore{},
		ValidateTool: imagebuild.ValidateDockerInstalled,
	}

	return deps, asCloser(client), nil
}

// legacyGenerator adapts the repo2docker path to the app interface.
type legacyGenerator struct {
	runner gitinfo.CommandRunner
}

func (g legacyGenerator) Generate(ctx context.Context, dir, entryCmd string) (string, error) {
	return imagebuild.GenerateImage(ctx, g.runner, dir, entryCmd)
}

// asCloser attempts to cast the Docker client to an io.Closer.
// Returns nil if the client does not implement the Closer interface.
func asCloser(client imagebuild.DockerClient) io.Closer {
	if closer, ok := client.(io.Closer); ok {
		return closer
	}
	return nil
}
