// Where: internal/app/deps.go
// What: Dependency definitions for CLI command execution.
// Why: Enable swapping every subsystem in tests.
package app

import (
	"context"
	"io"

	"github.com/charlesfrye/launchkit/internal/descriptor"
	"github.com/charlesfrye/launchkit/internal/export"
	"github.com/charlesfrye/launchkit/internal/imagebuild"
	"github.com/charlesfrye/launchkit/internal/state"
)

// ImageBuilder builds a tagged image for a project descriptor.
type ImageBuilder interface {
	BuildImage(ctx context.Context, project descriptor.Project, repositoryURI, baseImage string) (imagebuild.ImageHandle, error)
}

// LegacyGenerator produces an image via the legacy subprocess path.
type LegacyGenerator interface {
	Generate(ctx context.Context, dir, entryCmd string) (string, error)
}

// ContextExporter packages and uploads a build context for remote builders.
type ContextExporter interface {
	Export(ctx context.Context, project descriptor.Project, repositoryURI, baseImage string) (export.Result, error)
}

// RecordSaver persists a build record. Failures are reported as warnings,
// never as command failures.
type RecordSaver interface {
	Save(projectDir string, record state.Record) error
}

// ExporterFactory builds a ContextExporter for a bucket/prefix pair at
// command time, after flags are known.
type ExporterFactory func(ctx context.Context, bucket, prefix string) (ContextExporter, error)

// Dependencies holds all injected dependencies required for CLI command
// execution.
type Dependencies struct {
	Out          io.Writer
	Builder      ImageBuilder
	Legacy       LegacyGenerator
	NewExporter  ExporterFactory
	Records      RecordSaver
	ValidateTool func() error
}
