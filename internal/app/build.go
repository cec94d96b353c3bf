// Where: internal/app/build.go
// What: Build command handler.
// Why: Orchestrate validate, build, and record in a testable way.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charlesfrye/launchkit/internal/descriptor"
	"github.com/charlesfrye/launchkit/internal/imagebuild"
	"github.com/charlesfrye/launchkit/internal/state"
	"github.com/charlesfrye/launchkit/internal/ui"
)

var errBuilderNotConfigured = errors.New("builder is not configured")

func runBuild(cli CLI, deps Dependencies, out io.Writer) int {
	console := &ui.Console{Out: out, Plain: true}
	ctx := context.Background()

	project, baseImage, err := loadValidated(cli.Build.Descriptor, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	if cli.Build.Legacy {
		return runLegacyBuild(ctx, cli, deps, console, out, project)
	}

	if deps.Builder == nil {
		return exitWithError(out, errBuilderNotConfigured)
	}

	console.Header("🐳", fmt.Sprintf("Building image for %s", project.Dir))
	handle, err := deps.Builder.BuildImage(ctx, project, cli.Build.Repository, baseImage)
	if err != nil {
		return exitWithError(out, err)
	}

	recordBuild(deps, console, project, baseImage, handle)

	console.Item("Tag", handle.Tag)
	console.Item("Image", handle.ID)
	console.Success("build complete")
	return 0
}

func runLegacyBuild(
	ctx context.Context,
	cli CLI,
	deps Dependencies,
	console *ui.Console,
	out io.Writer,
	project descriptor.Project,
) int {
	if deps.Legacy == nil {
		return exitWithError(out, errors.New("legacy generator is not configured"))
	}

	console.Header("🐳", fmt.Sprintf("Generating image for %s via repo2docker", project.Dir))
	imageID, err := deps.Legacy.Generate(ctx, project.Dir, cli.Build.EntryPoint)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Item("Image", imageID)
	console.Success("build complete")
	return 0
}

// loadValidated runs every up-front check: tool presence, descriptor schema,
// and the declared base image. Nothing here has side effects.
func loadValidated(path string, deps Dependencies) (descriptor.Project, string, error) {
	validateTool := deps.ValidateTool
	if validateTool == nil {
		validateTool = imagebuild.ValidateDockerInstalled
	}
	if err := validateTool(); err != nil {
		return descriptor.Project{}, "", err
	}

	project, err := descriptor.Load(path)
	if err != nil {
		return descriptor.Project{}, "", err
	}

	baseImage, err := project.BaseImage()
	if err != nil {
		return descriptor.Project{}, "", err
	}
	return project, baseImage, nil
}

// recordBuild persists the build record; failure is a warning only.
func recordBuild(
	deps Dependencies,
	console *ui.Console,
	project descriptor.Project,
	baseImage string,
	handle imagebuild.ImageHandle,
) {
	if deps.Records == nil {
		return
	}
	record := state.Record{
		Tag:       handle.Tag,
		ImageID:   handle.ID,
		BaseImage: baseImage,
		BuiltAt:   time.Now().UTC(),
	}
	if err := deps.Records.Save(project.Dir, record); err != nil {
		console.Warn(fmt.Sprintf("build record was not saved: %v", err))
	}
}
