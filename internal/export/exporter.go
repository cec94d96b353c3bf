// Where: internal/export/exporter.go
// What: Package-and-upload flow for remote builds.
// Why: Reuse the same context layout the local engine build consumes.
package export

import (
	"context"
	"fmt"
	"os"

	"github.com/charlesfrye/launchkit/internal/buildctx"
	"github.com/charlesfrye/launchkit/internal/descriptor"
	"github.com/charlesfrye/launchkit/internal/imagetag"
	"github.com/charlesfrye/launchkit/internal/recipe"
	"github.com/charlesfrye/launchkit/internal/tracking"
)

// Result reports where an exported context landed.
type Result struct {
	Tag string
	Key string
}

// Exporter packages a project the same way a local build would and uploads
// the archive for a remote builder. The archive never outlives the call.
type Exporter struct {
	Uploader Uploader
	Packager buildctx.Packager
	Tags     imagetag.Resolver
	Settings tracking.Settings
	Warn     func(string)
}

// Export renders the recipe, packages the context, and uploads it under a
// key derived from the image tag.
func (e Exporter) Export(
	ctx context.Context,
	project descriptor.Project,
	repositoryURI string,
	baseImage string,
) (Result, error) {
	settings := e.Settings
	if settings == nil {
		settings = tracking.EnvSettings{}
	}

	wandbProject, err := project.EnvValue(descriptor.EnvProject)
	if err != nil {
		return Result{}, err
	}
	wandbEntity, err := project.EnvValue(descriptor.EnvEntity)
	if err != nil {
		return Result{}, err
	}

	tag, err := e.Tags.Resolve(ctx, repositoryURI, project.Dir)
	if err != nil {
		return Result{}, err
	}

	baseURL, err := tracking.ResolveBaseURL(settings.BaseURL())
	if err != nil {
		return Result{}, err
	}

	recipeText, err := recipe.Render(recipe.Params{
		BaseImage:   baseImage,
		ContextRoot: buildctx.ArchiveRootName,
		BaseURL:     baseURL,
		APIKey:      settings.APIKey(),
		Project:     wandbProject,
		Entity:      wandbEntity,
		Name:        project.Name,
	})
	if err != nil {
		return Result{}, fmt.Errorf("render recipe: %w", err)
	}

	archivePath, err := e.Packager.Create(ctx, project.Dir, recipeText)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if err := os.Remove(archivePath); err != nil && !os.IsNotExist(err) {
			e.warnf("temporary context archive %s was not deleted: %v", archivePath, err)
		}
	}()

	key, err := e.Uploader.Upload(ctx, archivePath, tag)
	if err != nil {
		return Result{}, err
	}
	return Result{Tag: tag, Key: key}, nil
}

func (e Exporter) warnf(format string, args ...any) {
	if e.Warn == nil {
		return
	}
	e.Warn(fmt.Sprintf(format, args...))
}
