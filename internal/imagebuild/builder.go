// Where: internal/imagebuild/builder.go
// What: Image build orchestration.
// Why: One linear path from descriptor to tagged image, no retries.
package imagebuild

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/pkg/jsonmessage"

	"github.com/charlesfrye/launchkit/internal/buildctx"
	"github.com/charlesfrye/launchkit/internal/descriptor"
	"github.com/charlesfrye/launchkit/internal/imagetag"
	"github.com/charlesfrye/launchkit/internal/recipe"
	"github.com/charlesfrye/launchkit/internal/tracking"
)

var errDockerClientNil = errors.New("docker client is nil")

// ImageHandle identifies a built image. ID is the engine-reported image ID
// when the message stream carried one, otherwise the tag stands in.
type ImageHandle struct {
	ID  string
	Tag string
}

// Builder drives the canonical SDK build path: derive tag, render recipe,
// package context, build, clean up. Every call is synchronous and fatal on
// first error.
type Builder struct {
	Docker   DockerClient
	Settings tracking.Settings
	Packager buildctx.Packager
	Tags     imagetag.Resolver
	// Warn receives best-effort cleanup failures.
	Warn func(string)
}

// BuildImage builds a tagged image containing the project directory on top
// of baseImage. Validation happens before any filesystem or engine side
// effect; the context archive never outlives the call.
func (b Builder) BuildImage(
	ctx context.Context,
	project descriptor.Project,
	repositoryURI string,
	baseImage string,
) (ImageHandle, error) {
	if b.Docker == nil {
		return ImageHandle{}, errDockerClientNil
	}
	settings := b.Settings
	if settings == nil {
		settings = tracking.EnvSettings{}
	}

	wandbProject, err := project.EnvValue(descriptor.EnvProject)
	if err != nil {
		return ImageHandle{}, err
	}
	wandbEntity, err := project.EnvValue(descriptor.EnvEntity)
	if err != nil {
		return ImageHandle{}, err
	}

	tag, err := b.Tags.Resolve(ctx, repositoryURI, project.Dir)
	if err != nil {
		return ImageHandle{}, err
	}

	baseURL, err := tracking.ResolveBaseURL(settings.BaseURL())
	if err != nil {
		return ImageHandle{}, err
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
		return ImageHandle{}, fmt.Errorf("render recipe: %w", err)
	}

	archivePath, err := b.Packager.Create(ctx, project.Dir, recipeText)
	if err != nil {
		return ImageHandle{}, err
	}
	defer func() {
		if err := os.Remove(archivePath); err != nil && !os.IsNotExist(err) {
			b.warnf("temporary context archive %s was not deleted: %v", archivePath, err)
		}
	}()

	archive, err := os.Open(archivePath)
	if err != nil {
		return ImageHandle{}, fmt.Errorf("open context archive: %w", err)
	}
	defer archive.Close()

	response, err := b.Docker.ImageBuild(ctx, archive, build.ImageBuildOptions{
		Tags:        []string{tag},
		Dockerfile:  buildctx.RecipeArchivePath,
		ForceRemove: true,
		Remove:      true,
	})
	if err != nil {
		return ImageHandle{}, &BuildError{Tag: tag, Err: err}
	}
	defer response.Body.Close()

	imageID, err := consumeBuildStream(response.Body)
	if err != nil {
		return ImageHandle{}, &BuildError{Tag: tag, Err: err}
	}
	if imageID == "" {
		imageID = tag
	}

	return ImageHandle{ID: imageID, Tag: tag}, nil
}

// consumeBuildStream drains the engine's JSON message stream, returning the
// image ID from the final aux message when present. An error message in the
// stream fails the build.
func consumeBuildStream(body io.Reader) (string, error) {
	decoder := json.NewDecoder(body)
	var imageID string
	for {
		var message jsonmessage.JSONMessage
		if err := decoder.Decode(&message); err != nil {
			if err == io.EOF {
				return imageID, nil
			}
			return "", fmt.Errorf("decode build output: %w", err)
		}
		if message.Error != nil {
			return "", message.Error
		}
		if message.Aux != nil {
			var aux struct {
				ID string `json:"ID"`
			}
			if err := json.Unmarshal(*message.Aux, &aux); err == nil && aux.ID != "" {
				imageID = aux.ID
			}
		}
	}
}

func (b Builder) warnf(format string, args ...any) {
	if b.Warn == nil {
		return
	}
	b.Warn(fmt.Sprintf(format, args...))
}
