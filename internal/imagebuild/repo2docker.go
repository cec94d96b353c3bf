// Where: internal/imagebuild/repo2docker.go
// What: Legacy subprocess image generation via jupyter-repo2docker.
// Why: Kept as a separate alternative path; the SDK builder is canonical.
package imagebuild

import (
	"context"
	"fmt"
	"regexp"

	"github.com/charlesfrye/launchkit/internal/gitinfo"
)

var (
	taggedPattern = regexp.MustCompile(`Successfully tagged (.+):latest`)
	reusedPattern = regexp.MustCompile(`Reusing existing image \((.+)\)`)
)

// GenerateImage builds or reuses an image for a project directory by
// shelling out to jupyter-repo2docker, returning the image ID parsed from
// the tool's output. Output without a success or reuse marker is a
// BuildError.
func GenerateImage(ctx context.Context, runner gitinfo.CommandRunner, dir, entryCmd string) (string, error) {
	if runner == nil {
		return "", fmt.Errorf("command runner is required")
	}

	output, err := runner.RunOutput(
		ctx,
		dir,
		"jupyter-repo2docker",
		"--no-run",
		dir,
		fmt.Sprintf("%q", entryCmd),
	)
	if err != nil {
		return "", &BuildError{Err: fmt.Errorf("repo2docker: %w", err)}
	}

	if id, ok := parseRepo2DockerOutput(string(output)); ok {
		return id, nil
	}
	return "", &BuildError{Err: fmt.Errorf("repo2docker output has no tagged or reused image marker")}
}

func parseRepo2DockerOutput(output string) (string, bool) {
	if match := taggedPattern.FindStringSubmatch(output); match != nil {
		return match[1], true
	}
	if match := reusedPattern.FindStringSubmatch(output); match != nil {
		return match[1], true
	}
	return "", false
}
