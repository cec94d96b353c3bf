// Where: internal/imagebuild/validate.go
// What: Host environment and descriptor validation.
// Why: Fail fast, before any filesystem or engine side effect.
package imagebuild

import (
	"os/exec"

	"github.com/charlesfrye/launchkit/internal/descriptor"
)

var lookPath = exec.LookPath

// ValidateDockerInstalled verifies the docker executable is reachable on
// PATH. No side effects.
func ValidateDockerInstalled() error {
	if _, err := lookPath("docker"); err != nil {
		return &ToolNotFoundError{
			Tool: "docker",
			Hint: "ensure Docker is installed as per the instructions at https://docs.docker.com/install/overview/",
		}
	}
	return nil
}

// ValidateDescriptor checks that the descriptor declares the base image the
// build requires. No side effects.
func ValidateDescriptor(project descriptor.Project) error {
	_, err := project.BaseImage()
	return err
}
