// Where: internal/descriptor/descriptor.go
// What: Project descriptor type and environment lookups.
// Why: Give the launcher one validated view of what to containerize.
package descriptor

import (
	"fmt"
	"strings"
)

// Environment keys the build pipeline reads from a descriptor.
const (
	EnvImage   = "image"
	EnvProject = "WANDB_PROJECT"
	EnvEntity  = "WANDB_ENTITY"
)

// Project describes a unit of work to containerize. It is constructed by
// the caller before a build runs and is read-only to the pipeline.
type Project struct {
	// Dir is the project directory copied into the build context.
	Dir string `yaml:"dir"`
	// Name is an optional human-readable run name.
	Name string `yaml:"name"`
	// Env maps named environment configuration values, including the
	// target tracking project and entity and the declared base image.
	Env map[string]string `yaml:"env"`
}

// MissingConfigurationError reports a required descriptor field that is
// absent or empty. It is returned before any side effect occurs.
type MissingConfigurationError struct {
	Key  string
	Hint string
}

func (e *MissingConfigurationError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("descriptor is missing required configuration %q", e.Key)
	}
	return fmt.Sprintf("descriptor is missing required configuration %q: %s", e.Key, e.Hint)
}

// EnvValue returns the named environment configuration value, or a
// MissingConfigurationError when the key is absent or blank.
func (p Project) EnvValue(key string) (string, error) {
	value, ok := p.Env[key]
	if !ok || strings.TrimSpace(value) == "" {
		return "", &MissingConfigurationError{Key: key}
	}
	return value, nil
}

// BaseImage returns the declared base image, or a MissingConfigurationError
// with guidance when the descriptor does not declare one.
func (p Project) BaseImage() (string, error) {
	value, ok := p.Env[EnvImage]
	if !ok || strings.TrimSpace(value) == "" {
		return "", &MissingConfigurationError{
			Key:  EnvImage,
			Hint: "declare the docker image to use via an 'image' entry under 'env'",
		}
	}
	return value, nil
}
