// Where: internal/descriptor/loader.go
// What: Descriptor file loading.
// Why: Parse YAML descriptors into validated Project values.
package descriptor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML descriptor file, validates it against the embedded
// schema, and resolves the project directory relative to the descriptor
// location when it is not absolute.
func Load(path string) (Project, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Project{}, fmt.Errorf("read descriptor: %w", err)
	}

	if err := validateSchema(content); err != nil {
		return Project{}, fmt.Errorf("descriptor %s: %w", path, err)
	}

	var project Project
	if err := yaml.Unmarshal(content, &project); err != nil {
		return Project{}, fmt.Errorf("parse descriptor: %w", err)
	}
	if project.Env == nil {
		project.Env = map[string]string{}
	}

	dir := strings.TrimSpace(project.Dir)
	if dir == "" {
		dir = "."
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(filepath.Dir(path), dir)
	}
	project.Dir = filepath.Clean(dir)

	return project, nil
}
