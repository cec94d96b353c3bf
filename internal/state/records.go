// Where: internal/state/records.go
// What: Build record persistence.
// Why: Let the launcher see what was last built for a project directory.
package state

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// EnvHome overrides the directory build records are stored under.
const EnvHome = "LAUNCHKIT_HOME"

const recordsFileName = "builds.json"

// Record captures one completed build for a project directory.
type Record struct {
	Tag       string    `json:"tag"`
	ImageID   string    `json:"image_id"`
	BaseImage string    `json:"base_image"`
	BuiltAt   time.Time `json:"built_at"`
}

// RecordStore persists build records keyed by project directory.
type RecordStore struct{}

// Load returns all known build records. A missing file yields an empty map.
func (RecordStore) Load() (map[string]Record, error) {
	path, err := recordsPath()
	if err != nil {
		return nil, err
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]Record{}, nil
		}
		return nil, err
	}
	var loaded map[string]Record
	if err := json.Unmarshal(payload, &loaded); err != nil {
		return nil, err
	}
	if loaded == nil {
		return map[string]Record{}, nil
	}
	return loaded, nil
}

// Save upserts the record for projectDir.
func (s RecordStore) Save(projectDir string, record Record) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	records[filepath.Clean(projectDir)] = record

	path, err := recordsPath()
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

// Remove deletes the record for projectDir if one exists.
func (s RecordStore) Remove(projectDir string) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	key := filepath.Clean(projectDir)
	if _, ok := records[key]; !ok {
		return nil
	}
	delete(records, key)

	path, err := recordsPath()
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func recordsPath() (string, error) {
	home, err := resolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, recordsFileName), nil
}

// resolveHome determines the base directory for launchkit data.
// Uses LAUNCHKIT_HOME if set, otherwise ~/.launchkit.
func resolveHome() (string, error) {
	if override := strings.TrimSpace(os.Getenv(EnvHome)); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".launchkit"), nil
}
