// Where: internal/descriptor/descriptor_test.go
// What: Tests for descriptor lookups and loading.
// Why: Ensure missing configuration surfaces as named errors, not panics.
package descriptor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnvValue(t *testing.T) {
	project := Project{Env: map[string]string{
		EnvProject: "experiments",
		EnvEntity:  " ",
	}}

	tests := []struct {
		name    string
		key     string
		want    string
		missing bool
	}{
		{name: "present", key: EnvProject, want: "experiments"},
		{name: "blank value", key: EnvEntity, missing: true},
		{name: "absent", key: "WANDB_NAME", missing: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := project.EnvValue(tc.key)
			if tc.missing {
				var missing *MissingConfigurationError
				if !errors.As(err, &missing) {
					t.Fatalf("expected MissingConfigurationError, got %v", err)
				}
				if missing.Key != tc.key {
					t.Fatalf("unexpected key in error: %q", missing.Key)
				}
				return
			}
			if err != nil {
				t.Fatalf("env value: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestBaseImageMissing(t *testing.T) {
	project := Project{Env: map[string]string{}}
	_, err := project.BaseImage()
	var missing *MissingConfigurationError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingConfigurationError, got %v", err)
	}
	if !strings.Contains(missing.Error(), "image") {
		t.Fatalf("error should mention the image field: %v", missing)
	}
}

func TestLoadResolvesRelativeDir(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "launch.yml")
	content := "dir: train\nname: warm-start\nenv:\n  image: python:3.11\n  WANDB_PROJECT: experiments\n  WANDB_ENTITY: research\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}

	project, err := Load(path)
	if err != nil {
		t.Fatalf("load descriptor: %v", err)
	}
	if project.Dir != filepath.Join(root, "train") {
		t.Fatalf("unexpected dir: %q", project.Dir)
	}
	if project.Name != "warm-start" {
		t.Fatalf("unexpected name: %q", project.Name)
	}
	if project.Env[EnvImage] != "python:3.11" {
		t.Fatalf("unexpected image: %q", project.Env[EnvImage])
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "launch.yml")
	content := "dir: .\nentrypoint: train.py\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected schema validation error for unknown field")
	}
}
