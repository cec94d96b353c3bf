// Where: internal/recipe/recipe_test.go
// What: Tests for Dockerfile rendering.
// Why: The rendered recipe is a wire contract with the build engine.
package recipe

import (
	"strings"
	"testing"
)

func baseParams() Params {
	return Params{
		BaseImage:   "python:3.11",
		ContextRoot: "launch-docker-build-context",
		BaseURL:     "https://api.example.com",
		APIKey:      "secret",
		Project:     "experiments",
		Entity:      "research",
	}
}

func TestRenderWithoutName(t *testing.T) {
	content, err := Render(baseParams())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := strings.Join([]string{
		"FROM python:3.11",
		"COPY launch-docker-build-context/ /wandb/projects/code",
		"WORKDIR /wandb/projects/code",
		"ENV WANDB_BASE_URL=https://api.example.com",
		"ENV WANDB_API_KEY=secret",
		"ENV WANDB_PROJECT=experiments",
		"ENV WANDB_ENTITY=research",
		"ENV WANDB_LAUNCH=True",
		"USER root",
		"",
	}, "\n")
	if content != want {
		t.Fatalf("unexpected recipe:\n%s", content)
	}
}

func TestRenderWithName(t *testing.T) {
	params := baseParams()
	params.Name = "warm-start"
	content, err := Render(params)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if lines[7] != "ENV WANDB_NAME=warm-start" {
		t.Fatalf("name line misplaced or missing: %q", lines[7])
	}
	if lines[8] != "ENV WANDB_LAUNCH=True" {
		t.Fatalf("launch marker misplaced: %q", lines[8])
	}
}

func TestRenderTranslatedLocalURL(t *testing.T) {
	params := baseParams()
	params.BaseURL = "http://host.docker.internal:8080"
	content, err := Render(params)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(content, "ENV WANDB_BASE_URL=http://host.docker.internal:8080\n") {
		t.Fatalf("translated base url missing:\n%s", content)
	}
}
