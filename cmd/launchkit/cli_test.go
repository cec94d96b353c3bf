// Where: cmd/launchkit/cli_test.go
// What: Tests for CLI dependency wiring.
// Why: Wiring failures should be caught without a Docker daemon.
package main

import (
	"context"
	"io"
	"testing"

	"github.com/docker/docker/api/types/build"

	"github.com/charlesfrye/launchkit/internal/imagebuild"
)

type stubDockerClient struct{}

func (stubDockerClient) ImageBuild(
	_ context.Context,
	_ io.Reader,
	_ build.ImageBuildOptions,
) (build.ImageBuildResponse, error) {
	return build.ImageBuildResponse{}, nil
}

func TestBuildDependencies(t *testing.T) {
	original := newDockerClient
	defer func() { newDockerClient = original }()
	newDockerClient = func() (imagebuild.DockerClient, error) {
		return stubDockerClient{}, nil
	}

	deps, closer, err := buildDependencies()
	if err != nil {
		t.Fatalf("build dependencies: %v", err)
	}
	if deps.Builder == nil {
		t.Fatal("builder not wired")
	}
	if deps.Legacy == nil {
		t.Fatal("legacy generator not wired")
	}
	if deps.NewExporter == nil {
		t.Fatal("exporter factory not wired")
	}
	if deps.Records == nil {
		t.Fatal("record store not wired")
	}
	if deps.ValidateTool == nil {
		t.Fatal("tool validator not wired")
	}
	if closer != nil {
		t.Fatal("stub client should not be treated as a closer")
	}
}
