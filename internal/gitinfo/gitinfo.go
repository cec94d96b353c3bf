// Where: internal/gitinfo/gitinfo.go
// What: Read-only git queries for project directories.
// Why: Derive version suffixes without depending on repository layout.
package gitinfo

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner defines the interface for executing external commands.
type CommandRunner interface {
	RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner is a concrete implementation of CommandRunner using os/exec.
type ExecRunner struct{}

func (r ExecRunner) RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// LastCommit returns the full commit hash of HEAD for workDir. A directory
// that is not inside a repository, or a repository without commits, yields
// an empty string and no error.
func LastCommit(ctx context.Context, runner CommandRunner, workDir string) (string, error) {
	if runner == nil {
		return "", fmt.Errorf("command runner is required")
	}
	out, err := runner.RunOutput(ctx, workDir, "git", "rev-parse", "HEAD")
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		// Missing repository and unborn HEAD both mean "no version".
		return "", nil
	}
	commit := strings.TrimSpace(string(out))
	if strings.Contains(commit, " ") || strings.Contains(commit, "\n") {
		return "", nil
	}
	return commit, nil
}
