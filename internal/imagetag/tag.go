// Where: internal/imagetag/tag.go
// What: Deterministic image tag derivation.
// Why: Tie built images to the repository URI and git revision that produced them.
package imagetag

import (
	"context"
	"strings"

	"github.com/charlesfrye/launchkit/internal/gitinfo"
)

// DefaultRepository is used when no repository URI is supplied.
const DefaultRepository = "docker-project"

const shortCommitLen = 7

// Derive computes an image reference from a repository URI and a commit
// hash. An empty URI falls back to DefaultRepository, spaces are normalized
// to hyphens, and a non-empty commit contributes a ":<short sha>" suffix.
// Deterministic given the same inputs.
func Derive(repositoryURI, commit string) string {
	repo := repositoryURI
	if repo == "" {
		repo = DefaultRepository
	}
	repo = strings.ReplaceAll(repo, " ", "-")

	if commit == "" {
		return repo
	}
	if len(commit) > shortCommitLen {
		commit = commit[:shortCommitLen]
	}
	return repo + ":" + commit
}

// Resolver derives tags using the latest commit of a working directory.
type Resolver struct {
	Runner gitinfo.CommandRunner
}

// Resolve queries workDir for its latest commit and derives the tag. A
// directory without a resolvable commit produces a tag with no suffix.
func (r Resolver) Resolve(ctx context.Context, repositoryURI, workDir string) (string, error) {
	runner := r.Runner
	if runner == nil {
		runner = gitinfo.ExecRunner{}
	}
	commit, err := gitinfo.LastCommit(ctx, runner, workDir)
	if err != nil {
		return "", err
	}
	return Derive(repositoryURI, commit), nil
}
