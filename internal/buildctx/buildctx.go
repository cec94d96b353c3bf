// Where: internal/buildctx/buildctx.go
// What: Build-context packaging for launch image builds.
// Why: Produce one transportable archive per build with guaranteed scratch cleanup.
package buildctx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Archive layout constants. Every entry in the produced archive is rooted
// under ArchiveRootName; the generated Dockerfile sits directly beneath it.
const (
	ArchiveRootName = "launch-docker-build-context"
	RecipeFileName  = "Dockerfile.launch-generated"

	projectContentsName = "project-contents"
)

// RecipeArchivePath is the Dockerfile location relative to the archive root,
// as the build engine expects it.
var RecipeArchivePath = ArchiveRootName + "/" + RecipeFileName

// PackagingError reports a filesystem failure while assembling the build
// context. The scratch directory is removed regardless.
type PackagingError struct {
	Op  string
	Err error
}

func (e *PackagingError) Error() string {
	return fmt.Sprintf("packaging build context: %s: %v", e.Op, e.Err)
}

func (e *PackagingError) Unwrap() error {
	return e.Err
}

// Packager assembles build-context archives. The zero value uses the system
// temporary directory and discards warnings.
type Packager struct {
	// Scratch allocates scratch directories and archive paths. Tests
	// substitute a sandboxed provider.
	Scratch ScratchProvider
	// Warn receives non-fatal cleanup failures.
	Warn func(string)
}

// Create copies workDir and the recipe into a fresh scratch directory and
// archives the copy as gzip-compressed tar. The scratch directory never
// survives the call; the returned archive file is owned by the caller.
func (p Packager) Create(ctx context.Context, workDir, recipeText string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	scratch := p.Scratch
	if scratch == nil {
		scratch = TempScratch{}
	}

	scratchDir, err := scratch.ScratchDir()
	if err != nil {
		return "", &PackagingError{Op: "allocate scratch directory", Err: err}
	}
	defer func() {
		if err := os.RemoveAll(scratchDir); err != nil {
			p.warnf("scratch directory %s was not removed: %v", scratchDir, err)
		}
	}()

	contentsDir := filepath.Join(scratchDir, projectContentsName)
	if err := copyTree(workDir, contentsDir); err != nil {
		return "", &PackagingError{Op: "copy project directory", Err: err}
	}

	recipePath := filepath.Join(contentsDir, RecipeFileName)
	if err := os.WriteFile(recipePath, []byte(recipeText), 0o600); err != nil {
		return "", &PackagingError{Op: "write recipe", Err: err}
	}

	archivePath, err := scratch.ArchiveFile()
	if err != nil {
		return "", &PackagingError{Op: "allocate archive path", Err: err}
	}
	if err := writeTarball(archivePath, contentsDir, ArchiveRootName); err != nil {
		if removeErr := os.Remove(archivePath); removeErr != nil && !os.IsNotExist(removeErr) {
			p.warnf("partial archive %s was not removed: %v", archivePath, removeErr)
		}
		return "", &PackagingError{Op: "archive build context", Err: err}
	}

	return archivePath, nil
}

func (p Packager) warnf(format string, args ...any) {
	if p.Warn == nil {
		return
	}
	p.Warn(fmt.Sprintf(format, args...))
}
