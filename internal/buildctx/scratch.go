// Where: internal/buildctx/scratch.go
// What: Scratch-space allocation for build-context packaging.
// Why: Route temporary paths through an injectable provider for tests.
package buildctx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ScratchProvider allocates the transient paths one packaging run needs.
type ScratchProvider interface {
	// ScratchDir returns a fresh, uniquely named, empty directory.
	ScratchDir() (string, error)
	// ArchiveFile returns a fresh path for the context archive. The file
	// may or may not exist; the packager overwrites it.
	ArchiveFile() (string, error)
}

// TempScratch allocates scratch space under Root, defaulting to the system
// temporary directory. Names carry a random component so concurrent builds
// never collide.
type TempScratch struct {
	Root string
}

func (s TempScratch) ScratchDir() (string, error) {
	dir := filepath.Join(s.root(), fmt.Sprintf("launchkit-scratch-%s", uuid.NewString()))
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

func (s TempScratch) ArchiveFile() (string, error) {
	if err := os.MkdirAll(s.root(), 0o755); err != nil {
		return "", err
	}
	return filepath.Join(s.root(), fmt.Sprintf("launchkit-context-%s.tgz", uuid.NewString())), nil
}

func (s TempScratch) root() string {
	if s.Root != "" {
		return s.Root
	}
	return os.TempDir()
}
