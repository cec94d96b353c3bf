// Where: internal/imagebuild/errors.go
// What: Named error types for the build pipeline.
// Why: Callers branch on what failed, not on message text.
package imagebuild

import "fmt"

// ToolNotFoundError reports a required external executable missing from the
// host. The message carries remediation guidance.
type ToolNotFoundError struct {
	Tool string
	Hint string
}

func (e *ToolNotFoundError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("could not find %s executable", e.Tool)
	}
	return fmt.Sprintf("could not find %s executable: %s", e.Tool, e.Hint)
}

// BuildError reports a failure surfaced by the build engine itself, either
// through the SDK, the message stream, or legacy subprocess output.
type BuildError struct {
	Tag string
	Err error
}

func (e *BuildError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("image build failed: %v", e.Err)
	}
	return fmt.Sprintf("image build failed for %s: %v", e.Tag, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
