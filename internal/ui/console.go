// Where: internal/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize prefixes and indentation across commands.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Console provides helper methods for formatted output. When Plain is set
// (non-TTY output), emoji prefixes are replaced with plain markers.
type Console struct {
	Out   io.Writer
	Plain bool
}

// New creates a Console writing to the provided writer. Emoji output is
// enabled only when the writer is a terminal.
func New(out io.Writer) *Console {
	plain := true
	if file, ok := out.(*os.File); ok {
		plain = !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd())
	}
	return &Console{Out: out, Plain: plain}
}

// Header prints a section header.
// Example: 🐳 Building image my-repo:abc1234
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s %s\n", c.prefix(emoji, "==>"), title)
}

// Item prints a key-value item with indentation.
// Example:    Tag: my-repo:abc1234
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-14s %v\n", key+":", value)
}

// Success prints a success message.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "%s %s\n", c.prefix("✅", "ok:"), msg)
}

// Warn prints a non-fatal problem. Used as the warn sink for best-effort
// cleanup failures.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.Out, "%s %s\n", c.prefix("⚠️", "warning:"), msg)
}

func (c *Console) prefix(emoji, plain string) string {
	if c.Plain {
		return plain
	}
	return emoji
}
