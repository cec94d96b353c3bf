// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/charlesfrye/launchkit/internal/version"
)

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	EnvFile string `name:"env-file" help:"Path to .env file"`

	Build    BuildCmd    `cmd:"" help:"Build a tagged image from a project descriptor"`
	Validate ValidateCmd `cmd:"" help:"Validate the host environment and a project descriptor"`
	Export   ExportCmd   `cmd:"" help:"Package a build context and upload it for a remote builder"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type BuildCmd struct {
	Descriptor string `arg:"" help:"Path to the project descriptor YAML"`
	Repository string `short:"r" help:"Repository URI used as the image tag prefix"`
	Legacy     bool   `help:"Use the legacy repo2docker path instead of the engine build"`
	EntryPoint string `name:"entry-point" help:"Entry command for the legacy path"`
}

type ValidateCmd struct {
	Descriptor string `arg:"" help:"Path to the project descriptor YAML"`
}

type ExportCmd struct {
	Descriptor string `arg:"" help:"Path to the project descriptor YAML"`
	Repository string `short:"r" help:"Repository URI used as the image tag prefix"`
	Bucket     string `required:"" help:"Destination S3 bucket"`
	Prefix     string `default:"contexts" help:"Object key prefix"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution. It parses the
// arguments, loads environment defaults, and dispatches to the requested
// handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	cli := CLI{}
	parser, err := kong.New(&cli, kong.Name("launchkit"), kong.Exit(func(int) {}))
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	// Load environment file if provided or if .env exists in current directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	handlers := map[string]commandHandler{
		"build <descriptor>":    runBuild,
		"validate <descriptor>": runValidate,
		"export <descriptor>":   runExport,
		"version":               runVersion,
	}
	if handler, ok := handlers[command]; ok {
		return handler(cli, deps, out), true
	}
	return 0, false
}

func runVersion(_ CLI, _ Dependencies, out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}
