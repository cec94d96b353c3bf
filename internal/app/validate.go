// Where: internal/app/validate.go
// What: Validate command handler.
// Why: Let callers check descriptors and the host before launching builds.
package app

import (
	"io"

	"github.com/charlesfrye/launchkit/internal/ui"
)

func runValidate(cli CLI, deps Dependencies, out io.Writer) int {
	console := &ui.Console{Out: out, Plain: true}

	project, baseImage, err := loadValidated(cli.Validate.Descriptor, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Item("Project dir", project.Dir)
	console.Item("Base image", baseImage)
	if project.Name != "" {
		console.Item("Run name", project.Name)
	}
	console.Success("descriptor is valid")
	return 0
}
