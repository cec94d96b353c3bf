// Where: internal/app/export.go
// What: Export command handler.
// Why: Hand a packaged context to remote builders without a local engine build.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charlesfrye/launchkit/internal/ui"
)

func runExport(cli CLI, deps Dependencies, out io.Writer) int {
	console := &ui.Console{Out: out, Plain: true}
	ctx := context.Background()

	if deps.NewExporter == nil {
		return exitWithError(out, errors.New("exporter is not configured"))
	}

	project, baseImage, err := loadValidated(cli.Export.Descriptor, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	exporter, err := deps.NewExporter(ctx, cli.Export.Bucket, cli.Export.Prefix)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("📦", fmt.Sprintf("Exporting build context for %s", project.Dir))
	result, err := exporter.Export(ctx, project, cli.Export.Repository, baseImage)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Item("Tag", result.Tag)
	console.Item("Object key", result.Key)
	console.Success("context exported")
	return 0
}
