// Where: internal/recipe/recipe.go
// What: Render the generated Dockerfile for a launch build.
// Why: One template is the single source of truth for tracking injection.
package recipe

import (
	"bytes"
	"embed"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// WorkdirPath is where the project contents live inside the image.
const WorkdirPath = "/wandb/projects/code"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// Params carries every substitution the Dockerfile template needs.
type Params struct {
	BaseImage   string
	ContextRoot string
	Workdir     string
	BaseURL     string
	APIKey      string
	Project     string
	Entity      string
	// Name is optional; when empty no WANDB_NAME line is emitted.
	Name string
}

// Render produces the Dockerfile text for one build invocation. The result
// is written into the build context and never persisted beyond it.
func Render(params Params) (string, error) {
	if params.Workdir == "" {
		params.Workdir = WorkdirPath
	}
	return renderTemplate("dockerfile.tmpl", params)
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
