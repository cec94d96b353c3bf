// Where: internal/tracking/settings.go
// What: Tracking service settings access and base-URL translation.
// Why: Containers cannot reach the host's "localhost"; builds need a translated URL.
package tracking

import (
	"fmt"
	"os"
	"strings"
)

// Default endpoint when the environment declares none.
const DefaultBaseURL = "https://api.wandb.ai"

const (
	// hostGateway resolves back to the host from inside a container.
	hostGateway = "http://host.docker.internal"
	devPort     = "9002"
)

// Environment variables consumed by EnvSettings.
const (
	EnvBaseURL = "WANDB_BASE_URL"
	EnvAPIKey  = "WANDB_API_KEY"
)

// Settings exposes the tracking configuration a build needs. The host
// launcher injects its own accessor; the CLI reads the environment.
type Settings interface {
	BaseURL() string
	APIKey() string
}

// EnvSettings reads tracking settings from process environment variables.
type EnvSettings struct{}

func (EnvSettings) BaseURL() string {
	if url := strings.TrimSpace(os.Getenv(EnvBaseURL)); url != "" {
		return url
	}
	return DefaultBaseURL
}

func (EnvSettings) APIKey() string {
	return strings.TrimSpace(os.Getenv(EnvAPIKey))
}

// IsLocalURL reports whether the base URL points at a tracking server on
// the host machine itself.
func IsLocalURL(url string) bool {
	return strings.Contains(url, "localhost") || strings.Contains(url, "127.0.0.1")
}

// IsDevURL reports whether the base URL points at a development deployment.
func IsDevURL(url string) bool {
	return strings.Contains(url, "wandb.test")
}

// ResolveBaseURL translates a tracking base URL into one reachable from a
// container: local URLs keep their advertised port behind the host gateway,
// dev URLs map to the fixed dev port, and everything else passes through.
func ResolveBaseURL(url string) (string, error) {
	switch {
	case IsLocalURL(url):
		parts := strings.Split(url, ":")
		port := parts[len(parts)-1]
		if port == "" || strings.Contains(port, "/") {
			return "", fmt.Errorf("local tracking url %q has no explicit port", url)
		}
		return fmt.Sprintf("%s:%s", hostGateway, port), nil
	case IsDevURL(url):
		return fmt.Sprintf("%s:%s", hostGateway, devPort), nil
	default:
		return url, nil
	}
}
