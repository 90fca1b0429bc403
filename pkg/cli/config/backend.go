package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/service/backend"
	"github.com/urfave/cli/v3"
)

// Backend holds CLI flags for the scenario persistence service
type Backend struct {
	baseURL string
	token   string
}

// Flags returns CLI flags for backend configuration
func (b *Backend) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend-url",
			Usage:       "Base URL of the scenario persistence service",
			Sources:     cli.EnvVars("FLOWCANVAS_BACKEND_URL"),
			Destination: &b.baseURL,
		},
		&cli.StringFlag{
			Name:        "backend-token",
			Usage:       "Bearer token for the persistence service",
			Sources:     cli.EnvVars("FLOWCANVAS_BACKEND_TOKEN"),
			Destination: &b.token,
		},
	}
}

// BaseURL returns the configured service base URL
func (b *Backend) BaseURL() string {
	return b.baseURL
}

// Configure builds the HTTP client for the persistence service.
func (b *Backend) Configure() (*backend.Client, error) {
	if b.baseURL == "" {
		return nil, goerr.New("backend-url is required")
	}

	var opts []backend.Option
	if b.token != "" {
		opts = append(opts, backend.WithTokenSource(backend.StaticTokenSource(b.token)))
	}
	return backend.New(b.baseURL, opts...), nil
}
