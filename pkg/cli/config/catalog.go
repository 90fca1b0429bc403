package config

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/uncal-lab/flowcanvas/pkg/domain/interfaces"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// CatalogFile is the on-disk shape of the component catalog.
type CatalogFile struct {
	Components []model.ComponentType `toml:"component"`
}

// LoadCatalog reads and validates a component catalog from a TOML file.
func LoadCatalog(path string) (*model.Catalog, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, err.Error(), goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V(ConfigPathKey, path))
	}

	var file CatalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, err.Error(), goerr.V(ConfigPathKey, path))
	}

	entries := make([]*model.ComponentType, 0, len(file.Components))
	for i := range file.Components {
		entries = append(entries, &file.Components[i])
	}

	catalog, err := model.NewCatalog(entries)
	if err != nil {
		return nil, goerr.Wrap(err, "catalog validation failed", goerr.V(ConfigPathKey, path))
	}

	return catalog, nil
}

// Catalog holds CLI flags for the component catalog
type Catalog struct {
	path string
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to the component catalog TOML file",
			Sources:     cli.EnvVars("FLOWCANVAS_CATALOG"),
			Destination: &c.path,
		},
	}
}

// Path returns the configured catalog file path
func (c *Catalog) Path() string {
	return c.path
}

// Configure loads the catalog. A missing flag yields an empty catalog.
func (c *Catalog) Configure() (*model.Catalog, error) {
	if c.path == "" {
		return model.NewCatalog(nil)
	}
	return LoadCatalog(c.path)
}

// Seed inserts every catalog entry that the repository does not know yet.
func Seed(ctx context.Context, repo interfaces.CatalogRepository, catalog *model.Catalog) error {
	for _, ct := range catalog.List() {
		if ct.ID != "" {
			if _, err := repo.Get(ctx, ct.ID); err == nil {
				continue
			}
		}
		if _, err := repo.Create(ctx, ct); err != nil {
			return goerr.Wrap(err, "failed to seed component type", goerr.V(TypeIDKey, ct.ID))
		}
	}
	return nil
}
