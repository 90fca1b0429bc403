package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var catalogCfg config.Catalog

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the component catalog file",
		Flags:   catalogCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if catalogCfg.Path() == "" {
				return goerr.New("catalog is required")
			}

			catalog, err := catalogCfg.Configure()
			if err != nil {
				color.New(color.FgRed, color.Bold).Printf("✗ %s\n", catalogCfg.Path())
				color.Red("  %s", err.Error())
				return err
			}

			color.New(color.FgGreen, color.Bold).Printf("✓ %s\n", catalogCfg.Path())
			for _, ct := range catalog.List() {
				tabs := 0
				fields := 0
				if ct.Schema != nil {
					tabs = len(ct.Schema.Tabs)
					fields = len(ct.Schema.FieldKeys())
				}
				color.Green("  %s (%s): %d tabs, %d fields", ct.Label, ct.Category, tabs, fields)
			}
			return nil
		},
	}
}
