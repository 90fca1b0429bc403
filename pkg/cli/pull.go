package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/cli/config"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
	"github.com/uncal-lab/flowcanvas/pkg/repository/memory"
	"github.com/uncal-lab/flowcanvas/pkg/usecase"
	"github.com/uncal-lab/flowcanvas/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdPull() *cli.Command {
	var fileID string
	var backendCfg config.Backend

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "file-id",
			Usage:       "Scenario file ID to pull",
			Required:    true,
			Destination: &fileID,
		},
	}
	flags = append(flags, backendCfg.Flags()...)

	return &cli.Command{
		Name:  "pull",
		Usage: "Fetch a scenario canvas from the persistence service and print it",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := backendCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure backend client")
			}

			uc := usecase.New(memory.New(), client)
			components := uc.Scenario.Load(ctx, types.FileID(fileID))

			out, err := json.MarshalIndent(components, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to encode components")
			}
			safe.Write(ctx, os.Stdout, append(out, '\n'))
			return nil
		},
	}
}
