package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/uncal-lab/flowcanvas/pkg/cli/config"
	httpctrl "github.com/uncal-lab/flowcanvas/pkg/controller/http"
	"github.com/uncal-lab/flowcanvas/pkg/service/events"
	"github.com/uncal-lab/flowcanvas/pkg/usecase"
	"github.com/uncal-lab/flowcanvas/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var authSecret string
	var repoCfg config.Repository
	var catalogCfg config.Catalog
	var slackCfg config.Slack

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("FLOWCANVAS_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "auth-secret",
			Usage:       "HS256 secret for API bearer tokens (auth disabled when empty)",
			Sources:     cli.EnvVars("FLOWCANVAS_AUTH_SECRET"),
			Destination: &authSecret,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, catalogCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the scenario persistence HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Error("failed to close repository", "error", err.Error())
				}
			}()

			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load component catalog")
			}
			if catalog.Len() > 0 {
				if err := config.Seed(ctx, repo.Catalog(), catalog); err != nil {
					return goerr.Wrap(err, "failed to seed component catalog")
				}
				logger.Info("Component catalog seeded", "count", catalog.Len())
			}

			uc := usecase.New(repo, nil,
				usecase.WithNotifier(slackCfg.Configure()),
				usecase.WithEventBus(events.New()),
			)

			var opts []httpctrl.Options
			if authSecret != "" {
				opts = append(opts, httpctrl.WithAuthSecret([]byte(authSecret)))
				logger.Info("API authentication enabled")
			} else {
				logger.Warn("API authentication disabled (development only)")
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, opts...),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("Starting HTTP server", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "HTTP server failed")
				}
			case <-ctx.Done():
				logger.Info("Shutting down HTTP server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shut down HTTP server")
				}
			}

			return nil
		},
	}
}
