package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/go-petr/pet-ledger/cmd/httpserver"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API until SIGINT or SIGTERM.

Failed snapshot saves are retried on SNAPSHOT_RETRY_SPEC and once more on shutdown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			return runServe(ctx, a)
		},
	}
}

func runServe(ctx context.Context, a *app) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := httpserver.New(a.ledger, a.logger, a.config)
	if err != nil {
		return err
	}

	retry := cron.New()
	if _, err := a.ledger.ScheduleFlush(ctx, retry, a.config.SnapshotRetrySpec); err != nil {
		return err
	}

	retry.Start()

	srv := &http.Server{
		Addr:              a.config.ServerAddress,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info().Str("address", srv.Addr).Msg("PET LEDGER SERVER HAS STARTED")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()

		<-retry.Stop().Done()

		err := srv.Shutdown(shutdownCtx)

		if flushErr := a.ledger.Flush(a.logger.WithContext(shutdownCtx)); flushErr != nil {
			a.logger.Error().Err(flushErr).Msg("unsaved changes lost")
		}

		return err
	})

	return g.Wait()
}
