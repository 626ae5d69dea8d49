package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"

	"github.com/kimberlabs/staking-ledger/internal/api"
	"github.com/kimberlabs/staking-ledger/internal/observability/metrics"
	"github.com/kimberlabs/staking-ledger/internal/observability/tracing"
)

const shutdownTimeout = 10 * time.Second

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the staking ledger api server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	d, err := newDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close(context.Background())

	if err := d.service.Bootstrap(ctx); err != nil {
		return fmt.Errorf("error while bootstrapping ledger: %w", err)
	}

	// initialize metrics with the metrics port from config
	metrics.Init(d.cfg.Metrics.GetMetricsPort())
	d.service.StartStatsPoller(ctx)

	server := api.New(&d.cfg.Server, d.service)

	var (
		wg       conc.WaitGroup
		serveErr error
	)
	wg.Go(func() {
		if err := server.Start(); err != nil {
			serveErr = err
			stop()
		}
	})

	<-ctx.Done()
	log.Info().Msg("Shutting down api server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down api server")
	}
	wg.Wait()

	return serveErr
}
