package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"warlineup/lib/app"
	"warlineup/lib/cli"
	"warlineup/lib/env"
	"warlineup/lib/monitoring"
	"warlineup/lib/services/roster"
	"warlineup/lib/utils/logging"
	"warlineup/lib/utils/sentry"
	"warlineup/lib/web/coc"

	"github.com/google/uuid"
)

var logger = logging.NewLogger("LINEUP")

// Usage: ./bin/lineup [-v] [-log-level=<level>]
// All run input is read interactively; see .env for API configuration.
func main() {
	logging.ParseFlags()

	flushSentry, recoverSentry := logger.InitSentry()
	defer flushSentry()
	defer recoverSentry()

	runID := uuid.NewString()
	sentry.SetTag(logging.RUN_ID, runID)
	log := logger.With(map[string]any{logging.RUN_ID: runID})

	if err := env.Validate(); err != nil {
		log.Fatal("INVALID_ENVIRONMENT", err, nil)
	}

	monitoring.RegisterLineupMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// Restore default handling so a second interrupt kills the process.
		<-ctx.Done()
		stop()
	}()

	client := coc.NewClient(coc.Config{
		BaseURL:           env.CocURLBase,
		APIKey:            env.CocAPIKey,
		Timeout:           env.CocHTTPTimeout,
		RequestsPerSecond: env.CocRequestsPerSecond,
	})

	log.Debug("SERVICE_STARTED", map[string]any{
		logging.ENDPOINT:    env.CocURLBase,
		logging.CONCURRENCY: env.CocConcurrency,
		logging.RATE:        env.CocRequestsPerSecond,
		logging.TIMEOUT:     env.CocHTTPTimeout.String(),
	})

	optimizer := app.NewOptimizer(
		roster.NewFetcher(client, os.Stdout, env.CocConcurrency, log),
		cli.NewPrompter(os.Stdin, os.Stdout),
		os.Stdout,
		log,
	)

	runErr := optimizer.Run(ctx)

	if err := monitoring.WriteTextfile(env.MetricsTextfile); err != nil {
		log.Warn("METRICS_WRITE_FAILED", err, map[string]any{
			logging.PATH: env.MetricsTextfile,
		})
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			log.Info("INTERRUPTED", nil)
			flushSentry()
			os.Exit(130)
		}
		if errors.Is(runErr, cli.ErrInvalidWarSize) {
			log.Fatal("INVALID_WAR_SIZE", runErr, nil)
		}
		log.Fatal("LINEUP_FAILED", runErr, nil)
	}
}
