package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/arus-retail/arus-retail/internal/app"
	"github.com/arus-retail/arus-retail/internal/observability"
	"github.com/arus-retail/arus-retail/internal/orders"
	"github.com/arus-retail/arus-retail/internal/platform/db"
	"github.com/arus-retail/arus-retail/internal/recon"
	"github.com/arus-retail/arus-retail/internal/stockledger"
	"github.com/arus-retail/arus-retail/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect database", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	orderRepo := orders.NewRepository(pool)
	ledgerRepo := stockledger.NewRepository(pool)
	reconService := recon.NewService(orderRepo, ledgerRepo)
	reconRepo := recon.NewRepository(pool)
	metrics := observability.NewMetrics()

	scanHandler := jobs.NewReconScanHandler(reconService, reconRepo, metrics, logger)

	nightlyScan, err := jobs.NewReconScanTask(jobs.ReconScanPayload{})
	if err != nil {
		logger.Error("build nightly scan task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskReconScan, Handler: scanHandler},
		},
		Cron: []jobs.CronRegistration{
			{Spec: cfg.ReconScanCron, Task: nightlyScan},
		},
	})
	if err != nil {
		logger.Error("build worker", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("starting worker", slog.String("cron", cfg.ReconScanCron))
	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
