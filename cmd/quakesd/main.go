package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/benzi604/earthquakes/internal/adapter/http"
	kafkaadapter "github.com/benzi604/earthquakes/internal/adapter/kafka"
	"github.com/benzi604/earthquakes/internal/adapter/usgs"
	"github.com/benzi604/earthquakes/internal/config"
	"github.com/benzi604/earthquakes/internal/observability"
	"github.com/benzi604/earthquakes/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := usgs.NewClient(cfg.FeedURL, cfg.FeedTimeout, metrics, logger)
	feed := usgs.NewFeed(client, usgs.Query{
		StartTime:    cfg.QueryStartTime,
		EndTime:      cfg.QueryEndTime,
		MinLatitude:  cfg.QueryMinLatitude,
		MaxLatitude:  cfg.QueryMaxLatitude,
		MinLongitude: cfg.QueryMinLongitude,
		MaxLongitude: cfg.QueryMaxLongitude,
		MinMagnitude: cfg.QueryMinMagnitude,
		OrderBy:      cfg.QueryOrderBy,
	})

	var snapshot report.SnapshotWriter
	if cfg.SnapshotPath != "" {
		snapshot = usgs.Snapshot{Path: cfg.SnapshotPath}
		logger.Info("snapshot writes enabled", "path", cfg.SnapshotPath)
	}

	// Summary publishing is feature-flagged via KAFKA_BROKERS / PUBLISH_ENABLED.
	var publisher report.Publisher
	var kafkaPublisher *kafkaadapter.Publisher
	if cfg.PublishEnabled {
		kafkaPublisher = kafkaadapter.NewPublisher(cfg, logger)
		publisher = kafkaPublisher
		metrics.PublishEnabled.Set(1)
		logger.Info("summary publishing enabled", "topic", cfg.KafkaSummaryTopic)
	} else {
		logger.Info("summary publishing disabled")
	}

	svc := report.New(feed, snapshot, publisher, cfg.Zone, cfg.RefreshInterval, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, svc, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start the refresh loop.
	go func() {
		if err := svc.Run(ctx); err != nil {
			logger.Error("report service error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
