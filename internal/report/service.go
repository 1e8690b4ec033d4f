// Package report orchestrates the catalog workflow: fetch the feed, derive a
// summary, keep the latest one available for the HTTP surface, and hand it to
// the optional snapshot and publisher collaborators.
package report

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benzi604/earthquakes/internal/domain"
	"github.com/benzi604/earthquakes/internal/observability"
)

// Source retrieves one whole catalog plus the raw feed document.
type Source interface {
	Fetch(ctx context.Context) (domain.Catalog, []byte, error)
}

// SnapshotWriter persists the raw feed document after a fetch.
type SnapshotWriter interface {
	Write(raw []byte) error
}

// Publisher delivers a derived summary downstream.
type Publisher interface {
	PublishSummary(ctx context.Context, summary domain.Summary) error
}

// Service runs the fetch-summarize-publish cycle and serves the current
// summary. The refresh loop is the only writer; readers take copies under
// RLock, so a long summary response never blocks a refresh.
type Service struct {
	source    Source
	snapshot  SnapshotWriter // nil disables snapshot writes
	publisher Publisher      // nil disables publishing
	zone      *time.Location
	interval  time.Duration // 0 means fetch once
	logger    *slog.Logger
	metrics   *observability.Metrics

	mu      sync.RWMutex
	current domain.Summary
	ready   atomic.Bool
}

// New creates a Service. snapshot and publisher may be nil to disable those
// stages; a nil zone derives years in UTC.
func New(source Source, snapshot SnapshotWriter, publisher Publisher, zone *time.Location, interval time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		source:    source,
		snapshot:  snapshot,
		publisher: publisher,
		zone:      zone,
		interval:  interval,
		logger:    logger,
		metrics:   metrics,
	}
}

// Refresh performs one full cycle: fetch the catalog, write the snapshot,
// build the summary, swap it in, and publish. Snapshot and publish failures
// are logged and do not fail the cycle; a fetch or summarize failure leaves
// the previous summary serving.
func (s *Service) Refresh(ctx context.Context) error {
	catalog, raw, err := s.source.Fetch(ctx)
	if err != nil {
		s.metrics.RefreshTotal.WithLabelValues("error").Inc()
		return err
	}

	if s.snapshot != nil {
		if err := s.snapshot.Write(raw); err != nil {
			s.logger.Warn("snapshot write failed", "error", err)
		}
	}

	summary, err := domain.BuildSummary(catalog, s.zone)
	if err != nil {
		s.metrics.RefreshTotal.WithLabelValues("error").Inc()
		return err
	}

	s.mu.Lock()
	s.current = summary
	s.mu.Unlock()
	s.ready.Store(true)
	s.metrics.RefreshTotal.WithLabelValues("success").Inc()
	s.metrics.LastRefresh.Set(float64(summary.GeneratedAt.Unix()))
	s.metrics.ServiceReady.Set(1)

	s.logger.Info("catalog refreshed",
		"records", summary.Count,
		"years", len(summary.QuakesPerYear.Years),
		"strongest_magnitude", summary.Strongest.Magnitude)

	if s.publisher != nil {
		if err := s.publisher.PublishSummary(ctx, summary); err != nil {
			s.logger.Warn("summary publish failed", "error", err)
		} else {
			s.metrics.SummariesPublished.Inc()
		}
	}

	return nil
}

// Summary returns a copy of the current summary and whether one exists yet.
func (s *Service) Summary() (domain.Summary, bool) {
	if !s.ready.Load() {
		return domain.Summary{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, true
}

// CheckReadiness returns nil once at least one refresh has succeeded, or an
// error describing why the service is not yet ready.
func (s *Service) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("no catalog summary available yet")
	}
	return nil
}

// Run refreshes once, then re-refreshes on the configured interval until the
// context is cancelled. The initial refresh error is returned so the caller
// can fail startup; later failures are logged and the stale summary keeps
// serving.
func (s *Service) Run(ctx context.Context) error {
	s.logger.Info("report service started", "refresh_interval", s.interval)

	if err := s.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	if s.interval <= 0 {
		<-ctx.Done()
		s.logger.Info("report service stopping", "reason", ctx.Err())
		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("report service stopping", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("catalog refresh failed", "error", err)
			}
		}
	}
}
