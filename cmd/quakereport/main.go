// Command quakereport runs the catalog workflow once: fetch the USGS feed (or
// load a stored snapshot), print the headline figures, and write the two
// charts as standalone HTML files.
//
// Query parameters, feed URL, and time zone come from the environment (see
// internal/config); defaults reproduce the United Kingdom catalog from 2000
// through October 2018.
//
// Usage:
//
//	go run ./cmd/quakereport                      # fetch live, write quakesinfo.json + charts/
//	go run ./cmd/quakereport -offline quakesinfo.json
//	go run ./cmd/quakereport -snapshot '' -charts ''   # print only
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/benzi604/earthquakes/internal/adapter/chart"
	"github.com/benzi604/earthquakes/internal/adapter/usgs"
	"github.com/benzi604/earthquakes/internal/config"
	"github.com/benzi604/earthquakes/internal/domain"
	"github.com/benzi604/earthquakes/internal/observability"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	offline := flag.String("offline", "", "load the catalog from this snapshot file instead of fetching")
	snapshot := flag.String("snapshot", "quakesinfo.json", "write the raw feed document here after fetching (empty disables)")
	chartDir := flag.String("charts", "charts", "directory for rendered chart HTML files (empty disables)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	catalog, err := loadCatalog(cfg, *offline, *snapshot)
	if err != nil {
		return err
	}

	summary, err := domain.BuildSummary(catalog, cfg.Zone)
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %d earthquakes\n", summary.Count)
	fmt.Printf("The strongest earthquake was at (%g, %g) with magnitude %g\n",
		summary.Strongest.Location.Lon, summary.Strongest.Location.Lat, summary.Strongest.Magnitude)

	if *chartDir == "" {
		return nil
	}

	avgPath := filepath.Join(*chartDir, "average-magnitude.html")
	if err := chart.WriteLineFile(avgPath, domain.AverageMagnitudePlot(summary.AverageMagnitude)); err != nil {
		return err
	}
	log.Printf("wrote %s", avgPath)

	countPath := filepath.Join(*chartDir, "quakes-per-year.html")
	if err := chart.WriteBarFile(countPath, domain.QuakesPerYearPlot(summary.QuakesPerYear)); err != nil {
		return err
	}
	log.Printf("wrote %s", countPath)

	return nil
}

// loadCatalog fetches the feed, or reads the offline snapshot when one is
// given. A fetched document is stored at snapshotPath unless disabled.
func loadCatalog(cfg *config.Config, offline, snapshotPath string) (domain.Catalog, error) {
	if offline != "" {
		return usgs.Snapshot{Path: offline}.Load()
	}

	logger := observability.NewLogger(cfg)
	client := usgs.NewClient(cfg.FeedURL, cfg.FeedTimeout, observability.NewMetrics(), logger)

	catalog, raw, err := client.Fetch(context.Background(), usgs.Query{
		StartTime:    cfg.QueryStartTime,
		EndTime:      cfg.QueryEndTime,
		MinLatitude:  cfg.QueryMinLatitude,
		MaxLatitude:  cfg.QueryMaxLatitude,
		MinLongitude: cfg.QueryMinLongitude,
		MaxLongitude: cfg.QueryMaxLongitude,
		MinMagnitude: cfg.QueryMinMagnitude,
		OrderBy:      cfg.QueryOrderBy,
	})
	if err != nil {
		return domain.Catalog{}, err
	}

	if snapshotPath != "" {
		if err := (usgs.Snapshot{Path: snapshotPath}).Write(raw); err != nil {
			return domain.Catalog{}, err
		}
		log.Printf("wrote %s", snapshotPath)
	}

	return catalog, nil
}
