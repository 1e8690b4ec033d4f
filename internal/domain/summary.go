package domain

import (
	"fmt"
	"time"
)

// Summary is the full derived view of one catalog fetch, the unit served
// over HTTP and published downstream.
type Summary struct {
	Title            string         `json:"title,omitempty"`
	Count            int            `json:"count"`
	Strongest        StrongestQuake `json:"strongest"`
	AverageMagnitude YearlySeries   `json:"average_magnitude"`
	QuakesPerYear    YearlySeries   `json:"quakes_per_year"`
	GeneratedAt      time.Time      `json:"generated_at"`
}

// BuildSummary derives every reportable figure from a catalog: total count,
// the strongest event, and the per-year average-magnitude and event-count
// series. GeneratedAt is stamped from the package clock.
func BuildSummary(c Catalog, zone *time.Location) (Summary, error) {
	strongest, err := Strongest(c.Records)
	if err != nil {
		return Summary{}, fmt.Errorf("build summary: %w", err)
	}

	grouped, err := GroupByYear(c.Records, zone)
	if err != nil {
		return Summary{}, fmt.Errorf("build summary: %w", err)
	}
	averages, err := grouped.Averages()
	if err != nil {
		return Summary{}, fmt.Errorf("build summary: %w", err)
	}

	return Summary{
		Title:            c.Title,
		Count:            c.Count(),
		Strongest:        strongest,
		AverageMagnitude: averages,
		QuakesPerYear:    grouped.Counts(),
		GeneratedAt:      clock.Now(),
	}, nil
}
