package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMalformedRecord marks a record missing a field an operation needs.
	// Aggregations fail fast on it rather than skipping the record.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrEmptyCatalog marks an aggregation over zero records.
	ErrEmptyCatalog = errors.New("empty catalog")
)

// Geo represents a WGS-84 coordinate pair in the feed's (longitude, latitude) order.
type Geo struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Record is a single earthquake event as decoded from the feed. Fields that
// the feed can omit or null are pointers; the accessors turn their absence
// into ErrMalformedRecord.
type Record struct {
	ID          string
	Mag         *float64
	Coordinates []float64 // feed order: longitude, latitude, depth-km
	TimeMillis  *int64    // event time, epoch milliseconds UTC
}

// Magnitude returns the record's magnitude. The feed publishes null for
// events without a reviewed magnitude; those records fail here.
func (r Record) Magnitude() (float64, error) {
	if r.Mag == nil {
		return 0, fmt.Errorf("record %q: missing magnitude: %w", r.ID, ErrMalformedRecord)
	}
	return *r.Mag, nil
}

// Location returns the record's (longitude, latitude) pair. The feed's third
// coordinate, depth, is discarded.
func (r Record) Location() (Geo, error) {
	if len(r.Coordinates) < 2 {
		return Geo{}, fmt.Errorf("record %q: %d of 2 coordinates: %w", r.ID, len(r.Coordinates), ErrMalformedRecord)
	}
	return Geo{Lon: r.Coordinates[0], Lat: r.Coordinates[1]}, nil
}

// Year returns the calendar year of the event in the given zone, so a given
// catalog yields the same grouping on every host. A nil zone means UTC.
func (r Record) Year(zone *time.Location) (int, error) {
	if r.TimeMillis == nil {
		return 0, fmt.Errorf("record %q: missing time: %w", r.ID, ErrMalformedRecord)
	}
	if zone == nil {
		zone = time.UTC
	}
	return time.UnixMilli(*r.TimeMillis).In(zone).Year(), nil
}
