package domain

import (
	"fmt"
	"sort"
	"time"
)

// Catalog holds one feed response worth of records, in feed order.
type Catalog struct {
	Title         string
	Records       []Record
	ReportedCount int // metadata count from the feed, -1 when absent
}

// Count returns the feed's own record count when the metadata block carried
// one, falling back to the number of decoded records.
func (c Catalog) Count() int {
	if c.ReportedCount >= 0 {
		return c.ReportedCount
	}
	return len(c.Records)
}

// StrongestQuake pairs a catalog's maximum magnitude with its location.
type StrongestQuake struct {
	Magnitude float64 `json:"magnitude"`
	Location  Geo     `json:"location"`
}

// Strongest scans records for the highest magnitude in a single pass.
// Ties keep the earliest record. Locations are resolved only for records
// that lead the scan, so a record that never leads cannot fail it on
// coordinates; magnitudes are resolved for every record.
func Strongest(records []Record) (StrongestQuake, error) {
	if len(records) == 0 {
		return StrongestQuake{}, fmt.Errorf("strongest: %w", ErrEmptyCatalog)
	}

	maxMag, err := records[0].Magnitude()
	if err != nil {
		return StrongestQuake{}, err
	}
	maxLoc, err := records[0].Location()
	if err != nil {
		return StrongestQuake{}, err
	}

	for _, r := range records[1:] {
		mag, err := r.Magnitude()
		if err != nil {
			return StrongestQuake{}, err
		}
		if mag > maxMag {
			maxMag = mag
			if maxLoc, err = r.Location(); err != nil {
				return StrongestQuake{}, err
			}
		}
	}

	return StrongestQuake{Magnitude: maxMag, Location: maxLoc}, nil
}

// YearlyMagnitudes groups magnitudes by calendar year, preserving feed order
// within each year.
type YearlyMagnitudes map[int][]float64

// GroupByYear buckets every record's magnitude under its event year, derived
// in the given zone. A record missing its time or magnitude fails the whole
// pass; skipping it would silently skew the derived series.
func GroupByYear(records []Record, zone *time.Location) (YearlyMagnitudes, error) {
	grouped := make(YearlyMagnitudes)
	for _, r := range records {
		year, err := r.Year(zone)
		if err != nil {
			return nil, err
		}
		mag, err := r.Magnitude()
		if err != nil {
			return nil, err
		}
		grouped[year] = append(grouped[year], mag)
	}
	return grouped, nil
}

// Years returns the grouping's years in ascending order.
func (m YearlyMagnitudes) Years() []int {
	years := make([]int, 0, len(m))
	for year := range m {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// YearlySeries is a plot-ready series: Values[i] belongs to Years[i], years
// ascending.
type YearlySeries struct {
	Years  []int     `json:"years"`
	Values []float64 `json:"values"`
}

// Averages derives the mean magnitude per year.
func (m YearlyMagnitudes) Averages() (YearlySeries, error) {
	if len(m) == 0 {
		return YearlySeries{}, fmt.Errorf("averages: %w", ErrEmptyCatalog)
	}

	years := m.Years()
	values := make([]float64, len(years))
	for i, year := range years {
		mags := m[year]
		var sum float64
		for _, mag := range mags {
			sum += mag
		}
		values[i] = sum / float64(len(mags))
	}
	return YearlySeries{Years: years, Values: values}, nil
}

// Counts derives the number of events per year. Unlike Averages it is
// well-defined for an empty grouping and returns an empty series.
func (m YearlyMagnitudes) Counts() YearlySeries {
	years := m.Years()
	values := make([]float64, len(years))
	for i, year := range years {
		values[i] = float64(len(m[year]))
	}
	return YearlySeries{Years: years, Values: values}
}
