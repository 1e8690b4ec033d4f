package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummary(t *testing.T) {
	fixedTime := time.Date(2018, 10, 11, 9, 30, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixedTime))
	defer SetClock(nil)

	t.Run("full catalog", func(t *testing.T) {
		c := Catalog{Title: "USGS Earthquakes", Records: threeQuakes(), ReportedCount: 3}

		s, err := BuildSummary(c, time.UTC)

		require.NoError(t, err)
		assert.Equal(t, "USGS Earthquakes", s.Title)
		assert.Equal(t, 3, s.Count)
		assert.Equal(t, 4.1, s.Strongest.Magnitude)
		assert.Equal(t, Geo{Lon: -0.33, Lat: 53.40}, s.Strongest.Location)
		assert.Equal(t, []int{2001, 2002}, s.AverageMagnitude.Years)
		assert.InDeltaSlice(t, []float64{3.3, 4.1}, s.AverageMagnitude.Values, 1e-9)
		assert.Equal(t, []int{2001, 2002}, s.QuakesPerYear.Years)
		assert.Equal(t, []float64{2, 1}, s.QuakesPerYear.Values)
		assert.Equal(t, fixedTime, s.GeneratedAt)
	})

	t.Run("count prefers the feed's reported figure", func(t *testing.T) {
		c := Catalog{Records: threeQuakes(), ReportedCount: 120}

		s, err := BuildSummary(c, time.UTC)

		require.NoError(t, err)
		assert.Equal(t, 120, s.Count)
	})

	t.Run("empty catalog", func(t *testing.T) {
		_, err := BuildSummary(Catalog{ReportedCount: -1}, time.UTC)

		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})

	t.Run("malformed record", func(t *testing.T) {
		records := threeQuakes()
		records[0].Mag = nil

		_, err := BuildSummary(Catalog{Records: records, ReportedCount: 3}, time.UTC)

		assert.ErrorIs(t, err, ErrMalformedRecord)
	})
}

func TestSetClock(t *testing.T) {
	t.Run("set custom clock", func(t *testing.T) {
		fixedTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		SetClock(clockwork.NewFakeClockAt(fixedTime))
		defer SetClock(nil)

		assert.Equal(t, fixedTime, clock.Now())
	})

	t.Run("reset to real clock", func(t *testing.T) {
		SetClock(clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
		SetClock(nil)

		assert.True(t, time.Since(clock.Now()) < time.Second)
	})
}
