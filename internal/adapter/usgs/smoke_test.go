//go:build usgs

package usgs

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/benzi604/earthquakes/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit the real USGS feed.
// Run with: go test -tags=usgs ./internal/adapter/usgs/ -v -count=1

func smokeClient() *Client {
	return &Client{
		baseURL:    "https://earthquake.usgs.gov/fdsnws/event/1/query.geojson",
		httpClient: &http.Client{Timeout: 30 * time.Second},
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestSmoke_Fetch(t *testing.T) {
	c := smokeClient()

	// The historical United Kingdom window: fixed data, so the assertions
	// below hold on every run.
	catalog, raw, err := c.Fetch(context.Background(), Query{
		StartTime:    "2000-01-01",
		EndTime:      "2018-10-11",
		MinLatitude:  50.008,
		MaxLatitude:  58.723,
		MinLongitude: -9.756,
		MaxLongitude: 1.67,
		MinMagnitude: 1,
		OrderBy:      "time-asc",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, raw)
	assert.Greater(t, catalog.Count(), 0)
	require.NotEmpty(t, catalog.Records)

	mag, err := catalog.Records[0].Magnitude()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, mag, 1.0)
}
