package usgs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/benzi604/earthquakes/internal/domain"
	"github.com/benzi604/earthquakes/internal/observability"
)

// Query selects the window of events to retrieve. The full parameter set is
// always sent, so a query can be reproduced from request logs alone.
type Query struct {
	StartTime    string // YYYY-MM-DD
	EndTime      string // YYYY-MM-DD
	MinLatitude  float64
	MaxLatitude  float64
	MinLongitude float64
	MaxLongitude float64
	MinMagnitude float64
	OrderBy      string // time, time-asc, magnitude, or magnitude-asc
}

// Values encodes the query as FDSN event-service parameters.
func (q Query) Values() url.Values {
	return url.Values{
		"starttime":    {q.StartTime},
		"endtime":      {q.EndTime},
		"minlatitude":  {formatFloat(q.MinLatitude)},
		"maxlatitude":  {formatFloat(q.MaxLatitude)},
		"minlongitude": {formatFloat(q.MinLongitude)},
		"maxlongitude": {formatFloat(q.MaxLongitude)},
		"minmagnitude": {formatFloat(q.MinMagnitude)},
		"orderby":      {q.OrderBy},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Client retrieves earthquake catalogs from the USGS FDSN event service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a feed client. baseURL is the full GeoJSON query endpoint,
// e.g. https://earthquake.usgs.gov/fdsnws/event/1/query.geojson.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch retrieves one whole catalog. It returns the decoded catalog together
// with the raw response document, which callers may persist as a snapshot.
func (c *Client) Fetch(ctx context.Context, q Query) (domain.Catalog, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Values().Encode(), nil)
	if err != nil {
		return domain.Catalog{}, nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.FeedRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.FeedRequests.WithLabelValues("error").Inc()
		return domain.Catalog{}, nil, fmt.Errorf("feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.FeedRequests.WithLabelValues("error").Inc()
		return domain.Catalog{}, nil, fmt.Errorf("feed error: status %d: %s", resp.StatusCode, body)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.FeedRequests.WithLabelValues("error").Inc()
		return domain.Catalog{}, nil, fmt.Errorf("read feed body: %w", err)
	}

	catalog, err := DecodeCatalog(raw)
	if err != nil {
		c.metrics.FeedRequests.WithLabelValues("error").Inc()
		return domain.Catalog{}, nil, err
	}

	c.metrics.FeedRequests.WithLabelValues("success").Inc()
	c.metrics.CatalogRecords.Set(float64(len(catalog.Records)))
	c.logger.Debug("catalog fetched",
		"records", len(catalog.Records),
		"reported_count", catalog.ReportedCount,
		"bytes", len(raw))

	return catalog, raw, nil
}

// DecodeCatalog translates a feed document into the domain model. It is the
// single place the wire schema is interpreted; downstream code never sees raw
// JSON. Fields the feed nulls inside a record stay nil on the Record and
// surface later through its accessors.
func DecodeCatalog(raw []byte) (domain.Catalog, error) {
	var doc feedDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Catalog{}, fmt.Errorf("decode feed: %w", err)
	}
	if doc.Features == nil {
		return domain.Catalog{}, errors.New("decode feed: missing features array")
	}

	catalog := domain.Catalog{ReportedCount: -1}
	if doc.Metadata != nil {
		catalog.Title = doc.Metadata.Title
		if doc.Metadata.Count != nil {
			catalog.ReportedCount = *doc.Metadata.Count
		}
	}

	catalog.Records = make([]domain.Record, 0, len(doc.Features))
	for _, f := range doc.Features {
		rec := domain.Record{ID: f.ID}
		if f.Properties != nil {
			rec.Mag = f.Properties.Mag
			rec.TimeMillis = f.Properties.Time
		}
		if f.Geometry != nil {
			rec.Coordinates = f.Geometry.Coordinates
		}
		catalog.Records = append(catalog.Records, rec)
	}
	return catalog, nil
}

// USGS GeoJSON response types.

type feedDocument struct {
	Metadata *feedMetadata `json:"metadata"`
	Features []feedFeature `json:"features"`
}

type feedMetadata struct {
	Count *int   `json:"count"`
	Title string `json:"title"`
}

type feedFeature struct {
	ID         string          `json:"id"`
	Properties *feedProperties `json:"properties"`
	Geometry   *feedGeometry   `json:"geometry"`
}

type feedProperties struct {
	Mag  *float64 `json:"mag"`
	Time *int64   `json:"time"`
}

type feedGeometry struct {
	Coordinates []float64 `json:"coordinates"` // [lon, lat, depth-km]
}
