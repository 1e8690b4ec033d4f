package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBroker = "broker1:9092"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://earthquake.usgs.gov/fdsnws/event/1/query.geojson", cfg.FeedURL)
	assert.Equal(t, 30*time.Second, cfg.FeedTimeout)
	assert.Equal(t, "2000-01-01", cfg.QueryStartTime)
	assert.Equal(t, "2018-10-11", cfg.QueryEndTime)
	assert.Equal(t, 50.008, cfg.QueryMinLatitude)
	assert.Equal(t, 58.723, cfg.QueryMaxLatitude)
	assert.Equal(t, -9.756, cfg.QueryMinLongitude)
	assert.Equal(t, 1.67, cfg.QueryMaxLongitude)
	assert.Equal(t, 1.0, cfg.QueryMinMagnitude)
	assert.Equal(t, "time-asc", cfg.QueryOrderBy)
	assert.Equal(t, "UTC", cfg.TimeZone)
	assert.Equal(t, time.UTC, cfg.Zone)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, time.Duration(0), cfg.RefreshInterval)
	assert.Empty(t, cfg.SnapshotPath)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "earthquake-summaries", cfg.KafkaSummaryTopic)
	assert.False(t, cfg.PublishEnabled)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("FEED_URL", "http://localhost:9999/feed.geojson")
	t.Setenv("FEED_TIMEOUT", "5s")
	t.Setenv("QUERY_START_TIME", "2010-06-01")
	t.Setenv("QUERY_END_TIME", "2012-06-01")
	t.Setenv("QUERY_MIN_LATITUDE", "-44")
	t.Setenv("QUERY_MAX_LATITUDE", "-34")
	t.Setenv("QUERY_MIN_LONGITUDE", "166")
	t.Setenv("QUERY_MAX_LONGITUDE", "179")
	t.Setenv("QUERY_MIN_MAGNITUDE", "2.5")
	t.Setenv("QUERY_ORDER_BY", "magnitude")
	t.Setenv("TIME_ZONE", "UTC")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("REFRESH_INTERVAL", "15m")
	t.Setenv("SNAPSHOT_PATH", "data/quakesinfo.json")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_SUMMARY_TOPIC", "custom-summaries")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/feed.geojson", cfg.FeedURL)
	assert.Equal(t, 5*time.Second, cfg.FeedTimeout)
	assert.Equal(t, "2010-06-01", cfg.QueryStartTime)
	assert.Equal(t, "2012-06-01", cfg.QueryEndTime)
	assert.Equal(t, -44.0, cfg.QueryMinLatitude)
	assert.Equal(t, -34.0, cfg.QueryMaxLatitude)
	assert.Equal(t, 166.0, cfg.QueryMinLongitude)
	assert.Equal(t, 179.0, cfg.QueryMaxLongitude)
	assert.Equal(t, 2.5, cfg.QueryMinMagnitude)
	assert.Equal(t, "magnitude", cfg.QueryOrderBy)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 15*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, "data/quakesinfo.json", cfg.SnapshotPath)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-summaries", cfg.KafkaSummaryTopic)
	assert.True(t, cfg.PublishEnabled)
}

func TestLoad_InvalidFeedTimeout(t *testing.T) {
	t.Setenv("FEED_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FEED_TIMEOUT")
}

func TestLoad_NegativeFeedTimeout(t *testing.T) {
	t.Setenv("FEED_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FEED_TIMEOUT")
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeRefreshInterval(t *testing.T) {
	t.Setenv("REFRESH_INTERVAL", "-5m")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REFRESH_INTERVAL")
}

func TestLoad_InvalidStartTime(t *testing.T) {
	t.Setenv("QUERY_START_TIME", "01/06/2010")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUERY_START_TIME")
}

func TestLoad_EndBeforeStart(t *testing.T) {
	t.Setenv("QUERY_START_TIME", "2018-01-01")
	t.Setenv("QUERY_END_TIME", "2000-01-01")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUERY_END_TIME")
}

func TestLoad_InvalidLatitudeBounds(t *testing.T) {
	t.Setenv("QUERY_MIN_LATITUDE", "60")
	t.Setenv("QUERY_MAX_LATITUDE", "50")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUERY_MIN_LATITUDE")
}

func TestLoad_LatitudeOutOfRange(t *testing.T) {
	t.Setenv("QUERY_MAX_LATITUDE", "95")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUERY_MAX_LATITUDE")
}

func TestLoad_InvalidLongitude(t *testing.T) {
	t.Setenv("QUERY_MIN_LONGITUDE", "east")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUERY_MIN_LONGITUDE")
}

func TestLoad_NegativeMinMagnitude(t *testing.T) {
	t.Setenv("QUERY_MIN_MAGNITUDE", "-1")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUERY_MIN_MAGNITUDE")
}

func TestLoad_InvalidOrderBy(t *testing.T) {
	t.Setenv("QUERY_ORDER_BY", "depth")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUERY_ORDER_BY")
}

func TestLoad_InvalidTimeZone(t *testing.T) {
	t.Setenv("TIME_ZONE", "Mars/Olympus_Mons")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TIME_ZONE")
}

func TestLoad_BrokersImplyPublishing(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", testBroker)
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.PublishEnabled)
}

func TestLoad_PublishExplicitlyDisabled(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", testBroker)
	t.Setenv("PUBLISH_ENABLED", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.PublishEnabled)
}

func TestLoad_PublishEnabledWithoutBrokers(t *testing.T) {
	t.Setenv("PUBLISH_ENABLED", "true")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKERS")
}
