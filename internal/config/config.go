package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	FeedURL     string
	FeedTimeout time.Duration

	// Feed query window. The defaults reproduce the United Kingdom catalog
	// from 2000 through October 2018.
	QueryStartTime    string
	QueryEndTime      string
	QueryMinLatitude  float64
	QueryMaxLatitude  float64
	QueryMinLongitude float64
	QueryMaxLongitude float64
	QueryMinMagnitude float64
	QueryOrderBy      string

	// TimeZone is the IANA zone used to derive event years; Zone is its
	// loaded form.
	TimeZone string
	Zone     *time.Location

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// RefreshInterval > 0 refetches the catalog periodically; 0 fetches once.
	RefreshInterval time.Duration

	// SnapshotPath stores the raw feed document after each fetch; empty
	// disables snapshots.
	SnapshotPath string

	// Kafka summary publishing configuration.
	KafkaBrokers      []string
	KafkaSummaryTopic string
	PublishEnabled    bool
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	feedTimeout, err := envDuration("FEED_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}
	if feedTimeout <= 0 {
		return nil, errors.New("FEED_TIMEOUT must be positive")
	}

	shutdownTimeout, err := envDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	if shutdownTimeout <= 0 {
		return nil, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}

	refreshInterval, err := envDuration("REFRESH_INTERVAL", "0s")
	if err != nil {
		return nil, err
	}
	if refreshInterval < 0 {
		return nil, errors.New("REFRESH_INTERVAL cannot be negative")
	}

	startTime := envOrDefault("QUERY_START_TIME", "2000-01-01")
	start, err := time.Parse("2006-01-02", startTime)
	if err != nil {
		return nil, fmt.Errorf("invalid QUERY_START_TIME: %q", startTime)
	}
	endTime := envOrDefault("QUERY_END_TIME", "2018-10-11")
	end, err := time.Parse("2006-01-02", endTime)
	if err != nil {
		return nil, fmt.Errorf("invalid QUERY_END_TIME: %q", endTime)
	}
	if end.Before(start) {
		return nil, errors.New("QUERY_END_TIME is before QUERY_START_TIME")
	}

	minLat, err := envFloat("QUERY_MIN_LATITUDE", "50.008")
	if err != nil {
		return nil, err
	}
	maxLat, err := envFloat("QUERY_MAX_LATITUDE", "58.723")
	if err != nil {
		return nil, err
	}
	minLon, err := envFloat("QUERY_MIN_LONGITUDE", "-9.756")
	if err != nil {
		return nil, err
	}
	maxLon, err := envFloat("QUERY_MAX_LONGITUDE", "1.67")
	if err != nil {
		return nil, err
	}
	if minLat < -90 || maxLat > 90 || minLat >= maxLat {
		return nil, errors.New("latitude bounds must satisfy -90 <= QUERY_MIN_LATITUDE < QUERY_MAX_LATITUDE <= 90")
	}
	if minLon < -180 || maxLon > 180 || minLon >= maxLon {
		return nil, errors.New("longitude bounds must satisfy -180 <= QUERY_MIN_LONGITUDE < QUERY_MAX_LONGITUDE <= 180")
	}

	minMag, err := envFloat("QUERY_MIN_MAGNITUDE", "1")
	if err != nil {
		return nil, err
	}
	if minMag < 0 {
		return nil, errors.New("QUERY_MIN_MAGNITUDE cannot be negative")
	}

	orderBy := envOrDefault("QUERY_ORDER_BY", "time-asc")
	switch orderBy {
	case "time", "time-asc", "magnitude", "magnitude-asc":
	default:
		return nil, fmt.Errorf("invalid QUERY_ORDER_BY: %q", orderBy)
	}

	timeZone := envOrDefault("TIME_ZONE", "UTC")
	zone, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIME_ZONE: %q", timeZone)
	}

	kafkaBrokers := parseBrokers(os.Getenv("KAFKA_BROKERS"))
	publishEnabled := len(kafkaBrokers) > 0
	if v := os.Getenv("PUBLISH_ENABLED"); v != "" {
		publishEnabled = v == "true"
	}

	cfg := &Config{
		FeedURL:     envOrDefault("FEED_URL", "https://earthquake.usgs.gov/fdsnws/event/1/query.geojson"),
		FeedTimeout: feedTimeout,

		QueryStartTime:    startTime,
		QueryEndTime:      endTime,
		QueryMinLatitude:  minLat,
		QueryMaxLatitude:  maxLat,
		QueryMinLongitude: minLon,
		QueryMaxLongitude: maxLon,
		QueryMinMagnitude: minMag,
		QueryOrderBy:      orderBy,

		TimeZone: timeZone,
		Zone:     zone,

		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		RefreshInterval: refreshInterval,
		SnapshotPath:    os.Getenv("SNAPSHOT_PATH"),

		KafkaBrokers:      kafkaBrokers,
		KafkaSummaryTopic: envOrDefault("KAFKA_SUMMARY_TOPIC", "earthquake-summaries"),
		PublishEnabled:    publishEnabled,
	}

	if cfg.PublishEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("PUBLISH_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.PublishEnabled && cfg.KafkaSummaryTopic == "" {
		return nil, errors.New("KAFKA_SUMMARY_TOPIC is required when publishing is enabled")
	}

	return cfg, nil
}

// envOrDefault returns the value of the environment variable, or fallback
// when unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key, fallback string) (time.Duration, error) {
	v := envOrDefault(key, fallback)
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return d, nil
}

func envFloat(key, fallback string) (float64, error) {
	v := envOrDefault(key, fallback)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return f, nil
}

// parseBrokers splits a comma-separated broker list, dropping empty entries.
func parseBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
