package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/benzi604/earthquakes/internal/config"
	"github.com/benzi604/earthquakes/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// summaryKey is the constant message key. Every summary supersedes the
// previous one, so a single key reduces a compacted topic to the latest
// summary.
const summaryKey = "catalog-summary"

// Publisher produces catalog summaries to a Kafka topic.
// It implements report.Publisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured summary topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSummaryTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// PublishSummary serializes and publishes one summary.
func (p *Publisher) PublishSummary(ctx context.Context, summary domain.Summary) error {
	msg, err := summaryToMessage(summary)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish summary: %w", err)
	}
	p.logger.Debug("summary published",
		"records", summary.Count,
		"generated_at", summary.GeneratedAt)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// summaryToMessage marshals a Summary into a Kafka message.
func summaryToMessage(summary domain.Summary) (kafkago.Message, error) {
	data, err := json.Marshal(summary)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize summary: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(summaryKey),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "generated_at", Value: []byte(summary.GeneratedAt.Format(time.RFC3339))},
			{Key: "records", Value: []byte(strconv.Itoa(summary.Count))},
		},
	}, nil
}
