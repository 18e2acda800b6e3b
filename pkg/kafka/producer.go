package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/segmentio/kafka-go"

	"github.com/astro-fusion/numerology-white-paper/pkg/metrics"
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/tracing"
)

// Producer handles Kafka event emission
type Producer struct {
	writer *kafka.Writer
	logger ectologger.Logger
	topic  string
}

// ProducerConfig holds Kafka producer configuration
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	BatchSize    int
	BatchTimeout time.Duration
	RequiredAcks int
	Compression  string
}

// NewProducer creates a new Kafka producer
func NewProducer(cfg ProducerConfig, logger ectologger.Logger) *Producer {
	compression := kafka.Snappy
	switch cfg.Compression {
	case "gzip":
		compression = kafka.Gzip
	case "lz4":
		compression = kafka.Lz4
	case "zstd":
		compression = kafka.Zstd
	case "none":
		compression = 0
	}

	requiredAcks := kafka.RequiredAcks(cfg.RequiredAcks)

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchSize:              cfg.BatchSize,
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           requiredAcks,
		Compression:            compression,
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		writer: writer,
		logger: logger,
		topic:  cfg.Topic,
	}
}

// Close closes the producer
func (p *Producer) Close() error {
	return p.writer.Close()
}

// ScoreEvent is emitted for every assessment served
type ScoreEvent struct {
	EventType  string          `json:"event_type"` // score.computed
	Planet     models.Planet   `json:"planet"`
	Digit      *int            `json:"digit,omitempty"`
	Instant    time.Time       `json:"instant"`
	Assessment json.RawMessage `json:"assessment"`
	Timestamp  time.Time       `json:"timestamp"`
}

// TrajectoryEvent is emitted when a trajectory is computed and persisted
type TrajectoryEvent struct {
	EventType    string        `json:"event_type"` // trajectory.computed
	TrajectoryID string        `json:"trajectory_id"`
	Planet       models.Planet `json:"planet"`
	Digit        *int          `json:"digit,omitempty"`
	StartDate    time.Time     `json:"start_date"`
	EndDate      time.Time     `json:"end_date"`
	PointCount   int           `json:"point_count"`
	Timestamp    time.Time     `json:"timestamp"`
}

// PublishScoreEvent publishes a score event to Kafka, keyed by planet so
// consumers see per-planet ordering.
func (p *Producer) PublishScoreEvent(ctx context.Context, event *ScoreEvent) error {
	ctx, span := tracing.StartSpan(ctx, "kafka.Producer.PublishScoreEvent")
	defer span.End()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	headers := []kafka.Header{
		{Key: "event_type", Value: []byte(event.EventType)},
		{Key: "planet", Value: []byte(event.Planet)},
	}
	if traceparent := tracing.GetTraceParent(ctx); traceparent != "" {
		headers = append(headers, kafka.Header{Key: "traceparent", Value: []byte(traceparent)})
	}

	msg := kafka.Message{
		Topic:   p.topic,
		Key:     []byte(event.Planet),
		Value:   data,
		Headers: headers,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.RecordKafkaPublish(p.topic, "error")
		p.logger.WithContext(ctx).WithError(err).Error("Failed to publish score event")
		return err
	}

	metrics.RecordKafkaPublish(p.topic, "success")
	p.logger.WithContext(ctx).WithFields(map[string]any{
		"event_type": event.EventType,
		"planet":     event.Planet,
	}).Debug("Published score event")

	return nil
}

// PublishTrajectoryEvent publishes a trajectory event to Kafka
func (p *Producer) PublishTrajectoryEvent(ctx context.Context, event *TrajectoryEvent) error {
	ctx, span := tracing.StartSpan(ctx, "kafka.Producer.PublishTrajectoryEvent")
	defer span.End()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	headers := []kafka.Header{
		{Key: "event_type", Value: []byte(event.EventType)},
		{Key: "planet", Value: []byte(event.Planet)},
	}
	if traceparent := tracing.GetTraceParent(ctx); traceparent != "" {
		headers = append(headers, kafka.Header{Key: "traceparent", Value: []byte(traceparent)})
	}

	msg := kafka.Message{
		Topic:   p.topic,
		Key:     []byte(event.TrajectoryID),
		Value:   data,
		Headers: headers,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.RecordKafkaPublish(p.topic, "error")
		p.logger.WithContext(ctx).WithError(err).Error("Failed to publish trajectory event")
		return err
	}

	metrics.RecordKafkaPublish(p.topic, "success")
	p.logger.WithContext(ctx).WithFields(map[string]any{
		"event_type":    event.EventType,
		"trajectory_id": event.TrajectoryID,
		"planet":        event.Planet,
	}).Debug("Published trajectory event")

	return nil
}
