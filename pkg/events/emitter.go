// Package events handles event emission for computed scores and trajectories
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/astro-fusion/numerology-white-paper/pkg/kafka"
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/tracing"
)

// SchemaVersion is the current event schema version
const SchemaVersion = "1.0"

// Emitter publishes domain events. A nil producer disables emission, so
// callers never need to branch on whether Kafka is configured.
type Emitter struct {
	producer *kafka.Producer
	logger   ectologger.Logger
}

// NewEmitter creates a new event emitter
func NewEmitter(producer *kafka.Producer, logger ectologger.Logger) *Emitter {
	return &Emitter{
		producer: producer,
		logger:   logger,
	}
}

// EmitScoreComputed emits a score.computed event for a served assessment
func (e *Emitter) EmitScoreComputed(ctx context.Context, assessment *models.Assessment, digit *int) error {
	if e.producer == nil {
		return nil
	}

	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitScoreComputed")
	defer span.End()

	data, err := json.Marshal(assessment)
	if err != nil {
		return err
	}

	event := &kafka.ScoreEvent{
		EventType:  "score.computed",
		Planet:     assessment.Planet,
		Digit:      digit,
		Instant:    assessment.Instant,
		Assessment: data,
	}

	if err := e.producer.PublishScoreEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit score.computed event")
		return err
	}

	return nil
}

// EmitTrajectoryComputed emits a trajectory.computed event
func (e *Emitter) EmitTrajectoryComputed(ctx context.Context, trajectory *models.Trajectory, pointCount int) error {
	if e.producer == nil {
		return nil
	}

	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitTrajectoryComputed")
	defer span.End()

	event := &kafka.TrajectoryEvent{
		EventType:    "trajectory.computed",
		TrajectoryID: trajectory.ID,
		Planet:       trajectory.Planet,
		Digit:        trajectory.Digit,
		StartDate:    trajectory.StartDate,
		EndDate:      trajectory.EndDate,
		PointCount:   pointCount,
		Timestamp:    time.Now().UTC(),
	}

	if err := e.producer.PublishTrajectoryEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit trajectory.computed event")
		return err
	}

	return nil
}
