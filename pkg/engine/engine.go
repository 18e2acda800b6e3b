// Package engine wires the dignity pipeline: positions resolve to signs,
// signs to classifications, classifications to bounded scores and support
// verdicts.
package engine

import (
	"context"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/astro-fusion/numerology-white-paper/pkg/correlator"
	"github.com/astro-fusion/numerology-white-paper/pkg/dignity"
	"github.com/astro-fusion/numerology-white-paper/pkg/ephemeris"
	"github.com/astro-fusion/numerology-white-paper/pkg/metrics"
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/numerology"
	"github.com/astro-fusion/numerology-white-paper/pkg/ruleset"
	"github.com/astro-fusion/numerology-white-paper/pkg/tracing"
	"github.com/astro-fusion/numerology-white-paper/pkg/zodiac"
)

// Engine runs the full dignity pipeline over a position provider
type Engine struct {
	rules      *ruleset.Ruleset
	classifier *dignity.Classifier
	scorer     *dignity.Scorer
	correlate  *correlator.Correlator
	mapper     *numerology.Mapper
	provider   ephemeris.PositionProvider
	logger     ectologger.Logger
}

// New validates the rule set and builds the engine. A defective table fails
// construction with *models.ConfigurationError; no query is ever served
// against unvalidated tables.
func New(rules *ruleset.Ruleset, provider ephemeris.PositionProvider, logger ectologger.Logger) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		rules:      rules,
		classifier: dignity.NewClassifier(rules),
		scorer:     dignity.NewScorer(rules),
		correlate:  correlator.New(rules),
		mapper:     numerology.NewMapper(rules),
		provider:   provider,
		logger:     logger,
	}, nil
}

// Ruleset exposes the active fact tables
func (e *Engine) Ruleset() *ruleset.Ruleset {
	return e.rules
}

// RulingPlanet resolves a numerology digit to its ruling planet
func (e *Engine) RulingPlanet(digit int) (models.Planet, error) {
	return e.mapper.RulingPlanet(digit)
}

// AssessPosition runs the pure pipeline on an already-known position
func (e *Engine) AssessPosition(planet models.Planet, pos ephemeris.Position, sunLongitude *float64, instant time.Time) (*models.Assessment, error) {
	sign, degree, err := zodiac.Resolve(pos.Longitude)
	if err != nil {
		return nil, err
	}

	placement := models.Placement{
		Planet:       planet,
		Longitude:    pos.Longitude,
		Sign:         sign,
		DegreeInSign: degree,
		Retrograde:   pos.Retrograde(),
		SunLongitude: sunLongitude,
	}

	classification, ruler, relation := e.classifier.Classify(placement)
	modifier := dignity.PlacementModifier(e.rules, placement, classification)
	base := e.scorer.BaseScore(classification)
	score := e.scorer.Score(classification, modifier)
	support := e.correlate.Level(score)

	metrics.RecordScore(string(planet), string(support))

	return &models.Assessment{
		Planet:         planet,
		Instant:        instant,
		Longitude:      pos.Longitude,
		Sign:           sign,
		SignName:       sign.String(),
		DegreeInSign:   degree,
		Classification: classification,
		SignRuler:      ruler,
		Relation:       relation,
		BaseScore:      base,
		Modifier:       modifier,
		Score:          score,
		Support:        support,
		Retrograde:     placement.Retrograde,
	}, nil
}

// AssessPlanet fetches the planet's position at the instant and assesses it.
// Provider failures surface as *models.ProviderError. The Sun's own position
// is fetched alongside for combustion; its failure only disables the
// combustion modifier.
func (e *Engine) AssessPlanet(ctx context.Context, planet models.Planet, instant time.Time) (*models.Assessment, error) {
	ctx, span := tracing.StartSpan(ctx, "engine.Engine.AssessPlanet")
	defer span.End()

	pos, err := e.provider.Position(ctx, planet, instant)
	if err != nil {
		metrics.RecordProviderError(string(planet))
		return nil, &models.ProviderError{Planet: planet, Instant: instant, Err: err}
	}

	var sunLongitude *float64
	if planet != models.PlanetSun {
		sunPos, sunErr := e.provider.Position(ctx, models.PlanetSun, instant)
		if sunErr != nil {
			e.logger.WithContext(ctx).WithError(sunErr).Debug("Sun position unavailable, skipping combustion check")
		} else {
			sunLongitude = &sunPos.Longitude
		}
	}

	return e.AssessPosition(planet, pos, sunLongitude, instant)
}

// AssessDigit assesses the planet ruling a numerology digit. Digits outside
// 1-9 return *models.InvalidDigitError.
func (e *Engine) AssessDigit(ctx context.Context, digit int, instant time.Time) (*models.Assessment, error) {
	ctx, span := tracing.StartSpan(ctx, "engine.Engine.AssessDigit")
	defer span.End()

	planet, err := e.mapper.RulingPlanet(digit)
	if err != nil {
		return nil, err
	}

	return e.AssessPlanet(ctx, planet, instant)
}
