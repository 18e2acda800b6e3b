package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astro-fusion/numerology-white-paper/pkg/engine"
	"github.com/astro-fusion/numerology-white-paper/pkg/ephemeris"
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/ruleset"
	"github.com/astro-fusion/numerology-white-paper/pkg/sampler"
)

func testLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

// Digit 9 resolves to Mars; an exalted Mars transit should read as strongly
// supportive for the number, end to end.
func TestDigitNineWithExaltedMars(t *testing.T) {
	provider := ephemeris.NewStaticProvider(map[models.Planet]ephemeris.Position{
		models.PlanetSun:  {Longitude: 100},
		models.PlanetMars: {Longitude: 298},
	})

	eng, err := engine.New(ruleset.Default(), provider, testLogger())
	require.NoError(t, err)

	assessment, err := eng.AssessDigit(context.Background(), 9, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, models.PlanetMars, assessment.Planet)
	assert.Equal(t, models.DignityExalted, assessment.Classification)
	assert.Equal(t, models.SupportStronglySupportive, assessment.Support)
}

// A debilitated retrograde Mars largely cancels its debilitation and lands in
// the supportive band instead of the contradictory one.
func TestRetrogradeCancelsDebilitation(t *testing.T) {
	provider := ephemeris.NewStaticProvider(map[models.Planet]ephemeris.Position{
		models.PlanetSun:  {Longitude: 290},
		models.PlanetMars: {Longitude: 119.5, SpeedLongitude: -0.3},
	})

	eng, err := engine.New(ruleset.Default(), provider, testLogger())
	require.NoError(t, err)

	assessment, err := eng.AssessPlanet(context.Background(), models.PlanetMars, time.Now())
	require.NoError(t, err)

	assert.Equal(t, models.DignityDebilitated, assessment.Classification)
	assert.True(t, assessment.Retrograde)
	assert.Equal(t, 5.0, assessment.BaseScore)
	assert.Equal(t, 55.0, assessment.Score)
	assert.Equal(t, models.SupportSupportive, assessment.Support)
}

// The full trajectory path: sample a month, serialize the points the way the
// store does, and read them back intact.
func TestTrajectoryRoundTrip(t *testing.T) {
	provider := ephemeris.NewStaticProvider(map[models.Planet]ephemeris.Position{
		models.PlanetSun:     {Longitude: 100},
		models.PlanetJupiter: {Longitude: 95},
	})

	eng, err := engine.New(ruleset.Default(), provider, testLogger())
	require.NoError(t, err)

	s := sampler.New(eng, sampler.NewMemoryCache(), 4, 3660, testLogger())

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	points, err := s.Trajectory(context.Background(), sampler.Request{
		Planet: models.PlanetJupiter,
		Start:  start,
		End:    start.AddDate(0, 1, 0),
		Step:   24 * time.Hour,
	})
	require.NoError(t, err)
	require.Len(t, points, 31)

	// Jupiter at Cancer 5 is its exact exaltation degree
	for _, point := range points {
		assert.Equal(t, models.DignityExalted, point.Classification)
	}

	data, err := json.Marshal(points)
	require.NoError(t, err)

	trajectory := models.Trajectory{
		ID:        "t-1",
		Planet:    models.PlanetJupiter,
		StartDate: start,
		EndDate:   start.AddDate(0, 1, 0),
		StepHours: 24,
		Points:    data,
	}

	var decoded []models.TrajectoryPoint
	require.NoError(t, json.Unmarshal(trajectory.Points, &decoded))
	assert.Equal(t, points, decoded)
}

// Swapping in stricter support bands changes verdicts without touching the
// engine, the point of keeping the tables declarative.
func TestCustomSupportBands(t *testing.T) {
	rules := ruleset.Default()
	rules.SupportBands = []ruleset.SupportBand{
		{Threshold: 0, Level: models.SupportContradictory},
		{Threshold: 90, Level: models.SupportSupportive},
	}
	require.NoError(t, rules.Validate())

	provider := ephemeris.NewStaticProvider(map[models.Planet]ephemeris.Position{
		models.PlanetSun:  {Longitude: 100},
		models.PlanetMars: {Longitude: 215},
	})

	eng, err := engine.New(rules, provider, testLogger())
	require.NoError(t, err)

	// Own-sign Mars scores 75: supportive under the defaults, contradictory
	// under the stricter bands
	assessment, err := eng.AssessPlanet(context.Background(), models.PlanetMars, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.DignityOwnSign, assessment.Classification)
	assert.Equal(t, 75.0, assessment.Score)
	assert.Equal(t, models.SupportContradictory, assessment.Support)
}
