package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astro-fusion/numerology-white-paper/pkg/ephemeris"
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/ruleset"
)

func testLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

type failingProvider struct{}

func (failingProvider) Position(context.Context, models.Planet, time.Time) (ephemeris.Position, error) {
	return ephemeris.Position{}, fmt.Errorf("ephemeris offline")
}

func TestNew_RejectsInvalidTables(t *testing.T) {
	rules := ruleset.Default()
	delete(rules.Friendship, models.PlanetSun)

	_, err := New(rules, ephemeris.NewStaticProvider(nil), testLogger())
	require.Error(t, err)

	var configErr *models.ConfigurationError
	assert.True(t, errors.As(err, &configErr))
}

func TestAssessPlanet(t *testing.T) {
	provider := ephemeris.NewStaticProvider(map[models.Planet]ephemeris.Position{
		models.PlanetSun:  {Longitude: 100},
		models.PlanetMars: {Longitude: 298},
	})

	eng, err := New(ruleset.Default(), provider, testLogger())
	require.NoError(t, err)

	instant := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assessment, err := eng.AssessPlanet(context.Background(), models.PlanetMars, instant)
	require.NoError(t, err)

	assert.Equal(t, models.PlanetMars, assessment.Planet)
	assert.Equal(t, instant, assessment.Instant)
	assert.Equal(t, models.SignCapricorn, assessment.Sign)
	assert.Equal(t, "Capricorn", assessment.SignName)
	assert.InDelta(t, 28, assessment.DegreeInSign, 1e-9)
	assert.Equal(t, models.DignityExalted, assessment.Classification)
	assert.Equal(t, models.PlanetSaturn, assessment.SignRuler)
	assert.Equal(t, models.RelationFriend, assessment.Relation)
	assert.Equal(t, 100.0, assessment.BaseScore)
	// Exact degree bonus clamps back to the ceiling
	assert.Equal(t, 100.0, assessment.Score)
	assert.Equal(t, models.SupportStronglySupportive, assessment.Support)
}

func TestAssessPlanet_ProviderFailure(t *testing.T) {
	eng, err := New(ruleset.Default(), failingProvider{}, testLogger())
	require.NoError(t, err)

	_, err = eng.AssessPlanet(context.Background(), models.PlanetMars, time.Now())
	require.Error(t, err)

	var providerErr *models.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, models.PlanetMars, providerErr.Planet)
}

func TestAssessPlanet_MissingSunOnlySkipsCombustion(t *testing.T) {
	// Mercury two degrees from where the Sun would be, but no Sun position is
	// available, so no combustion penalty applies
	provider := ephemeris.NewStaticProvider(map[models.Planet]ephemeris.Position{
		models.PlanetMercury: {Longitude: 102},
	})

	eng, err := New(ruleset.Default(), provider, testLogger())
	require.NoError(t, err)

	assessment, err := eng.AssessPlanet(context.Background(), models.PlanetMercury, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0.0, assessment.Modifier)
}

func TestAssessPlanet_CombustionPenalty(t *testing.T) {
	provider := ephemeris.NewStaticProvider(map[models.Planet]ephemeris.Position{
		models.PlanetSun:     {Longitude: 100},
		models.PlanetMercury: {Longitude: 102},
	})

	eng, err := New(ruleset.Default(), provider, testLogger())
	require.NoError(t, err)

	assessment, err := eng.AssessPlanet(context.Background(), models.PlanetMercury, time.Now())
	require.NoError(t, err)
	// Cancer is ruled by the Moon, a friend of Mercury: base 50, deep
	// combustion takes 40
	assert.Equal(t, models.DignityFriendSign, assessment.Classification)
	assert.Equal(t, -40.0, assessment.Modifier)
	assert.Equal(t, 10.0, assessment.Score)
	assert.Equal(t, models.SupportStronglyContradictory, assessment.Support)
}

func TestAssessDigit(t *testing.T) {
	provider := ephemeris.NewStaticProvider(map[models.Planet]ephemeris.Position{
		models.PlanetSun:  {Longitude: 100},
		models.PlanetMars: {Longitude: 298},
	})

	eng, err := New(ruleset.Default(), provider, testLogger())
	require.NoError(t, err)

	// Digit 9 is ruled by Mars
	assessment, err := eng.AssessDigit(context.Background(), 9, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.PlanetMars, assessment.Planet)
	assert.Equal(t, models.DignityExalted, assessment.Classification)
}

func TestAssessDigit_InvalidDigit(t *testing.T) {
	eng, err := New(ruleset.Default(), ephemeris.NewStaticProvider(nil), testLogger())
	require.NoError(t, err)

	_, err = eng.AssessDigit(context.Background(), 0, time.Now())
	require.Error(t, err)

	var invalidDigit *models.InvalidDigitError
	assert.True(t, errors.As(err, &invalidDigit))
}
