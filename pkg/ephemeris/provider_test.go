package ephemeris

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astro-fusion/numerology-white-paper/pkg/models"
)

func TestPosition_Retrograde(t *testing.T) {
	assert.False(t, Position{SpeedLongitude: 1.2}.Retrograde())
	assert.False(t, Position{SpeedLongitude: 0}.Retrograde())
	assert.True(t, Position{SpeedLongitude: -0.05}.Retrograde())
}

func TestKetuFromRahu(t *testing.T) {
	ketu := KetuFromRahu(Position{Longitude: 10, SpeedLongitude: -0.05})
	assert.InDelta(t, 190, ketu.Longitude, 1e-9)
	assert.Equal(t, -0.05, ketu.SpeedLongitude)

	// Wraps across 360
	ketu = KetuFromRahu(Position{Longitude: 200})
	assert.InDelta(t, 20, ketu.Longitude, 1e-9)
}

func TestJulianDay(t *testing.T) {
	// The Unix epoch anchors JD 2440587.5
	assert.InDelta(t, 2440587.5, JulianDay(time.Unix(0, 0)), 1e-9)

	// One day later is exactly one Julian day later
	assert.InDelta(t, 2440588.5, JulianDay(time.Unix(86400, 0)), 1e-9)
}

func TestStaticProvider(t *testing.T) {
	provider := NewStaticProvider(map[models.Planet]Position{
		models.PlanetMars: {Longitude: 298},
		models.PlanetRahu: {Longitude: 45, SpeedLongitude: -0.05},
	})

	ctx := context.Background()
	now := time.Now()

	pos, err := provider.Position(ctx, models.PlanetMars, now)
	require.NoError(t, err)
	assert.Equal(t, 298.0, pos.Longitude)

	// Ketu is derived from Rahu when absent from the table
	pos, err = provider.Position(ctx, models.PlanetKetu, now)
	require.NoError(t, err)
	assert.InDelta(t, 225, pos.Longitude, 1e-9)
	assert.True(t, pos.Retrograde())

	_, err = provider.Position(ctx, models.PlanetJupiter, now)
	require.Error(t, err)
}
