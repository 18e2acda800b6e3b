// Package ephemeris defines the position provider boundary. Computing
// sidereal positions is external; this package only describes the contract
// and ships a fixture-backed implementation plus an HTTP client for a real
// ephemeris service.
package ephemeris

import (
	"context"
	"time"

	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/zodiac"
)

// Position is a planet's sidereal state at one instant
type Position struct {
	// Longitude is the sidereal ecliptic longitude in [0, 360)
	Longitude float64 `json:"longitude"`
	// SpeedLongitude is the daily motion in degrees; negative means retrograde
	SpeedLongitude float64 `json:"speed_longitude"`
}

// Retrograde reports whether the planet is in apparent backward motion
func (p Position) Retrograde() bool {
	return p.SpeedLongitude < 0
}

// PositionProvider supplies sidereal positions. Implementations must be safe
// for concurrent use; the sampler queries from multiple workers.
type PositionProvider interface {
	Position(ctx context.Context, planet models.Planet, instant time.Time) (Position, error)
}

// KetuFromRahu derives the south node from the north node: exactly opposite
// on the ecliptic, moving at the same rate.
func KetuFromRahu(rahu Position) Position {
	return Position{
		Longitude:      zodiac.Normalize(rahu.Longitude + 180),
		SpeedLongitude: rahu.SpeedLongitude,
	}
}

// JulianDay converts an instant to its Julian day number. The epoch constant
// anchors JD 2440587.5 at the Unix epoch.
func JulianDay(t time.Time) float64 {
	return float64(t.UTC().UnixMilli())/86400000.0 + 2440587.5
}
