package ephemeris

import (
	"context"
	"fmt"
	"time"

	"github.com/astro-fusion/numerology-white-paper/pkg/models"
)

// StaticProvider serves fixed positions regardless of instant. It backs tests
// and local development where no ephemeris service is running. Ketu is
// derived from Rahu when absent from the table.
type StaticProvider struct {
	positions map[models.Planet]Position
}

// NewStaticProvider creates a provider over a fixed position table
func NewStaticProvider(positions map[models.Planet]Position) *StaticProvider {
	return &StaticProvider{positions: positions}
}

// Position returns the fixed position for the planet
func (s *StaticProvider) Position(_ context.Context, planet models.Planet, _ time.Time) (Position, error) {
	if pos, ok := s.positions[planet]; ok {
		return pos, nil
	}

	if planet == models.PlanetKetu {
		if rahu, ok := s.positions[models.PlanetRahu]; ok {
			return KetuFromRahu(rahu), nil
		}
	}

	return Position{}, fmt.Errorf("no position for planet %s", planet)
}
