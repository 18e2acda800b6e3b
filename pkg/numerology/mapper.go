// Package numerology maps reduced root numbers to their ruling planets.
package numerology

import (
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/ruleset"
)

// Mapper resolves root digits to ruling planets. The Vedic mapping assigns
// the lunar nodes to 4 (Rahu) and 7 (Ketu), not the outer planets.
type Mapper struct {
	rulers map[int]models.Planet
}

// NewMapper creates a mapper over a validated rule set
func NewMapper(rules *ruleset.Ruleset) *Mapper {
	return &Mapper{rulers: rules.NumerologyRulers}
}

// RulingPlanet returns the planet governing a root digit. Digits outside 1-9
// return *models.InvalidDigitError.
func (m *Mapper) RulingPlanet(digit int) (models.Planet, error) {
	planet, ok := m.rulers[digit]
	if !ok || digit < 1 || digit > 9 {
		return "", &models.InvalidDigitError{Digit: digit}
	}
	return planet, nil
}
