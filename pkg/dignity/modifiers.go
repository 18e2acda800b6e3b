package dignity

import (
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/ruleset"
	"github.com/astro-fusion/numerology-white-paper/pkg/zodiac"
)

// Modifier constants. The combined modifier stays within [-50, +50].
const (
	// RetrogradeBonusDebilitated is the neecha bhanga bonus: a retrograde
	// debilitated planet largely cancels its debilitation.
	RetrogradeBonusDebilitated = 50
	RetrogradeBonusNormal      = 15

	CombustPenaltyMajor = 40
	CombustPenaltyMinor = 20

	// Combustion orbs, degrees of separation from the Sun
	CombustOrbMajor = 3.0
	CombustOrbMinor = 8.0

	ExactExaltationBonus     = 5
	ExactDebilitationPenalty = 10
)

// PlacementModifier computes the positional adjustment for a placement:
// retrograde bonus, combustion penalty, and exact-degree bonus or penalty.
// The caller adds the result to the base score and clamps.
func PlacementModifier(rules *ruleset.Ruleset, p models.Placement, classification models.DignityClassification) float64 {
	modifier := 0.0

	if p.Retrograde {
		if classification == models.DignityDebilitated {
			modifier += RetrogradeBonusDebilitated
		} else {
			modifier += RetrogradeBonusNormal
		}
	}

	// The Sun cannot combust itself
	if p.Planet != models.PlanetSun && p.SunLongitude != nil {
		separation := zodiac.Separation(p.Longitude, *p.SunLongitude)
		switch {
		case separation <= CombustOrbMajor:
			modifier -= CombustPenaltyMajor
		case separation <= CombustOrbMinor:
			modifier -= CombustPenaltyMinor
		}
	}

	if window, ok := rules.Exaltation[p.Planet]; ok && !window.WholeSign {
		if zodiac.Separation(p.Longitude, window.Longitude()) <= exactOrb(rules, window) {
			modifier += ExactExaltationBonus
		}
	}
	if window, ok := rules.Debilitation[p.Planet]; ok && !window.WholeSign {
		if zodiac.Separation(p.Longitude, window.Longitude()) <= exactOrb(rules, window) {
			modifier -= ExactDebilitationPenalty
		}
	}

	return modifier
}

func exactOrb(rules *ruleset.Ruleset, window ruleset.DegreeWindow) float64 {
	if window.Orb > 0 {
		return window.Orb
	}
	return rules.ExactOrb
}
