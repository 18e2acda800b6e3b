package dignity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/ruleset"
)

func TestPlacementModifier_Retrograde(t *testing.T) {
	rules := ruleset.Default()

	t.Run("debilitated planet gets the cancellation bonus", func(t *testing.T) {
		p := placementAt(t, models.PlanetMars, 118)
		p.Retrograde = true
		modifier := PlacementModifier(rules, p, models.DignityDebilitated)
		assert.Equal(t, float64(RetrogradeBonusDebilitated), modifier)
	})

	t.Run("other classifications get the normal bonus", func(t *testing.T) {
		p := placementAt(t, models.PlanetJupiter, 75)
		p.Retrograde = true
		modifier := PlacementModifier(rules, p, models.DignityFriendSign)
		assert.Equal(t, float64(RetrogradeBonusNormal), modifier)
	})
}

func TestPlacementModifier_Combustion(t *testing.T) {
	rules := ruleset.Default()
	sun := 100.0

	t.Run("deep combustion", func(t *testing.T) {
		p := placementAt(t, models.PlanetMercury, 102)
		p.SunLongitude = &sun
		modifier := PlacementModifier(rules, p, models.DignityFriendSign)
		assert.Equal(t, -float64(CombustPenaltyMajor), modifier)
	})

	t.Run("partial combustion", func(t *testing.T) {
		p := placementAt(t, models.PlanetMercury, 107)
		p.SunLongitude = &sun
		modifier := PlacementModifier(rules, p, models.DignityFriendSign)
		assert.Equal(t, -float64(CombustPenaltyMinor), modifier)
	})

	t.Run("outside combustion orb", func(t *testing.T) {
		p := placementAt(t, models.PlanetMercury, 110)
		p.SunLongitude = &sun
		modifier := PlacementModifier(rules, p, models.DignityFriendSign)
		assert.Equal(t, 0.0, modifier)
	})

	t.Run("the Sun never combusts itself", func(t *testing.T) {
		p := placementAt(t, models.PlanetSun, 100)
		p.SunLongitude = &sun
		modifier := PlacementModifier(rules, p, models.DignityOwnSign)
		assert.Equal(t, 0.0, modifier)
	})

	t.Run("unknown sun position skips the check", func(t *testing.T) {
		p := placementAt(t, models.PlanetMercury, 102)
		modifier := PlacementModifier(rules, p, models.DignityFriendSign)
		assert.Equal(t, 0.0, modifier)
	})
}

func TestPlacementModifier_ExactDegree(t *testing.T) {
	rules := ruleset.Default()

	t.Run("exact exaltation degree", func(t *testing.T) {
		p := placementAt(t, models.PlanetMars, 298.3)
		modifier := PlacementModifier(rules, p, models.DignityExalted)
		assert.Equal(t, float64(ExactExaltationBonus), modifier)
	})

	t.Run("past the exact tolerance", func(t *testing.T) {
		p := placementAt(t, models.PlanetMars, 299)
		modifier := PlacementModifier(rules, p, models.DignityExalted)
		assert.Equal(t, 0.0, modifier)
	})

	t.Run("exact debilitation degree", func(t *testing.T) {
		p := placementAt(t, models.PlanetSun, 190.2)
		modifier := PlacementModifier(rules, p, models.DignityDebilitated)
		assert.Equal(t, -float64(ExactDebilitationPenalty), modifier)
	})

	t.Run("whole sign windows carry no exact degree", func(t *testing.T) {
		p := placementAt(t, models.PlanetRahu, 45)
		modifier := PlacementModifier(rules, p, models.DignityExalted)
		assert.Equal(t, 0.0, modifier)
	})
}

func TestPlacementModifier_Combines(t *testing.T) {
	rules := ruleset.Default()

	// Retrograde debilitated Mars sitting exactly on its fall degree:
	// +50 retrograde, -10 exact debilitation
	p := placementAt(t, models.PlanetMars, 118)
	p.Retrograde = true
	modifier := PlacementModifier(rules, p, models.DignityDebilitated)
	assert.Equal(t, float64(RetrogradeBonusDebilitated-ExactDebilitationPenalty), modifier)
}
