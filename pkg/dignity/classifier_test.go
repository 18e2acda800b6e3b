package dignity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/ruleset"
	"github.com/astro-fusion/numerology-white-paper/pkg/zodiac"
)

func placementAt(t *testing.T, planet models.Planet, longitude float64) models.Placement {
	t.Helper()
	sign, degree, err := zodiac.Resolve(longitude)
	require.NoError(t, err)
	return models.Placement{
		Planet:       planet,
		Longitude:    longitude,
		Sign:         sign,
		DegreeInSign: degree,
	}
}

func TestClassify(t *testing.T) {
	classifier := NewClassifier(ruleset.Default())

	tests := []struct {
		name      string
		planet    models.Planet
		longitude float64
		want      models.DignityClassification
	}{
		{"Mars at deep exaltation degree", models.PlanetMars, 298, models.DignityExalted},
		{"Mars late in Capricorn", models.PlanetMars, 299.9, models.DignityExalted},
		{"Mars early in Capricorn", models.PlanetMars, 271, models.DignityExalted},
		{"Mars across the Aquarius cusp", models.PlanetMars, 301, models.DignityFriendSign},
		{"Mars at deep debilitation degree", models.PlanetMars, 118, models.DignityDebilitated},
		{"Mars mid-Cancer", models.PlanetMars, 95, models.DignityDebilitated},
		{"Mars in Aries moolatrikona", models.PlanetMars, 10, models.DignityMoolatrikona},
		{"Mars in Aries past moolatrikona", models.PlanetMars, 19, models.DignityOwnSign},
		{"Mars in Scorpio", models.PlanetMars, 215, models.DignityOwnSign},
		{"Sun at deep debilitation degree", models.PlanetSun, 190, models.DignityDebilitated},
		{"Sun mid-Libra", models.PlanetSun, 195, models.DignityDebilitated},
		{"Sun in enemy sign Taurus", models.PlanetSun, 45, models.DignityEnemySign},
		{"Moon exalted in early Taurus", models.PlanetMoon, 33, models.DignityExalted},
		{"Moon in Taurus moolatrikona", models.PlanetMoon, 50, models.DignityMoolatrikona},
		{"Moon in enemy sign Aquarius", models.PlanetMoon, 305, models.DignityEnemySign},
		{"Mercury at deep exaltation degree", models.PlanetMercury, 165, models.DignityExalted},
		{"Mercury exalted below moolatrikona span", models.PlanetMercury, 155, models.DignityExalted},
		{"Mercury in Virgo moolatrikona", models.PlanetMercury, 168, models.DignityMoolatrikona},
		{"Mercury in own Gemini", models.PlanetMercury, 75, models.DignityOwnSign},
		{"Jupiter exalted mid-Cancer", models.PlanetJupiter, 110, models.DignityExalted},
		{"Jupiter in friend sign Gemini", models.PlanetJupiter, 75, models.DignityFriendSign},
		{"Sun neutral toward Mercury", models.PlanetSun, 75, models.DignityNeutralSign},
		{"Rahu exalted anywhere in Taurus", models.PlanetRahu, 45, models.DignityExalted},
		{"Rahu debilitated anywhere in Scorpio", models.PlanetRahu, 225, models.DignityDebilitated},
		{"Ketu exalted anywhere in Scorpio", models.PlanetKetu, 225, models.DignityExalted},
		{"Ketu debilitated anywhere in Taurus", models.PlanetKetu, 50, models.DignityDebilitated},
		{"Rahu in enemy sign Gemini", models.PlanetRahu, 75, models.DignityEnemySign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classification, _, _ := classifier.Classify(placementAt(t, tt.planet, tt.longitude))
			assert.Equal(t, tt.want, classification)
		})
	}
}

func TestClassify_ReportsRulerAndRelation(t *testing.T) {
	classifier := NewClassifier(ruleset.Default())

	// Mars exalted in Capricorn: the verdict is exaltation, but Saturn and the
	// friendship toward it are still reported
	classification, ruler, relation := classifier.Classify(placementAt(t, models.PlanetMars, 298))
	assert.Equal(t, models.DignityExalted, classification)
	assert.Equal(t, models.PlanetSaturn, ruler)
	assert.Equal(t, models.RelationFriend, relation)
}

func TestClassify_DignityCoversWholeSign(t *testing.T) {
	rules := ruleset.Default()
	classifier := NewClassifier(rules)
	scorer := NewScorer(rules)

	// Mars anywhere in Cancer is debilitated, not just near the deep fall
	// degree of 28, and scores the bottom tier.
	p := placementAt(t, models.PlanetMars, 95)
	classification, _, _ := classifier.Classify(p)
	assert.Equal(t, models.DignityDebilitated, classification)
	assert.Equal(t, 5.0, scorer.Score(classification, PlacementModifier(rules, p, classification)))

	// Saturn anywhere in Libra is exalted, far from the deep degree of 20
	p = placementAt(t, models.PlanetSaturn, 185)
	classification, _, _ = classifier.Classify(p)
	assert.Equal(t, models.DignityExalted, classification)
	assert.Equal(t, 100.0, scorer.Score(classification, PlacementModifier(rules, p, classification)))
}

func TestClassify_EveryPlacementGetsAKnownTier(t *testing.T) {
	classifier := NewClassifier(ruleset.Default())

	for _, planet := range models.AllPlanets {
		for longitude := 0.0; longitude < 360; longitude += 1.0 {
			classification, ruler, _ := classifier.Classify(placementAt(t, planet, longitude))
			assert.Contains(t, models.AllClassifications, classification)
			assert.Contains(t, models.AllPlanets, ruler)
		}
	}
}
