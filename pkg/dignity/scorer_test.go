package dignity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/ruleset"
)

func TestBaseScore_StrictlyDescendsByTier(t *testing.T) {
	scorer := NewScorer(ruleset.Default())

	previous := 101.0
	for _, classification := range models.AllClassifications {
		score := scorer.BaseScore(classification)
		assert.Less(t, score, previous, "tier %s must score below the stronger tier", classification)
		assert.GreaterOrEqual(t, score, 0.0)
		previous = score
	}
}

func TestScore_ZeroModifierPreservesBase(t *testing.T) {
	scorer := NewScorer(ruleset.Default())

	assert.Equal(t, 100.0, scorer.Score(models.DignityExalted, 0))
	assert.Equal(t, 40.0, scorer.Score(models.DignityNeutralSign, 0))
	assert.Equal(t, 5.0, scorer.Score(models.DignityDebilitated, 0))
}

func TestScore_ClampsToBounds(t *testing.T) {
	scorer := NewScorer(ruleset.Default())

	assert.Equal(t, 100.0, scorer.Score(models.DignityExalted, 50))
	assert.Equal(t, 0.0, scorer.Score(models.DignityDebilitated, -50))
	assert.Equal(t, 55.0, scorer.Score(models.DignityDebilitated, 50))
}
