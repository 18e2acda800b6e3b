package correlator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/ruleset"
)

func TestLevel(t *testing.T) {
	correlator := New(ruleset.Default())

	tests := []struct {
		score float64
		want  models.SupportLevel
	}{
		{0, models.SupportStronglyContradictory},
		{5, models.SupportStronglyContradictory},
		{24.9, models.SupportStronglyContradictory},
		{25, models.SupportContradictory},
		{39.9, models.SupportContradictory},
		{40, models.SupportNeutral},
		{49.9, models.SupportNeutral},
		{50, models.SupportSupportive},
		{74.9, models.SupportSupportive},
		{75, models.SupportStronglySupportive},
		{100, models.SupportStronglySupportive},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, correlator.Level(tt.score), "score %.1f", tt.score)
	}
}

func TestLevel_BoundaryScoresTakeTheHigherBand(t *testing.T) {
	correlator := New(ruleset.Default())

	// A score sitting exactly on a threshold belongs to the more supportive
	// band on both sides of the boundary
	for _, band := range ruleset.Default().SupportBands {
		assert.Equal(t, band.Level, correlator.Level(band.Threshold))
	}
}

func TestLevel_MonotonicInScore(t *testing.T) {
	correlator := New(ruleset.Default())

	previous := -1
	for score := 0.0; score <= 100; score += 0.5 {
		rank := correlator.Level(score).Rank()
		assert.GreaterOrEqual(t, rank, previous, "support must never drop as score rises (score %.1f)", score)
		previous = rank
	}
}
