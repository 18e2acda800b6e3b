package dignity

import (
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/ruleset"
)

// Scorer converts classifications into bounded numeric scores
type Scorer struct {
	rules *ruleset.Ruleset
}

// NewScorer creates a scorer over a validated rule set
func NewScorer(rules *ruleset.Ruleset) *Scorer {
	return &Scorer{rules: rules}
}

// BaseScore returns the per-tier base points for a classification
func (s *Scorer) BaseScore(classification models.DignityClassification) float64 {
	return s.rules.BasePoints[classification]
}

// Score combines base points with a placement modifier and clamps the result
// to [0, 100]. A zero modifier preserves the strict base ordering across
// tiers.
func (s *Scorer) Score(classification models.DignityClassification, modifier float64) float64 {
	return clamp(s.BaseScore(classification) + modifier)
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
