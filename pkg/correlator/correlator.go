// Package correlator translates dignity scores into support verdicts.
package correlator

import (
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/ruleset"
)

// Correlator buckets scores into support levels using the configured bands.
// Bands partition [0, 100]; a score on a boundary belongs to the higher
// (more supportive) band.
type Correlator struct {
	bands []ruleset.SupportBand
}

// New creates a correlator over validated support bands
func New(rules *ruleset.Ruleset) *Correlator {
	return &Correlator{bands: rules.SupportBands}
}

// Level returns the support level for a score. Scores below the first
// threshold take the first band; bands are ascending so the last band whose
// threshold the score meets wins.
func (c *Correlator) Level(score float64) models.SupportLevel {
	level := c.bands[0].Level
	for _, band := range c.bands {
		if score >= band.Threshold {
			level = band.Level
		}
	}
	return level
}
