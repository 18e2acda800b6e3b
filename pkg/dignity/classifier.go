// Package dignity classifies and scores planetary placements against the
// essential dignity tables.
package dignity

import (
	"github.com/astro-fusion/numerology-white-paper/pkg/friendship"
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/ruleset"
)

// Classifier assigns exactly one dignity classification to a placement.
// Rules apply in strict priority order: exaltation, debilitation,
// moolatrikona, own sign, then the friendship relation toward the sign's
// ruler.
type Classifier struct {
	rules   *ruleset.Ruleset
	friends *friendship.Table
}

// NewClassifier creates a classifier over a validated rule set
func NewClassifier(rules *ruleset.Ruleset) *Classifier {
	return &Classifier{
		rules:   rules,
		friends: friendship.New(rules.Friendship),
	}
}

// Classify returns the classification for a placement along with the sign's
// ruler and the planet's relation toward it. Ruler and relation are reported
// even when a higher-priority rule decides the classification.
func (c *Classifier) Classify(p models.Placement) (models.DignityClassification, models.Planet, models.FriendshipRelation) {
	ruler := c.rules.SignRulers[p.Sign]
	relation, ok := c.friends.Relation(p.Planet, ruler)
	if !ok {
		relation = models.RelationNeutral
	}

	switch {
	case c.inDignitySign(c.rules.Exaltation[p.Planet], p):
		return models.DignityExalted, ruler, relation
	case c.inDignitySign(c.rules.Debilitation[p.Planet], p):
		return models.DignityDebilitated, ruler, relation
	case c.inMoolatrikona(p):
		return models.DignityMoolatrikona, ruler, relation
	case c.inOwnSign(p):
		return models.DignityOwnSign, ruler, relation
	default:
		return relation.Classification(), ruler, relation
	}
}

// inDignitySign reports whether the placement occupies the window's sign.
// Dignity covers the whole sign; the exact degree only feeds the placement
// modifier. A moolatrikona range overlapping the sign keeps the degrees it
// names, which is how the Moon's and Mercury's spans carve their exaltation
// signs.
func (c *Classifier) inDignitySign(window ruleset.DegreeWindow, p models.Placement) bool {
	return p.Sign == window.Sign && !c.inMoolatrikona(p)
}

func (c *Classifier) inMoolatrikona(p models.Placement) bool {
	rng, ok := c.rules.Moolatrikona[p.Planet]
	if !ok {
		return false
	}
	return p.Sign == rng.Sign && p.DegreeInSign >= rng.StartDegree && p.DegreeInSign <= rng.EndDegree
}

func (c *Classifier) inOwnSign(p models.Placement) bool {
	for _, sign := range c.rules.OwnSigns[p.Planet] {
		if p.Sign == sign {
			return true
		}
	}
	return false
}
