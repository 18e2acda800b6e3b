package ruleset

import (
	"fmt"

	"github.com/astro-fusion/numerology-white-paper/pkg/models"
)

// Validate checks the fact tables for completeness and consistency. It
// returns a *models.ConfigurationError on the first defect found; the engine
// calls this at construction so a bad table can never serve a query.
func (r *Ruleset) Validate() error {
	if r.ExactOrb < 0 {
		return &models.ConfigurationError{Table: "exaltation", Reason: "exact orb must not be negative"}
	}

	for _, planet := range models.AllPlanets {
		if _, ok := r.Exaltation[planet]; !ok {
			return &models.ConfigurationError{Table: "exaltation", Reason: fmt.Sprintf("missing entry for %s", planet)}
		}
		if _, ok := r.Debilitation[planet]; !ok {
			return &models.ConfigurationError{Table: "debilitation", Reason: fmt.Sprintf("missing entry for %s", planet)}
		}
	}

	if err := r.validateWindows("exaltation", r.Exaltation); err != nil {
		return err
	}
	if err := r.validateWindows("debilitation", r.Debilitation); err != nil {
		return err
	}

	for planet, rng := range r.Moolatrikona {
		if !rng.Sign.Valid() {
			return &models.ConfigurationError{Table: "moolatrikona", Reason: fmt.Sprintf("invalid sign for %s", planet)}
		}
		if rng.StartDegree < 0 || rng.EndDegree > models.DegreesPerSign || rng.StartDegree >= rng.EndDegree {
			return &models.ConfigurationError{Table: "moolatrikona", Reason: fmt.Sprintf("degenerate range for %s", planet)}
		}
	}

	for sign := models.SignAries; sign < models.SignCount; sign++ {
		ruler, ok := r.SignRulers[sign]
		if !ok {
			return &models.ConfigurationError{Table: "sign_rulers", Reason: fmt.Sprintf("no ruler for %s", sign)}
		}
		if !validPlanet(ruler) {
			return &models.ConfigurationError{Table: "sign_rulers", Reason: fmt.Sprintf("unknown ruler %q for %s", ruler, sign)}
		}
	}

	// The friendship matrix must be total: every directed pair needs a
	// relation, and self relations are fixed at great friendship.
	for _, from := range models.AllPlanets {
		row, ok := r.Friendship[from]
		if !ok {
			return &models.ConfigurationError{Table: "friendship", Reason: fmt.Sprintf("missing row for %s", from)}
		}
		for _, to := range models.AllPlanets {
			rel, ok := row[to]
			if !ok {
				return &models.ConfigurationError{Table: "friendship", Reason: fmt.Sprintf("missing relation %s -> %s", from, to)}
			}
			if !validRelation(rel) {
				return &models.ConfigurationError{Table: "friendship", Reason: fmt.Sprintf("unknown relation %q for %s -> %s", rel, from, to)}
			}
			if from == to && rel != models.RelationGreatFriend {
				return &models.ConfigurationError{Table: "friendship", Reason: fmt.Sprintf("self relation for %s must be great_friend", from)}
			}
		}
	}

	for _, classification := range models.AllClassifications {
		points, ok := r.BasePoints[classification]
		if !ok {
			return &models.ConfigurationError{Table: "base_points", Reason: fmt.Sprintf("missing points for %s", classification)}
		}
		if points < 0 || points > 100 {
			return &models.ConfigurationError{Table: "base_points", Reason: fmt.Sprintf("points for %s outside [0, 100]", classification)}
		}
	}

	if len(r.SupportBands) == 0 {
		return &models.ConfigurationError{Table: "support_bands", Reason: "at least one band is required"}
	}
	if r.SupportBands[0].Threshold != 0 {
		return &models.ConfigurationError{Table: "support_bands", Reason: "first band must start at threshold 0"}
	}
	for i, band := range r.SupportBands {
		if band.Level.Rank() < 0 {
			return &models.ConfigurationError{Table: "support_bands", Reason: fmt.Sprintf("unknown support level %q", band.Level)}
		}
		if i > 0 && band.Threshold <= r.SupportBands[i-1].Threshold {
			return &models.ConfigurationError{Table: "support_bands", Reason: "thresholds must be strictly ascending"}
		}
	}

	for digit := 1; digit <= 9; digit++ {
		ruler, ok := r.NumerologyRulers[digit]
		if !ok {
			return &models.ConfigurationError{Table: "numerology_rulers", Reason: fmt.Sprintf("no ruler for digit %d", digit)}
		}
		if !validPlanet(ruler) {
			return &models.ConfigurationError{Table: "numerology_rulers", Reason: fmt.Sprintf("unknown ruler %q for digit %d", ruler, digit)}
		}
	}

	return nil
}

func (r *Ruleset) validateWindows(table string, windows map[models.Planet]DegreeWindow) error {
	for planet, window := range windows {
		if !window.Sign.Valid() {
			return &models.ConfigurationError{Table: table, Reason: fmt.Sprintf("invalid sign for %s", planet)}
		}
		if window.Degree < 0 || window.Degree >= models.DegreesPerSign {
			return &models.ConfigurationError{Table: table, Reason: fmt.Sprintf("degree for %s outside [0, 30)", planet)}
		}
		if window.Orb < 0 {
			return &models.ConfigurationError{Table: table, Reason: fmt.Sprintf("negative orb for %s", planet)}
		}
	}
	return nil
}

func validPlanet(p models.Planet) bool {
	for _, known := range models.AllPlanets {
		if p == known {
			return true
		}
	}
	return false
}

func validRelation(r models.FriendshipRelation) bool {
	for _, known := range models.AllRelations {
		if r == known {
			return true
		}
	}
	return false
}
