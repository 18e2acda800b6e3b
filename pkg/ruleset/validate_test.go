package ruleset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astro-fusion/numerology-white-paper/pkg/models"
)

func requireConfigError(t *testing.T, err error, table string) {
	t.Helper()
	require.Error(t, err)

	var configErr *models.ConfigurationError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, table, configErr.Table)
}

func TestValidate_DefaultTablesAreValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate_MissingExaltationEntry(t *testing.T) {
	rs := Default()
	delete(rs.Exaltation, models.PlanetSaturn)
	requireConfigError(t, rs.Validate(), "exaltation")
}

func TestValidate_MissingFriendshipPair(t *testing.T) {
	rs := Default()
	delete(rs.Friendship[models.PlanetSun], models.PlanetMoon)
	requireConfigError(t, rs.Validate(), "friendship")
}

func TestValidate_MissingFriendshipRow(t *testing.T) {
	rs := Default()
	delete(rs.Friendship, models.PlanetKetu)
	requireConfigError(t, rs.Validate(), "friendship")
}

func TestValidate_SelfRelationMustBeGreatFriend(t *testing.T) {
	rs := Default()
	rs.Friendship[models.PlanetMars][models.PlanetMars] = models.RelationNeutral
	requireConfigError(t, rs.Validate(), "friendship")
}

func TestValidate_BasePoints(t *testing.T) {
	t.Run("missing tier", func(t *testing.T) {
		rs := Default()
		delete(rs.BasePoints, models.DignityNeutralSign)
		requireConfigError(t, rs.Validate(), "base_points")
	})

	t.Run("outside range", func(t *testing.T) {
		rs := Default()
		rs.BasePoints[models.DignityExalted] = 150
		requireConfigError(t, rs.Validate(), "base_points")
	})
}

func TestValidate_SupportBands(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		rs := Default()
		rs.SupportBands = nil
		requireConfigError(t, rs.Validate(), "support_bands")
	})

	t.Run("first band must start at zero", func(t *testing.T) {
		rs := Default()
		rs.SupportBands[0].Threshold = 5
		requireConfigError(t, rs.Validate(), "support_bands")
	})

	t.Run("thresholds must ascend", func(t *testing.T) {
		rs := Default()
		rs.SupportBands[2].Threshold = rs.SupportBands[1].Threshold
		requireConfigError(t, rs.Validate(), "support_bands")
	})
}

func TestValidate_NumerologyRulers(t *testing.T) {
	t.Run("missing digit", func(t *testing.T) {
		rs := Default()
		delete(rs.NumerologyRulers, 7)
		requireConfigError(t, rs.Validate(), "numerology_rulers")
	})

	t.Run("unknown planet", func(t *testing.T) {
		rs := Default()
		rs.NumerologyRulers[3] = models.Planet("pluto")
		requireConfigError(t, rs.Validate(), "numerology_rulers")
	})
}

func TestValidate_DegenerateMoolatrikonaRange(t *testing.T) {
	rs := Default()
	rng := rs.Moolatrikona[models.PlanetSun]
	rng.StartDegree, rng.EndDegree = 20, 10
	rs.Moolatrikona[models.PlanetSun] = rng
	requireConfigError(t, rs.Validate(), "moolatrikona")
}

func TestValidate_WindowDegreeOutsideSign(t *testing.T) {
	rs := Default()
	window := rs.Exaltation[models.PlanetSun]
	window.Degree = 31
	rs.Exaltation[models.PlanetSun] = window
	requireConfigError(t, rs.Validate(), "exaltation")
}
