package friendship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/ruleset"
)

func defaultTable() *Table {
	return New(ruleset.Default().Friendship)
}

func TestRelation_MatrixIsTotal(t *testing.T) {
	table := defaultTable()
	for _, from := range models.AllPlanets {
		for _, to := range models.AllPlanets {
			rel, ok := table.Relation(from, to)
			require.True(t, ok, "missing relation %s -> %s", from, to)
			assert.Contains(t, models.AllRelations, rel)
		}
	}
}

func TestRelation_SelfIsGreatFriend(t *testing.T) {
	table := defaultTable()
	for _, planet := range models.AllPlanets {
		rel, ok := table.Relation(planet, planet)
		require.True(t, ok)
		assert.Equal(t, models.RelationGreatFriend, rel)
	}
}

func TestRelation_IsDirected(t *testing.T) {
	table := defaultTable()

	tests := []struct {
		from, to models.Planet
		forward  models.FriendshipRelation
		backward models.FriendshipRelation
	}{
		{models.PlanetSun, models.PlanetKetu, models.RelationEnemy, models.RelationFriend},
		{models.PlanetMercury, models.PlanetKetu, models.RelationEnemy, models.RelationFriend},
		{models.PlanetMoon, models.PlanetMars, models.RelationEnemy, models.RelationEnemy},
	}

	for _, tt := range tests {
		forward, ok := table.Relation(tt.from, tt.to)
		require.True(t, ok)
		assert.Equal(t, tt.forward, forward, "%s -> %s", tt.from, tt.to)

		backward, ok := table.Relation(tt.to, tt.from)
		require.True(t, ok)
		assert.Equal(t, tt.backward, backward, "%s -> %s", tt.to, tt.from)
	}
}

func TestRelation_UnknownPlanet(t *testing.T) {
	table := defaultTable()
	_, ok := table.Relation(models.Planet("pluto"), models.PlanetSun)
	assert.False(t, ok)
}
