// Package friendship exposes the directed planetary relationship matrix.
package friendship

import (
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
)

// Table answers directed relationship queries between planets. The relation
// is not symmetric: Sun regards Ketu as an enemy while Ketu regards Sun as a
// friend. Build tables from a validated rule set so lookups always succeed.
type Table struct {
	matrix map[models.Planet]map[models.Planet]models.FriendshipRelation
}

// New creates a table over the given matrix
func New(matrix map[models.Planet]map[models.Planet]models.FriendshipRelation) *Table {
	return &Table{matrix: matrix}
}

// Relation returns the relation planet `from` bears toward planet `to`.
// The second return is false when the pair is absent from the matrix, which
// only happens with an unvalidated rule set.
func (t *Table) Relation(from, to models.Planet) (models.FriendshipRelation, bool) {
	row, ok := t.matrix[from]
	if !ok {
		return "", false
	}
	rel, ok := row[to]
	return rel, ok
}
