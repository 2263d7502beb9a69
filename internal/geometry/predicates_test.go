package geometry

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

var unitSquare = orb.Polygon{
	{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}},
}

func TestCovers_Interior(t *testing.T) {
	assert.True(t, Covers(unitSquare, orb.Point{0.5, 0.5}))
}

func TestCovers_Exterior(t *testing.T) {
	assert.False(t, Covers(unitSquare, orb.Point{1.5, 0.5}))
}

func TestCovers_BoundaryInclusive(t *testing.T) {
	// Points exactly on an edge or vertex are covered; the containment
	// convention is boundary-inclusive everywhere.
	assert.True(t, Covers(unitSquare, orb.Point{0, 0.5}))
	assert.True(t, Covers(unitSquare, orb.Point{1, 1}))
	assert.True(t, Covers(unitSquare, orb.Point{0.5, 0}))
}

func TestCovers_HoleExcluded(t *testing.T) {
	holed := orb.Polygon{
		unitSquare[0],
		{{0.25, 0.25}, {0.25, 0.75}, {0.75, 0.75}, {0.75, 0.25}, {0.25, 0.25}},
	}

	assert.False(t, Covers(holed, orb.Point{0.5, 0.5}))
	assert.True(t, Covers(holed, orb.Point{0.1, 0.1}))
	// The hole boundary itself still belongs to the polygon.
	assert.True(t, Covers(holed, orb.Point{0.25, 0.5}))
}

func TestIntersects_Overlapping(t *testing.T) {
	other := orb.Polygon{
		{{0.5, 0.5}, {0.5, 1.5}, {1.5, 1.5}, {1.5, 0.5}, {0.5, 0.5}},
	}

	assert.True(t, Intersects(unitSquare, other))
	assert.True(t, Intersects(other, unitSquare))
}

func TestIntersects_Disjoint(t *testing.T) {
	other := orb.Polygon{
		{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {5, 5}},
	}

	assert.False(t, Intersects(unitSquare, other))
}

func TestIntersects_Contained(t *testing.T) {
	inner := orb.Polygon{
		{{0.4, 0.4}, {0.4, 0.6}, {0.6, 0.6}, {0.6, 0.4}, {0.4, 0.4}},
	}

	assert.True(t, Intersects(unitSquare, inner))
	assert.True(t, Intersects(inner, unitSquare))
}

func TestIntersects_TouchingEdge(t *testing.T) {
	adjacent := orb.Polygon{
		{{1, 0}, {1, 1}, {2, 1}, {2, 0}, {1, 0}},
	}

	assert.True(t, Intersects(unitSquare, adjacent))
}

func TestIntersects_InsideHole(t *testing.T) {
	holed := orb.Polygon{
		{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}},
		{{2, 2}, {2, 8}, {8, 8}, {8, 2}, {2, 2}},
	}
	island := orb.Polygon{
		{{4, 4}, {4, 6}, {6, 6}, {6, 4}, {4, 4}},
	}

	assert.False(t, Intersects(holed, island))
}
