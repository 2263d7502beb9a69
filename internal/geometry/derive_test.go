package geometry

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestArea_EquatorSquareIsMetric(t *testing.T) {
	// ~0.01 degrees is roughly 1.1 km at the equator, so the area must land
	// in the 10^6..10^7 m² range, not a degree-scaled value like 1e-4.
	polygon := orb.Polygon{
		{{0, 0}, {0, 0.01}, {0.01, 0.01}, {0.01, 0}, {0, 0}},
	}

	area := Area(polygon)
	assert.Greater(t, area, 1e6)
	assert.Less(t, area, 1e7)
}

func TestArea_NonNegative(t *testing.T) {
	// Clockwise winding must not yield a negative area.
	clockwise := orb.Polygon{
		{{0, 0}, {0.01, 0}, {0.01, 0.01}, {0, 0.01}, {0, 0}},
	}

	assert.Greater(t, Area(clockwise), 0.0)
}

func TestArea_HoleReducesArea(t *testing.T) {
	solid := orb.Polygon{
		{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}},
	}
	holed := orb.Polygon{
		solid[0],
		{{0.25, 0.25}, {0.75, 0.25}, {0.75, 0.75}, {0.25, 0.75}, {0.25, 0.25}},
	}

	assert.Less(t, Area(holed), Area(solid))
}

func TestArea_DoesNotMutateInput(t *testing.T) {
	polygon := orb.Polygon{
		{{0, 0}, {0, 0.01}, {0.01, 0.01}, {0.01, 0}, {0, 0}},
	}

	Area(polygon)
	assert.Equal(t, orb.Point{0, 0.01}, polygon[0][1])
}

func TestCentroid_Square(t *testing.T) {
	polygon := orb.Polygon{
		{{0, 0}, {0, 0.01}, {0.01, 0.01}, {0.01, 0}, {0, 0}},
	}

	centroid := Centroid(polygon)
	assert.InDelta(t, 0.005, centroid.Lon(), 1e-9)
	assert.InDelta(t, 0.005, centroid.Lat(), 1e-9)
}

func TestCentroid_WithinConvexHullBound(t *testing.T) {
	polygon := orb.Polygon{
		{{-74, 39}, {-74, 41}, {-72, 41}, {-72, 39}, {-74, 39}},
	}

	centroid := Centroid(polygon)
	assert.True(t, polygon.Bound().Contains(centroid))
}
