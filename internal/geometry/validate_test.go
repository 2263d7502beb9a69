package geometry

import (
	"testing"

	"atlas/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePoint_Success(t *testing.T) {
	raw := geojson.NewGeometry(orb.Point{-73.0, 40.0})

	point, err := ValidatePoint(raw)
	require.NoError(t, err)
	assert.Equal(t, -73.0, point.Lon())
	assert.Equal(t, 40.0, point.Lat())
}

func TestValidatePoint_WrongType(t *testing.T) {
	raw := geojson.NewGeometry(orb.Polygon{
		{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}},
	})

	_, err := ValidatePoint(raw)
	assert.ErrorIs(t, err, ErrInvalidGeometryType)
}

func TestValidatePoint_Nil(t *testing.T) {
	_, err := ValidatePoint(nil)
	assert.ErrorIs(t, err, ErrInvalidGeometryType)
}

func TestValidatePoint_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		point orb.Point
	}{
		{"latitude above 90", orb.Point{0, 90.5}},
		{"latitude below -90", orb.Point{0, -91}},
		{"longitude above 180", orb.Point{180.1, 0}},
		{"longitude below -180", orb.Point{-181, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidatePoint(geojson.NewGeometry(tt.point))
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestValidatePolygon_Success(t *testing.T) {
	raw := geojson.NewGeometry(orb.Polygon{
		{{0, 0}, {0, 0.01}, {0.01, 0.01}, {0.01, 0}, {0, 0}},
	})

	polygon, err := ValidatePolygon(raw)
	require.NoError(t, err)
	require.Len(t, polygon, 1)
	assert.Len(t, polygon[0], 5)
}

func TestValidatePolygon_WithHole(t *testing.T) {
	raw := geojson.NewGeometry(orb.Polygon{
		{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}},
		{{0.25, 0.25}, {0.25, 0.75}, {0.75, 0.75}, {0.75, 0.25}, {0.25, 0.25}},
	})

	polygon, err := ValidatePolygon(raw)
	require.NoError(t, err)
	assert.Len(t, polygon, 2)
}

func TestValidatePolygon_WrongType(t *testing.T) {
	_, err := ValidatePolygon(geojson.NewGeometry(orb.Point{0, 0}))
	assert.ErrorIs(t, err, ErrInvalidGeometryType)
}

func TestValidatePolygon_UnclosedRing(t *testing.T) {
	_, err := ValidatePolygon(geojson.NewGeometry(orb.Polygon{
		{{0, 0}, {0, 1}, {1, 1}, {1, 0}},
	}))
	assert.ErrorIs(t, err, ErrInvalidTopology)
}

func TestValidatePolygon_TooFewVertices(t *testing.T) {
	_, err := ValidatePolygon(geojson.NewGeometry(orb.Polygon{
		{{0, 0}, {0, 1}, {0, 0}},
	}))
	assert.ErrorIs(t, err, ErrInvalidTopology)
}

func TestValidatePolygon_SelfIntersecting(t *testing.T) {
	// Bowtie: edges cross in the middle.
	_, err := ValidatePolygon(geojson.NewGeometry(orb.Polygon{
		{{0, 0}, {1, 1}, {1, 0}, {0, 1}, {0, 0}},
	}))
	assert.ErrorIs(t, err, ErrInvalidTopology)
}

func TestValidatePolygon_DegenerateSliver(t *testing.T) {
	_, err := ValidatePolygon(geojson.NewGeometry(orb.Polygon{
		{{0, 0}, {0, 1e-6}, {1e-6, 1e-6}, {1e-6, 0}, {0, 0}},
	}))
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestValidatePolygon_ErrorsCarryDetail(t *testing.T) {
	_, err := ValidatePolygon(geojson.NewGeometry(orb.Point{1, 1}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidGeometryType))
	assert.Contains(t, err.Error(), "Point")
}
