// Package geometry implements validation of raw GeoJSON input and the
// derived-attribute computations (area, centroid) over validated shapes.
// Everything here is a pure function of its input.
package geometry

import (
	"atlas/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// MinPolygonArea is the minimum planar area, in the geometry's native unit
// (squared degrees for WGS84), below which a polygon is rejected as a
// numerically meaningless sliver.
const MinPolygonArea = 1e-10

// Validation failure categories. Callers classify with errors.Is.
var (
	// ErrInvalidGeometryType is returned when input decodes to a geometry of the wrong kind.
	ErrInvalidGeometryType = errors.New("geometry is not of the expected type")
	// ErrOutOfRange is returned when a coordinate falls outside WGS84 bounds.
	ErrOutOfRange = errors.New("coordinate outside valid WGS84 range")
	// ErrInvalidTopology is returned when polygon rings are unclosed or self-intersecting.
	ErrInvalidTopology = errors.New("invalid polygon topology")
	// ErrDegenerateGeometry is returned when a polygon's planar area is below MinPolygonArea.
	ErrDegenerateGeometry = errors.New("polygon area below minimum threshold")
)

// ValidatePoint checks that raw decodes to a single WGS84 coordinate pair
// with longitude in [-180,180] and latitude in [-90,90].
func ValidatePoint(raw *geojson.Geometry) (orb.Point, error) {
	if raw == nil {
		return orb.Point{}, errors.Wrap(ErrInvalidGeometryType, "location is required")
	}

	point, ok := raw.Geometry().(orb.Point)
	if !ok {
		return orb.Point{}, errors.Wrapf(ErrInvalidGeometryType, "expected Point, got %s", raw.Type)
	}

	if lat := point.Lat(); lat < -90 || lat > 90 {
		return orb.Point{}, errors.Wrapf(ErrOutOfRange, "latitude %v must be between -90 and 90 degrees", lat)
	}
	if lng := point.Lon(); lng < -180 || lng > 180 {
		return orb.Point{}, errors.Wrapf(ErrOutOfRange, "longitude %v must be between -180 and 180 degrees", lng)
	}

	return point, nil
}

// ValidatePolygon checks that raw decodes to a topologically valid WGS84
// polygon: every ring closed with at least four vertices, no ring
// self-intersections, and a planar area of at least MinPolygonArea.
func ValidatePolygon(raw *geojson.Geometry) (orb.Polygon, error) {
	if raw == nil {
		return nil, errors.Wrap(ErrInvalidGeometryType, "geometry is required")
	}

	polygon, ok := raw.Geometry().(orb.Polygon)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidGeometryType, "expected Polygon, got %s", raw.Type)
	}
	if len(polygon) == 0 {
		return nil, errors.Wrap(ErrInvalidTopology, "polygon has no rings")
	}

	for i, ring := range polygon {
		if len(ring) < 4 {
			return nil, errors.Wrapf(ErrInvalidTopology, "ring %d has fewer than 4 vertices", i)
		}
		if !ring.Closed() {
			return nil, errors.Wrapf(ErrInvalidTopology, "ring %d is not closed", i)
		}
		if ringSelfIntersects(ring) {
			return nil, errors.Wrapf(ErrInvalidTopology, "ring %d self-intersects", i)
		}
	}

	if area := planarArea(polygon); area < MinPolygonArea {
		return nil, errors.Wrapf(ErrDegenerateGeometry, "planar area %g below %g", area, MinPolygonArea)
	}

	return polygon, nil
}

// planarArea is the unprojected shoelace area in the polygon's native unit.
// Used only for the degeneracy threshold; metric area comes from Area.
func planarArea(polygon orb.Polygon) float64 {
	area := planar.Area(polygon)
	if area < 0 {
		area = -area
	}

	return area
}

// ringSelfIntersects reports whether any two non-adjacent segments of the
// ring cross. Adjacent segments share an endpoint and are skipped, as is the
// closing segment against the first.
func ringSelfIntersects(ring orb.Ring) bool {
	n := len(ring) - 1 // the final vertex repeats the first
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			if segmentsIntersect(ring[i], ring[i+1], ring[j], ring[j+1]) {
				return true
			}
		}
	}

	return false
}
