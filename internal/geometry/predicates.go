package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Covers reports whether the polygon contains the point, boundary-inclusive:
// a point lying exactly on a ring segment is covered. This mirrors PostGIS
// ST_Covers so both storage backends classify boundary points identically.
func Covers(polygon orb.Polygon, point orb.Point) bool {
	for _, ring := range polygon {
		for i := 0; i+1 < len(ring); i++ {
			if pointOnSegment(ring[i], ring[i+1], point) {
				return true
			}
		}
	}

	return planar.PolygonContains(polygon, point)
}

// Intersects reports whether two polygons share any boundary or interior
// point. Full containment of one polygon by the other counts; a polygon
// sitting entirely inside a hole does not.
func Intersects(a, b orb.Polygon) bool {
	if !a.Bound().Intersects(b.Bound()) {
		return false
	}

	for _, ringA := range a {
		for _, ringB := range b {
			if ringsCross(ringA, ringB) {
				return true
			}
		}
	}

	// No edge crossings: either disjoint or one fully inside the other.
	return Covers(a, b[0][0]) || Covers(b, a[0][0])
}

func ringsCross(a, b orb.Ring) bool {
	for i := 0; i+1 < len(a); i++ {
		for j := 0; j+1 < len(b); j++ {
			if segmentsIntersect(a[i], a[i+1], b[j], b[j+1]) {
				return true
			}
		}
	}

	return false
}

// segmentsIntersect reports whether segments p1-p2 and q1-q2 share a point,
// including touching endpoints and collinear overlap.
func segmentsIntersect(p1, p2, q1, q2 orb.Point) bool {
	d1 := crossProduct(q1, q2, p1)
	d2 := crossProduct(q1, q2, p2)
	d3 := crossProduct(p1, p2, q1)
	d4 := crossProduct(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && pointOnSegment(q1, q2, p1):
		return true
	case d2 == 0 && pointOnSegment(q1, q2, p2):
		return true
	case d3 == 0 && pointOnSegment(p1, p2, q1):
		return true
	case d4 == 0 && pointOnSegment(p1, p2, q2):
		return true
	}

	return false
}

// crossProduct is the z component of (b-a) x (p-a); its sign gives the side
// of line a-b that p falls on.
func crossProduct(a, b, p orb.Point) float64 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

// pointOnSegment reports whether p lies on the segment a-b, endpoints included.
func pointOnSegment(a, b, p orb.Point) bool {
	if crossProduct(a, b, p) != 0 {
		return false
	}

	return min(a[0], b[0]) <= p[0] && p[0] <= max(a[0], b[0]) &&
		min(a[1], b[1]) <= p[1] && p[1] <= max(a[1], b[1])
}
