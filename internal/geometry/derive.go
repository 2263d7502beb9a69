package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"
)

// Area returns the surface area of a WGS84 polygon in square meters.
//
// The polygon is reprojected to Web Mercator (EPSG:3857) before the planar
// shoelace computation; area computed directly over angular coordinates has
// no metric meaning. Mercator inflates areas away from the equator, which
// matches the behavior of the system this service replaced.
func Area(polygon orb.Polygon) float64 {
	projected := project.Polygon(polygon.Clone(), project.WGS84.ToMercator)

	return math.Abs(planar.Area(projected))
}

// Centroid returns the geometric centroid of the polygon in its native CRS.
// For non-convex shapes the centroid may fall outside the polygon; that is
// expected geometric behavior.
func Centroid(polygon orb.Polygon) orb.Point {
	centroid, _ := planar.CentroidArea(polygon)

	return centroid
}
