// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Point is the core entity for a single geo-referenced location.
// The location is stored as a WGS84 (SRID 4326) coordinate, ordered [lng, lat].
type Point struct {
	ID          uuid.UUID      // The Global Unique Identifier (GUID) for the point.
	Name        string         // A non-empty display name.
	Description string         // An optional free-form description.
	Location    orb.Point      // The geographic coordinate, WGS84 [lng, lat].
	Properties  map[string]any // Open key/value metadata attached by the client.
	IsActive    bool           // Soft-delete marker; inactive points are hidden from default queries.
	CreatedAt   time.Time      // Timestamp of when this point was created.
	UpdatedAt   time.Time      // Timestamp of the last modification.
}

// Latitude returns the Y coordinate of the location.
func (p *Point) Latitude() float64 {
	return p.Location.Lat()
}

// Longitude returns the X coordinate of the location.
func (p *Point) Longitude() float64 {
	return p.Location.Lon()
}

// NearbyPoint is a Point annotated with its distance from a search origin.
type NearbyPoint struct {
	Point          *Point
	DistanceMeters float64 // Geodesic distance from the search origin, in meters.
}
