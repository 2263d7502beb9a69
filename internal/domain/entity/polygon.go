package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Polygon is the core entity for a geo-referenced region.
// Geometry is a WGS84 ring sequence (outer boundary first, optional holes).
// Area and Centroid are derived from Geometry on every write and are never
// accepted from the client.
type Polygon struct {
	ID          uuid.UUID      // The Global Unique Identifier (GUID) for the polygon.
	Name        string         // A non-empty display name.
	Description string         // An optional free-form description.
	Geometry    orb.Polygon    // The region boundary, WGS84 rings of [lng, lat] vertices.
	Area        float64        // Derived surface area in square meters (metric projection).
	Centroid    orb.Point      // Derived geometric centroid, WGS84 [lng, lat].
	Properties  map[string]any // Open key/value metadata attached by the client.
	IsActive    bool           // Soft-delete marker; inactive polygons are hidden from default queries.
	CreatedAt   time.Time      // Timestamp of when this polygon was created.
	UpdatedAt   time.Time      // Timestamp of the last modification.
}
