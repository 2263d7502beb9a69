package repository

import (
	"context"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// PolygonFilter narrows polygon list queries. Zero values mean "no filter".
type PolygonFilter struct {
	Name     string   // Case-insensitive substring match on the name.
	IsActive *bool    // Exact match on the active flag when non-nil.
	MinArea  *float64 // Inclusive lower bound on the derived area, in m².
	MaxArea  *float64 // Inclusive upper bound on the derived area, in m².
}

// PolygonRepository defines the interface for polygon-related storage
// operations, including the topological predicate queries.
//
// Containment is boundary-inclusive: a point lying exactly on a polygon's
// boundary is contained (ST_Covers semantics, mirrored by the in-process
// index).
type PolygonRepository interface {
	// CreatePolygon persists a new polygon with its derived attributes.
	CreatePolygon(ctx context.Context, polygon *entity.Polygon) error

	// FindPolygonByID retrieves a polygon by its unique ID.
	// Returns ErrPolygonNotFound if no such polygon exists.
	FindPolygonByID(ctx context.Context, id uuid.UUID) (*entity.Polygon, error)

	// UpdatePolygon replaces an existing polygon record.
	// Returns ErrPolygonNotFound if no such polygon exists.
	UpdatePolygon(ctx context.Context, polygon *entity.Polygon) error

	// DeletePolygon hard-removes a polygon by its ID.
	// Returns ErrPolygonNotFound if no such polygon exists; deletion is not idempotent.
	DeletePolygon(ctx context.Context, id uuid.UUID) error

	// ListPolygons returns the requested page ordered by creation time
	// descending, along with the total number of rows matching the filter.
	ListPolygons(ctx context.Context, filter PolygonFilter, page Page) ([]*entity.Polygon, int64, error)

	// FindPolygonsCoveringPoint returns active polygons whose geometry contains
	// the given WGS84 point (boundary-inclusive).
	FindPolygonsCoveringPoint(ctx context.Context, point orb.Point) ([]*entity.Polygon, error)

	// FindPolygonsIntersecting returns active polygons whose geometry intersects
	// the given geometry, excluding the polygon identified by excludeID.
	FindPolygonsIntersecting(ctx context.Context, excludeID uuid.UUID, geometry orb.Polygon) ([]*entity.Polygon, error)

	// CountActivePolygons returns the number of active polygons.
	CountActivePolygons(ctx context.Context) (int64, error)

	// SumActivePolygonArea returns the arithmetic sum of the stored area of all
	// active polygons, in m². The stored value is summed as-is, never recomputed
	// from geometry.
	SumActivePolygonArea(ctx context.Context) (float64, error)
}
