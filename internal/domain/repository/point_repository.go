// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and
// the infrastructure layer; the spatial predicates are the narrow boundary
// behind which the spatial index collaborator (PostGIS or the in-process
// index) lives.
package repository

import (
	"context"

	"atlas/internal/domain/entity"
	"atlas/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Domain-specific errors for spatial persistence.
var (
	// ErrPointNotFound is returned when a point is not found.
	ErrPointNotFound = errors.New("point not found")
	// ErrPolygonNotFound is returned when a polygon is not found.
	ErrPolygonNotFound = errors.New("polygon not found")
)

// Pagination bounds shared by all list queries.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page selects a page-number/page-size window over a list query.
type Page struct {
	Number int
	Size   int
}

// Normalized clamps the page to valid bounds, applying defaults for
// unset or out-of-range values.
func (p Page) Normalized() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}

	return p
}

// Offset returns the row offset of the first item on the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// PointFilter narrows point list queries. Zero values mean "no filter".
type PointFilter struct {
	Name     string // Case-insensitive substring match on the name.
	IsActive *bool  // Exact match on the active flag when non-nil.
}

// PointRepository defines the interface for point-related storage operations.
// Every write keeps the spatial index in sync before returning, so a query
// issued by the same caller immediately observes the change.
type PointRepository interface {
	// CreatePoint persists a new point.
	CreatePoint(ctx context.Context, point *entity.Point) error

	// FindPointByID retrieves a point by its unique ID.
	// Returns ErrPointNotFound if no such point exists.
	FindPointByID(ctx context.Context, id uuid.UUID) (*entity.Point, error)

	// UpdatePoint replaces an existing point record.
	// Returns ErrPointNotFound if no such point exists.
	UpdatePoint(ctx context.Context, point *entity.Point) error

	// DeletePoint hard-removes a point by its ID.
	// Returns ErrPointNotFound if no such point exists; deletion is not idempotent.
	DeletePoint(ctx context.Context, id uuid.UUID) error

	// ListPoints returns the requested page ordered by creation time descending,
	// along with the total number of rows matching the filter.
	ListPoints(ctx context.Context, filter PointFilter, page Page) ([]*entity.Point, int64, error)

	// FindPointsWithinDistance returns active points whose geodesic distance to
	// center is at most meters, ordered ascending by distance.
	FindPointsWithinDistance(ctx context.Context, center orb.Point, meters float64) ([]*entity.NearbyPoint, error)

	// CountActivePoints returns the number of active points.
	CountActivePoints(ctx context.Context) (int64, error)
}
