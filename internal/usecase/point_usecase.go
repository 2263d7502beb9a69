// Package usecase defines the application-facing interfaces of the spatial
// engine and their input/output types. Delivery adapters (HTTP today) call
// these; nothing in here knows about transports.
package usecase

import (
	"context"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// CreatePointInput represents the input for creating a point
type CreatePointInput struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Location    *geojson.Geometry `json:"location"`
	Properties  map[string]any    `json:"properties"`
	IsActive    *bool             `json:"is_active"` // defaults to true
}

// UpdatePointInput represents a full or partial update of a point.
// Nil fields are left untouched; a full update sets every field.
type UpdatePointInput struct {
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	Location    *geojson.Geometry `json:"location,omitempty"`
	Properties  map[string]any    `json:"properties,omitempty"`
	IsActive    *bool             `json:"is_active,omitempty"`
}

// ListPointsInput carries list filters and pagination.
type ListPointsInput struct {
	Name     string // Case-insensitive substring match.
	IsActive *bool
	Page     int
	PageSize int
}

// NearbyPointsInput parameterizes the within-distance search.
type NearbyPointsInput struct {
	Lat            float64
	Lng            float64
	DistanceMeters float64
}

// PointPage is one page of point list results.
type PointPage struct {
	Count    int64 // Total rows matching the filter, across all pages.
	Page     int
	PageSize int
	Points   []*entity.Point
}

// BulkItemError identifies one failed item of a bulk request by its input
// position, with validation messages keyed by field.
type BulkItemError struct {
	Index  int                 `json:"index"`
	Errors map[string][]string `json:"errors"`
}

// BulkPointsResult reports the outcome of a bulk point ingestion. Created
// holds the persisted entities in input order; Failed lists the rejected
// input positions.
type BulkPointsResult struct {
	Created []*entity.Point
	Failed  []BulkItemError
}

// PointUsecase defines the point-entity operations of the engine.
type PointUsecase interface {
	// CreatePoint validates input and persists a new point.
	CreatePoint(ctx context.Context, input *CreatePointInput) (*entity.Point, error)

	// GetPoint retrieves a point by ID.
	GetPoint(ctx context.Context, id uuid.UUID) (*entity.Point, error)

	// UpdatePoint applies a patch to an existing point, re-validating any
	// geometry present and refreshing the update timestamp.
	UpdatePoint(ctx context.Context, id uuid.UUID, input *UpdatePointInput) (*entity.Point, error)

	// DeletePoint hard-removes a point.
	DeletePoint(ctx context.Context, id uuid.UUID) error

	// ListPoints returns a filtered, paginated point listing ordered by
	// creation time descending.
	ListPoints(ctx context.Context, input *ListPointsInput) (*PointPage, error)

	// FindNearbyPoints returns active points within the given geodesic
	// distance of the origin, ascending by distance, each annotated with its
	// distance rounded to 2 decimal places.
	FindNearbyPoints(ctx context.Context, input *NearbyPointsInput) ([]*entity.NearbyPoint, error)

	// BulkCreatePoints ingests a batch of raw point payloads, isolating
	// failures per item. Item order in the result matches input order.
	BulkCreatePoints(ctx context.Context, items []*CreatePointInput) (*BulkPointsResult, error)
}
