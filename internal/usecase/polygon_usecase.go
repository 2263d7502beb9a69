package usecase

import (
	"context"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// CreatePolygonInput represents the input for creating a polygon.
// Area and centroid are derived server-side and never accepted here.
type CreatePolygonInput struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Geometry    *geojson.Geometry `json:"geometry"`
	Properties  map[string]any    `json:"properties"`
	IsActive    *bool             `json:"is_active"` // defaults to true
}

// UpdatePolygonInput represents a full or partial update of a polygon.
// Nil fields are left untouched; a geometry change recomputes area and
// centroid before the record is saved.
type UpdatePolygonInput struct {
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	Geometry    *geojson.Geometry `json:"geometry,omitempty"`
	Properties  map[string]any    `json:"properties,omitempty"`
	IsActive    *bool             `json:"is_active,omitempty"`
}

// ListPolygonsInput carries list filters and pagination.
type ListPolygonsInput struct {
	Name     string // Case-insensitive substring match.
	IsActive *bool
	MinArea  *float64 // Inclusive, m².
	MaxArea  *float64 // Inclusive, m².
	Page     int
	PageSize int
}

// ContainingPointInput parameterizes the point-containment query.
type ContainingPointInput struct {
	Lat float64
	Lng float64
}

// PolygonPage is one page of polygon list results.
type PolygonPage struct {
	Count    int64 // Total rows matching the filter, across all pages.
	Page     int
	PageSize int
	Polygons []*entity.Polygon
}

// BulkPolygonsResult reports the outcome of a bulk polygon ingestion.
type BulkPolygonsResult struct {
	Created []*entity.Polygon
	Failed  []BulkItemError
}

// PolygonUsecase defines the polygon-entity operations of the engine.
type PolygonUsecase interface {
	// CreatePolygon validates input, computes area and centroid, and persists
	// a new polygon.
	CreatePolygon(ctx context.Context, input *CreatePolygonInput) (*entity.Polygon, error)

	// GetPolygon retrieves a polygon by ID.
	GetPolygon(ctx context.Context, id uuid.UUID) (*entity.Polygon, error)

	// UpdatePolygon applies a patch to an existing polygon, re-validating any
	// geometry present and recomputing derived attributes before saving.
	UpdatePolygon(ctx context.Context, id uuid.UUID, input *UpdatePolygonInput) (*entity.Polygon, error)

	// DeletePolygon hard-removes a polygon.
	DeletePolygon(ctx context.Context, id uuid.UUID) error

	// ListPolygons returns a filtered, paginated polygon listing ordered by
	// creation time descending.
	ListPolygons(ctx context.Context, input *ListPolygonsInput) (*PolygonPage, error)

	// FindPolygonsContainingPoint returns active polygons covering the given
	// WGS84 point. Containment is boundary-inclusive.
	FindPolygonsContainingPoint(ctx context.Context, input *ContainingPointInput) ([]*entity.Polygon, error)

	// FindIntersectingPolygons returns active polygons intersecting the
	// polygon identified by id, excluding that polygon itself.
	FindIntersectingPolygons(ctx context.Context, id uuid.UUID) ([]*entity.Polygon, error)

	// BulkCreatePolygons ingests a batch of raw polygon payloads, isolating
	// failures per item. Item order in the result matches input order.
	BulkCreatePolygons(ctx context.Context, items []*CreatePolygonInput) (*BulkPolygonsResult, error)
}
