package usecase

import (
	"context"
	"time"
)

// SummaryOutput is the corpus-wide statistics snapshot. Only active entities
// are aggregated; the area totals are rounded to 2 decimal places each.
type SummaryOutput struct {
	TotalPoints         int64     `json:"total_points"`
	TotalPolygons       int64     `json:"total_polygons"`
	TotalPolygonAreaSqm float64   `json:"total_polygon_area_sqm"`
	TotalPolygonAreaKm2 float64   `json:"total_polygon_area_sqkm"`
	Timestamp           time.Time `json:"timestamp"`
}

// SummaryUsecase computes corpus-wide statistics over stored entities.
type SummaryUsecase interface {
	// Summary counts active entities and sums the stored polygon areas.
	// The sum is arithmetic over the persisted area values, never a
	// recomputation from geometry.
	Summary(ctx context.Context) (*SummaryOutput, error)
}
