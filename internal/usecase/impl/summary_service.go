package impl

import (
	"context"
	"fmt"
	"time"

	"atlas/internal/domain/repository"
	"atlas/internal/usecase"
)

type summaryService struct {
	pointRepo   repository.PointRepository
	polygonRepo repository.PolygonRepository
}

// NewSummaryService creates a new summary service instance
func NewSummaryService(pointRepo repository.PointRepository, polygonRepo repository.PolygonRepository) usecase.SummaryUsecase {
	return &summaryService{
		pointRepo:   pointRepo,
		polygonRepo: polygonRepo,
	}
}

// Summary aggregates counts and total polygon area over active entities.
// The area total sums the stored per-polygon values; sqm and sqkm are
// rounded to 2 decimal places independently of each other.
func (s *summaryService) Summary(ctx context.Context) (*usecase.SummaryOutput, error) {
	points, err := s.pointRepo.CountActivePoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active points: %w", err)
	}

	polygons, err := s.polygonRepo.CountActivePolygons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active polygons: %w", err)
	}

	totalArea, err := s.polygonRepo.SumActivePolygonArea(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum active polygon area: %w", err)
	}

	return &usecase.SummaryOutput{
		TotalPoints:         points,
		TotalPolygons:       polygons,
		TotalPolygonAreaSqm: round2(totalArea),
		TotalPolygonAreaKm2: round2(totalArea / 1_000_000),
		Timestamp:           time.Now().UTC(),
	}, nil
}
