// Package impl contains the concrete usecase implementations: the entity
// store services, the query engine, the bulk ingestion pipeline and the
// summary aggregator.
package impl

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/geometry"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type pointService struct {
	pointRepo repository.PointRepository
}

// NewPointService creates a new point service instance
func NewPointService(pointRepo repository.PointRepository) usecase.PointUsecase {
	return &pointService{
		pointRepo: pointRepo,
	}
}

// CreatePoint validates input and persists a new point.
func (s *pointService) CreatePoint(ctx context.Context, input *usecase.CreatePointInput) (*entity.Point, error) {
	point, err := buildPoint(input)
	if err != nil {
		return nil, err
	}

	if err := s.pointRepo.CreatePoint(ctx, point); err != nil {
		return nil, fmt.Errorf("failed to create point: %w", err)
	}

	return point, nil
}

// buildPoint validates a raw payload into a fresh entity. All field failures
// are collected into one ValidationError so bulk callers can report them
// together.
func buildPoint(input *usecase.CreatePointInput) (*entity.Point, error) {
	vErr := domainerrors.NewValidationError()

	if strings.TrimSpace(input.Name) == "" {
		vErr.Add("name", "name must not be empty")
	}

	location, err := geometry.ValidatePoint(input.Location)
	if err != nil {
		vErr.Add("location", err.Error())
	}

	if vErr.HasErrors() {
		return nil, vErr
	}

	properties := input.Properties
	if properties == nil {
		properties = make(map[string]any)
	}
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	now := time.Now().UTC()

	return &entity.Point{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Location:    location,
		Properties:  properties,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// GetPoint retrieves a point by ID.
func (s *pointService) GetPoint(ctx context.Context, id uuid.UUID) (*entity.Point, error) {
	point, err := s.pointRepo.FindPointByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPointNotFound) {
			return nil, domainerrors.ErrPointNotFound
		}

		return nil, fmt.Errorf("failed to find point by ID: %w", err)
	}

	return point, nil
}

// UpdatePoint applies a patch to an existing point. Any geometry in the
// patch is re-validated before the record is saved.
func (s *pointService) UpdatePoint(ctx context.Context, id uuid.UUID, input *usecase.UpdatePointInput) (*entity.Point, error) {
	point, err := s.pointRepo.FindPointByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPointNotFound) {
			return nil, domainerrors.ErrPointNotFound
		}

		return nil, fmt.Errorf("failed to find point by ID: %w", err)
	}

	vErr := domainerrors.NewValidationError()
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			vErr.Add("name", "name must not be empty")
		} else {
			point.Name = *input.Name
		}
	}
	if input.Location != nil {
		location, err := geometry.ValidatePoint(input.Location)
		if err != nil {
			vErr.Add("location", err.Error())
		} else {
			point.Location = location
		}
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	if input.Description != nil {
		point.Description = *input.Description
	}
	if input.Properties != nil {
		point.Properties = input.Properties
	}
	if input.IsActive != nil {
		point.IsActive = *input.IsActive
	}
	point.UpdatedAt = time.Now().UTC()

	if err := s.pointRepo.UpdatePoint(ctx, point); err != nil {
		return nil, fmt.Errorf("failed to update point: %w", err)
	}

	return point, nil
}

// DeletePoint hard-removes a point. A second delete of the same ID fails
// with not-found.
func (s *pointService) DeletePoint(ctx context.Context, id uuid.UUID) error {
	if err := s.pointRepo.DeletePoint(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPointNotFound) {
			return domainerrors.ErrPointNotFound
		}

		return fmt.Errorf("failed to delete point: %w", err)
	}

	return nil
}

// ListPoints returns a filtered page ordered by creation time descending.
func (s *pointService) ListPoints(ctx context.Context, input *usecase.ListPointsInput) (*usecase.PointPage, error) {
	page := repository.Page{Number: input.Page, Size: input.PageSize}.Normalized()
	filter := repository.PointFilter{
		Name:     input.Name,
		IsActive: input.IsActive,
	}

	points, count, err := s.pointRepo.ListPoints(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list points: %w", err)
	}

	return &usecase.PointPage{
		Count:    count,
		Page:     page.Number,
		PageSize: page.Size,
		Points:   points,
	}, nil
}

// FindNearbyPoints returns active points within the given distance of the
// origin, ascending by distance rounded to 2 decimal places.
func (s *pointService) FindNearbyPoints(ctx context.Context, input *usecase.NearbyPointsInput) ([]*entity.NearbyPoint, error) {
	if input.Lat < -90 || input.Lat > 90 {
		return nil, domainerrors.ErrInvalidParameter.WithDetails("lat must be between -90 and 90")
	}
	if input.Lng < -180 || input.Lng > 180 {
		return nil, domainerrors.ErrInvalidParameter.WithDetails("lng must be between -180 and 180")
	}
	if input.DistanceMeters <= 0 {
		return nil, domainerrors.ErrInvalidParameter.WithDetails("distance must be a positive number of meters")
	}

	origin := orb.Point{input.Lng, input.Lat}
	nearby, err := s.pointRepo.FindPointsWithinDistance(ctx, origin, input.DistanceMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find points within distance: %w", err)
	}

	for _, result := range nearby {
		result.DistanceMeters = round2(result.DistanceMeters)
	}

	return nearby, nil
}

// BulkCreatePoints ingests a batch of point payloads. Each item is validated
// and persisted independently; a failure is recorded at its input index and
// never aborts or rolls back sibling items.
func (s *pointService) BulkCreatePoints(ctx context.Context, items []*usecase.CreatePointInput) (*usecase.BulkPointsResult, error) {
	result := &usecase.BulkPointsResult{}

	for i, item := range items {
		point, err := buildPoint(item)
		if err != nil {
			result.Failed = append(result.Failed, bulkItemError(i, err))

			continue
		}

		if err := s.pointRepo.CreatePoint(ctx, point); err != nil {
			result.Failed = append(result.Failed, bulkItemError(i, err))

			continue
		}

		result.Created = append(result.Created, point)
	}

	return result, nil
}

// bulkItemError flattens any item failure into the per-index error shape.
// Validation failures keep their field keys; everything else (storage) is
// reported under "detail".
func bulkItemError(index int, err error) usecase.BulkItemError {
	var vErr *domainerrors.ValidationError
	if errors.As(err, &vErr) {
		return usecase.BulkItemError{Index: index, Errors: vErr.Fields()}
	}

	return usecase.BulkItemError{
		Index:  index,
		Errors: map[string][]string{"detail": {err.Error()}},
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
