package impl

import (
	"context"
	"errors"
	"fmt"
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

type polygonService struct {
	polygonRepo repository.PolygonRepository
}

// NewPolygonService creates a new polygon service instance
func NewPolygonService(polygonRepo repository.PolygonRepository) usecase.PolygonUsecase {
	return &polygonService{
		polygonRepo: polygonRepo,
	}
}

// CreatePolygon validates input, derives area and centroid, and persists a
// new polygon.
func (s *polygonService) CreatePolygon(ctx context.Context, input *usecase.CreatePolygonInput) (*entity.Polygon, error) {
	polygon, err := buildPolygon(input)
	if err != nil {
		return nil, err
	}

	if err := s.polygonRepo.CreatePolygon(ctx, polygon); err != nil {
		return nil, fmt.Errorf("failed to create polygon: %w", err)
	}

	return polygon, nil
}

// buildPolygon validates a raw payload into a fresh entity with its derived
// attributes computed. Derived fields always come from the same geometry
// that is about to be persisted.
func buildPolygon(input *usecase.CreatePolygonInput) (*entity.Polygon, error) {
	vErr := domainerrors.NewValidationError()

	if strings.TrimSpace(input.Name) == "" {
		vErr.Add("name", "name must not be empty")
	}

	geom, err := geometry.ValidatePolygon(input.Geometry)
	if err != nil {
		vErr.Add("geometry", err.Error())
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

	return &entity.Polygon{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Geometry:    geom,
		Area:        geometry.Area(geom),
		Centroid:    geometry.Centroid(geom),
		Properties:  properties,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// GetPolygon retrieves a polygon by ID.
func (s *polygonService) GetPolygon(ctx context.Context, id uuid.UUID) (*entity.Polygon, error) {
	polygon, err := s.polygonRepo.FindPolygonByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPolygonNotFound) {
			return nil, domainerrors.ErrPolygonNotFound
		}

		return nil, fmt.Errorf("failed to find polygon by ID: %w", err)
	}

	return polygon, nil
}

// UpdatePolygon applies a patch to an existing polygon. A geometry change
// recomputes area and centroid before the record is saved, so the stored
// derived attributes are always consistent with the stored geometry.
func (s *polygonService) UpdatePolygon(ctx context.Context, id uuid.UUID, input *usecase.UpdatePolygonInput) (*entity.Polygon, error) {
	polygon, err := s.polygonRepo.FindPolygonByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPolygonNotFound) {
			return nil, domainerrors.ErrPolygonNotFound
		}

		return nil, fmt.Errorf("failed to find polygon by ID: %w", err)
	}

	vErr := domainerrors.NewValidationError()
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			vErr.Add("name", "name must not be empty")
		} else {
			polygon.Name = *input.Name
		}
	}
	if input.Geometry != nil {
		geom, err := geometry.ValidatePolygon(input.Geometry)
		if err != nil {
			vErr.Add("geometry", err.Error())
		} else {
			polygon.Geometry = geom
			polygon.Area = geometry.Area(geom)
			polygon.Centroid = geometry.Centroid(geom)
		}
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	if input.Description != nil {
		polygon.Description = *input.Description
	}
	if input.Properties != nil {
		polygon.Properties = input.Properties
	}
	if input.IsActive != nil {
		polygon.IsActive = *input.IsActive
	}
	polygon.UpdatedAt = time.Now().UTC()

	if err := s.polygonRepo.UpdatePolygon(ctx, polygon); err != nil {
		return nil, fmt.Errorf("failed to update polygon: %w", err)
	}

	return polygon, nil
}

// DeletePolygon hard-removes a polygon. A second delete of the same ID fails
// with not-found.
func (s *polygonService) DeletePolygon(ctx context.Context, id uuid.UUID) error {
	if err := s.polygonRepo.DeletePolygon(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPolygonNotFound) {
			return domainerrors.ErrPolygonNotFound
		}

		return fmt.Errorf("failed to delete polygon: %w", err)
	}

	return nil
}

// ListPolygons returns a filtered page ordered by creation time descending.
func (s *polygonService) ListPolygons(ctx context.Context, input *usecase.ListPolygonsInput) (*usecase.PolygonPage, error) {
	page := repository.Page{Number: input.Page, Size: input.PageSize}.Normalized()
	filter := repository.PolygonFilter{
		Name:     input.Name,
		IsActive: input.IsActive,
		MinArea:  input.MinArea,
		MaxArea:  input.MaxArea,
	}

	polygons, count, err := s.polygonRepo.ListPolygons(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list polygons: %w", err)
	}

	return &usecase.PolygonPage{
		Count:    count,
		Page:     page.Number,
		PageSize: page.Size,
		Polygons: polygons,
	}, nil
}

// FindPolygonsContainingPoint returns active polygons covering the given
// point, boundary-inclusive.
func (s *polygonService) FindPolygonsContainingPoint(ctx context.Context, input *usecase.ContainingPointInput) ([]*entity.Polygon, error) {
	if input.Lat < -90 || input.Lat > 90 {
		return nil, domainerrors.ErrInvalidParameter.WithDetails("lat must be between -90 and 90")
	}
	if input.Lng < -180 || input.Lng > 180 {
		return nil, domainerrors.ErrInvalidParameter.WithDetails("lng must be between -180 and 180")
	}

	polygons, err := s.polygonRepo.FindPolygonsCoveringPoint(ctx, orb.Point{input.Lng, input.Lat})
	if err != nil {
		return nil, fmt.Errorf("failed to find polygons covering point: %w", err)
	}

	return polygons, nil
}

// FindIntersectingPolygons returns active polygons intersecting the polygon
// identified by id. The polygon itself is excluded by ID, so a geometrically
// identical sibling still appears in the results.
func (s *polygonService) FindIntersectingPolygons(ctx context.Context, id uuid.UUID) ([]*entity.Polygon, error) {
	polygon, err := s.polygonRepo.FindPolygonByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPolygonNotFound) {
			return nil, domainerrors.ErrPolygonNotFound
		}

		return nil, fmt.Errorf("failed to find polygon by ID: %w", err)
	}

	intersecting, err := s.polygonRepo.FindPolygonsIntersecting(ctx, polygon.ID, polygon.Geometry)
	if err != nil {
		return nil, fmt.Errorf("failed to find intersecting polygons: %w", err)
	}

	return intersecting, nil
}

// BulkCreatePolygons ingests a batch of polygon payloads. Each item is
// validated and persisted independently; a failure is recorded at its input
// index and never aborts or rolls back sibling items.
func (s *polygonService) BulkCreatePolygons(ctx context.Context, items []*usecase.CreatePolygonInput) (*usecase.BulkPolygonsResult, error) {
	result := &usecase.BulkPolygonsResult{}

	for i, item := range items {
		polygon, err := buildPolygon(item)
		if err != nil {
			result.Failed = append(result.Failed, bulkItemError(i, err))

			continue
		}

		if err := s.polygonRepo.CreatePolygon(ctx, polygon); err != nil {
			result.Failed = append(result.Failed, bulkItemError(i, err))

			continue
		}

		result.Created = append(result.Created, polygon)
	}

	return result, nil
}
