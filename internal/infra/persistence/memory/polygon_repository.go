package memory

import (
	"context"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"
	"atlas/internal/geometry"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// CreatePolygon stores a new polygon.
func (s *Store) CreatePolygon(_ context.Context, polygon *entity.Polygon) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.polygons[polygon.ID] = clonePolygon(polygon)

	return nil
}

// FindPolygonByID retrieves a polygon by its unique ID.
func (s *Store) FindPolygonByID(_ context.Context, id uuid.UUID) (*entity.Polygon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	polygon, ok := s.polygons[id]
	if !ok {
		return nil, repository.ErrPolygonNotFound
	}

	return clonePolygon(polygon), nil
}

// UpdatePolygon overwrites an existing polygon.
func (s *Store) UpdatePolygon(_ context.Context, polygon *entity.Polygon) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.polygons[polygon.ID]; !ok {
		return repository.ErrPolygonNotFound
	}

	s.polygons[polygon.ID] = clonePolygon(polygon)

	return nil
}

// DeletePolygon removes a polygon by its ID.
func (s *Store) DeletePolygon(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.polygons[id]; !ok {
		return repository.ErrPolygonNotFound
	}

	delete(s.polygons, id)

	return nil
}

// ListPolygons retrieves a filtered page of polygons with the unpaged total,
// newest first.
func (s *Store) ListPolygons(_ context.Context, filter repository.PolygonFilter, page repository.Page) ([]*entity.Polygon, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*entity.Polygon, 0, len(s.polygons))
	for _, polygon := range s.polygons {
		if !matchName(polygon.Name, filter.Name) {
			continue
		}
		if filter.IsActive != nil && polygon.IsActive != *filter.IsActive {
			continue
		}
		if filter.MinArea != nil && polygon.Area < *filter.MinArea {
			continue
		}
		if filter.MaxArea != nil && polygon.Area > *filter.MaxArea {
			continue
		}
		matched = append(matched, polygon)
	}

	sortNewestFirst(matched, func(p *entity.Polygon) (int64, uuid.UUID) {
		return p.CreatedAt.UnixNano(), p.ID
	})

	count := int64(len(matched))
	pageItems := paginate(matched, page)

	polygons := make([]*entity.Polygon, 0, len(pageItems))
	for _, polygon := range pageItems {
		polygons = append(polygons, clonePolygon(polygon))
	}

	return polygons, count, nil
}

// FindPolygonsCoveringPoint retrieves active polygons covering the given
// point, boundary-inclusive, newest first.
func (s *Store) FindPolygonsCoveringPoint(_ context.Context, point orb.Point) ([]*entity.Polygon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*entity.Polygon, 0)
	for _, polygon := range s.polygons {
		if !polygon.IsActive {
			continue
		}
		if !geometry.Covers(polygon.Geometry, point) {
			continue
		}
		matched = append(matched, polygon)
	}

	sortNewestFirst(matched, func(p *entity.Polygon) (int64, uuid.UUID) {
		return p.CreatedAt.UnixNano(), p.ID
	})

	polygons := make([]*entity.Polygon, 0, len(matched))
	for _, polygon := range matched {
		polygons = append(polygons, clonePolygon(polygon))
	}

	return polygons, nil
}

// FindPolygonsIntersecting retrieves active polygons intersecting the given
// geometry, excluding the row identified by excludeID, newest first.
func (s *Store) FindPolygonsIntersecting(_ context.Context, excludeID uuid.UUID, geom orb.Polygon) ([]*entity.Polygon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*entity.Polygon, 0)
	for _, polygon := range s.polygons {
		if polygon.ID == excludeID || !polygon.IsActive {
			continue
		}
		if !geometry.Intersects(polygon.Geometry, geom) {
			continue
		}
		matched = append(matched, polygon)
	}

	sortNewestFirst(matched, func(p *entity.Polygon) (int64, uuid.UUID) {
		return p.CreatedAt.UnixNano(), p.ID
	})

	polygons := make([]*entity.Polygon, 0, len(matched))
	for _, polygon := range matched {
		polygons = append(polygons, clonePolygon(polygon))
	}

	return polygons, nil
}

// CountActivePolygons counts active polygons.
func (s *Store) CountActivePolygons(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, polygon := range s.polygons {
		if polygon.IsActive {
			count++
		}
	}

	return count, nil
}

// SumActivePolygonArea sums the stored area of active polygons in square
// meters.
func (s *Store) SumActivePolygonArea(_ context.Context) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, polygon := range s.polygons {
		if polygon.IsActive {
			total += polygon.Area
		}
	}

	return total, nil
}
