package memory

import (
	"context"
	"sort"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// CreatePoint stores a new point and indexes its location.
func (s *Store) CreatePoint(_ context.Context, point *entity.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	indexed := &indexedPoint{point: clonePoint(point)}
	if err := s.tree.Add(indexed); err != nil {
		return errors.Wrap(err, "failed to index point location")
	}
	s.points[point.ID] = indexed

	return nil
}

// FindPointByID retrieves a point by its unique ID.
func (s *Store) FindPointByID(_ context.Context, id uuid.UUID) (*entity.Point, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	indexed, ok := s.points[id]
	if !ok {
		return nil, repository.ErrPointNotFound
	}

	return clonePoint(indexed.point), nil
}

// UpdatePoint overwrites an existing point. A location change reindexes the
// point in the quadtree.
func (s *Store) UpdatePoint(_ context.Context, point *entity.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	indexed, ok := s.points[point.ID]
	if !ok {
		return repository.ErrPointNotFound
	}

	if !indexed.point.Location.Equal(point.Location) {
		s.tree.Remove(indexed, func(p orb.Pointer) bool {
			return p == orb.Pointer(indexed)
		})
		indexed = &indexedPoint{point: clonePoint(point)}
		if err := s.tree.Add(indexed); err != nil {
			return errors.Wrap(err, "failed to reindex point location")
		}
		s.points[point.ID] = indexed

		return nil
	}

	indexed.point = clonePoint(point)

	return nil
}

// DeletePoint removes a point by its ID.
func (s *Store) DeletePoint(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	indexed, ok := s.points[id]
	if !ok {
		return repository.ErrPointNotFound
	}

	s.tree.Remove(indexed, func(p orb.Pointer) bool {
		return p == orb.Pointer(indexed)
	})
	delete(s.points, id)

	return nil
}

// ListPoints retrieves a filtered page of points with the unpaged total,
// newest first.
func (s *Store) ListPoints(_ context.Context, filter repository.PointFilter, page repository.Page) ([]*entity.Point, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*entity.Point, 0, len(s.points))
	for _, indexed := range s.points {
		point := indexed.point
		if !matchName(point.Name, filter.Name) {
			continue
		}
		if filter.IsActive != nil && point.IsActive != *filter.IsActive {
			continue
		}
		matched = append(matched, point)
	}

	sortNewestFirst(matched, func(p *entity.Point) (int64, uuid.UUID) {
		return p.CreatedAt.UnixNano(), p.ID
	})

	count := int64(len(matched))
	pageItems := paginate(matched, page)

	points := make([]*entity.Point, 0, len(pageItems))
	for _, point := range pageItems {
		points = append(points, clonePoint(point))
	}

	return points, count, nil
}

// FindPointsWithinDistance retrieves active points within the given geodesic
// distance of the center, nearest first. The quadtree narrows candidates to
// a bounding box before the exact distance check.
func (s *Store) FindPointsWithinDistance(_ context.Context, center orb.Point, meters float64) ([]*entity.NearbyPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bound := geo.NewBoundAroundPoint(center, meters)
	candidates := s.tree.InBoundMatching(nil, bound, func(p orb.Pointer) bool {
		return p.(*indexedPoint).point.IsActive
	})

	nearby := make([]*entity.NearbyPoint, 0, len(candidates))
	for _, candidate := range candidates {
		point := candidate.(*indexedPoint).point
		distance := geo.Distance(point.Location, center)
		if distance > meters {
			continue
		}
		nearby = append(nearby, &entity.NearbyPoint{
			Point:          clonePoint(point),
			DistanceMeters: distance,
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	return nearby, nil
}

// CountActivePoints counts active points.
func (s *Store) CountActivePoints(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, indexed := range s.points {
		if indexed.point.IsActive {
			count++
		}
	}

	return count, nil
}

// sortNewestFirst orders entities by creation time descending, with the ID
// as a stable tiebreaker.
func sortNewestFirst[T any](items []T, key func(T) (int64, uuid.UUID)) {
	sort.Slice(items, func(i, j int) bool {
		createdI, idI := key(items[i])
		createdJ, idJ := key(items[j])
		if createdI != createdJ {
			return createdI > createdJ
		}

		return idI.String() < idJ.String()
	})
}

// paginate slices one page out of the ordered results.
func paginate[T any](items []T, page repository.Page) []T {
	offset := page.Offset()
	if offset >= len(items) {
		return nil
	}

	end := offset + page.Size
	if end > len(items) {
		end = len(items)
	}

	return items[offset:end]
}
