// Package memory contains an in-process implementation of the persistence
// layer. Points are indexed in a quadtree for distance queries; polygon
// predicates are evaluated directly against the stored geometries. Intended
// for embedded use and tests, with the same boundary semantics as the
// PostGIS implementation.
package memory

import (
	"strings"
	"sync"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"
)

// worldBound covers the whole WGS84 coordinate space.
var worldBound = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

// indexedPoint adapts a stored point to the quadtree's orb.Pointer.
type indexedPoint struct {
	point *entity.Point
}

func (ip *indexedPoint) Point() orb.Point {
	return ip.point.Location
}

// Store holds all entities behind a single RWMutex. It implements both
// repository.PointRepository and repository.PolygonRepository.
type Store struct {
	mu       sync.RWMutex
	points   map[uuid.UUID]*indexedPoint
	polygons map[uuid.UUID]*entity.Polygon
	tree     *quadtree.Quadtree
}

var (
	_ repository.PointRepository   = (*Store)(nil)
	_ repository.PolygonRepository = (*Store)(nil)
)

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		points:   make(map[uuid.UUID]*indexedPoint),
		polygons: make(map[uuid.UUID]*entity.Polygon),
		tree:     quadtree.New(worldBound),
	}
}

// clonePoint copies a point so callers never share memory with the store.
func clonePoint(point *entity.Point) *entity.Point {
	if point == nil {
		return nil
	}

	cloned := *point
	if point.Properties != nil {
		cloned.Properties = make(map[string]any, len(point.Properties))
		for key, value := range point.Properties {
			cloned.Properties[key] = value
		}
	}

	return &cloned
}

// clonePolygon copies a polygon, including its ring data.
func clonePolygon(polygon *entity.Polygon) *entity.Polygon {
	if polygon == nil {
		return nil
	}

	cloned := *polygon
	cloned.Geometry = polygon.Geometry.Clone()
	if polygon.Properties != nil {
		cloned.Properties = make(map[string]any, len(polygon.Properties))
		for key, value := range polygon.Properties {
			cloned.Properties[key] = value
		}
	}

	return &cloned
}

// matchName reports whether name contains the filter substring, case
// insensitively. An empty filter matches everything.
func matchName(name, filter string) bool {
	if filter == "" {
		return true
	}

	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}
