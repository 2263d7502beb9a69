package memory

import (
	"context"
	"testing"
	"time"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPoint(name string, lng, lat float64, createdAt time.Time) *entity.Point {
	return &entity.Point{
		ID:        uuid.New(),
		Name:      name,
		Location:  orb.Point{lng, lat},
		IsActive:  true,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestStore_PointCRUD(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	point := newTestPoint("Museum", -73.9857, 40.7484, time.Now().UTC())
	require.NoError(t, store.CreatePoint(ctx, point))

	found, err := store.FindPointByID(ctx, point.ID)
	require.NoError(t, err)
	assert.Equal(t, point.Name, found.Name)
	assert.Equal(t, point.Location, found.Location)

	// Returned entities never alias the stored ones.
	found.Name = "mutated"
	again, err := store.FindPointByID(ctx, point.ID)
	require.NoError(t, err)
	assert.Equal(t, "Museum", again.Name)

	require.NoError(t, store.DeletePoint(ctx, point.ID))

	_, err = store.FindPointByID(ctx, point.ID)
	assert.Equal(t, repository.ErrPointNotFound, err)
	assert.Equal(t, repository.ErrPointNotFound, store.DeletePoint(ctx, point.ID))
}

func TestStore_UpdatePoint_ReindexesLocation(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	point := newTestPoint("Mobile unit", 0, 0, time.Now().UTC())
	require.NoError(t, store.CreatePoint(ctx, point))

	// Move the point roughly 111km east.
	moved := *point
	moved.Location = orb.Point{1, 0}
	require.NoError(t, store.UpdatePoint(ctx, &moved))

	// The old position no longer matches a tight query around the origin.
	near, err := store.FindPointsWithinDistance(ctx, orb.Point{0, 0}, 1000)
	require.NoError(t, err)
	assert.Empty(t, near)

	near, err = store.FindPointsWithinDistance(ctx, orb.Point{1, 0}, 1000)
	require.NoError(t, err)
	require.Len(t, near, 1)
	assert.Equal(t, point.ID, near[0].Point.ID)
}

func TestStore_FindPointsWithinDistance_OrdersByDistance(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	// Points along the equator: roughly 111m per 0.001 degree.
	far := newTestPoint("far", 0.005, 0, now)
	near := newTestPoint("near", 0.001, 0, now)
	outside := newTestPoint("outside", 0.05, 0, now)
	require.NoError(t, store.CreatePoint(ctx, far))
	require.NoError(t, store.CreatePoint(ctx, near))
	require.NoError(t, store.CreatePoint(ctx, outside))

	results, err := store.FindPointsWithinDistance(ctx, orb.Point{0, 0}, 1000)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "near", results[0].Point.Name)
	assert.Equal(t, "far", results[1].Point.Name)
	assert.Less(t, results[0].DistanceMeters, results[1].DistanceMeters)
	assert.InDelta(t, 111.0, results[0].DistanceMeters, 5)
}

func TestStore_FindPointsWithinDistance_SkipsInactive(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	point := newTestPoint("dormant", 0.001, 0, time.Now().UTC())
	point.IsActive = false
	require.NoError(t, store.CreatePoint(ctx, point))

	results, err := store.FindPointsWithinDistance(ctx, orb.Point{0, 0}, 1000)
	require.NoError(t, err)
	assert.Empty(t, results)

	// Reactivation makes it visible without a location change.
	point.IsActive = true
	require.NoError(t, store.UpdatePoint(ctx, point))

	results, err = store.FindPointsWithinDistance(ctx, orb.Point{0, 0}, 1000)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestStore_ListPoints_FiltersAndPaginates(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	base := time.Now().UTC()

	for i := 0; i < 5; i++ {
		point := newTestPoint("station", float64(i), 0, base.Add(time.Duration(i)*time.Second))
		require.NoError(t, store.CreatePoint(ctx, point))
	}
	hidden := newTestPoint("depot", 10, 0, base)
	hidden.IsActive = false
	require.NoError(t, store.CreatePoint(ctx, hidden))

	active := true
	points, count, err := store.ListPoints(ctx,
		repository.PointFilter{Name: "STAT", IsActive: &active},
		repository.Page{Number: 1, Size: 3},
	)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	require.Len(t, points, 3)
	// Newest first.
	assert.True(t, points[0].CreatedAt.After(points[1].CreatedAt))

	points, _, err = store.ListPoints(ctx,
		repository.PointFilter{Name: "STAT", IsActive: &active},
		repository.Page{Number: 2, Size: 3},
	)
	require.NoError(t, err)
	assert.Len(t, points, 2)

	points, _, err = store.ListPoints(ctx,
		repository.PointFilter{},
		repository.Page{Number: 9, Size: 3},
	)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestStore_CountActivePoints(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	active := newTestPoint("a", 0, 0, now)
	inactive := newTestPoint("b", 1, 1, now)
	inactive.IsActive = false
	require.NoError(t, store.CreatePoint(ctx, active))
	require.NoError(t, store.CreatePoint(ctx, inactive))

	count, err := store.CountActivePoints(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
