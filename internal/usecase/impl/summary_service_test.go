package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/errors"
	mockRepo "atlas/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryService_Summary(t *testing.T) {
	mockPointRepo := mockRepo.NewMockPointRepository(t)
	mockPolygonRepo := mockRepo.NewMockPolygonRepository(t)
	service := NewSummaryService(mockPointRepo, mockPolygonRepo)

	ctx := context.Background()

	mockPointRepo.EXPECT().CountActivePoints(ctx).Return(int64(3), nil)
	mockPolygonRepo.EXPECT().CountActivePolygons(ctx).Return(int64(2), nil)
	mockPolygonRepo.EXPECT().SumActivePolygonArea(ctx).Return(123456.789, nil)

	summary, err := service.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalPoints)
	assert.Equal(t, int64(2), summary.TotalPolygons)
	assert.Equal(t, 123456.79, summary.TotalPolygonAreaSqm)
	// sqkm is rounded from the raw total, not from the rounded sqm value.
	assert.Equal(t, 0.12, summary.TotalPolygonAreaKm2)
	assert.WithinDuration(t, time.Now().UTC(), summary.Timestamp, time.Minute)
}

func TestSummaryService_Summary_Empty(t *testing.T) {
	mockPointRepo := mockRepo.NewMockPointRepository(t)
	mockPolygonRepo := mockRepo.NewMockPolygonRepository(t)
	service := NewSummaryService(mockPointRepo, mockPolygonRepo)

	ctx := context.Background()

	mockPointRepo.EXPECT().CountActivePoints(ctx).Return(int64(0), nil)
	mockPolygonRepo.EXPECT().CountActivePolygons(ctx).Return(int64(0), nil)
	mockPolygonRepo.EXPECT().SumActivePolygonArea(ctx).Return(0.0, nil)

	summary, err := service.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.TotalPoints)
	assert.Equal(t, 0.0, summary.TotalPolygonAreaSqm)
	assert.Equal(t, 0.0, summary.TotalPolygonAreaKm2)
}

func TestSummaryService_Summary_RepositoryFailure(t *testing.T) {
	mockPointRepo := mockRepo.NewMockPointRepository(t)
	mockPolygonRepo := mockRepo.NewMockPolygonRepository(t)
	service := NewSummaryService(mockPointRepo, mockPolygonRepo)

	ctx := context.Background()

	mockPointRepo.EXPECT().
		CountActivePoints(ctx).
		Return(int64(0), domainerrors.NewStorageExecuteError(errors.New("connection refused"), "failed to count active points"))

	summary, err := service.Summary(ctx)
	assert.Nil(t, summary)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count active points")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORAGE_UNAVAILABLE", appErr.ErrorCode())
}
