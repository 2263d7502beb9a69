// Package postgres contains the concrete implementation of the persistence layer using GORM and PostGIS.
package postgres

import (
	"context"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pointRepository implements the repository.PointRepository interface.
type pointRepository struct {
	db *gorm.DB
}

// NewPointRepository is the constructor for pointRepository.
func NewPointRepository(db *gorm.DB) repository.PointRepository {
	return &pointRepository{
		db: db,
	}
}

// CreatePoint persists a new point.
func (repo *pointRepository) CreatePoint(ctx context.Context, point *entity.Point) error {
	pointM := fromPointDomain(point)

	if err := repo.db.WithContext(ctx).Create(pointM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewStorageExecuteError(err, "point ID already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewStorageExecuteError(err, "missing required point fields")
		}

		return domainerrors.NewStorageExecuteError(err, "failed to create point")
	}

	return nil
}

// FindPointByID retrieves a point by its unique ID.
func (repo *pointRepository) FindPointByID(ctx context.Context, id uuid.UUID) (*entity.Point, error) {
	var pointM model.PointModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pointM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPointNotFound
		}

		return nil, domainerrors.NewStorageExecuteError(err, "failed to find point by ID")
	}

	return toPointDomain(&pointM), nil
}

// UpdatePoint overwrites an existing point. Last writer wins; there is no
// version check. UpdateColumns keeps the caller-set updated_at instead of
// letting GORM stamp its own, so the persisted row matches the returned
// entity exactly.
func (repo *pointRepository) UpdatePoint(ctx context.Context, point *entity.Point) error {
	pointM := fromPointDomain(point)

	result := repo.db.WithContext(ctx).
		Model(&model.PointModel{}).
		Where("id = ?", point.ID).
		Select("*").
		Omit("id", "created_at").
		UpdateColumns(pointM)

	if result.Error != nil {
		return domainerrors.NewStorageExecuteError(result.Error, "failed to update point")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPointNotFound
	}

	return nil
}

// DeletePoint removes a point by its ID (hard delete).
func (repo *pointRepository) DeletePoint(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PointModel{})

	if result.Error != nil {
		return domainerrors.NewStorageExecuteError(result.Error, "failed to delete point")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPointNotFound
	}

	return nil
}

// ListPoints retrieves a filtered page of points with the unpaged total,
// newest first.
func (repo *pointRepository) ListPoints(ctx context.Context, filter repository.PointFilter, page repository.Page) ([]*entity.Point, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.PointModel{})

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, domainerrors.NewStorageExecuteError(err, "failed to count points")
	}

	var pointModels []*model.PointModel
	if err := query.
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&pointModels).Error; err != nil {
		return nil, 0, domainerrors.NewStorageExecuteError(err, "failed to list points")
	}

	points := make([]*entity.Point, 0, len(pointModels))
	for _, pointM := range pointModels {
		points = append(points, toPointDomain(pointM))
	}

	return points, count, nil
}

// pointDistanceRow carries the computed distance alongside the row columns.
type pointDistanceRow struct {
	model.PointModel `gorm:"embedded"`
	DistanceMeters   float64
}

// FindPointsWithinDistance retrieves active points within the given geodesic
// distance of the center, nearest first. The geography cast makes
// ST_DWithin and ST_Distance operate in meters.
func (repo *pointRepository) FindPointsWithinDistance(ctx context.Context, center orb.Point, meters float64) ([]*entity.NearbyPoint, error) {
	var rows []*pointDistanceRow

	query := `
		SELECT *,
		       ST_Distance(location::geography, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography) AS distance_meters
		FROM points
		WHERE is_active = true
		  AND ST_DWithin(
		    location::geography,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
		    ?
		  )
		ORDER BY distance_meters ASC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, center.Lon(), center.Lat(), center.Lon(), center.Lat(), meters).
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewStorageExecuteError(err, "failed to find points within distance")
	}

	nearby := make([]*entity.NearbyPoint, 0, len(rows))
	for _, row := range rows {
		nearby = append(nearby, &entity.NearbyPoint{
			Point:          toPointDomain(&row.PointModel),
			DistanceMeters: row.DistanceMeters,
		})
	}

	return nearby, nil
}

// CountActivePoints counts points with is_active = true.
func (repo *pointRepository) CountActivePoints(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PointModel{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewStorageExecuteError(err, "failed to count active points")
	}

	return count, nil
}

// --- Mapper Functions ---

// toPointDomain converts a GORM PointModel to a domain Point entity.
func toPointDomain(data *model.PointModel) *entity.Point {
	if data == nil {
		return nil
	}

	return &entity.Point{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Location:    data.Location.Point,
		Properties:  data.Properties,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromPointDomain converts a domain Point entity to a GORM PointModel.
func fromPointDomain(data *entity.Point) *model.PointModel {
	if data == nil {
		return nil
	}

	return &model.PointModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Location:    model.EWKBPoint{Point: data.Location},
		Properties:  data.Properties,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
