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

// polygonRepository implements the repository.PolygonRepository interface.
type polygonRepository struct {
	db *gorm.DB
}

// NewPolygonRepository is the constructor for polygonRepository.
func NewPolygonRepository(db *gorm.DB) repository.PolygonRepository {
	return &polygonRepository{
		db: db,
	}
}

// CreatePolygon persists a new polygon with its derived attributes.
func (repo *polygonRepository) CreatePolygon(ctx context.Context, polygon *entity.Polygon) error {
	polygonM := fromPolygonDomain(polygon)

	if err := repo.db.WithContext(ctx).Create(polygonM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewStorageExecuteError(err, "polygon ID already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewStorageExecuteError(err, "missing required polygon fields")
		}

		return domainerrors.NewStorageExecuteError(err, "failed to create polygon")
	}

	return nil
}

// FindPolygonByID retrieves a polygon by its unique ID.
func (repo *polygonRepository) FindPolygonByID(ctx context.Context, id uuid.UUID) (*entity.Polygon, error) {
	var polygonM model.PolygonModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&polygonM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPolygonNotFound
		}

		return nil, domainerrors.NewStorageExecuteError(err, "failed to find polygon by ID")
	}

	return toPolygonDomain(&polygonM), nil
}

// UpdatePolygon overwrites an existing polygon. Last writer wins; there is
// no version check. UpdateColumns keeps the caller-set updated_at instead of
// letting GORM stamp its own, so the persisted row matches the returned
// entity exactly.
func (repo *polygonRepository) UpdatePolygon(ctx context.Context, polygon *entity.Polygon) error {
	polygonM := fromPolygonDomain(polygon)

	result := repo.db.WithContext(ctx).
		Model(&model.PolygonModel{}).
		Where("id = ?", polygon.ID).
		Select("*").
		Omit("id", "created_at").
		UpdateColumns(polygonM)

	if result.Error != nil {
		return domainerrors.NewStorageExecuteError(result.Error, "failed to update polygon")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPolygonNotFound
	}

	return nil
}

// DeletePolygon removes a polygon by its ID (hard delete).
func (repo *polygonRepository) DeletePolygon(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PolygonModel{})

	if result.Error != nil {
		return domainerrors.NewStorageExecuteError(result.Error, "failed to delete polygon")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPolygonNotFound
	}

	return nil
}

// ListPolygons retrieves a filtered page of polygons with the unpaged total,
// newest first.
func (repo *polygonRepository) ListPolygons(ctx context.Context, filter repository.PolygonFilter, page repository.Page) ([]*entity.Polygon, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.PolygonModel{})

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.MinArea != nil {
		query = query.Where("area >= ?", *filter.MinArea)
	}
	if filter.MaxArea != nil {
		query = query.Where("area <= ?", *filter.MaxArea)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, domainerrors.NewStorageExecuteError(err, "failed to count polygons")
	}

	var polygonModels []*model.PolygonModel
	if err := query.
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&polygonModels).Error; err != nil {
		return nil, 0, domainerrors.NewStorageExecuteError(err, "failed to list polygons")
	}

	polygons := make([]*entity.Polygon, 0, len(polygonModels))
	for _, polygonM := range polygonModels {
		polygons = append(polygons, toPolygonDomain(polygonM))
	}

	return polygons, count, nil
}

// FindPolygonsCoveringPoint retrieves active polygons whose geometry covers
// the given point. ST_Covers (rather than ST_Contains) keeps points on the
// boundary inside.
func (repo *polygonRepository) FindPolygonsCoveringPoint(ctx context.Context, point orb.Point) ([]*entity.Polygon, error) {
	var polygonModels []*model.PolygonModel

	query := `
		SELECT *
		FROM polygons
		WHERE is_active = true
		  AND ST_Covers(geometry, ST_SetSRID(ST_MakePoint(?, ?), 4326))
		ORDER BY created_at DESC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, point.Lon(), point.Lat()).
		Scan(&polygonModels).Error; err != nil {
		return nil, domainerrors.NewStorageExecuteError(err, "failed to find polygons covering point")
	}

	polygons := make([]*entity.Polygon, 0, len(polygonModels))
	for _, polygonM := range polygonModels {
		polygons = append(polygons, toPolygonDomain(polygonM))
	}

	return polygons, nil
}

// FindPolygonsIntersecting retrieves active polygons whose geometry
// intersects the given one. The row identified by excludeID is skipped, so
// a geometrically identical sibling still matches.
func (repo *polygonRepository) FindPolygonsIntersecting(ctx context.Context, excludeID uuid.UUID, geometry orb.Polygon) ([]*entity.Polygon, error) {
	var polygonModels []*model.PolygonModel

	query := `
		SELECT *
		FROM polygons
		WHERE is_active = true
		  AND id <> ?
		  AND ST_Intersects(geometry, ST_GeomFromEWKB(?))
		ORDER BY created_at DESC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, excludeID, model.EWKBPolygon{Polygon: geometry}).
		Scan(&polygonModels).Error; err != nil {
		return nil, domainerrors.NewStorageExecuteError(err, "failed to find intersecting polygons")
	}

	polygons := make([]*entity.Polygon, 0, len(polygonModels))
	for _, polygonM := range polygonModels {
		polygons = append(polygons, toPolygonDomain(polygonM))
	}

	return polygons, nil
}

// CountActivePolygons counts polygons with is_active = true.
func (repo *polygonRepository) CountActivePolygons(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PolygonModel{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewStorageExecuteError(err, "failed to count active polygons")
	}

	return count, nil
}

// SumActivePolygonArea sums the stored area of active polygons in square
// meters.
func (repo *polygonRepository) SumActivePolygonArea(ctx context.Context) (float64, error) {
	var total float64

	if err := repo.db.WithContext(ctx).
		Model(&model.PolygonModel{}).
		Where("is_active = ?", true).
		Select("COALESCE(SUM(area), 0)").
		Scan(&total).Error; err != nil {
		return 0, domainerrors.NewStorageExecuteError(err, "failed to sum active polygon area")
	}

	return total, nil
}

// --- Mapper Functions ---

// toPolygonDomain converts a GORM PolygonModel to a domain Polygon entity.
func toPolygonDomain(data *model.PolygonModel) *entity.Polygon {
	if data == nil {
		return nil
	}

	return &entity.Polygon{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Geometry:    data.Geometry.Polygon,
		Area:        data.Area,
		Centroid:    data.Centroid.Point,
		Properties:  data.Properties,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromPolygonDomain converts a domain Polygon entity to a GORM PolygonModel.
func fromPolygonDomain(data *entity.Polygon) *model.PolygonModel {
	if data == nil {
		return nil
	}

	return &model.PolygonModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Geometry:    model.EWKBPolygon{Polygon: data.Geometry},
		Area:        data.Area,
		Centroid:    model.EWKBPoint{Point: data.Centroid},
		Properties:  data.Properties,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
