package model

import (
	"time"

	"github.com/google/uuid"
)

// PolygonModel is the GORM-specific struct for the 'polygons' table.
// Area and centroid are derived from the geometry before persistence and
// stored denormalized so list filters and the summary never recompute them.
type PolygonModel struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key"`
	Name        string      `gorm:"type:varchar(255);not null"`
	Description string      `gorm:"type:text"`
	Geometry    EWKBPolygon `gorm:"type:geometry(Polygon,4326);not null;index:idx_polygons_geometry,type:gist"`
	Area        float64     `gorm:"type:double precision;not null;index"`
	Centroid    EWKBPoint   `gorm:"type:geometry(Point,4326);not null"`
	Properties  JSONB       `gorm:"type:jsonb;not null;default:'{}'"`
	IsActive    bool        `gorm:"not null;default:true;index"`
	CreatedAt   time.Time   `gorm:"not null;index"`
	UpdatedAt   time.Time   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PolygonModel) TableName() string {
	return "polygons"
}
