package model

import (
	"time"

	"github.com/google/uuid"
)

// PointModel is the GORM-specific struct for the 'points' table.
// The location column carries a GiST index for distance queries.
type PointModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Location    EWKBPoint `gorm:"type:geometry(Point,4326);not null;index:idx_points_location,type:gist"`
	Properties  JSONB     `gorm:"type:jsonb;not null;default:'{}'"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PointModel) TableName() string {
	return "points"
}
