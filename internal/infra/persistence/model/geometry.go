// Package model contains the GORM-specific structs for the PostGIS tables
// and the column types that bridge orb geometries to EWKB columns.
package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"github.com/pkg/errors"
)

// SRID is the spatial reference identifier for all stored geometries (WGS84).
const SRID = 4326

// EWKBPoint maps an orb.Point onto a PostGIS geometry(Point,4326) column.
type EWKBPoint struct {
	Point orb.Point
}

// Scan decodes the EWKB (or hex-encoded EWKB) value PostGIS returns.
func (p *EWKBPoint) Scan(value any) error {
	var point orb.Point
	if err := ewkb.Scanner(&point).Scan(value); err != nil {
		return errors.Wrap(err, "failed to scan EWKB point")
	}
	p.Point = point

	return nil
}

// Value encodes the point as EWKB with the WGS84 SRID.
func (p EWKBPoint) Value() (driver.Value, error) {
	return ewkb.Value(p.Point, SRID).Value()
}

// EWKBPolygon maps an orb.Polygon onto a PostGIS geometry(Polygon,4326) column.
type EWKBPolygon struct {
	Polygon orb.Polygon
}

// Scan decodes the EWKB (or hex-encoded EWKB) value PostGIS returns.
func (p *EWKBPolygon) Scan(value any) error {
	var polygon orb.Polygon
	if err := ewkb.Scanner(&polygon).Scan(value); err != nil {
		return errors.Wrap(err, "failed to scan EWKB polygon")
	}
	p.Polygon = polygon

	return nil
}

// Value encodes the polygon as EWKB with the WGS84 SRID.
func (p EWKBPolygon) Value() (driver.Value, error) {
	return ewkb.Value(p.Polygon, SRID).Value()
}

// JSONB maps a free-form properties map onto a jsonb column.
type JSONB map[string]any

// Scan decodes a jsonb column value.
func (j *JSONB) Scan(value any) error {
	switch data := value.(type) {
	case nil:
		*j = nil

		return nil
	case []byte:
		return errors.Wrap(json.Unmarshal(data, j), "failed to scan jsonb")
	case string:
		return errors.Wrap(json.Unmarshal([]byte(data), j), "failed to scan jsonb")
	default:
		return errors.Errorf("unsupported jsonb source type %T", value)
	}
}

// Value encodes the map as jsonb; a nil map is stored as an empty object.
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}

	data, err := json.Marshal(j)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal jsonb")
	}

	return data, nil
}
