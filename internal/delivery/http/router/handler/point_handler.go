package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"atlas/config"
	"atlas/internal/delivery/http/response"
	"atlas/internal/domain/entity"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// PointHandlerParams holds dependencies for PointHandler, injected by Fx.
type PointHandlerParams struct {
	fx.In

	PointUC usecase.PointUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// PointHandler holds dependencies for point-related handlers
type PointHandler struct {
	pointUC       usecase.PointUsecase
	defaultRadius float64
	logger        *slog.Logger
}

// NewPointHandler is the constructor for PointHandler
func NewPointHandler(params PointHandlerParams) *PointHandler {
	return &PointHandler{
		pointUC:       params.PointUC,
		defaultRadius: params.Config.Query.DefaultNearbyRadiusMeters,
		logger:        params.Logger,
	}
}

// CreatePointRequest represents the request body for creating a point.
// Field-level validation (name presence, coordinate ranges) lives in the
// usecase so single and bulk creation report identical error shapes.
type CreatePointRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Location    *geojson.Geometry `json:"location"`
	Properties  map[string]any    `json:"properties"`
	IsActive    *bool             `json:"is_active"`
}

// UpdatePointRequest represents the request body for updating a point
type UpdatePointRequest struct {
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	Location    *geojson.Geometry `json:"location,omitempty"`
	Properties  map[string]any    `json:"properties,omitempty"`
	IsActive    *bool             `json:"is_active,omitempty"`
}

// BulkPointsRequest is the bulk ingestion envelope.
type BulkPointsRequest struct {
	Points []CreatePointRequest `json:"points" validate:"required"`
}

// PointResponse is the detail shape, with the full GeoJSON location plus
// the derived coordinate pair.
type PointResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Location    *geojson.Geometry `json:"location"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	Properties  map[string]any    `json:"properties"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// PointListItem is the slim list shape without the geometry payload.
type PointListItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// NearbyPointItem is a list item annotated with its distance from the query
// origin.
type NearbyPointItem struct {
	PointListItem
	DistanceMeters float64 `json:"distance_meters"`
}

// BulkPointsResponse reports the outcome of a bulk point ingestion.
type BulkPointsResponse struct {
	Created          int                     `json:"created"`
	Errors           int                     `json:"errors"`
	CreatedPoints    []*PointResponse        `json:"created_points"`
	ValidationErrors []usecase.BulkItemError `json:"validation_errors,omitempty"`
}

// CreatePoint handles creating a new point
func (h *PointHandler) CreatePoint(c echo.Context) error {
	var req CreatePointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid point input")
	}

	point, err := h.pointUC.CreatePoint(c.Request().Context(), toCreatePointInput(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPointResponse(point))
}

// GetPoint handles retrieving a single point
func (h *PointHandler) GetPoint(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid point ID")
	}

	point, err := h.pointUC.GetPoint(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPointResponse(point))
}

// UpdatePoint handles a full update of a point. Name and location are
// required; unspecified optional fields are reset to their defaults.
func (h *PointHandler) UpdatePoint(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid point ID")
	}

	var req UpdatePointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid point input")
	}

	if req.Name == nil || req.Location == nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "name and location are required for a full update")
	}
	fillPointDefaults(&req)

	point, err := h.pointUC.UpdatePoint(c.Request().Context(), id, toUpdatePointInput(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPointResponse(point))
}

// PatchPoint handles a partial update of a point
func (h *PointHandler) PatchPoint(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid point ID")
	}

	var req UpdatePointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid point input")
	}

	point, err := h.pointUC.UpdatePoint(c.Request().Context(), id, toUpdatePointInput(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPointResponse(point))
}

// DeletePoint handles deleting a point
func (h *PointHandler) DeletePoint(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid point ID")
	}

	if err := h.pointUC.DeletePoint(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListPoints handles the filtered, paginated point listing
func (h *PointHandler) ListPoints(c echo.Context) error {
	input := &usecase.ListPointsInput{
		Name:     c.QueryParam("name"),
		IsActive: queryBool(c, "is_active"),
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	}

	page, err := h.pointUC.ListPoints(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]*PointListItem, 0, len(page.Points))
	for _, point := range page.Points {
		items = append(items, toPointListItem(point))
	}

	return response.Success(c, http.StatusOK, newPagedResponse(page.Count, page.Page, page.PageSize, items))
}

// FindNearbyPoints handles the within-distance search. lat and lng are
// required; distance falls back to the configured default radius.
func (h *PointHandler) FindNearbyPoints(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", "lat must be a number")
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", "lng must be a number")
	}

	distance := h.defaultRadius
	if raw := c.QueryParam("distance"); raw != "" {
		distance, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_PARAMETER", "distance must be a number")
		}
	}

	nearby, err := h.pointUC.FindNearbyPoints(c.Request().Context(), &usecase.NearbyPointsInput{
		Lat:            lat,
		Lng:            lng,
		DistanceMeters: distance,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]*NearbyPointItem, 0, len(nearby))
	for _, result := range nearby {
		items = append(items, &NearbyPointItem{
			PointListItem:  *toPointListItem(result.Point),
			DistanceMeters: result.DistanceMeters,
		})
	}

	return response.Success(c, http.StatusOK, items)
}

// BulkCreatePoints handles bulk point ingestion. A missing or malformed
// envelope is rejected whole; item failures are reported per index.
func (h *PointHandler) BulkCreatePoints(c echo.Context) error {
	var req BulkPointsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "BAD_ENVELOPE", "Request body must be a JSON object with a points array")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "BAD_ENVELOPE", "Request body must contain a points array")
	}

	items := make([]*usecase.CreatePointInput, 0, len(req.Points))
	for i := range req.Points {
		items = append(items, toCreatePointInput(&req.Points[i]))
	}

	result, err := h.pointUC.BulkCreatePoints(c.Request().Context(), items)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	created := make([]*PointResponse, 0, len(result.Created))
	for _, point := range result.Created {
		created = append(created, toPointResponse(point))
	}

	body := &BulkPointsResponse{
		Created:          len(result.Created),
		Errors:           len(result.Failed),
		CreatedPoints:    created,
		ValidationErrors: result.Failed,
	}

	status := http.StatusCreated
	if len(result.Failed) > 0 {
		status = http.StatusMultiStatus
	}

	return response.Success(c, status, body)
}

// --- Mapper Functions ---

func toCreatePointInput(req *CreatePointRequest) *usecase.CreatePointInput {
	return &usecase.CreatePointInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Properties:  req.Properties,
		IsActive:    req.IsActive,
	}
}

func toUpdatePointInput(req *UpdatePointRequest) *usecase.UpdatePointInput {
	return &usecase.UpdatePointInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Properties:  req.Properties,
		IsActive:    req.IsActive,
	}
}

// fillPointDefaults resets the optional fields a full update leaves out.
func fillPointDefaults(req *UpdatePointRequest) {
	if req.Description == nil {
		empty := ""
		req.Description = &empty
	}
	if req.Properties == nil {
		req.Properties = map[string]any{}
	}
	if req.IsActive == nil {
		active := true
		req.IsActive = &active
	}
}

func toPointResponse(point *entity.Point) *PointResponse {
	return &PointResponse{
		ID:          point.ID,
		Name:        point.Name,
		Description: point.Description,
		Location:    geojson.NewGeometry(point.Location),
		Latitude:    point.Latitude(),
		Longitude:   point.Longitude(),
		Properties:  point.Properties,
		IsActive:    point.IsActive,
		CreatedAt:   point.CreatedAt,
		UpdatedAt:   point.UpdatedAt,
	}
}

func toPointListItem(point *entity.Point) *PointListItem {
	return &PointListItem{
		ID:          point.ID,
		Name:        point.Name,
		Description: point.Description,
		Latitude:    point.Latitude(),
		Longitude:   point.Longitude(),
		IsActive:    point.IsActive,
		CreatedAt:   point.CreatedAt,
	}
}
