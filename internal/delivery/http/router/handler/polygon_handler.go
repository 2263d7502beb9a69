package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"atlas/internal/delivery/http/response"
	"atlas/internal/domain/entity"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// PolygonHandlerParams holds dependencies for PolygonHandler, injected by Fx.
type PolygonHandlerParams struct {
	fx.In

	PolygonUC usecase.PolygonUsecase
	Logger    *slog.Logger
}

// PolygonHandler holds dependencies for polygon-related handlers
type PolygonHandler struct {
	polygonUC usecase.PolygonUsecase
	logger    *slog.Logger
}

// NewPolygonHandler is the constructor for PolygonHandler
func NewPolygonHandler(params PolygonHandlerParams) *PolygonHandler {
	return &PolygonHandler{
		polygonUC: params.PolygonUC,
		logger:    params.Logger,
	}
}

// CreatePolygonRequest represents the request body for creating a polygon
type CreatePolygonRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Geometry    *geojson.Geometry `json:"geometry"`
	Properties  map[string]any    `json:"properties"`
	IsActive    *bool             `json:"is_active"`
}

// UpdatePolygonRequest represents the request body for updating a polygon
type UpdatePolygonRequest struct {
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	Geometry    *geojson.Geometry `json:"geometry,omitempty"`
	Properties  map[string]any    `json:"properties,omitempty"`
	IsActive    *bool             `json:"is_active,omitempty"`
}

// BulkPolygonsRequest is the bulk ingestion envelope.
type BulkPolygonsRequest struct {
	Polygons []CreatePolygonRequest `json:"polygons" validate:"required"`
}

// PolygonResponse is the detail shape, with the full GeoJSON geometry and
// the derived attributes.
type PolygonResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Geometry    *geojson.Geometry `json:"geometry"`
	AreaSqm     float64           `json:"area_sqm"`
	Centroid    *geojson.Geometry `json:"centroid"`
	Properties  map[string]any    `json:"properties"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// PolygonListItem is the slim list shape without the geometry payload.
type PolygonListItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	AreaSqm     float64   `json:"area_sqm"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// BulkPolygonsResponse reports the outcome of a bulk polygon ingestion.
type BulkPolygonsResponse struct {
	Created          int                     `json:"created"`
	Errors           int                     `json:"errors"`
	CreatedPolygons  []*PolygonResponse      `json:"created_polygons"`
	ValidationErrors []usecase.BulkItemError `json:"validation_errors,omitempty"`
}

// CreatePolygon handles creating a new polygon
func (h *PolygonHandler) CreatePolygon(c echo.Context) error {
	var req CreatePolygonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid polygon input")
	}

	polygon, err := h.polygonUC.CreatePolygon(c.Request().Context(), toCreatePolygonInput(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPolygonResponse(polygon))
}

// GetPolygon handles retrieving a single polygon
func (h *PolygonHandler) GetPolygon(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid polygon ID")
	}

	polygon, err := h.polygonUC.GetPolygon(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPolygonResponse(polygon))
}

// UpdatePolygon handles a full update of a polygon. Name and geometry are
// required; unspecified optional fields are reset to their defaults.
func (h *PolygonHandler) UpdatePolygon(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid polygon ID")
	}

	var req UpdatePolygonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid polygon input")
	}

	if req.Name == nil || req.Geometry == nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "name and geometry are required for a full update")
	}
	fillPolygonDefaults(&req)

	polygon, err := h.polygonUC.UpdatePolygon(c.Request().Context(), id, toUpdatePolygonInput(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPolygonResponse(polygon))
}

// PatchPolygon handles a partial update of a polygon
func (h *PolygonHandler) PatchPolygon(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid polygon ID")
	}

	var req UpdatePolygonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid polygon input")
	}

	polygon, err := h.polygonUC.UpdatePolygon(c.Request().Context(), id, toUpdatePolygonInput(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPolygonResponse(polygon))
}

// DeletePolygon handles deleting a polygon
func (h *PolygonHandler) DeletePolygon(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid polygon ID")
	}

	if err := h.polygonUC.DeletePolygon(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListPolygons handles the filtered, paginated polygon listing. Malformed
// min_area/max_area values are ignored rather than rejected.
func (h *PolygonHandler) ListPolygons(c echo.Context) error {
	input := &usecase.ListPolygonsInput{
		Name:     c.QueryParam("name"),
		IsActive: queryBool(c, "is_active"),
		MinArea:  queryFloat(c, "min_area"),
		MaxArea:  queryFloat(c, "max_area"),
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	}

	page, err := h.polygonUC.ListPolygons(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]*PolygonListItem, 0, len(page.Polygons))
	for _, polygon := range page.Polygons {
		items = append(items, toPolygonListItem(polygon))
	}

	return response.Success(c, http.StatusOK, newPagedResponse(page.Count, page.Page, page.PageSize, items))
}

// FindPolygonsContainingPoint handles the point-in-polygon query.
// Containment is boundary-inclusive.
func (h *PolygonHandler) FindPolygonsContainingPoint(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", "lat must be a number")
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", "lng must be a number")
	}

	polygons, err := h.polygonUC.FindPolygonsContainingPoint(c.Request().Context(), &usecase.ContainingPointInput{
		Lat: lat,
		Lng: lng,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]*PolygonResponse, 0, len(polygons))
	for _, polygon := range polygons {
		items = append(items, toPolygonResponse(polygon))
	}

	return response.Success(c, http.StatusOK, items)
}

// FindIntersectingPolygons handles the polygon-intersection query. The base
// polygon is excluded from its own results by ID.
func (h *PolygonHandler) FindIntersectingPolygons(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid polygon ID")
	}

	polygons, err := h.polygonUC.FindIntersectingPolygons(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]*PolygonResponse, 0, len(polygons))
	for _, polygon := range polygons {
		items = append(items, toPolygonResponse(polygon))
	}

	return response.Success(c, http.StatusOK, items)
}

// BulkCreatePolygons handles bulk polygon ingestion. A missing or malformed
// envelope is rejected whole; item failures are reported per index.
func (h *PolygonHandler) BulkCreatePolygons(c echo.Context) error {
	var req BulkPolygonsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "BAD_ENVELOPE", "Request body must be a JSON object with a polygons array")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "BAD_ENVELOPE", "Request body must contain a polygons array")
	}

	items := make([]*usecase.CreatePolygonInput, 0, len(req.Polygons))
	for i := range req.Polygons {
		items = append(items, toCreatePolygonInput(&req.Polygons[i]))
	}

	result, err := h.polygonUC.BulkCreatePolygons(c.Request().Context(), items)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	created := make([]*PolygonResponse, 0, len(result.Created))
	for _, polygon := range result.Created {
		created = append(created, toPolygonResponse(polygon))
	}

	body := &BulkPolygonsResponse{
		Created:          len(result.Created),
		Errors:           len(result.Failed),
		CreatedPolygons:  created,
		ValidationErrors: result.Failed,
	}

	status := http.StatusCreated
	if len(result.Failed) > 0 {
		status = http.StatusMultiStatus
	}

	return response.Success(c, status, body)
}

// --- Mapper Functions ---

func toCreatePolygonInput(req *CreatePolygonRequest) *usecase.CreatePolygonInput {
	return &usecase.CreatePolygonInput{
		Name:        req.Name,
		Description: req.Description,
		Geometry:    req.Geometry,
		Properties:  req.Properties,
		IsActive:    req.IsActive,
	}
}

func toUpdatePolygonInput(req *UpdatePolygonRequest) *usecase.UpdatePolygonInput {
	return &usecase.UpdatePolygonInput{
		Name:        req.Name,
		Description: req.Description,
		Geometry:    req.Geometry,
		Properties:  req.Properties,
		IsActive:    req.IsActive,
	}
}

// fillPolygonDefaults resets the optional fields a full update leaves out.
func fillPolygonDefaults(req *UpdatePolygonRequest) {
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

func toPolygonResponse(polygon *entity.Polygon) *PolygonResponse {
	return &PolygonResponse{
		ID:          polygon.ID,
		Name:        polygon.Name,
		Description: polygon.Description,
		Geometry:    geojson.NewGeometry(polygon.Geometry),
		AreaSqm:     polygon.Area,
		Centroid:    geojson.NewGeometry(polygon.Centroid),
		Properties:  polygon.Properties,
		IsActive:    polygon.IsActive,
		CreatedAt:   polygon.CreatedAt,
		UpdatedAt:   polygon.UpdatedAt,
	}
}

func toPolygonListItem(polygon *entity.Polygon) *PolygonListItem {
	return &PolygonListItem{
		ID:          polygon.ID,
		Name:        polygon.Name,
		Description: polygon.Description,
		AreaSqm:     polygon.Area,
		IsActive:    polygon.IsActive,
		CreatedAt:   polygon.CreatedAt,
	}
}
