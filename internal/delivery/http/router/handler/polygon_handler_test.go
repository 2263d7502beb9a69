package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"atlas/internal/delivery/http/validator"
	"atlas/internal/infra/persistence/memory"
	"atlas/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPolygonTestEnv(t *testing.T) (*echo.Echo, *PolygonHandler, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := NewPolygonHandler(PolygonHandlerParams{
		PolygonUC: impl.NewPolygonService(store),
		Logger:    logger,
	})

	e := echo.New()
	e.Validator = validator.New()

	return e, h, store
}

// squareBody builds a polygon request for an axis-aligned square.
func squareBody(name string, minLng, minLat, side float64) string {
	return fmt.Sprintf(`{
		"name": %q,
		"geometry": {"type": "Polygon", "coordinates": [[
			[%[2]f, %[3]f], [%[4]f, %[3]f], [%[4]f, %[5]f], [%[2]f, %[5]f], [%[2]f, %[3]f]
		]]}
	}`, name, minLng, minLat, minLng+side, minLat+side)
}

func createPolygonViaHandler(t *testing.T, e *echo.Echo, h *PolygonHandler, body string) map[string]any {
	t.Helper()

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/polygons", body), rec)
	require.NoError(t, h.CreatePolygon(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	return decodeData(t, rec)
}

func TestPolygonHandler_CreatePolygon_DerivesAttributes(t *testing.T) {
	e, h, _ := newPolygonTestEnv(t)

	data := createPolygonViaHandler(t, e, h, squareBody("district", 0, 0, 0.01))

	area, ok := data["area_sqm"].(float64)
	require.True(t, ok)
	// A 0.01 degree square near the equator is roughly 1.2 km2.
	assert.Greater(t, area, 1e6)
	assert.Less(t, area, 1e7)

	centroid, ok := data["centroid"].(map[string]any)
	require.True(t, ok)
	coords, ok := centroid["coordinates"].([]any)
	require.True(t, ok)
	require.Len(t, coords, 2)
	assert.InDelta(t, 0.005, coords[0].(float64), 1e-9)
	assert.InDelta(t, 0.005, coords[1].(float64), 1e-9)
}

func TestPolygonHandler_CreatePolygon_RejectsInvalidRing(t *testing.T) {
	e, h, _ := newPolygonTestEnv(t)

	// Open ring, last coordinate does not close the loop.
	body := `{
		"name": "broken",
		"geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1]]]}
	}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/polygons", body), rec)

	require.NoError(t, h.CreatePolygon(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, rec.Body.String(), "geometry")
}

func TestPolygonHandler_GetPolygon_NotFound(t *testing.T) {
	e, h, _ := newPolygonTestEnv(t)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/polygons/0", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("1f0336a2-17e5-44a7-a3e7-000000000000")

	require.NoError(t, h.GetPolygon(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "POLYGON_NOT_FOUND")
}

func TestPolygonHandler_FindPolygonsContainingPoint(t *testing.T) {
	e, h, _ := newPolygonTestEnv(t)

	createPolygonViaHandler(t, e, h, squareBody("inner", 0, 0, 1))
	createPolygonViaHandler(t, e, h, squareBody("elsewhere", 50, 50, 1))

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/polygons/containing-point?lat=0.5&lng=0.5", nil), rec)

	require.NoError(t, h.FindPolygonsContainingPoint(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "inner", envelope.Data[0]["name"])

	// Boundary vertex counts as contained.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/polygons/containing-point?lat=0&lng=0", nil), rec)
	require.NoError(t, h.FindPolygonsContainingPoint(c))

	envelope.Data = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
}

func TestPolygonHandler_FindPolygonsContainingPoint_InvalidLng(t *testing.T) {
	e, h, _ := newPolygonTestEnv(t)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/polygons/containing-point?lat=0&lng=oops", nil), rec)

	require.NoError(t, h.FindPolygonsContainingPoint(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PARAMETER")
}

func TestPolygonHandler_FindIntersectingPolygons_ExcludesSelf(t *testing.T) {
	e, h, _ := newPolygonTestEnv(t)

	base := createPolygonViaHandler(t, e, h, squareBody("base", 0, 0, 1))
	createPolygonViaHandler(t, e, h, squareBody("overlap", 0.5, 0.5, 1))
	createPolygonViaHandler(t, e, h, squareBody("disjoint", 10, 10, 1))

	id, _ := base["id"].(string)
	require.NotEmpty(t, id)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/polygons/"+id+"/intersecting", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, h.FindIntersectingPolygons(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "overlap", envelope.Data[0]["name"])
}

func TestPolygonHandler_FindIntersectingPolygons_BaseMissing(t *testing.T) {
	e, h, _ := newPolygonTestEnv(t)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/polygons/0/intersecting", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("1f0336a2-17e5-44a7-a3e7-000000000000")

	require.NoError(t, h.FindIntersectingPolygons(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "POLYGON_NOT_FOUND")
}

func TestPolygonHandler_ListPolygons_AreaFilter(t *testing.T) {
	e, h, _ := newPolygonTestEnv(t)

	createPolygonViaHandler(t, e, h, squareBody("small", 0, 0, 0.01))
	createPolygonViaHandler(t, e, h, squareBody("large", 5, 5, 1))

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/polygons?min_area=100000000", nil), rec)

	require.NoError(t, h.ListPolygons(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, float64(1), data["count"])

	results, ok := data["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 1)
	first, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "large", first["name"])
	// List items carry derived area but no geometry.
	assert.Contains(t, first, "area_sqm")
	assert.NotContains(t, first, "geometry")

	// A malformed filter value is ignored rather than rejected.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/polygons?min_area=big", nil), rec)
	require.NoError(t, h.ListPolygons(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeData(t, rec)["count"])
}

func TestPolygonHandler_BulkCreatePolygons_Partial(t *testing.T) {
	e, h, _ := newPolygonTestEnv(t)

	body := fmt.Sprintf(`{"polygons": [%s, %s]}`,
		`{"name": "", "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}}`,
		`{"name": "ok", "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/polygons/bulk", body), rec)

	require.NoError(t, h.BulkCreatePolygons(c))
	assert.Equal(t, http.StatusMultiStatus, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, float64(1), data["created"])
	assert.Equal(t, float64(1), data["errors"])

	validationErrors, ok := data["validation_errors"].([]any)
	require.True(t, ok)
	require.Len(t, validationErrors, 1)
	first, ok := validationErrors[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(0), first["index"])
}

func TestPolygonHandler_UpdatePolygon_RecomputesDerived(t *testing.T) {
	e, h, _ := newPolygonTestEnv(t)

	created := createPolygonViaHandler(t, e, h, squareBody("growing", 0, 0, 0.01))
	id, _ := created["id"].(string)
	originalArea, _ := created["area_sqm"].(float64)

	body := squareBody("grown", 0, 0, 0.1)
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/api/polygons/"+id, body), rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, h.UpdatePolygon(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	newArea, _ := data["area_sqm"].(float64)
	assert.Greater(t, newArea, originalArea*50)

	centroid, ok := data["centroid"].(map[string]any)
	require.True(t, ok)
	coords, _ := centroid["coordinates"].([]any)
	require.Len(t, coords, 2)
	assert.InDelta(t, 0.05, coords[0].(float64), 1e-9)
}
