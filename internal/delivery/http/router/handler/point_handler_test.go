package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atlas/config"
	"atlas/internal/delivery/http/validator"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/errors"
	"atlas/internal/infra/persistence/memory"
	mockRepo "atlas/internal/mocks/repository"
	"atlas/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Query.DefaultNearbyRadiusMeters = 1000

	return cfg
}

func newPointTestEnv(t *testing.T) (*echo.Echo, *PointHandler, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := NewPointHandler(PointHandlerParams{
		PointUC: impl.NewPointService(store),
		Config:  cfg,
		Logger:  logger,
	})

	e := echo.New()
	e.Validator = validator.New()

	return e, h, store
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope.Data
}

func TestPointHandler_CreatePoint(t *testing.T) {
	e, h, _ := newPointTestEnv(t)

	body := `{
		"name": "Central Park",
		"location": {"type": "Point", "coordinates": [-73.9654, 40.7829]},
		"properties": {"category": "park"}
	}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/points", body), rec)

	require.NoError(t, h.CreatePoint(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, "Central Park", data["name"])
	assert.Equal(t, 40.7829, data["latitude"])
	assert.Equal(t, -73.9654, data["longitude"])
	assert.Equal(t, true, data["is_active"])
	assert.NotEmpty(t, data["id"])

	location, ok := data["location"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Point", location["type"])
}

func TestPointHandler_CreatePoint_ValidationFailure(t *testing.T) {
	e, h, _ := newPointTestEnv(t)

	body := `{"name": "", "location": {"type": "Point", "coordinates": [0, 95]}}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/points", body), rec)

	require.NoError(t, h.CreatePoint(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, rec.Body.String(), "name")
	assert.Contains(t, rec.Body.String(), "location")
}

func TestPointHandler_GetPoint_NotFound(t *testing.T) {
	e, h, _ := newPointTestEnv(t)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/points/0", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("1f0336a2-17e5-44a7-a3e7-000000000000")

	require.NoError(t, h.GetPoint(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "POINT_NOT_FOUND")
}

func TestPointHandler_GetPoint_StorageUnavailable(t *testing.T) {
	mockPointRepo := mockRepo.NewMockPointRepository(t)
	h := NewPointHandler(PointHandlerParams{
		PointUC: impl.NewPointService(mockPointRepo),
		Config:  testConfig(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	id := uuid.New()
	mockPointRepo.EXPECT().
		FindPointByID(mock.Anything, id).
		Return(nil, domainerrors.NewStorageExecuteError(errors.New("connection refused"), "failed to find point by ID"))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/points/"+id.String(), nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.GetPoint(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "STORAGE_UNAVAILABLE")
}

func TestPointHandler_GetPoint_InvalidID(t *testing.T) {
	e, h, _ := newPointTestEnv(t)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/points/abc", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetPoint(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestPointHandler_FindNearbyPoints_DefaultDistance(t *testing.T) {
	e, h, _ := newPointTestEnv(t)

	// Seed through the handler so the flow matches production.
	for _, body := range []string{
		`{"name": "near", "location": {"type": "Point", "coordinates": [0.001, 0]}}`,
		`{"name": "far", "location": {"type": "Point", "coordinates": [0.05, 0]}}`,
	} {
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/api/points", body), rec)
		require.NoError(t, h.CreatePoint(c))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	// Default 1000m radius keeps only the near point.
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/points/nearby?lat=0&lng=0", nil), rec)

	require.NoError(t, h.FindNearbyPoints(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "near", envelope.Data[0]["name"])

	distance, ok := envelope.Data[0]["distance_meters"].(float64)
	require.True(t, ok)
	// Distances come back rounded to 2 decimal places.
	assert.InDelta(t, distance, float64(int(distance*100))/100, 0.011)
}

func TestPointHandler_FindNearbyPoints_InvalidLat(t *testing.T) {
	e, h, _ := newPointTestEnv(t)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/points/nearby?lat=abc&lng=0", nil), rec)

	require.NoError(t, h.FindNearbyPoints(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PARAMETER")
}

func TestPointHandler_BulkCreatePoints_Partial(t *testing.T) {
	e, h, _ := newPointTestEnv(t)

	body := `{"points": [
		{"name": "good", "location": {"type": "Point", "coordinates": [1, 1]}},
		{"name": "", "location": {"type": "Point", "coordinates": [2, 2]}}
	]}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/points/bulk", body), rec)

	require.NoError(t, h.BulkCreatePoints(c))
	assert.Equal(t, http.StatusMultiStatus, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, float64(1), data["created"])
	assert.Equal(t, float64(1), data["errors"])

	validationErrors, ok := data["validation_errors"].([]any)
	require.True(t, ok)
	require.Len(t, validationErrors, 1)
	first, ok := validationErrors[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), first["index"])
}

func TestPointHandler_BulkCreatePoints_AllCreated(t *testing.T) {
	e, h, _ := newPointTestEnv(t)

	body := `{"points": [{"name": "only", "location": {"type": "Point", "coordinates": [1, 1]}}]}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/points/bulk", body), rec)

	require.NoError(t, h.BulkCreatePoints(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPointHandler_BulkCreatePoints_BadEnvelope(t *testing.T) {
	e, h, _ := newPointTestEnv(t)

	for _, body := range []string{`{}`, `{"items": []}`} {
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/api/points/bulk", body), rec)

		require.NoError(t, h.BulkCreatePoints(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "BAD_ENVELOPE")
	}
}

func TestPointHandler_ListPoints_Pagination(t *testing.T) {
	e, h, _ := newPointTestEnv(t)

	for i := 0; i < 25; i++ {
		body := `{"name": "station", "location": {"type": "Point", "coordinates": [1, 1]}}`
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/api/points", body), rec)
		require.NoError(t, h.CreatePoint(c))
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/points?page=1", nil), rec)

	require.NoError(t, h.ListPoints(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, float64(25), data["count"])
	assert.Equal(t, float64(2), data["next"])
	assert.Nil(t, data["previous"])

	results, ok := data["results"].([]any)
	require.True(t, ok)
	// Default page size.
	assert.Len(t, results, 20)
	// Slim list shape carries no geometry payload.
	first, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, first, "location")
	assert.Contains(t, first, "latitude")
}

func TestPointHandler_UpdatePoint_FullRequiresNameAndLocation(t *testing.T) {
	e, h, _ := newPointTestEnv(t)

	createRec := httptest.NewRecorder()
	createCtx := e.NewContext(jsonRequest(http.MethodPost, "/api/points",
		`{"name": "before", "location": {"type": "Point", "coordinates": [1, 1]}}`), createRec)
	require.NoError(t, h.CreatePoint(createCtx))
	id, _ := decodeData(t, createRec)["id"].(string)
	require.NotEmpty(t, id)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/api/points/"+id, `{"name": "after"}`), rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, h.UpdatePoint(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")

	// PATCH accepts the same partial body.
	rec = httptest.NewRecorder()
	c = e.NewContext(jsonRequest(http.MethodPatch, "/api/points/"+id, `{"name": "after"}`), rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, h.PatchPoint(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "after", decodeData(t, rec)["name"])
}

func TestPointHandler_DeletePoint(t *testing.T) {
	e, h, _ := newPointTestEnv(t)

	createRec := httptest.NewRecorder()
	createCtx := e.NewContext(jsonRequest(http.MethodPost, "/api/points",
		`{"name": "doomed", "location": {"type": "Point", "coordinates": [1, 1]}}`), createRec)
	require.NoError(t, h.CreatePoint(createCtx))
	id, _ := decodeData(t, createRec)["id"].(string)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/points/"+id, nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, h.DeletePoint(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Second delete of the same ID fails.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/points/"+id, nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, h.DeletePoint(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
