package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/altoshop/catalog-service/internal/apperr"
	"github.com/altoshop/catalog-service/internal/model"
	"github.com/altoshop/catalog-service/internal/schema/dto"
)

// stubUseCase returns canned results so the tests exercise routing and the
// status-code mapping only.
type stubUseCase struct {
	createErr error
	getErr    error
	deleteErr error
	composite model.JSONObject
}

func (s *stubUseCase) CreateSchema(_ context.Context, input *dto.CreateSchemaInput) (*model.AttributesSchema, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &model.AttributesSchema{
		BaseModel: model.BaseModel{ID: "schema-1"},
		Name:      input.Name,
		Schema:    input.Schema,
	}, nil
}

func (s *stubUseCase) GetSchema(_ context.Context, id string) (*model.AttributesSchema, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &model.AttributesSchema{BaseModel: model.BaseModel{ID: id}, Name: "clothing"}, nil
}

func (s *stubUseCase) ListSchemas(context.Context) ([]model.AttributesSchema, error) {
	return []model.AttributesSchema{}, nil
}

func (s *stubUseCase) UpdateSchema(context.Context, *dto.UpdateSchemaInput) (*model.AttributesSchema, error) {
	return nil, nil
}

func (s *stubUseCase) DeleteSchema(context.Context, string) error { return s.deleteErr }

func (s *stubUseCase) CompositeSchema(context.Context) (model.JSONObject, error) {
	return s.composite, nil
}

func (s *stubUseCase) ValidateAttributes(context.Context, model.JSONObject) error { return nil }

func newTestRouter(uc *stubUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewSchemaHandler(uc, zap.NewNop()).RegisterRoutes(r.Group("/admin"))
	return r
}

func TestCreateSchemaCreated(t *testing.T) {
	r := newTestRouter(&stubUseCase{})

	body := `{"name":"clothing","schema":{"type":"object"}}`
	req := httptest.NewRequest(http.MethodPost, "/admin/schemas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.AttributesSchema
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "clothing", created.Name)
}

func TestCreateSchemaMissingFields(t *testing.T) {
	r := newTestRouter(&stubUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/admin/schemas", strings.NewReader(`{"name":"clothing"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSchemaDuplicateNameConflict(t *testing.T) {
	r := newTestRouter(&stubUseCase{createErr: &apperr.UniquenessError{Field: "name"}})

	body := `{"name":"clothing","schema":{"type":"object"}}`
	req := httptest.NewRequest(http.MethodPost, "/admin/schemas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "name", payload["field"])
}

func TestGetSchemaNotFound(t *testing.T) {
	r := newTestRouter(&stubUseCase{getErr: apperr.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/admin/schemas/missing", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSchemaNoContent(t *testing.T) {
	r := newTestRouter(&stubUseCase{})

	req := httptest.NewRequest(http.MethodDelete, "/admin/schemas/schema-1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCompositeSchemaEndpoint(t *testing.T) {
	r := newTestRouter(&stubUseCase{composite: model.JSONObject{
		"type":  "object",
		"oneOf": []any{map[string]any{"title": "No attributes"}},
	}})

	req := httptest.NewRequest(http.MethodGet, "/admin/attributes-schema", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var composite map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &composite))
	assert.Equal(t, "object", composite["type"])
	assert.Len(t, composite["oneOf"], 1)
}
