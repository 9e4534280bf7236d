package create_service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunocamarg0/trim-squire/internal/service/catalog"
	"github.com/brunocamarg0/trim-squire/internal/service/catalog/models"
)

type fakeService struct {
	got *models.CreateServiceRequest
	err error
}

func (f *fakeService) CreateService(_ context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ServiceResponse{ID: "svc-1", BarbershopID: req.BarbershopID, Name: req.Name, IsActive: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/barbershops/shop-1/services", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"barbershopId": "shop-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_CreatesService(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}), `{"name":"Corte","price":45,"durationMinutes":30,"category":"cabelo"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "shop-1", svc.got.BarbershopID)
	assert.Equal(t, "Corte", svc.got.Name)
	assert.Equal(t, 45.0, svc.got.Price)
	assert.Equal(t, 30, svc.got.DurationMinutes)

	var resp models.ServiceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "svc-1", resp.ID)
	assert.True(t, resp.IsActive)
}

func TestHandler_InvalidBody(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}), `{"name":"Corte","barbershopId":"other"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.got)
}

func TestHandler_ServiceErrors(t *testing.T) {
	rec := serve(NewHandler(&fakeService{err: catalog.ErrInvalidInput}, nopLogger{}), `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(NewHandler(&fakeService{err: errors.New("boom")}, nopLogger{}), `{"name":"Corte"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
