package create_client

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

	"github.com/brunocamarg0/trim-squire/internal/service/clients"
	"github.com/brunocamarg0/trim-squire/internal/service/clients/models"
)

type fakeService struct {
	got *models.CreateClientRequest
	err error
}

func (f *fakeService) CreateClient(_ context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ClientResponse{ID: "client-1", BarbershopID: req.BarbershopID, Name: req.Name, Phone: req.Phone}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/barbershops/shop-1/clients", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"barbershopId": "shop-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_CreatesClient(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}),
		`{"name":"João","phone":"+55 11 98888-0000","dateOfBirth":"1990-05-17","preferredServiceIds":["svc-1"]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "shop-1", svc.got.BarbershopID)
	require.NotNil(t, svc.got.DateOfBirth)
	assert.Equal(t, "1990-05-17", svc.got.DateOfBirth.Format("2006-01-02"))
	assert.Equal(t, []string{"svc-1"}, svc.got.PreferredServiceIDs)

	var resp models.ClientResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "client-1", resp.ID)
}

func TestHandler_InvalidDateOfBirth(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}), `{"name":"João","phone":"1","dateOfBirth":"17/05/1990"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.got)
}

func TestHandler_ServiceErrors(t *testing.T) {
	rec := serve(NewHandler(&fakeService{err: clients.ErrInvalidInput}, nopLogger{}), `{"name":"","phone":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(NewHandler(&fakeService{err: errors.New("boom")}, nopLogger{}), `{"name":"João","phone":"1"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
