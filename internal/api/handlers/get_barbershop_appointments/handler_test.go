package get_barbershop_appointments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunocamarg0/trim-squire/internal/service/appointments"
	"github.com/brunocamarg0/trim-squire/internal/service/appointments/models"
)

type fakeService struct {
	got *models.ListAppointmentsRequest
	err error
}

func (f *fakeService) List(_ context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{
		{ID: "appt-1", BarbershopID: req.BarbershopID, Date: "2024-12-21", StartTime: "14:00"},
	}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/barbershops/shop-1/appointments"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"barbershopId": "shop-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_ParsesFilters(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}), "?barberId=barber-1&status=scheduled&startDate=2024-12-01&endDate=2024-12-31")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "shop-1", svc.got.BarbershopID)
	assert.Equal(t, "barber-1", *svc.got.BarberID)
	assert.Equal(t, "scheduled", *svc.got.Status)
	assert.Equal(t, "2024-12-01", svc.got.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2024-12-31", svc.got.EndDate.Format("2006-01-02"))

	var list []models.AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestHandler_NoFilters(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.got.BarberID)
	assert.Nil(t, svc.got.Status)
	assert.Nil(t, svc.got.StartDate)
	assert.Nil(t, svc.got.EndDate)
}

func TestHandler_InvalidDate(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}), "?startDate=21/12/2024")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.got)
}

func TestHandler_ServiceErrors(t *testing.T) {
	rec := serve(NewHandler(&fakeService{err: appointments.ErrInvalidInput}, nopLogger{}), "?status=pending")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(NewHandler(&fakeService{err: errors.New("boom")}, nopLogger{}), "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
