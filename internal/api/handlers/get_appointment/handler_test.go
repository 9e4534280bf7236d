package get_appointment

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
	err error
}

func (f *fakeService) GetByID(_ context.Context, barbershopID, id string) (*models.AppointmentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentResponse{ID: id, BarbershopID: barbershopID, Status: "scheduled"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/barbershops/shop-1/appointments/appt-1", nil)
	req = mux.SetURLVars(req, map[string]string{"barbershopId": "shop-1", "appointmentId": "appt-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_ReturnsAppointment(t *testing.T) {
	rec := serve(NewHandler(&fakeService{}, nopLogger{}))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, "shop-1", resp.BarbershopID)
}

func TestHandler_Errors(t *testing.T) {
	rec := serve(NewHandler(&fakeService{err: appointments.ErrAppointmentNotFound}, nopLogger{}))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(NewHandler(&fakeService{err: errors.New("boom")}, nopLogger{}))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
