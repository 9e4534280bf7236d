package cancel_appointment

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunocamarg0/trim-squire/internal/service/appointments"
	"github.com/brunocamarg0/trim-squire/internal/service/appointments/models"
)

type fakeService struct {
	got *models.CancelAppointmentRequest
	err error
}

func (f *fakeService) Cancel(_ context.Context, _, _ string, req *models.CancelAppointmentRequest) error {
	f.got = req
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/barbershops/shop-1/appointments/appt-1/cancel", body)
	req = mux.SetURLVars(req, map[string]string{"barbershopId": "shop-1", "appointmentId": "appt-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_CancelWithNotes(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}), strings.NewReader(`{"notes":"cliente desistiu"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got.Notes)
	assert.Equal(t, "cliente desistiu", *svc.got.Notes)
}

func TestHandler_CancelWithoutBody(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Nil(t, svc.got.Notes)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", appointments.ErrAppointmentNotFound, http.StatusNotFound},
		{"not active", appointments.ErrCannotCancel, http.StatusConflict},
		{"invalid", appointments.ErrInvalidInput, http.StatusBadRequest},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeService{err: tt.err}, nopLogger{}), nil)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandler_MalformedBody(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}), strings.NewReader(`{"notes":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.got)
}
