package complete_appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/brunocamarg0/trim-squire/internal/service/appointments"
)

type fakeService struct {
	calls int
	err   error
}

func (f *fakeService) Complete(_ context.Context, _, _ string) error {
	f.calls++
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/barbershops/shop-1/appointments/appt-1/complete", nil)
	req = mux.SetURLVars(req, map[string]string{"barbershopId": "shop-1", "appointmentId": "appt-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Complete(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.calls)
}

func TestHandler_Errors(t *testing.T) {
	rec := serve(NewHandler(&fakeService{err: appointments.ErrAppointmentNotFound}, nopLogger{}))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(NewHandler(&fakeService{err: appointments.ErrCannotComplete}, nopLogger{}))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(NewHandler(&fakeService{err: errors.New("boom")}, nopLogger{}))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
