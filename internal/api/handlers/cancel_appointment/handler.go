package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/service/appointments"
)

const (
	msgInvalidIDs         = "ID da barbearia ou do agendamento inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgNotFound           = "agendamento não encontrado"
	msgCannotCancel       = "o agendamento não pode ser cancelado"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/barbershops/{barbershopId}/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	barbershopID := vars["barbershopId"]
	appointmentID := vars["appointmentId"]

	if barbershopID == "" || appointmentID == "" {
		h.logger.Warn("PATCH /barbershops/{id}/appointments/{id}/cancel - Empty path parameter")
		handlers.RespondBadRequest(w, msgInvalidIDs)
		return
	}

	// Тело опционально
	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PATCH /barbershops/{id}/appointments/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.Cancel(r.Context(), barbershopID, appointmentID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /barbershops/{id}/appointments/{id}/cancel - Appointment not found: appointment_id=%s",
				appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("PATCH /barbershops/{id}/appointments/{id}/cancel - Cannot cancel: appointment_id=%s",
				appointmentID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /barbershops/{id}/appointments/{id}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /barbershops/{id}/appointments/{id}/cancel - Failed to cancel: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /barbershops/{id}/appointments/{id}/cancel - Appointment cancelled: appointment_id=%s",
		appointmentID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
