package complete_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/service/appointments"
)

const (
	msgInvalidIDs     = "ID da barbearia ou do agendamento inválido"
	msgNotFound       = "agendamento não encontrado"
	msgCannotComplete = "o agendamento não pode ser concluído"
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

// Handle PATCH /api/v1/barbershops/{barbershopId}/appointments/{appointmentId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	barbershopID := vars["barbershopId"]
	appointmentID := vars["appointmentId"]

	if barbershopID == "" || appointmentID == "" {
		h.logger.Warn("PATCH /barbershops/{id}/appointments/{id}/complete - Empty path parameter")
		handlers.RespondBadRequest(w, msgInvalidIDs)
		return
	}

	if err := h.service.Complete(r.Context(), barbershopID, appointmentID); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /barbershops/{id}/appointments/{id}/complete - Appointment not found: appointment_id=%s",
				appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrCannotComplete):
			h.logger.Warn("PATCH /barbershops/{id}/appointments/{id}/complete - Cannot complete: appointment_id=%s",
				appointmentID)
			handlers.RespondConflict(w, msgCannotComplete)

		default:
			h.logger.Error("PATCH /barbershops/{id}/appointments/{id}/complete - Failed to complete: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /barbershops/{id}/appointments/{id}/complete - Appointment completed: appointment_id=%s",
		appointmentID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
