package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/service/appointments"
)

const (
	msgInvalidIDs = "ID da barbearia ou do agendamento inválido"
	msgNotFound   = "agendamento não encontrado"
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

// Handle GET /api/v1/barbershops/{barbershopId}/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	barbershopID := vars["barbershopId"]
	appointmentID := vars["appointmentId"]

	if barbershopID == "" || appointmentID == "" {
		h.logger.Warn("GET /barbershops/{id}/appointments/{id} - Empty path parameter")
		handlers.RespondBadRequest(w, msgInvalidIDs)
		return
	}

	appointment, err := h.service.GetByID(r.Context(), barbershopID, appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /barbershops/{id}/appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /barbershops/{id}/appointments/{id} - Failed to get appointment: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbershops/{id}/appointments/{id} - Appointment retrieved: appointment_id=%s", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
