package get_barbershop_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/service/appointments"
)

const (
	msgInvalidBarbershopID = "ID da barbearia inválido"
	msgInvalidParams       = "parâmetros da consulta inválidos"
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

// Handle GET /api/v1/barbershops/{barbershopId}/appointments
// Query params: barberId, status, startDate, endDate (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID := mux.Vars(r)["barbershopId"]
	if barbershopID == "" {
		h.logger.Warn("GET /barbershops/{id}/appointments - Empty barbershop ID")
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		barbershopID,
		query.Get("barberId"),
		query.Get("status"),
		query.Get("startDate"),
		query.Get("endDate"),
	)
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /barbershops/{id}/appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /barbershops/{id}/appointments - Failed to list appointments: barbershop_id=%s, error=%v",
				barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbershops/{id}/appointments - Appointments retrieved: barbershop_id=%s, count=%d",
		barbershopID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result.Appointments)
}
