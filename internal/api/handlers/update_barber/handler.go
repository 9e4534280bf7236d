package update_barber

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/service/catalog"
	"github.com/brunocamarg0/trim-squire/internal/service/catalog/models"
)

const (
	msgInvalidIDs         = "ID da barbearia ou do barbeiro inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgNotFound           = "barbeiro não encontrado"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/barbershops/{barbershopId}/barbers/{barberId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	barbershopID := vars["barbershopId"]
	barberID := vars["barberId"]

	if barbershopID == "" || barberID == "" {
		h.logger.Warn("PATCH /barbershops/{id}/barbers/{id} - Empty path parameter")
		handlers.RespondBadRequest(w, msgInvalidIDs)
		return
	}

	var req models.UpdateBarberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /barbershops/{id}/barbers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateBarber(r.Context(), barbershopID, barberID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrBarberNotFound):
			h.logger.Warn("PATCH /barbershops/{id}/barbers/{id} - Barber not found: barber_id=%s", barberID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PATCH /barbershops/{id}/barbers/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /barbershops/{id}/barbers/{id} - Failed to update barber: barber_id=%s, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /barbershops/{id}/barbers/{id} - Barber updated: barber_id=%s, active=%t",
		updated.ID, updated.IsActive)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
