package update_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/service/catalog"
	"github.com/brunocamarg0/trim-squire/internal/service/catalog/models"
)

const (
	msgInvalidIDs         = "ID da barbearia ou do serviço inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgNotFound           = "serviço não encontrado"
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

// Handle PATCH /api/v1/barbershops/{barbershopId}/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	barbershopID := vars["barbershopId"]
	serviceID := vars["serviceId"]

	if barbershopID == "" || serviceID == "" {
		h.logger.Warn("PATCH /barbershops/{id}/services/{id} - Empty path parameter")
		handlers.RespondBadRequest(w, msgInvalidIDs)
		return
	}

	var req models.UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /barbershops/{id}/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateService(r.Context(), barbershopID, serviceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PATCH /barbershops/{id}/services/{id} - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PATCH /barbershops/{id}/services/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /barbershops/{id}/services/{id} - Failed to update service: service_id=%s, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /barbershops/{id}/services/{id} - Service updated: service_id=%s, active=%t",
		updated.ID, updated.IsActive)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
