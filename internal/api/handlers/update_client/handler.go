package update_client

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/service/clients"
)

const (
	msgInvalidIDs         = "ID da barbearia ou do cliente inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgNotFound           = "cliente não encontrado"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/barbershops/{barbershopId}/clients/{clientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	barbershopID := vars["barbershopId"]
	clientID := vars["clientId"]

	if barbershopID == "" || clientID == "" {
		h.logger.Warn("PATCH /barbershops/{id}/clients/{id} - Empty path parameter")
		handlers.RespondBadRequest(w, msgInvalidIDs)
		return
	}

	var req UpdateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /barbershops/{id}/clients/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PATCH /barbershops/{id}/clients/{id} - Invalid request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateClient(r.Context(), barbershopID, clientID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("PATCH /barbershops/{id}/clients/{id} - Client not found: client_id=%s", clientID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("PATCH /barbershops/{id}/clients/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /barbershops/{id}/clients/{id} - Failed to update client: client_id=%s, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /barbershops/{id}/clients/{id} - Client updated: client_id=%s", updated.ID)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
