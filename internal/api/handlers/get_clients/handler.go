package get_clients

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/service/clients"
)

const msgInvalidBarbershopID = "ID da barbearia inválido"

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

// Handle GET /api/v1/barbershops/{barbershopId}/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID := mux.Vars(r)["barbershopId"]
	if barbershopID == "" {
		h.logger.Warn("GET /barbershops/{id}/clients - Empty barbershop ID")
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	result, err := h.service.ListClients(r.Context(), barbershopID)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("GET /barbershops/{id}/clients - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBarbershopID)

		default:
			h.logger.Error("GET /barbershops/{id}/clients - Failed to list clients: barbershop_id=%s, error=%v",
				barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbershops/{id}/clients - Clients retrieved: barbershop_id=%s, count=%d",
		barbershopID, len(result.Clients))
	handlers.RespondJSON(w, http.StatusOK, result.Clients)
}
