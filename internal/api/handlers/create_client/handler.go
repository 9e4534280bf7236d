package create_client

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/service/clients"
)

const (
	msgInvalidBarbershopID = "ID da barbearia inválido"
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidInput        = "nome e telefone do cliente são obrigatórios"
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

// Handle POST /api/v1/barbershops/{barbershopId}/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID := mux.Vars(r)["barbershopId"]
	if barbershopID == "" {
		h.logger.Warn("POST /barbershops/{id}/clients - Empty barbershop ID")
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	var req CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbershops/{id}/clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(barbershopID)
	if err != nil {
		h.logger.Warn("POST /barbershops/{id}/clients - Invalid request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateClient(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /barbershops/{id}/clients - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /barbershops/{id}/clients - Failed to create client: barbershop_id=%s, error=%v",
				barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barbershops/{id}/clients - Client created: client_id=%s", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
