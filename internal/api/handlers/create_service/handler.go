package create_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/service/catalog"
)

const (
	msgInvalidBarbershopID = "ID da barbearia inválido"
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidInput        = "nome, preço e duração do serviço são obrigatórios"
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

// Handle POST /api/v1/barbershops/{barbershopId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID := mux.Vars(r)["barbershopId"]
	if barbershopID == "" {
		h.logger.Warn("POST /barbershops/{id}/services - Empty barbershop ID")
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbershops/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateService(r.Context(), req.ToServiceRequest(barbershopID))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /barbershops/{id}/services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /barbershops/{id}/services - Failed to create service: barbershop_id=%s, error=%v",
				barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barbershops/{id}/services - Service created: service_id=%s", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
