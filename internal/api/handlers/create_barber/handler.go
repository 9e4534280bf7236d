package create_barber

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
	msgInvalidInput        = "nome do barbeiro obrigatório e e-mail válido"
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

// Handle POST /api/v1/barbershops/{barbershopId}/barbers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID := mux.Vars(r)["barbershopId"]
	if barbershopID == "" {
		h.logger.Warn("POST /barbershops/{id}/barbers - Empty barbershop ID")
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	var req CreateBarberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbershops/{id}/barbers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateBarber(r.Context(), req.ToServiceRequest(barbershopID))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /barbershops/{id}/barbers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /barbershops/{id}/barbers - Failed to create barber: barbershop_id=%s, error=%v",
				barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barbershops/{id}/barbers - Barber created: barber_id=%s", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
