package get_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/service/catalog"
)

const (
	msgInvalidBarbershopID = "ID da barbearia inválido"
	msgInvalidParams       = "parâmetros da consulta inválidos"
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

// Handle GET /api/v1/barbershops/{barbershopId}/services
// Query params: includeInactive (опционально, по умолчанию только активные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID := mux.Vars(r)["barbershopId"]
	if barbershopID == "" {
		h.logger.Warn("GET /barbershops/{id}/services - Empty barbershop ID")
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	includeInactive := false
	if raw := r.URL.Query().Get("includeInactive"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /barbershops/{id}/services - Invalid includeInactive: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		includeInactive = parsed
	}

	result, err := h.service.ListServices(r.Context(), barbershopID, includeInactive)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /barbershops/{id}/services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBarbershopID)

		default:
			h.logger.Error("GET /barbershops/{id}/services - Failed to list services: barbershop_id=%s, error=%v",
				barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbershops/{id}/services - Services retrieved: barbershop_id=%s, count=%d",
		barbershopID, len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result.Services)
}
