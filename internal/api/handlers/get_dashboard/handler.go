package get_dashboard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/service/dashboard"
)

const msgInvalidBarbershopID = "ID da barbearia inválido"

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbershops/{barbershopId}/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID := mux.Vars(r)["barbershopId"]
	if barbershopID == "" {
		h.logger.Warn("GET /barbershops/{id}/dashboard - Empty barbershop ID")
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	stats, err := h.service.GetStats(r.Context(), barbershopID)
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrInvalidInput):
			h.logger.Warn("GET /barbershops/{id}/dashboard - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBarbershopID)

		default:
			h.logger.Error("GET /barbershops/{id}/dashboard - Failed to build dashboard: barbershop_id=%s, error=%v",
				barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbershops/{id}/dashboard - Dashboard built: barbershop_id=%s", barbershopID)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
