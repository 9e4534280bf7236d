package get_transactions

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/service/finance"
)

const (
	msgInvalidBarbershopID = "ID da barbearia inválido"
	msgInvalidParams       = "parâmetros da consulta inválidos"
)

type Handler struct {
	service FinanceService
	logger  Logger
}

func NewHandler(service FinanceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbershops/{barbershopId}/transactions
// Query params: type, startDate, endDate (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID := mux.Vars(r)["barbershopId"]
	if barbershopID == "" {
		h.logger.Warn("GET /barbershops/{id}/transactions - Empty barbershop ID")
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(barbershopID, query.Get("type"), query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/transactions - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListTransactions(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, finance.ErrInvalidInput):
			h.logger.Warn("GET /barbershops/{id}/transactions - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /barbershops/{id}/transactions - Failed to list transactions: barbershop_id=%s, error=%v",
				barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbershops/{id}/transactions - Transactions retrieved: barbershop_id=%s, count=%d",
		barbershopID, len(result.Transactions))
	handlers.RespondJSON(w, http.StatusOK, result.Transactions)
}
