package create_transaction

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/api/middleware"
	"github.com/brunocamarg0/trim-squire/internal/service/finance"
)

const (
	msgMissingUserID       = "ID do usuário ausente"
	msgInvalidBarbershopID = "ID da barbearia inválido"
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidInput        = "tipo, categoria, valor positivo e data são obrigatórios"
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

// Handle POST /api/v1/barbershops/{barbershopId}/transactions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /barbershops/{id}/transactions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	barbershopID := mux.Vars(r)["barbershopId"]
	if barbershopID == "" {
		h.logger.Warn("POST /barbershops/{id}/transactions - Empty barbershop ID")
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	var req CreateTransactionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbershops/{id}/transactions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(barbershopID, userID)
	if err != nil {
		h.logger.Warn("POST /barbershops/{id}/transactions - Invalid request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	created, err := h.service.CreateTransaction(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, finance.ErrInvalidInput):
			h.logger.Warn("POST /barbershops/{id}/transactions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /barbershops/{id}/transactions - Failed to create transaction: barbershop_id=%s, error=%v",
				barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barbershops/{id}/transactions - Transaction created: transaction_id=%s, type=%s",
		created.ID, created.Type)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
