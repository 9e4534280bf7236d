package get_barbershop_chats

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/service/chats"
)

const msgInvalidBarbershopID = "ID da barbearia inválido"

type Handler struct {
	service ChatService
	logger  Logger
}

func NewHandler(service ChatService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbershops/{barbershopId}/chats
// Активные чаты барбершопа, последние по активности первыми
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID := mux.Vars(r)["barbershopId"]
	if barbershopID == "" {
		h.logger.Warn("GET /barbershops/{id}/chats - Empty barbershop ID")
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	result, err := h.service.ListBarbershopChats(r.Context(), barbershopID)
	if err != nil {
		switch {
		case errors.Is(err, chats.ErrInvalidInput):
			h.logger.Warn("GET /barbershops/{id}/chats - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBarbershopID)

		default:
			h.logger.Error("GET /barbershops/{id}/chats - Failed to list chats: barbershop_id=%s, error=%v",
				barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbershops/{id}/chats - Chats retrieved: barbershop_id=%s, count=%d",
		barbershopID, len(result.Chats))
	handlers.RespondJSON(w, http.StatusOK, result.Chats)
}
