package get_client_chats

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/service/chats"
)

const msgInvalidClientID = "ID do cliente inválido"

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

// Handle GET /api/v1/clients/{clientId}/chats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]
	if clientID == "" {
		h.logger.Warn("GET /clients/{id}/chats - Empty client ID")
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	result, err := h.service.ListClientChats(r.Context(), clientID)
	if err != nil {
		switch {
		case errors.Is(err, chats.ErrInvalidInput):
			h.logger.Warn("GET /clients/{id}/chats - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidClientID)

		default:
			h.logger.Error("GET /clients/{id}/chats - Failed to list chats: client_id=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{id}/chats - Chats retrieved: client_id=%s, count=%d", clientID, len(result.Chats))
	handlers.RespondJSON(w, http.StatusOK, result.Chats)
}
