package get_chat_messages

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/service/chats"
)

const (
	msgInvalidChatID = "ID do chat inválido"
	msgNotFound      = "chat não encontrado"
)

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

// Handle GET /api/v1/chats/{chatId}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["chatId"]
	if chatID == "" {
		h.logger.Warn("GET /chats/{id}/messages - Empty chat ID")
		handlers.RespondBadRequest(w, msgInvalidChatID)
		return
	}

	result, err := h.service.GetMessages(r.Context(), chatID)
	if err != nil {
		switch {
		case errors.Is(err, chats.ErrChatNotFound):
			h.logger.Warn("GET /chats/{id}/messages - Chat not found: chat_id=%s", chatID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /chats/{id}/messages - Failed to get messages: chat_id=%s, error=%v", chatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /chats/{id}/messages - Messages retrieved: chat_id=%s, count=%d", chatID, len(result.Messages))
	handlers.RespondJSON(w, http.StatusOK, result.Messages)
}
