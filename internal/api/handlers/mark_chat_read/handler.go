package mark_chat_read

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/api/middleware"
	"github.com/brunocamarg0/trim-squire/internal/service/chats"
)

const (
	msgInvalidChatID = "ID do chat inválido"
	msgMissingUserID = "ID do usuário ausente"
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

// Handle PATCH /api/v1/chats/{chatId}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["chatId"]
	if chatID == "" {
		h.logger.Warn("PATCH /chats/{id}/read - Empty chat ID")
		handlers.RespondBadRequest(w, msgInvalidChatID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /chats/{id}/read - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.MarkAsRead(r.Context(), chatID, userID); err != nil {
		switch {
		case errors.Is(err, chats.ErrChatNotFound):
			h.logger.Warn("PATCH /chats/{id}/read - Chat not found: chat_id=%s", chatID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /chats/{id}/read - Failed to mark as read: chat_id=%s, error=%v", chatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /chats/{id}/read - Chat marked as read: chat_id=%s, user_id=%s", chatID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
