package create_chat

import (
	"errors"
	"net/http"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/api/middleware"
	"github.com/brunocamarg0/trim-squire/internal/service/chats"
)

const (
	msgMissingUserID      = "ID do usuário ausente"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidInput       = "barbershopId, clientId e clientName são obrigatórios"
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

// Handle POST /api/v1/chats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /chats - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateChatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chats - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	chat, err := h.service.GetOrCreateChat(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, chats.ErrInvalidInput):
			h.logger.Warn("POST /chats - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /chats - Failed to get or create chat: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /chats - Chat ready: chat_id=%s, barbershop_id=%s", chat.ID, chat.BarbershopID)
	handlers.RespondJSON(w, http.StatusOK, chat)
}
