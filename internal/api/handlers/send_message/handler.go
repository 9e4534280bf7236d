package send_message

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brunocamarg0/trim-squire/internal/api/handlers"
	"github.com/brunocamarg0/trim-squire/internal/api/middleware"
	"github.com/brunocamarg0/trim-squire/internal/usecase/receive_message"
)

const (
	msgInvalidChatID      = "ID do chat inválido"
	msgMissingUserID      = "ID do usuário ausente"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidInput       = "mensagem inválida"
	msgNotFound           = "chat não encontrado"
	msgChatArchived       = "chat arquivado"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/chats/{chatId}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["chatId"]
	if chatID == "" {
		h.logger.Warn("POST /chats/{id}/messages - Empty chat ID")
		handlers.RespondBadRequest(w, msgInvalidChatID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /chats/{id}/messages - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chats/{id}/messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(chatID, userID))
	if err != nil {
		switch {
		case errors.Is(err, receive_message.ErrInvalidInput):
			h.logger.Warn("POST /chats/{id}/messages - Invalid input: chat_id=%s, error=%v", chatID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, receive_message.ErrChatNotFound):
			h.logger.Warn("POST /chats/{id}/messages - Chat not found: chat_id=%s", chatID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, receive_message.ErrChatArchived):
			h.logger.Warn("POST /chats/{id}/messages - Chat archived: chat_id=%s", chatID)
			handlers.RespondConflict(w, msgChatArchived)

		default:
			h.logger.Error("POST /chats/{id}/messages - Failed to send message: chat_id=%s, error=%v", chatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /chats/{id}/messages - Message stored: chat_id=%s, message_id=%s, chatbot=%t",
		chatID, result.Message.ID, result.Chatbot != nil)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
