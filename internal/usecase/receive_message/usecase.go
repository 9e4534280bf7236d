package receive_message

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	chatRepo "github.com/brunocamarg0/trim-squire/internal/infra/storage/chat"
	"github.com/brunocamarg0/trim-squire/internal/usecase/process_message"
)

// UseCase use case приема сообщения в чат
type UseCase struct {
	chatRepo     ChatRepository
	messageStore MessageStore
	chatbot      Chatbot
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	chatRepo ChatRepository,
	messageStore MessageStore,
	chatbot Chatbot,
	logger Logger,
) *UseCase {
	return &UseCase{
		chatRepo:     chatRepo,
		messageStore: messageStore,
		chatbot:      chatbot,
		logger:       logger,
	}
}

// Execute сохраняет сообщение и, если оно от клиента чата, передает его ассистенту.
// Ошибка ассистента не отменяет сохранение сообщения и только логируется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReceiveMessage: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем чат
	chat, err := uc.chatRepo.GetByID(ctx, req.ChatID)
	if err != nil {
		if errors.Is(err, chatRepo.ErrChatNotFound) {
			uc.logger.Warn("ReceiveMessage: chat=%s not found", req.ChatID)
			return nil, ErrChatNotFound
		}
		uc.logger.Error("ReceiveMessage: failed to get chat=%s: %v", req.ChatID, err)
		return nil, fmt.Errorf("%w: get chat: %v", ErrInternal, err)
	}

	if !chat.IsActive() {
		uc.logger.Warn("ReceiveMessage: chat=%s is %s", chat.ID, chat.Status)
		return nil, ErrChatArchived
	}

	// 3. Сохраняем сообщение
	saved, err := uc.messageStore.SaveMessage(ctx, &domain.Message{
		ChatID:     chat.ID,
		SenderID:   req.SenderID,
		SenderRole: req.SenderRole,
		SenderName: senderName(req, chat),
		Content:    req.Content,
		Type:       domain.MessageText,
	})
	if err != nil {
		uc.logger.Error("ReceiveMessage: failed to save message in chat=%s: %v", chat.ID, err)
		return nil, fmt.Errorf("%w: save message: %v", ErrInternal, err)
	}

	resp := &Response{Message: saved}

	// 4. Ассистент отвечает только клиенту, которому принадлежит чат
	if req.SenderRole != domain.RoleClient || req.SenderID != chat.ClientID {
		return resp, nil
	}

	botResp, err := uc.chatbot.Execute(ctx, &process_message.Request{
		ChatID:       chat.ID,
		BarbershopID: chat.BarbershopID,
		ClientID:     chat.ClientID,
		ClientName:   chat.ClientName,
		Message:      req.Content,
	})
	if err != nil {
		uc.logger.Error("ReceiveMessage: chatbot failed for chat=%s: %v", chat.ID, err)
		return resp, nil
	}

	resp.Chatbot = botResp
	return resp, nil
}

// senderName возвращает имя отправителя, для клиента по умолчанию берется имя из чата
func senderName(req *Request, chat *domain.Chat) string {
	if name := strings.TrimSpace(req.SenderName); name != "" {
		return name
	}
	if req.SenderID == chat.ClientID {
		return chat.ClientName
	}
	return string(req.SenderRole)
}
