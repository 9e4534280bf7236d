package chats

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	chatRepo "github.com/brunocamarg0/trim-squire/internal/infra/storage/chat"
	"github.com/brunocamarg0/trim-squire/internal/service/chats/models"
)

// Service сервис для работы с чатами и сообщениями
type Service struct {
	chatRepo     ChatRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса чатов
func NewService(
	chatRepo ChatRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		chatRepo:     chatRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetOrCreateChat возвращает активный чат клиента с барбершопом, создавая его при отсутствии
func (s *Service) GetOrCreateChat(ctx context.Context, req *models.GetOrCreateChatRequest) (*models.ChatResponse, error) {
	s.logger.Info("GetOrCreateChat: barbershop=%s, client=%s", req.BarbershopID, req.ClientID)

	if strings.TrimSpace(req.BarbershopID) == "" ||
		strings.TrimSpace(req.ClientID) == "" ||
		strings.TrimSpace(req.ClientName) == "" {
		return nil, fmt.Errorf("%w: barbershopId, clientId and clientName are required", ErrInvalidInput)
	}

	chat, err := s.chatRepo.GetActiveByClient(ctx, req.BarbershopID, req.ClientID)
	if err == nil {
		s.logger.Info("GetOrCreateChat: found chat id=%s", chat.ID)
		return models.FromDomainChat(chat), nil
	}
	if !errors.Is(err, chatRepo.ErrChatNotFound) {
		s.logger.Error("GetOrCreateChat: repository error for client=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetOrCreateChat - repository error: %v", ErrInternal, err)
	}

	chat, err = s.chatRepo.Create(ctx, &domain.Chat{
		BarbershopID: req.BarbershopID,
		ClientID:     req.ClientID,
		ClientName:   req.ClientName,
		Status:       domain.ChatActive,
	})
	if err != nil {
		s.logger.Error("GetOrCreateChat: failed to create chat for client=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetOrCreateChat - create chat: %v", ErrInternal, err)
	}

	s.logger.Info("GetOrCreateChat: created chat id=%s", chat.ID)
	return models.FromDomainChat(chat), nil
}

// GetChat получает чат по ID
func (s *Service) GetChat(ctx context.Context, chatID string) (*models.ChatResponse, error) {
	chat, err := s.loadChat(ctx, "GetChat", chatID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainChat(chat), nil
}

// ListBarbershopChats возвращает активные чаты барбершопа, последние по переписке первыми
func (s *Service) ListBarbershopChats(ctx context.Context, barbershopID string) (*models.ChatListResponse, error) {
	if strings.TrimSpace(barbershopID) == "" {
		return nil, fmt.Errorf("%w: barbershop id is required", ErrInvalidInput)
	}

	chats, err := s.chatRepo.ListActiveByBarbershop(ctx, barbershopID)
	if err != nil {
		s.logger.Error("ListBarbershopChats: repository error for barbershop=%s: %v", barbershopID, err)
		return nil, fmt.Errorf("%w: ListBarbershopChats - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBarbershopChats: fetched %d chats for barbershop=%s", len(chats), barbershopID)
	return models.FromDomainChatList(chats), nil
}

// ListClientChats возвращает активные чаты клиента во всех барбершопах
func (s *Service) ListClientChats(ctx context.Context, clientID string) (*models.ChatListResponse, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}

	chats, err := s.chatRepo.ListActiveByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("ListClientChats: repository error for client=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: ListClientChats - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListClientChats: fetched %d chats for client=%s", len(chats), clientID)
	return models.FromDomainChatList(chats), nil
}

// SaveMessage сохраняет сообщение и обновляет последнее сообщение чата в одной транзакции
func (s *Service) SaveMessage(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	// 1. Валидация входных данных
	if err := validateMessage(msg); err != nil {
		s.logger.Warn("SaveMessage: validation failed: %v", err)
		return nil, err
	}

	// 2. Сообщение и чат обновляются атомарно
	var saved *domain.Message
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.chatRepo.InsertMessage(ctx, msg)
		if err != nil {
			return err
		}
		return s.chatRepo.TouchChat(ctx, msg.ChatID, msg.Content, s.timeProvider.Now())
	})
	if err != nil {
		if errors.Is(err, chatRepo.ErrChatNotFound) {
			s.logger.Warn("SaveMessage: chat=%s not found", msg.ChatID)
			return nil, ErrChatNotFound
		}
		s.logger.Error("SaveMessage: failed to save message in chat=%s: %v", msg.ChatID, err)
		return nil, fmt.Errorf("%w: SaveMessage - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("SaveMessage: message id=%s saved in chat=%s (role=%s, type=%s)",
		saved.ID, saved.ChatID, saved.SenderRole, saved.Type)
	return saved, nil
}

// SendMessage сохраняет сообщение и возвращает его ID
func (s *Service) SendMessage(ctx context.Context, msg *domain.Message) (string, error) {
	saved, err := s.SaveMessage(ctx, msg)
	if err != nil {
		return "", err
	}
	return saved.ID, nil
}

// GetMessages возвращает историю сообщений чата
func (s *Service) GetMessages(ctx context.Context, chatID string) (*models.MessageListResponse, error) {
	if _, err := s.loadChat(ctx, "GetMessages", chatID); err != nil {
		return nil, err
	}

	messages, err := s.chatRepo.ListMessages(ctx, chatID)
	if err != nil {
		s.logger.Error("GetMessages: repository error for chat=%s: %v", chatID, err)
		return nil, fmt.Errorf("%w: GetMessages - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetMessages: fetched %d messages for chat=%s", len(messages), chatID)
	return models.FromDomainMessageList(messages), nil
}

// MarkAsRead помечает прочитанными сообщения, отправленные не читателем, и обнуляет счетчик
func (s *Service) MarkAsRead(ctx context.Context, chatID, readerID string) error {
	if strings.TrimSpace(readerID) == "" {
		return fmt.Errorf("%w: reader id is required", ErrInvalidInput)
	}

	var marked int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		marked, err = s.chatRepo.MarkMessagesRead(ctx, chatID, readerID)
		if err != nil {
			return err
		}
		return s.chatRepo.ResetUnread(ctx, chatID)
	})
	if err != nil {
		if errors.Is(err, chatRepo.ErrChatNotFound) {
			s.logger.Warn("MarkAsRead: chat=%s not found", chatID)
			return ErrChatNotFound
		}
		s.logger.Error("MarkAsRead: failed for chat=%s: %v", chatID, err)
		return fmt.Errorf("%w: MarkAsRead - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("MarkAsRead: marked %d messages in chat=%s as read by %s", marked, chatID, readerID)
	return nil
}

func (s *Service) loadChat(ctx context.Context, op, chatID string) (*domain.Chat, error) {
	chat, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, chatRepo.ErrChatNotFound) {
			s.logger.Warn("%s: chat=%s not found", op, chatID)
			return nil, ErrChatNotFound
		}
		s.logger.Error("%s: repository error for chat=%s: %v", op, chatID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return chat, nil
}

func validateMessage(msg *domain.Message) error {
	if msg == nil {
		return fmt.Errorf("%w: message is nil", ErrInvalidInput)
	}
	if strings.TrimSpace(msg.ChatID) == "" {
		return fmt.Errorf("%w: chat id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(msg.SenderID) == "" {
		return fmt.Errorf("%w: sender id is required", ErrInvalidInput)
	}
	if !msg.SenderRole.IsValid() {
		return fmt.Errorf("%w: invalid sender role %q", ErrInvalidInput, msg.SenderRole)
	}
	if strings.TrimSpace(msg.Content) == "" {
		return fmt.Errorf("%w: content is empty", ErrInvalidInput)
	}
	// Ответы ассистента формируются сервером и не ограничиваются по длине
	if msg.SenderRole != domain.RoleAI && utf8.RuneCountInString(msg.Content) > domain.MaxMessageLength {
		return fmt.Errorf("%w: content exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}
	return nil
}
