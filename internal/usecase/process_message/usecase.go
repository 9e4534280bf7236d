package process_message

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	conversationStore "github.com/brunocamarg0/trim-squire/internal/infra/storage/conversation"
	"github.com/brunocamarg0/trim-squire/pkg/ptr"
)

// UseCase use case обработки сообщения клиента ассистентом записи
type UseCase struct {
	store           ConversationStore
	catalog         Catalog
	appointmentRepo AppointmentRepository
	sender          MessageSender
	txManager       TransactionManager
	machine         *Machine
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// location часовой пояс, в котором клиент вводит даты.
func NewUseCase(
	store ConversationStore,
	catalog Catalog,
	appointmentRepo AppointmentRepository,
	sender MessageSender,
	txManager TransactionManager,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	timeProvider := &RealTimeProvider{}

	return &UseCase{
		store:           store,
		catalog:         catalog,
		appointmentRepo: appointmentRepo,
		sender:          sender,
		txManager:       txManager,
		machine:         NewMachine(catalog, timeProvider, location, logger),
		metrics:         metrics,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// setTimeProvider подменяет часы (для тестов)
func (uc *UseCase) setTimeProvider(tp TimeProvider) {
	uc.timeProvider = tp
	uc.machine.timeProvider = tp
}

// Execute обрабатывает одно входящее сообщение клиента.
// Ошибки ввода клиента превращаются в ответы в чате и не возвращаются как error.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ProcessMessage: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем контекст диалога или создаем новый
	conv, err := uc.store.Get(ctx, req.ChatID)
	if err != nil {
		if !errors.Is(err, conversationStore.ErrConversationNotFound) {
			uc.logger.Error("ProcessMessage: chat=%s: failed to load conversation: %v", req.ChatID, err)
			return nil, fmt.Errorf("%w: load conversation: %v", ErrInternal, err)
		}
		conv = domain.NewConversation(req.ChatID, req.BarbershopID, req.ClientID, req.ClientName)
		uc.logger.Info("ProcessMessage: chat=%s: new conversation", req.ChatID)
	}

	// 3. Шаг автомата
	stateBefore := conv.State
	outcome := uc.machine.Step(ctx, conv, req.Message)

	uc.metrics.ObserveInboundMessage(string(outcome.Intent))
	uc.metrics.ObserveStep(string(stateBefore))
	uc.logger.Info("ProcessMessage: chat=%s, intent=%s, state=%s -> %s, action=%s",
		req.ChatID, outcome.Intent, stateBefore, outcome.Conversation.State, outcome.Action)
	uc.logger.Debug("ProcessMessage: chat=%s: draft=%+v", req.ChatID, outcome.Conversation.Draft)

	resp := &Response{
		ChatID: req.ChatID,
		Intent: outcome.Intent,
		State:  domain.StateIdle,
	}
	replies := outcome.Replies

	// 4. Применяем результат к хранилищу до отправки ответов
	switch outcome.Action {
	case ActionKeep:
		outcome.Conversation.UpdatedAt = uc.timeProvider.Now()
		if err := uc.store.Save(ctx, outcome.Conversation); err != nil {
			uc.logger.Error("ProcessMessage: chat=%s: failed to save conversation: %v", req.ChatID, err)
			return nil, fmt.Errorf("%w: save conversation: %v", ErrInternal, err)
		}
		resp.State = outcome.Conversation.State

	case ActionDiscard:
		if err := uc.store.Delete(ctx, req.ChatID); err != nil {
			uc.logger.Error("ProcessMessage: chat=%s: failed to delete conversation: %v", req.ChatID, err)
			return nil, fmt.Errorf("%w: delete conversation: %v", ErrInternal, err)
		}

	case ActionCommit:
		draft := outcome.Conversation.Draft
		if !draft.IsComplete() {
			uc.logger.Error("ProcessMessage: chat=%s: confirming with incomplete draft %+v", req.ChatID, draft)
			return nil, fmt.Errorf("%w: chat=%s", ErrIncompleteDraft, req.ChatID)
		}

		appointment, err := uc.commit(ctx, outcome.Conversation)
		if err != nil {
			uc.logger.Error("ProcessMessage: chat=%s: failed to create appointment: %v", req.ChatID, err)
			uc.metrics.ObserveCommit("failure")
			replies = []Reply{textReply(msgCommitFailed)}
		} else {
			uc.logger.Info("ProcessMessage: chat=%s: appointment id=%s created for %s %s",
				req.ChatID, appointment.ID, appointment.Date.Format(domain.DateFormat), appointment.StartTime)
			uc.metrics.ObserveCommit("success")
			resp.AppointmentID = ptr.Ptr(appointment.ID)
			replies = []Reply{confirmedReply(outcome.Conversation)}
		}

		if err := uc.store.Delete(ctx, req.ChatID); err != nil {
			uc.logger.Error("ProcessMessage: chat=%s: failed to delete conversation: %v", req.ChatID, err)
			return nil, fmt.Errorf("%w: delete conversation: %v", ErrInternal, err)
		}
	}

	// 5. Отправляем ответы
	for _, reply := range replies {
		id, err := uc.sender.SendMessage(ctx, assistantMessage(req.ChatID, reply))
		if err != nil {
			uc.logger.Error("ProcessMessage: chat=%s: failed to send reply: %v", req.ChatID, err)
			return nil, fmt.Errorf("%w: chat=%s: %v", ErrSendMessage, req.ChatID, err)
		}
		resp.Replies = append(resp.Replies, id)
	}

	return resp, nil
}

// assistantMessage оформляет ответ как сообщение от имени ассистента
func assistantMessage(chatID string, reply Reply) *domain.Message {
	msgType := reply.Type
	if msgType == "" {
		msgType = domain.MessageText
	}

	return &domain.Message{
		ChatID:          chatID,
		SenderID:        domain.AssistantSenderID,
		SenderRole:      domain.RoleAI,
		SenderName:      domain.AssistantName,
		Content:         reply.Content,
		Type:            msgType,
		AppointmentData: reply.AppointmentData,
	}
}
