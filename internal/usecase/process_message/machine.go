package process_message

import (
	"context"
	"errors"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

// Action что сделать с контекстом диалога после шага
type Action int

const (
	// ActionKeep сохранить контекст из Outcome
	ActionKeep Action = iota
	// ActionDiscard удалить контекст
	ActionDiscard
	// ActionCommit создать запись по черновику и удалить контекст
	ActionCommit
)

func (a Action) String() string {
	switch a {
	case ActionKeep:
		return "keep"
	case ActionDiscard:
		return "discard"
	case ActionCommit:
		return "commit"
	}
	return "unknown"
}

// Reply ответ ассистента, который нужно отправить в чат
type Reply struct {
	Content         string
	Type            domain.MessageType
	AppointmentData *domain.AppointmentData
}

func textReply(content string) Reply {
	return Reply{Content: content, Type: domain.MessageText}
}

// Outcome результат одного шага диалога
type Outcome struct {
	Intent       Intent
	Conversation *domain.Conversation
	Replies      []Reply
	Action       Action
}

// Machine конечный автомат записи. Не отправляет сообщений и не меняет хранилище:
// переданный контекст не модифицируется, новое состояние возвращается в Outcome.
type Machine struct {
	catalog      Catalog
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewMachine создает новый автомат
func NewMachine(catalog Catalog, timeProvider TimeProvider, location *time.Location, logger Logger) *Machine {
	if location == nil {
		location = time.UTC
	}
	return &Machine{
		catalog:      catalog,
		timeProvider: timeProvider,
		location:     location,
		logger:       logger,
	}
}

// Step обрабатывает одно сообщение клиента
func (m *Machine) Step(ctx context.Context, conv *domain.Conversation, message string) *Outcome {
	intent := ClassifyIntent(message)

	var out *Outcome
	switch intent {
	case IntentGreeting:
		out = keep(conv, greetingText(conv.ClientName))
	case IntentBooking:
		out = m.startBooking(ctx, conv)
	case IntentCancellation:
		out = keep(conv, msgCancellationInfo)
	default:
		out = m.dispatchByState(ctx, conv, message)
	}

	out.Intent = intent
	return out
}

func (m *Machine) dispatchByState(ctx context.Context, conv *domain.Conversation, message string) *Outcome {
	switch conv.State {
	case domain.StateAwaitingService:
		return m.handleService(ctx, conv, message)
	case domain.StateAwaitingDate:
		return m.handleDate(conv, message)
	case domain.StateAwaitingTime:
		return m.handleTime(ctx, conv, message)
	case domain.StateAwaitingBarber:
		return m.handleBarber(ctx, conv, message)
	case domain.StateConfirming:
		return m.handleConfirmation(conv, message)
	default:
		return keep(conv, msgUnknown)
	}
}

// startBooking начинает (или начинает заново) запись со списка услуг
func (m *Machine) startBooking(ctx context.Context, conv *domain.Conversation) *Outcome {
	services, err := m.catalog.ListActiveServices(ctx, conv.BarbershopID)
	if err != nil {
		m.logger.Error("ProcessMessage: chat=%s: failed to list services: %v", conv.ChatID, err)
		return keep(conv, msgStartFailed)
	}

	if len(services) == 0 {
		m.logger.Warn("ProcessMessage: chat=%s: barbershop=%s has no active services", conv.ChatID, conv.BarbershopID)
		return keep(conv, msgNoServices)
	}

	next := conv.Clone()
	next.ResetDraft()
	next.State = domain.StateAwaitingService

	return keep(next, serviceListText(services))
}

func (m *Machine) handleService(ctx context.Context, conv *domain.Conversation, message string) *Outcome {
	services, err := m.catalog.ListActiveServices(ctx, conv.BarbershopID)
	if err != nil {
		m.logger.Error("ProcessMessage: chat=%s: failed to list services: %v", conv.ChatID, err)
		return keep(conv, msgGenericError)
	}

	names := make([]string, len(services))
	for i, s := range services {
		names[i] = s.Name
	}

	idx, ok := selectOption(message, names)
	if !ok {
		return keep(conv, msgServiceNotFound)
	}

	next := conv.Clone()
	next.Draft.ServiceIDs = []string{services[idx].ID}
	next.State = domain.StateAwaitingDate

	return keep(next, msgAskDate)
}

func (m *Machine) handleDate(conv *domain.Conversation, message string) *Outcome {
	date, err := parseDate(message, m.timeProvider.Now(), m.location)
	if err != nil {
		if errors.Is(err, errDateInPast) {
			return keep(conv, msgPastDate)
		}
		return keep(conv, msgInvalidDate)
	}

	next := conv.Clone()
	next.Draft.Date = date
	next.State = domain.StateAwaitingTime

	return keep(next, askTimeText(date))
}

func (m *Machine) handleTime(ctx context.Context, conv *domain.Conversation, message string) *Outcome {
	clock, err := parseClock(message)
	if err != nil {
		if errors.Is(err, errTimeRange) {
			return keep(conv, msgInvalidTimeRange)
		}
		return keep(conv, msgInvalidTimeFormat)
	}

	barbers, err := m.catalog.ListActiveBarbers(ctx, conv.BarbershopID)
	if err != nil {
		m.logger.Error("ProcessMessage: chat=%s: failed to list barbers: %v", conv.ChatID, err)
		return keep(conv, msgGenericError)
	}

	next := conv.Clone()
	next.Draft.Time = clock

	switch len(barbers) {
	case 0:
		m.logger.Warn("ProcessMessage: chat=%s: barbershop=%s has no active barbers", conv.ChatID, conv.BarbershopID)
		return &Outcome{Conversation: next, Replies: []Reply{textReply(msgNoBarbers)}, Action: ActionDiscard}
	case 1:
		next.Draft.BarberID = barbers[0].ID
		next.State = domain.StateConfirming
		return m.confirm(ctx, conv, next)
	default:
		next.State = domain.StateAwaitingBarber
		return keep(next, barberListText(clock.String(), barbers))
	}
}

func (m *Machine) handleBarber(ctx context.Context, conv *domain.Conversation, message string) *Outcome {
	barbers, err := m.catalog.ListActiveBarbers(ctx, conv.BarbershopID)
	if err != nil {
		m.logger.Error("ProcessMessage: chat=%s: failed to list barbers: %v", conv.ChatID, err)
		return keep(conv, msgGenericError)
	}

	names := make([]string, len(barbers))
	for i, b := range barbers {
		names[i] = b.Name
	}

	idx, ok := selectOption(message, names)
	if !ok {
		return keep(conv, msgBarberNotFound)
	}

	next := conv.Clone()
	next.Draft.BarberID = barbers[idx].ID
	next.State = domain.StateConfirming

	return m.confirm(ctx, conv, next)
}

// confirm показывает итог записи. При ошибке справочника остается в prev.
func (m *Machine) confirm(ctx context.Context, prev, next *domain.Conversation) *Outcome {
	summary, err := m.summaryText(ctx, next)
	if err != nil {
		m.logger.Error("ProcessMessage: chat=%s: failed to build summary: %v", next.ChatID, err)
		return keep(prev, msgGenericError)
	}
	return keep(next, summary)
}

func (m *Machine) handleConfirmation(conv *domain.Conversation, message string) *Outcome {
	lower := normalize(message)

	if containsAny(lower, affirmativeKeywords) {
		return &Outcome{Conversation: conv.Clone(), Action: ActionCommit}
	}

	if containsAny(lower, negativeKeywords) {
		return &Outcome{Conversation: conv.Clone(), Replies: []Reply{textReply(msgBookingAborted)}, Action: ActionDiscard}
	}

	return keep(conv, msgAnswerYesOrNo)
}

func keep(conv *domain.Conversation, reply string) *Outcome {
	return &Outcome{
		Conversation: conv.Clone(),
		Replies:      []Reply{textReply(reply)},
		Action:       ActionKeep,
	}
}
