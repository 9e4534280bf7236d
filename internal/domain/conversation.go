package domain

import (
	"time"

	"github.com/brunocamarg0/trim-squire/pkg/types"
)

// ConversationState is the step of the booking dialogue a chat is in
type ConversationState string

const (
	StateIdle            ConversationState = "idle"
	StateAwaitingService ConversationState = "awaiting_service"
	StateAwaitingDate    ConversationState = "awaiting_date"
	StateAwaitingTime    ConversationState = "awaiting_time"
	StateAwaitingBarber  ConversationState = "awaiting_barber"
	StateConfirming      ConversationState = "confirming"
)

// BookingDraft accumulates the client's choices until the appointment is committed.
// Each field is set only once the dialogue has moved past the step that collects it.
type BookingDraft struct {
	ServiceIDs []string
	Date       time.Time // zero until a date is accepted
	Time       types.TimeString
	BarberID   string
}

// HasDate reports whether a date was accepted
func (d BookingDraft) HasDate() bool {
	return !d.Date.IsZero()
}

// IsComplete reports whether every field needed to commit is present
func (d BookingDraft) IsComplete() bool {
	return len(d.ServiceIDs) > 0 && d.HasDate() && !d.Time.IsZero() && d.BarberID != ""
}

// Conversation is the per-chat booking context held by the assistant
type Conversation struct {
	ChatID       string
	BarbershopID string
	ClientID     string
	ClientName   string
	State        ConversationState
	Draft        BookingDraft
	UpdatedAt    time.Time
}

// NewConversation creates a context in the idle state
func NewConversation(chatID, barbershopID, clientID, clientName string) *Conversation {
	return &Conversation{
		ChatID:       chatID,
		BarbershopID: barbershopID,
		ClientID:     clientID,
		ClientName:   clientName,
		State:        StateIdle,
	}
}

// Clone returns a deep copy
func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}
	cp := *c
	if c.Draft.ServiceIDs != nil {
		cp.Draft.ServiceIDs = append([]string(nil), c.Draft.ServiceIDs...)
	}
	return &cp
}

// ResetDraft clears all collected choices
func (c *Conversation) ResetDraft() {
	c.Draft = BookingDraft{}
}
