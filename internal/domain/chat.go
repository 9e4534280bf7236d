package domain

import "time"

// ChatStatus represents the lifecycle of a chat
type ChatStatus string

const (
	ChatActive   ChatStatus = "active"
	ChatArchived ChatStatus = "archived"
)

// SenderRole identifies who wrote a message
type SenderRole string

const (
	RoleClient SenderRole = "client"
	RoleBarber SenderRole = "barber"
	RoleOwner  SenderRole = "owner"
	RoleAI     SenderRole = "ai"
)

// IsValid reports whether the role is one of the known values
func (r SenderRole) IsValid() bool {
	switch r {
	case RoleClient, RoleBarber, RoleOwner, RoleAI:
		return true
	}
	return false
}

// MessageType classifies message content
type MessageType string

const (
	MessageText                 MessageType = "text"
	MessageAppointmentRequest   MessageType = "appointment_request"
	MessageAppointmentConfirmed MessageType = "appointment_confirmed"
	MessageSystem               MessageType = "system"
)

// Chat is a conversation thread between a client and a barbershop
type Chat struct {
	ID            string
	BarbershopID  string
	ClientID      string
	ClientName    string
	LastMessage   *string
	LastMessageAt *time.Time
	UnreadCount   int
	Status        ChatStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive returns true if the chat accepts new messages
func (c *Chat) IsActive() bool {
	return c.Status == ChatActive
}

// AppointmentData is attached to a message confirming a booking
type AppointmentData struct {
	Date       string   `json:"date"` // YYYY-MM-DD
	Time       string   `json:"time"` // HH:MM
	ServiceIDs []string `json:"serviceIds"`
	BarberID   string   `json:"barberId,omitempty"`
}

// Message is a single chat message
type Message struct {
	ID              string
	ChatID          string
	SenderID        string
	SenderRole      SenderRole
	SenderName      string
	Content         string
	Type            MessageType
	AppointmentData *AppointmentData
	Read            bool
	CreatedAt       time.Time
}
