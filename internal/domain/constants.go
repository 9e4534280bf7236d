package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Assistant identity used on every outbound chatbot message
const (
	AssistantSenderID = "ai"
	AssistantName     = "Assistente"
)

// Default chatbot settings
const (
	DefaultTimezone        = "America/Sao_Paulo"
	DefaultConversationTTL = 30 * time.Minute
)

// Business validation constants
const (
	MaxMessageLength     = 4000
	MaxNotesLength       = 500
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

// ActiveStatuses список статусов записей, занимающих время барбера
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
}
