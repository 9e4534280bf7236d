package process_message

import "github.com/brunocamarg0/trim-squire/internal/domain"

// Request входящее сообщение клиента
type Request struct {
	ChatID       string // ID чата
	BarbershopID string // ID барбершопа, которому принадлежит чат
	ClientID     string // ID клиента
	ClientName   string // Имя клиента для приветствия
	Message      string // Текст сообщения
}

// Response результат обработки сообщения
type Response struct {
	ChatID        string                   // ID чата
	Intent        Intent                   // Распознанное намерение
	State         domain.ConversationState // Состояние диалога после обработки
	Replies       []string                 // ID отправленных ответов
	AppointmentID *string                  // ID созданной записи, если она была создана
}
