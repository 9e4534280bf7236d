package receive_message

import (
	"github.com/brunocamarg0/trim-squire/internal/domain"
	"github.com/brunocamarg0/trim-squire/internal/usecase/process_message"
)

// Request входящее сообщение в чат
type Request struct {
	ChatID     string            // ID чата
	SenderID   string            // ID отправителя (из X-User-ID)
	SenderRole domain.SenderRole // Роль отправителя
	SenderName string            // Имя отправителя
	Content    string            // Текст сообщения
}

// Response результат приема сообщения
type Response struct {
	Message *domain.Message           // Сохраненное сообщение
	Chatbot *process_message.Response // Результат работы ассистента, nil если ассистент не вызывался
}
