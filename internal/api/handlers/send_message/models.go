package send_message

import (
	"github.com/brunocamarg0/trim-squire/internal/domain"
	"github.com/brunocamarg0/trim-squire/internal/service/chats/models"
	"github.com/brunocamarg0/trim-squire/internal/usecase/receive_message"
)

// SendMessageRequest HTTP request model
type SendMessageRequest struct {
	SenderRole string `json:"senderRole"`
	SenderName string `json:"senderName,omitempty"`
	Content    string `json:"content"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *SendMessageRequest) ToUseCaseRequest(chatID, userID string) *receive_message.Request {
	return &receive_message.Request{
		ChatID:     chatID,
		SenderID:   userID,
		SenderRole: domain.SenderRole(r.SenderRole),
		SenderName: r.SenderName,
		Content:    r.Content,
	}
}

// ChatbotResult результат работы ассистента
type ChatbotResult struct {
	Intent        string   `json:"intent"`
	State         string   `json:"state"`
	ReplyIDs      []string `json:"replyIds"`
	AppointmentID *string  `json:"appointmentId,omitempty"`
}

// SendMessageResponse HTTP response model
type SendMessageResponse struct {
	Message *models.MessageResponse `json:"message"`
	Chatbot *ChatbotResult          `json:"chatbot,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *receive_message.Response) *SendMessageResponse {
	out := &SendMessageResponse{
		Message: models.FromDomainMessage(resp.Message),
	}

	if resp.Chatbot != nil {
		replyIDs := resp.Chatbot.Replies
		if replyIDs == nil {
			replyIDs = []string{}
		}
		out.Chatbot = &ChatbotResult{
			Intent:        string(resp.Chatbot.Intent),
			State:         string(resp.Chatbot.State),
			ReplyIDs:      replyIDs,
			AppointmentID: resp.Chatbot.AppointmentID,
		}
	}

	return out
}
