package models

import (
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

// Request модели

// GetOrCreateChatRequest запрос на получение или создание чата клиента
type GetOrCreateChatRequest struct {
	BarbershopID string `json:"barbershopId"`
	ClientID     string `json:"clientId"`
	ClientName   string `json:"clientName"`
}

// Response модели

// ChatResponse ответ с данными чата
type ChatResponse struct {
	ID            string     `json:"id"`
	BarbershopID  string     `json:"barbershopId"`
	ClientID      string     `json:"clientId"`
	ClientName    string     `json:"clientName"`
	LastMessage   *string    `json:"lastMessage,omitempty"`
	LastMessageAt *time.Time `json:"lastMessageAt,omitempty"`
	UnreadCount   int        `json:"unreadCount"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// AppointmentDataResponse данные записи, приложенные к сообщению
type AppointmentDataResponse struct {
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	ServiceIDs []string `json:"serviceIds"`
	BarberID   string   `json:"barberId,omitempty"`
}

// MessageResponse ответ с данными сообщения
type MessageResponse struct {
	ID              string                   `json:"id"`
	ChatID          string                   `json:"chatId"`
	SenderID        string                   `json:"senderId"`
	SenderRole      string                   `json:"senderRole"`
	SenderName      string                   `json:"senderName"`
	Content         string                   `json:"content"`
	Type            string                   `json:"type"`
	AppointmentData *AppointmentDataResponse `json:"appointmentData,omitempty"`
	Read            bool                     `json:"read"`
	CreatedAt       time.Time                `json:"createdAt"`
}

// ChatListResponse ответ со списком чатов
type ChatListResponse struct {
	Chats []ChatResponse `json:"chats"`
}

// MessageListResponse ответ со списком сообщений
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// Методы конвертации

// FromDomainChat конвертирует domain модель чата в DTO
func FromDomainChat(c *domain.Chat) *ChatResponse {
	if c == nil {
		return nil
	}

	return &ChatResponse{
		ID:            c.ID,
		BarbershopID:  c.BarbershopID,
		ClientID:      c.ClientID,
		ClientName:    c.ClientName,
		LastMessage:   c.LastMessage,
		LastMessageAt: c.LastMessageAt,
		UnreadCount:   c.UnreadCount,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// FromDomainMessage конвертирует domain модель сообщения в DTO
func FromDomainMessage(m *domain.Message) *MessageResponse {
	if m == nil {
		return nil
	}

	resp := &MessageResponse{
		ID:         m.ID,
		ChatID:     m.ChatID,
		SenderID:   m.SenderID,
		SenderRole: string(m.SenderRole),
		SenderName: m.SenderName,
		Content:    m.Content,
		Type:       string(m.Type),
		Read:       m.Read,
		CreatedAt:  m.CreatedAt,
	}

	if m.AppointmentData != nil {
		resp.AppointmentData = &AppointmentDataResponse{
			Date:       m.AppointmentData.Date,
			Time:       m.AppointmentData.Time,
			ServiceIDs: m.AppointmentData.ServiceIDs,
			BarberID:   m.AppointmentData.BarberID,
		}
	}

	return resp
}

// FromDomainMessageList конвертирует список сообщений в DTO
func FromDomainMessageList(messages []*domain.Message) *MessageListResponse {
	resp := &MessageListResponse{
		Messages: make([]MessageResponse, 0, len(messages)),
	}

	for _, m := range messages {
		if msgResp := FromDomainMessage(m); msgResp != nil {
			resp.Messages = append(resp.Messages, *msgResp)
		}
	}

	return resp
}

// FromDomainChatList конвертирует список domain моделей в DTO
func FromDomainChatList(chats []*domain.Chat) *ChatListResponse {
	resp := &ChatListResponse{
		Chats: make([]ChatResponse, 0, len(chats)),
	}

	for _, c := range chats {
		if chatResp := FromDomainChat(c); chatResp != nil {
			resp.Chats = append(resp.Chats, *chatResp)
		}
	}

	return resp
}
