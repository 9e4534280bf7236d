package create_chat

import (
	"github.com/brunocamarg0/trim-squire/internal/service/chats/models"
)

// CreateChatRequest HTTP request model
type CreateChatRequest struct {
	BarbershopID string `json:"barbershopId"`
	ClientID     string `json:"clientId,omitempty"`
	ClientName   string `json:"clientName"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса.
// Если clientId не передан, клиентом считается вызывающий пользователь.
func (r *CreateChatRequest) ToServiceRequest(userID string) *models.GetOrCreateChatRequest {
	clientID := r.ClientID
	if clientID == "" {
		clientID = userID
	}

	return &models.GetOrCreateChatRequest{
		BarbershopID: r.BarbershopID,
		ClientID:     clientID,
		ClientName:   r.ClientName,
	}
}
