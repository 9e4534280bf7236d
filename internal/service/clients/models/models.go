package models

import (
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

// Request модели

// CreateClientRequest запрос на регистрацию клиента
type CreateClientRequest struct {
	BarbershopID        string     `json:"barbershopId"`
	Name                string     `json:"name"`
	Email               *string    `json:"email,omitempty"`
	Phone               string     `json:"phone"`
	DateOfBirth         *time.Time `json:"dateOfBirth,omitempty"`
	PreferredBarberID   *string    `json:"preferredBarberId,omitempty"`
	PreferredServiceIDs []string   `json:"preferredServiceIds,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateClientRequest) ToDomain() *domain.Client {
	return &domain.Client{
		BarbershopID:        r.BarbershopID,
		Name:                r.Name,
		Email:               r.Email,
		Phone:               r.Phone,
		DateOfBirth:         r.DateOfBirth,
		PreferredBarberID:   r.PreferredBarberID,
		PreferredServiceIDs: r.PreferredServiceIDs,
		Notes:               r.Notes,
	}
}

// UpdateClientRequest частичное обновление клиента, nil поля не меняются
type UpdateClientRequest struct {
	Name                *string    `json:"name,omitempty"`
	Email               *string    `json:"email,omitempty"`
	Phone               *string    `json:"phone,omitempty"`
	DateOfBirth         *time.Time `json:"dateOfBirth,omitempty"`
	PreferredBarberID   *string    `json:"preferredBarberId,omitempty"`
	PreferredServiceIDs *[]string  `json:"preferredServiceIds,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
}

// IsEmpty проверяет, что запрос ничего не меняет
func (r *UpdateClientRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Phone == nil && r.DateOfBirth == nil &&
		r.PreferredBarberID == nil && r.PreferredServiceIDs == nil && r.Notes == nil
}

// ApplyTo переносит заданные поля на клиента. Пустая строка очищает необязательное поле.
func (r *UpdateClientRequest) ApplyTo(c *domain.Client) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Email != nil {
		c.Email = emptyToNil(*r.Email)
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.DateOfBirth != nil {
		c.DateOfBirth = r.DateOfBirth
	}
	if r.PreferredBarberID != nil {
		c.PreferredBarberID = emptyToNil(*r.PreferredBarberID)
	}
	if r.PreferredServiceIDs != nil {
		c.PreferredServiceIDs = append([]string(nil), (*r.PreferredServiceIDs)...)
	}
	if r.Notes != nil {
		c.Notes = emptyToNil(*r.Notes)
	}
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Response модели

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID                  string     `json:"id"`
	BarbershopID        string     `json:"barbershopId"`
	Name                string     `json:"name"`
	Email               *string    `json:"email,omitempty"`
	Phone               string     `json:"phone"`
	DateOfBirth         *string    `json:"dateOfBirth,omitempty"` // "1990-05-17"
	PreferredBarberID   *string    `json:"preferredBarberId,omitempty"`
	PreferredServiceIDs []string   `json:"preferredServiceIds"`
	Notes               *string    `json:"notes,omitempty"`
	LastVisit           *time.Time `json:"lastVisit,omitempty"`
	TotalVisits         int        `json:"totalVisits"`
	TotalSpent          float64    `json:"totalSpent"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// Методы конвертации

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}

	preferred := c.PreferredServiceIDs
	if preferred == nil {
		preferred = []string{}
	}

	var dateOfBirth *string
	if c.DateOfBirth != nil {
		formatted := c.DateOfBirth.Format(domain.DateFormat)
		dateOfBirth = &formatted
	}

	return &ClientResponse{
		ID:                  c.ID,
		BarbershopID:        c.BarbershopID,
		Name:                c.Name,
		Email:               c.Email,
		Phone:               c.Phone,
		DateOfBirth:         dateOfBirth,
		PreferredBarberID:   c.PreferredBarberID,
		PreferredServiceIDs: preferred,
		Notes:               c.Notes,
		LastVisit:           c.LastVisit,
		TotalVisits:         c.TotalVisits,
		TotalSpent:          c.TotalSpent,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

// FromDomainClientList конвертирует список domain моделей в DTO
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	resp := &ClientListResponse{
		Clients: make([]ClientResponse, 0, len(clients)),
	}

	for _, c := range clients {
		if cResp := FromDomainClient(c); cResp != nil {
			resp.Clients = append(resp.Clients, *cResp)
		}
	}

	return resp
}
