package models

import (
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	BarbershopID    string  `json:"barbershopId"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Category        string  `json:"category"`
}

// ToDomain конвертирует запрос в новую активную услугу
func (r *CreateServiceRequest) ToDomain() *domain.Service {
	return &domain.Service{
		BarbershopID:    r.BarbershopID,
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		Category:        r.Category,
		IsActive:        true,
	}
}

// UpdateServiceRequest частичное обновление услуги, nil поля не меняются
type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	Category        *string  `json:"category,omitempty"`
	IsActive        *bool    `json:"isActive,omitempty"`
}

// IsEmpty проверяет, что запрос ничего не меняет
func (r *UpdateServiceRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil &&
		r.DurationMinutes == nil && r.Category == nil && r.IsActive == nil
}

// ApplyTo переносит заданные поля на услугу
func (r *UpdateServiceRequest) ApplyTo(s *domain.Service) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Description != nil {
		s.Description = *r.Description
	}
	if r.Price != nil {
		s.Price = *r.Price
	}
	if r.DurationMinutes != nil {
		s.DurationMinutes = *r.DurationMinutes
	}
	if r.Category != nil {
		s.Category = *r.Category
	}
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	}
}

// CreateBarberRequest запрос на создание барбера
type CreateBarberRequest struct {
	BarbershopID string  `json:"barbershopId"`
	Name         string  `json:"name"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
}

// ToDomain конвертирует запрос в нового активного барбера
func (r *CreateBarberRequest) ToDomain() *domain.Barber {
	return &domain.Barber{
		BarbershopID: r.BarbershopID,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		IsActive:     true,
	}
}

// UpdateBarberRequest частичное обновление барбера, nil поля не меняются
type UpdateBarberRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// IsEmpty проверяет, что запрос ничего не меняет
func (r *UpdateBarberRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Phone == nil && r.IsActive == nil
}

// ApplyTo переносит заданные поля на барбера. Пустая строка очищает контакт.
func (r *UpdateBarberRequest) ApplyTo(b *domain.Barber) {
	if r.Name != nil {
		b.Name = *r.Name
	}
	if r.Email != nil {
		b.Email = emptyToNil(*r.Email)
	}
	if r.Phone != nil {
		b.Phone = emptyToNil(*r.Phone)
	}
	if r.IsActive != nil {
		b.IsActive = *r.IsActive
	}
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              string    `json:"id"`
	BarbershopID    string    `json:"barbershopId"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	Category        string    `json:"category,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// BarberResponse ответ с данными барбера
type BarberResponse struct {
	ID           string    `json:"id"`
	BarbershopID string    `json:"barbershopId"`
	Name         string    `json:"name"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BarberListResponse ответ со списком барберов
type BarberListResponse struct {
	Barbers []BarberResponse `json:"barbers"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		BarbershopID:    s.BarbershopID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Category:        s.Category,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, s := range services {
		if sResp := FromDomainService(s); sResp != nil {
			resp.Services = append(resp.Services, *sResp)
		}
	}

	return resp
}

// FromDomainBarber конвертирует domain модель в DTO
func FromDomainBarber(b *domain.Barber) *BarberResponse {
	if b == nil {
		return nil
	}

	return &BarberResponse{
		ID:           b.ID,
		BarbershopID: b.BarbershopID,
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		IsActive:     b.IsActive,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBarberList конвертирует список domain моделей в DTO
func FromDomainBarberList(barbers []*domain.Barber) *BarberListResponse {
	resp := &BarberListResponse{
		Barbers: make([]BarberResponse, 0, len(barbers)),
	}

	for _, b := range barbers {
		if bResp := FromDomainBarber(b); bResp != nil {
			resp.Barbers = append(resp.Barbers, *bResp)
		}
	}

	return resp
}
