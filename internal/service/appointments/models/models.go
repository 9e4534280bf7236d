package models

import (
	"errors"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidPeriod возвращается, если начало периода позже конца
	ErrInvalidPeriod = errors.New("start date is after end date")
)

// Request модели

// ListAppointmentsRequest запрос на получение записей барбершопа
type ListAppointmentsRequest struct {
	BarbershopID string     `json:"barbershopId"`
	BarberID     *string    `json:"barberId,omitempty"`  // Фильтр по барберу (опционально)
	Status       *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
	StartDate    *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate      *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		BarbershopID: r.BarbershopID,
		BarberID:     r.BarberID,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
	}

	if r.StartDate != nil && r.EndDate != nil && r.StartDate.After(*r.EndDate) {
		return filter, ErrInvalidPeriod
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              string    `json:"id"`
	BarbershopID    string    `json:"barbershopId"`
	BarberID        string    `json:"barberId"`
	ClientID        string    `json:"clientId"`
	ServiceIDs      []string  `json:"serviceIds"`
	Date            string    `json:"date"`      // "2024-12-21"
	StartTime       string    `json:"startTime"` // "14:00"
	EndTime         string    `json:"endTime"`   // "15:15"
	DurationMinutes int       `json:"durationMinutes"`
	TotalPrice      float64   `json:"totalPrice"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"paymentStatus"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	serviceIDs := a.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []string{}
	}

	return &AppointmentResponse{
		ID:              a.ID,
		BarbershopID:    a.BarbershopID,
		BarberID:        a.BarberID,
		ClientID:        a.ClientID,
		ServiceIDs:      serviceIDs,
		Date:            a.Date.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		EndTime:         a.EndTime.String(),
		DurationMinutes: a.DurationMinutes,
		TotalPrice:      a.TotalPrice,
		Status:          string(a.Status),
		PaymentStatus:   string(a.PaymentStatus),
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if aResp := FromDomainAppointment(a); aResp != nil {
			resp.Appointments = append(resp.Appointments, *aResp)
		}
	}

	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
