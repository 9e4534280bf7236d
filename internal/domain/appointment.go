package domain

import (
	"time"

	"github.com/brunocamarg0/trim-squire/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// IsValid reports whether the status is one of the known values
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// PaymentStatus represents the payment state of an appointment
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Appointment represents a booked visit to a barbershop
type Appointment struct {
	ID           string
	BarbershopID string
	BarberID     string
	ClientID     string
	ServiceIDs   []string

	Date            time.Time // calendar day, time of day is ignored
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	TotalPrice      float64

	Status        AppointmentStatus
	PaymentStatus PaymentStatus
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies the barber's time
func (a *Appointment) IsActive() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.IsActive()
}

// CanBeCompleted returns true if the appointment can be marked as completed
func (a *Appointment) CanBeCompleted() bool {
	return a.IsActive()
}

// AppointmentsFilter фильтр для получения записей барбершопа
type AppointmentsFilter struct {
	BarbershopID string             // Обязательный параметр
	BarberID     *string            // Фильтр по барберу (опционально)
	Status       *AppointmentStatus // Фильтр по статусу (опционально)
	StartDate    *time.Time         // Начало периода включительно (опционально)
	EndDate      *time.Time         // Конец периода включительно (опционально)
}
