package dashboard

import (
	"context"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

// AppointmentRepository источник записей для сводки
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// TransactionRepository источник кассовых операций для сводки
type TransactionRepository interface {
	List(ctx context.Context, filter domain.TransactionsFilter) ([]*domain.Transaction, error)
	Totals(ctx context.Context, filter domain.TransactionsFilter) (domain.TransactionTotals, error)
}

// BarberRepository источник активных барберов
type BarberRepository interface {
	ListActiveBarbers(ctx context.Context, barbershopID string) ([]*domain.Barber, error)
}

// ClientCounter считает клиентов барбершопа
type ClientCounter interface {
	Count(ctx context.Context, barbershopID string) (int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
