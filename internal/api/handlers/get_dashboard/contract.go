package get_dashboard

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/service/dashboard/models"
)

type DashboardService interface {
	GetStats(ctx context.Context, barbershopID string) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
